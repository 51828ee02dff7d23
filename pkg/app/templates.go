package app

import (
	"context"

	"tableflip.dev/prompter/pkg/errs"
	"tableflip.dev/prompter/pkg/store"
	"tableflip.dev/prompter/pkg/template"
)

// SaveTemplate stores the live sections under name. An existing template is
// only replaced when force is set.
func (s *Service) SaveTemplate(ctx context.Context, name string, force bool) (bool, error) {
	var replaced bool
	err := s.mutate(func() error {
		if s.templates.Has(name) && !force {
			return errs.WithHint(errs.Wrapf(errs.ErrTemplateExists, "%q", name), "pass --force to overwrite")
		}
		var err error
		replaced, err = s.templates.Save(name, s.sections.Snapshot())
		return err
	}, store.KeyTemplates)
	return replaced, err
}

// LoadTemplate replaces the live sections with the template called name.
func (s *Service) LoadTemplate(ctx context.Context, name string) error {
	return s.mutate(func() error {
		snap, err := s.templates.Load(name)
		if err != nil {
			return err
		}
		return s.sections.Restore(snap)
	}, store.KeySession)
}

// DeleteTemplate removes the template called name.
func (s *Service) DeleteTemplate(ctx context.Context, name string) error {
	return s.mutate(func() error {
		return s.templates.Delete(name)
	}, store.KeyTemplates)
}

// Templates lists template names sorted.
func (s *Service) Templates(ctx context.Context) []string {
	var names []string
	s.read(func() { names = s.templates.List() })
	return names
}

// ExportTemplate encodes one template as YAML.
func (s *Service) ExportTemplate(ctx context.Context, name string) ([]byte, error) {
	var (
		out []byte
		err error
	)
	s.read(func() { out, err = s.templates.ExportYAML(name) })
	return out, err
}

// ImportTemplate stores a YAML template document and returns its name.
func (s *Service) ImportTemplate(ctx context.Context, data []byte, force bool) (string, error) {
	doc, err := template.ImportYAML(data)
	if err != nil {
		return "", err
	}
	err = s.mutate(func() error {
		if s.templates.Has(doc.Name) && !force {
			return errs.WithHint(errs.Wrapf(errs.ErrTemplateExists, "%q", doc.Name), "pass --force to overwrite")
		}
		_, err := s.templates.Save(doc.Name, doc.Sections)
		return err
	}, store.KeyTemplates)
	return doc.Name, err
}
