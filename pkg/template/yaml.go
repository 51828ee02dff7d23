package template

import (
	"strings"

	"gopkg.in/yaml.v3"

	"tableflip.dev/prompter/pkg/errs"
	"tableflip.dev/prompter/pkg/section"
)

// Document is the exchange form of a single template.
type Document struct {
	Name     string           `yaml:"name"`
	Sections section.Snapshot `yaml:"sections"`
}

// ExportYAML encodes the template called name.
func (s *Store) ExportYAML(name string) ([]byte, error) {
	snap, err := s.Load(name)
	if err != nil {
		return nil, err
	}
	out, err := yaml.Marshal(Document{Name: strings.TrimSpace(name), Sections: snap})
	if err != nil {
		return nil, errs.Wrap(err, "template: encode yaml")
	}
	return out, nil
}

// ImportYAML decodes a template document. The caller decides whether to
// store it.
func ImportYAML(data []byte) (Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, errs.UserInput(err, "template: decode yaml")
	}
	doc.Name = strings.TrimSpace(doc.Name)
	if doc.Name == "" {
		return Document{}, errs.ErrNameRequired
	}
	if len(doc.Sections.Characters) > section.MaxCharacters {
		return Document{}, errs.Wrapf(errs.ErrCharacterLimit, "template %q has %d character sections",
			doc.Name, len(doc.Sections.Characters))
	}
	return doc, nil
}
