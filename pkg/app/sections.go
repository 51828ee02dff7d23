package app

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"tableflip.dev/prompter/pkg/collection"
	"tableflip.dev/prompter/pkg/collection/viewmodel"
	"tableflip.dev/prompter/pkg/errs"
	"tableflip.dev/prompter/pkg/notation"
	"tableflip.dev/prompter/pkg/section"
	"tableflip.dev/prompter/pkg/store"
)

// Route splits bulk input into tags and appends them, registering anything
// that lands in extra with the dictionary.
func (s *Service) Route(ctx context.Context, input string, dest section.ID) (section.Result, error) {
	var res section.Result
	err := s.mutate(func() error {
		var err error
		res, err = s.sections.Route(input, dest, s.dict)
		return err
	}, store.KeySession, store.KeyDictionary)
	if err == nil {
		s.Log.Info("routed", zap.Int("tags", len(res.Placed)), zap.Int("registered", len(res.Registered)))
	}
	return res, err
}

// Append adds raw tags to id as written.
func (s *Service) Append(ctx context.Context, id section.ID, raw ...string) error {
	return s.mutate(func() error {
		tags, err := s.sections.Get(id)
		if err != nil {
			return err
		}
		tags.Append(raw...)
		if id == section.Extra {
			for _, r := range raw {
				s.dict.Register(notation.Parse(r).Text)
			}
		}
		return nil
	}, store.KeySession, store.KeyDictionary)
}

// EditText replaces the text of a tag, keeping its emphasis.
func (s *Service) EditText(ctx context.Context, id section.ID, index int, text string) error {
	return s.withTags(id, func(t *collection.Tags) error { return t.ReplaceTextAt(index, text) })
}

// StepUp adds one level of emphasis.
func (s *Service) StepUp(ctx context.Context, id section.ID, index int) error {
	return s.withTags(id, func(t *collection.Tags) error { return t.IncrementEmphasis(index) })
}

// StepDown removes one level of emphasis.
func (s *Service) StepDown(ctx context.Context, id section.ID, index int) error {
	return s.withTags(id, func(t *collection.Tags) error { return t.DecrementEmphasis(index) })
}

// SetWeight assigns an explicit weight.
func (s *Service) SetWeight(ctx context.Context, id section.ID, index int, value float64) error {
	return s.withTags(id, func(t *collection.Tags) error { return t.SetWeightDirect(index, value) })
}

// Remove deletes one tag.
func (s *Service) Remove(ctx context.Context, id section.ID, index int) error {
	return s.withTags(id, func(t *collection.Tags) error { return t.RemoveAt(index) })
}

// Move reorders one tag within its section.
func (s *Service) Move(ctx context.Context, id section.ID, from, to int) error {
	return s.withTags(id, func(t *collection.Tags) error { return t.MoveTo(from, to) })
}

// Clear empties a section.
func (s *Service) Clear(ctx context.Context, id section.ID) error {
	return s.mutate(func() error { return s.sections.Clear(id) }, store.KeySession)
}

func (s *Service) withTags(id section.ID, fn func(*collection.Tags) error) error {
	return s.mutate(func() error {
		tags, err := s.sections.Get(id)
		if err != nil {
			return err
		}
		return fn(tags)
	}, store.KeySession)
}

// AddCharacter appends a character section and returns its ID.
func (s *Service) AddCharacter(ctx context.Context) (section.ID, error) {
	var id section.ID
	err := s.mutate(func() error {
		var err error
		id, err = s.sections.AddCharacter()
		return err
	}, store.KeySession)
	return id, err
}

// RemoveCharacter discards the character section at index.
func (s *Service) RemoveCharacter(ctx context.Context, index int) error {
	return s.mutate(func() error { return s.sections.RemoveCharacter(index) }, store.KeySession)
}

// PromoteExtras copies the extra tags at indices into dest.
func (s *Service) PromoteExtras(ctx context.Context, indices []int, dest section.ID) error {
	return s.mutate(func() error {
		raws, err := s.extraAt(indices)
		if err != nil {
			return err
		}
		return s.sections.Promote(raws, dest)
	}, store.KeySession)
}

// DiscardExtras removes the extra tags at indices, and any duplicates of
// them, returning how many were removed.
func (s *Service) DiscardExtras(ctx context.Context, indices []int) (int, error) {
	var n int
	err := s.mutate(func() error {
		raws, err := s.extraAt(indices)
		if err != nil {
			return err
		}
		n, err = s.sections.DiscardExtras(raws)
		return err
	}, store.KeySession)
	return n, err
}

// extraAt resolves selected extra indices to raw tags in index order.
func (s *Service) extraAt(indices []int) ([]string, error) {
	if len(indices) == 0 {
		return nil, errs.ErrEmptySelection
	}
	sorted := append([]int(nil), indices...)
	sort.Ints(sorted)
	raws := make([]string, 0, len(sorted))
	for i, idx := range sorted {
		if i > 0 && sorted[i-1] == idx {
			continue
		}
		raw, err := s.sections.Extra.At(idx)
		if err != nil {
			return nil, err
		}
		raws = append(raws, raw)
	}
	return raws, nil
}

// Sections returns a view of every section in display order.
func (s *Service) Sections(ctx context.Context, style notation.Style) []viewmodel.Section {
	var out []viewmodel.Section
	s.read(func() {
		for _, id := range s.sections.IDs() {
			v, _ := s.sectionView(id, style)
			out = append(out, v)
		}
	})
	return out
}

// Section returns a view of one section.
func (s *Service) Section(ctx context.Context, id section.ID, style notation.Style) (viewmodel.Section, error) {
	var (
		v   viewmodel.Section
		err error
	)
	s.read(func() { v, err = s.sectionView(id, style) })
	return v, err
}

// Output joins a section into a prompt line.
func (s *Service) Output(ctx context.Context, id section.ID, style notation.Style) (string, error) {
	var (
		out string
		err error
	)
	s.read(func() { out, err = s.sections.Render(id, style) })
	return out, err
}

// Snapshot captures the live sections.
func (s *Service) Snapshot(ctx context.Context) section.Snapshot {
	var snap section.Snapshot
	s.read(func() { snap = s.sections.Snapshot() })
	return snap
}

// Targets lists the sections bulk input can be routed to.
func (s *Service) Targets(ctx context.Context) []section.ID {
	var ids []section.ID
	s.read(func() { ids = s.sections.Targets() })
	return ids
}

func (s *Service) sectionView(id section.ID, style notation.Style) (viewmodel.Section, error) {
	tags, err := s.sections.Get(id)
	if err != nil {
		return viewmodel.Section{}, err
	}
	out, err := s.sections.Render(id, style)
	if err != nil {
		return viewmodel.Section{}, err
	}
	return viewmodel.Section{
		ID:     string(id),
		Title:  id.Title(),
		Rows:   viewmodel.Build(tags, style),
		Output: out,
	}, nil
}
