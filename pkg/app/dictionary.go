package app

import (
	"context"
	"io"
	"sort"

	"go.uber.org/zap"

	"tableflip.dev/prompter/pkg/dictionary"
	"tableflip.dev/prompter/pkg/notation"
	"tableflip.dev/prompter/pkg/store"
)

// Category describes one category and how many entries use it.
type Category struct {
	Name    string `json:"name"`
	Entries int    `json:"entries"`
}

// Search returns a read-only view of matching dictionary entries. The extra
// section is not touched.
func (s *Service) Search(ctx context.Context, query string) dictionary.View {
	var v dictionary.View
	s.read(func() { v = s.dict.Search(query) })
	return v
}

// SearchIntoExtra replaces the extra section with the texts of the matching
// dictionary entries.
func (s *Service) SearchIntoExtra(ctx context.Context, query string) (dictionary.View, error) {
	var v dictionary.View
	err := s.mutate(func() error {
		v = s.dict.Search(query)
		s.sections.Extra.Replace(v.Texts())
		return nil
	}, store.KeySession)
	return v, err
}

// ExtraEntries lists dictionary entries for the bare text of every extra tag,
// in extra order.
func (s *Service) ExtraEntries(ctx context.Context) dictionary.View {
	var v dictionary.View
	s.read(func() {
		items := s.sections.Extra.Items()
		texts := make([]string, len(items))
		for i, raw := range items {
			texts[i] = notation.Parse(raw).Text
		}
		v = s.dict.Lookup(texts)
	})
	return v
}

// Describe sets the description of text.
func (s *Service) Describe(ctx context.Context, text, description string) error {
	return s.mutate(func() error {
		return s.dict.SetDescription(text, description)
	}, store.KeyDictionary)
}

// Categorize assigns category to every text.
func (s *Service) Categorize(ctx context.Context, category string, texts ...string) error {
	return s.mutate(func() error {
		return s.dict.BulkSetCategory(texts, category)
	}, store.KeyDictionary)
}

// DeleteTag removes text from the dictionary and every extra tag whose bare
// text matches. It returns the number of extra tags removed.
func (s *Service) DeleteTag(ctx context.Context, text string) (int, error) {
	var n int
	err := s.mutate(func() error {
		if err := s.dict.Delete(text); err != nil {
			return err
		}
		n = s.sections.Extra.RemoveFunc(func(_ string, t notation.Tag) bool {
			return t.Text == text
		})
		return nil
	}, store.KeyDictionary, store.KeySession)
	if err == nil {
		s.Log.Info("tag deleted", zap.String("text", text), zap.Int("extra_removed", n))
	}
	return n, err
}

// ImportDictionary merges aligned text into the dictionary.
func (s *Service) ImportDictionary(ctx context.Context, r io.Reader) (int, error) {
	var n int
	err := s.mutate(func() error {
		var err error
		n, err = s.dict.ImportAligned(r)
		return err
	}, store.KeyDictionary)
	if err == nil {
		s.Log.Info("dictionary imported", zap.Int("entries", n))
	}
	return n, err
}

// ExportDictionary renders the entries matching query as aligned text.
func (s *Service) ExportDictionary(ctx context.Context, query string) string {
	return dictionary.ExportAligned(s.Search(ctx, query))
}

// Categories lists every category with its usage, sorted by name.
func (s *Service) Categories(ctx context.Context) []Category {
	var out []Category
	s.read(func() {
		for name, n := range s.dict.Usage() {
			out = append(out, Category{Name: name, Entries: n})
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// CreateCategory declares a new, empty category.
func (s *Service) CreateCategory(ctx context.Context, name string) error {
	return s.mutate(func() error {
		return s.dict.CreateCategory(name)
	}, store.KeyCategories)
}

// DeleteCategory forgets a category, uncategorising its entries.
func (s *Service) DeleteCategory(ctx context.Context, name string) (int, error) {
	var n int
	err := s.mutate(func() error {
		var err error
		n, err = s.dict.DeleteCategory(name)
		return err
	}, store.KeyDictionary, store.KeyCategories)
	return n, err
}
