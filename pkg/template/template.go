// Package template keeps named snapshots of every section.
package template

import (
	"sort"
	"strings"

	"tableflip.dev/prompter/pkg/errs"
	"tableflip.dev/prompter/pkg/section"
)

// Store maps template names to section snapshots. Values are copied on the
// way in and on the way out.
type Store struct {
	items map[string]section.Snapshot
}

// New returns an empty store.
func New() *Store {
	return &Store{items: make(map[string]section.Snapshot)}
}

// FromData rebuilds a store from persisted data.
func FromData(items map[string]section.Snapshot) *Store {
	s := New()
	for name, snap := range items {
		s.items[name] = snap.Clone()
	}
	return s
}

// Data returns a deep copy of every template for persistence.
func (s *Store) Data() map[string]section.Snapshot {
	out := make(map[string]section.Snapshot, len(s.items))
	for name, snap := range s.items {
		out[name] = snap.Clone()
	}
	return out
}

// Save stores a copy of snap under name and reports whether an existing
// template was replaced.
func (s *Store) Save(name string, snap section.Snapshot) (bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return false, errs.ErrNameRequired
	}
	_, replaced := s.items[name]
	s.items[name] = snap.Clone()
	return replaced, nil
}

// Load returns a copy of the template called name.
func (s *Store) Load(name string) (section.Snapshot, error) {
	snap, ok := s.items[strings.TrimSpace(name)]
	if !ok {
		return section.Snapshot{}, errs.Wrapf(errs.ErrTemplateNotFound, "%q", name)
	}
	return snap.Clone(), nil
}

// Delete removes the template called name.
func (s *Store) Delete(name string) error {
	name = strings.TrimSpace(name)
	if _, ok := s.items[name]; !ok {
		return errs.Wrapf(errs.ErrTemplateNotFound, "%q", name)
	}
	delete(s.items, name)
	return nil
}

// Has reports whether name exists.
func (s *Store) Has(name string) bool {
	_, ok := s.items[strings.TrimSpace(name)]
	return ok
}

// List returns the template names sorted.
func (s *Store) List() []string {
	names := make([]string, 0, len(s.items))
	for name := range s.items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
