package app

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"tableflip.dev/prompter/pkg/dictionary"
	"tableflip.dev/prompter/pkg/errs"
	"tableflip.dev/prompter/pkg/section"
	"tableflip.dev/prompter/pkg/store"
	"tableflip.dev/prompter/pkg/template"
)

// Service provides the editing operations shared by every command. It owns
// the live sections, the tag dictionary and the template store, and rewrites
// the affected persisted stores after each mutation.
type Service struct {
	Persistence store.Persistence
	Log         *zap.Logger

	mu        sync.Mutex
	sections  *section.Registry
	dict      *dictionary.Dictionary
	templates *template.Store
	listeners []func(Change)
}

// Change is passed to OnChange listeners after a mutation.
type Change struct {
	// Stores lists the store keys that were rewritten.
	Stores []string
	// Err is the persistence error, if any. In-memory state is kept.
	Err error
}

// New returns a Service with empty state. Call Open to load persisted state.
func New(p store.Persistence, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		Persistence: p,
		Log:         log.Named("app"),
		sections:    section.New(),
		dict:        dictionary.New(),
		templates:   template.New(),
	}
}

// Open loads every persisted store. A store that cannot be read is logged
// and replaced by an empty one.
func (s *Service) Open(ctx context.Context) error {
	if s.Persistence == nil {
		return errs.New("app: no persistence configured")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.Persistence.LoadDictionary()
	if err != nil {
		s.Log.Warn("dictionary unreadable, starting empty", zap.Error(err))
		entries = nil
	}
	categories, err := s.Persistence.LoadCategories()
	if err != nil {
		s.Log.Warn("categories unreadable, starting empty", zap.Error(err))
		categories = nil
	}
	s.dict = dictionary.FromData(entries, categories)

	templates, err := s.Persistence.LoadTemplates()
	if err != nil {
		s.Log.Warn("templates unreadable, starting empty", zap.Error(err))
		templates = nil
	}
	s.templates = template.FromData(templates)

	s.sections = section.New()
	snap, ok, err := s.Persistence.LoadSession()
	switch {
	case err != nil:
		s.Log.Warn("session unreadable, starting empty", zap.Error(err))
	case ok:
		if err := s.sections.Restore(snap); err != nil {
			s.Log.Warn("session rejected, starting empty", zap.Error(err))
		}
	}

	s.Log.Debug("opened",
		zap.Int("entries", s.dict.Len()),
		zap.Int("templates", len(s.templates.List())),
		zap.Int("characters", len(s.sections.Characters)))
	return nil
}

// OnChange registers fn to run after every mutation.
func (s *Service) OnChange(fn func(Change)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, errs.New("app: no persistence configured")
	}
	return s.Persistence.Watch(ctx)
}

// mutate runs fn under the lock and then rewrites the given stores. The
// write happens on every exit path of fn. A persistence error is returned
// only when fn itself succeeded. Listeners run after the lock is released
// so they may read the service.
func (s *Service) mutate(fn func() error, stores ...string) error {
	change, listeners, err := s.apply(fn, stores)
	for _, l := range listeners {
		l(change)
	}
	return err
}

func (s *Service) apply(fn func() error, stores []string) (change Change, listeners []func(Change), err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() {
		perr := s.persist(stores)
		if err == nil {
			err = perr
		}
		change = Change{Stores: append([]string(nil), stores...), Err: perr}
		listeners = append(([]func(Change))(nil), s.listeners...)
	}()
	return Change{}, nil, fn()
}

func (s *Service) persist(stores []string) error {
	if s.Persistence == nil {
		return nil
	}
	var first error
	for _, key := range stores {
		var err error
		switch key {
		case store.KeyDictionary:
			entries, _ := s.dict.Data()
			err = s.Persistence.SaveDictionary(entries)
		case store.KeyCategories:
			_, categories := s.dict.Data()
			err = s.Persistence.SaveCategories(categories)
		case store.KeyTemplates:
			err = s.Persistence.SaveTemplates(s.templates.Data())
		case store.KeySession:
			err = s.Persistence.SaveSession(s.sections.Snapshot())
		}
		if err != nil {
			s.Log.Error("persist failed", zap.String("store", key), zap.Error(err))
			if first == nil {
				first = err
			}
		}
	}
	return first
}

// read runs fn under the lock without persisting.
func (s *Service) read(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
}
