package store

import (
	"context"
	"encoding/json"
	"io"
	"path/filepath"
	"strings"

	"github.com/peterbourgon/diskv/v3"
	"go.uber.org/zap"

	"tableflip.dev/prompter/pkg/dictionary"
	"tableflip.dev/prompter/pkg/errs"
	"tableflip.dev/prompter/pkg/section"
)

// Store keys. Each store is one JSON file under the base path.
const (
	KeyDictionary = "extraDictionary"
	KeyCategories = "extraCategories"
	KeyTemplates  = "promptTemplates"
	KeySession    = "session"
)

// Keys lists every store key.
var Keys = []string{KeyDictionary, KeyCategories, KeyTemplates, KeySession}

const (
	fileExt = ".json"
	tempDir = ".tmp"
)

// Persistence reads and rewrites whole stores. A missing store loads as
// empty.
type Persistence interface {
	LoadDictionary() (map[string]dictionary.Entry, error)
	SaveDictionary(entries map[string]dictionary.Entry) error
	LoadCategories() ([]string, error)
	SaveCategories(categories []string) error
	LoadTemplates() (map[string]section.Snapshot, error)
	SaveTemplates(templates map[string]section.Snapshot) error
	// LoadSession reports false when no session has been saved yet.
	LoadSession() (section.Snapshot, bool, error)
	SaveSession(snap section.Snapshot) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config, log *zap.Logger) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	if log == nil {
		log = zap.NewNop()
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errs.New("store: base path unknown")
	}
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		TempDir:           filepath.Join(basePath, tempDir),
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
	}), basePath: basePath, log: log.Named("store")}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
	log      *zap.Logger
}

func (p *persistence) LoadDictionary() (map[string]dictionary.Entry, error) {
	entries := make(map[string]dictionary.Entry)
	if err := p.read(KeyDictionary, &entries); err != nil {
		return make(map[string]dictionary.Entry), err
	}
	return entries, nil
}

func (p *persistence) SaveDictionary(entries map[string]dictionary.Entry) error {
	return p.write(KeyDictionary, entries)
}

func (p *persistence) LoadCategories() ([]string, error) {
	var categories []string
	if err := p.read(KeyCategories, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (p *persistence) SaveCategories(categories []string) error {
	if categories == nil {
		categories = []string{}
	}
	return p.write(KeyCategories, categories)
}

func (p *persistence) LoadTemplates() (map[string]section.Snapshot, error) {
	templates := make(map[string]section.Snapshot)
	if err := p.read(KeyTemplates, &templates); err != nil {
		return make(map[string]section.Snapshot), err
	}
	return templates, nil
}

func (p *persistence) SaveTemplates(templates map[string]section.Snapshot) error {
	return p.write(KeyTemplates, templates)
}

func (p *persistence) LoadSession() (section.Snapshot, bool, error) {
	if !p.d.Has(KeySession) {
		return section.Snapshot{}, false, nil
	}
	var snap section.Snapshot
	if err := p.read(KeySession, &snap); err != nil {
		return section.Snapshot{}, false, err
	}
	return snap, true, nil
}

func (p *persistence) SaveSession(snap section.Snapshot) error {
	return p.write(KeySession, snap)
}

// read decodes key into v, leaving v untouched when the store is absent.
// The file is read directly so writes from other processes are seen.
func (p *persistence) read(key string, v interface{}) error {
	if !p.d.Has(key) {
		return nil
	}
	rc, err := p.d.ReadStream(key, true)
	if err != nil {
		return errs.Persistence(err, "store: read "+key)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return errs.Persistence(err, "store: read "+key)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errs.Persistence(err, "store: decode "+key)
	}
	return nil
}

// write replaces the whole store. diskv writes to TempDir and renames.
func (p *persistence) write(key string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errs.Persistence(err, "store: encode "+key)
	}
	if err := p.d.Write(key, data); err != nil {
		return errs.Persistence(err, "store: write "+key)
	}
	p.log.Debug("store written", zap.String("key", key), zap.Int("bytes", len(data)))
	return nil
}

func keyToPathTransform(key string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{},
		FileName: key + fileExt,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return strings.TrimSuffix(pathKey.FileName, fileExt)
}
