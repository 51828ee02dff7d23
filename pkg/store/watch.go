package store

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"tableflip.dev/prompter/pkg/errs"
)

// EventType describes the nature of a persistence change notification.
type EventType int

const (
	// EventStoreChanged indicates the named store was rewritten or removed.
	EventStoreChanged EventType = iota

	// EventInvalidated signals a change that could not be tied to one store;
	// callers should reload everything.
	EventInvalidated
)

// Event is emitted by Persistence.Watch when underlying storage changes.
type Event struct {
	Type  EventType
	Store string
}

// Watch streams change events until ctx is cancelled. Callers should drain the
// returned channel to avoid blocking the watcher. The channel is closed once
// ctx is done or the watcher encounters an unrecoverable error.
func (p *persistence) Watch(ctx context.Context) (<-chan Event, error) {
	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return nil, errs.Persistence(err, "store: ensure base path")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errs.Persistence(err, "store: create watcher")
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				p.log.Warn("watcher close", zap.Error(err))
			}
		})
	}

	// Stores are flat files, so the base directory is the only watch.
	if err := watcher.Add(p.basePath); err != nil {
		closeWatcher()
		return nil, errs.Persistence(err, "store: watch "+p.basePath)
	}

	events := make(chan Event, 64)

	go func() {
		defer close(events)
		defer closeWatcher()

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
				// Drop when the consumer is busy; the next event reloads
				// everything anyway.
			}
		}

		throttle := newEventThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				p.log.Warn("watcher error", zap.Error(err))
				throttle.Enqueue(Event{Type: EventInvalidated}, send)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				key, ok := p.storeForPath(evt.Name)
				if !ok {
					continue
				}
				p.log.Debug("store event", zap.String("store", key), zap.String("op", evt.Op.String()))
				throttle.Enqueue(Event{Type: EventStoreChanged, Store: key}, send)
			}
		}
	}()

	return events, nil
}

// storeForPath maps a file under the base path to its store key. Temp files
// and unknown files are ignored.
func (p *persistence) storeForPath(path string) (string, bool) {
	rel, err := filepath.Rel(p.basePath, path)
	if err != nil || rel == "." || strings.Contains(rel, string(os.PathSeparator)) {
		return "", false
	}
	if !strings.HasSuffix(rel, fileExt) {
		return "", false
	}
	key := pathToKeyTransform(keyToPathTransform(strings.TrimSuffix(rel, fileExt)))
	for _, k := range Keys {
		if k == key {
			return key, true
		}
	}
	return "", false
}

// eventThrottle coalesces rapid change notifications so a watcher redraws
// once per burst of filesystem activity instead of on every single write.
// Nothing is sent once Stop has returned.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[EventType]map[string]struct{}
	delay   time.Duration
	stopped bool
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{
		delay:   delay,
		pending: make(map[EventType]map[string]struct{}),
	}
}

func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return
	}
	if t.pending[ev.Type] == nil {
		t.pending[ev.Type] = make(map[string]struct{})
	}
	t.pending[ev.Type][ev.Store] = struct{}{}

	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
}

// flush sends under the lock so Stop waits for a flush already in progress.
// send must not block.
func (t *eventThrottle) flush(send func(Event)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	pending := t.pending
	t.pending = make(map[EventType]map[string]struct{})
	t.timer = nil
	if t.stopped {
		return
	}

	if _, ok := pending[EventInvalidated]; ok {
		send(Event{Type: EventInvalidated})
		return
	}
	stores := make([]string, 0, len(pending[EventStoreChanged]))
	for key := range pending[EventStoreChanged] {
		stores = append(stores, key)
	}
	sort.Strings(stores)
	for _, key := range stores {
		send(Event{Type: EventStoreChanged, Store: key})
	}
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopped = true
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}
