package watch

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/prompter/pkg/app"
	"tableflip.dev/prompter/pkg/notation"
	"tableflip.dev/prompter/pkg/runner/show"
	"tableflip.dev/prompter/pkg/section"
	"tableflip.dev/prompter/pkg/store"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func open(t *testing.T, base string) *app.Service {
	t.Helper()
	p, err := store.Load(store.StaticConfig{Path: base}, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	svc := app.New(p, nil)
	if err := svc.Open(context.Background()); err != nil {
		t.Fatalf("open: %v", err)
	}
	return svc
}

func TestWatchRendersOtherWriters(t *testing.T) {
	color.NoColor = true
	base := t.TempDir()
	viewer := open(t, base)
	editor := open(t, base)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out := &syncBuffer{}
	w := Watch{
		Service: viewer,
		Show:    show.Show{Section: section.Base, Style: notation.StyleKeep, OutputOnly: true},
		Out:     out,
	}
	done := make(chan error, 1)
	go func() { done <- w.Do(ctx) }()

	// Allow the watcher to subscribe before writing.
	time.Sleep(100 * time.Millisecond)
	if _, err := editor.Route(context.Background(), "sunset, sky", section.Base); err != nil {
		t.Fatalf("route: %v", err)
	}

	deadline := time.After(3 * time.Second)
	for !strings.Contains(out.String(), "sunset, sky") {
		select {
		case <-deadline:
			t.Fatalf("timed out waiting for re-render, got %q", out.String())
		case <-time.After(20 * time.Millisecond):
		}
	}
	cancel()
	if err := <-done; err != nil {
		t.Fatalf("watch: %v", err)
	}
}
