// Package watch re-renders the sections whenever a persisted store changes.
package watch

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"tableflip.dev/prompter/pkg/app"
	"tableflip.dev/prompter/pkg/errs"
	"tableflip.dev/prompter/pkg/runner/show"
	"tableflip.dev/prompter/pkg/store"
)

// Watch reloads state from disk and runs Show after every store event. It
// never writes.
type Watch struct {
	Service *app.Service
	Show    show.Show
	// Clear emits an ANSI clear before each render.
	Clear bool
	Out   io.Writer
}

func (w *Watch) Do(ctx context.Context) error {
	if w.Service == nil {
		return errs.New("watch: no service configured")
	}
	out := w.Out
	if out == nil {
		out = color.Output
	}
	w.Show.Service = w.Service
	w.Show.Out = out

	events, err := w.Service.Watch(ctx)
	if err != nil {
		return err
	}
	if err := w.render(ctx, out); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			w.Service.Log.Debug("store changed", zap.String("store", ev.Store), zap.Bool("invalidated", ev.Type == store.EventInvalidated))
			if err := w.Service.Open(ctx); err != nil {
				return err
			}
			if err := w.render(ctx, out); err != nil {
				return err
			}
		}
	}
}

func (w *Watch) render(ctx context.Context, out io.Writer) error {
	if w.Clear {
		_, _ = fmt.Fprint(out, "\033[H\033[2J")
	}
	return w.Show.Do(ctx)
}
