package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"tableflip.dev/prompter/pkg/app"
	"tableflip.dev/prompter/pkg/errs"
	"tableflip.dev/prompter/pkg/logging"
	"tableflip.dev/prompter/pkg/store"
)

// env is what every command needs to run.
type env struct {
	cfg store.Config
	log *zap.Logger
	svc *app.Service
}

func open(ctx context.Context) (*env, error) {
	log, err := logging.New(gopts.Verbosity, gopts.LogJSON)
	if err != nil {
		return nil, err
	}
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	log.Debug("config loaded", zap.String("path", cfg.BasePath()), zap.String("style", string(cfg.Style())))
	p, err := store.Load(cfg, log)
	if err != nil {
		return nil, err
	}
	svc := app.New(p, log)
	if err := svc.Open(ctx); err != nil {
		return nil, err
	}
	return &env{cfg: cfg, log: log, svc: svc}, nil
}

// handle prints any hints on stderr and then defers to the output options.
func handle(err error) error {
	if err == nil {
		return nil
	}
	if !oo.JSON {
		hint := color.New(color.Faint)
		for _, h := range errs.Hints(err) {
			_, _ = hint.Fprintf(os.Stderr, "hint: %s\n", h)
		}
	}
	return oo.HandleError(err)
}

func done(format string, a ...interface{}) {
	_, _ = fmt.Fprintf(color.Output, format+"\n", a...)
}

func parseIndex(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.UserInput(err, fmt.Sprintf("commands: index %q", raw))
	}
	return n, nil
}

func parseIndices(raw []string) ([]int, error) {
	out := make([]int, 0, len(raw))
	for _, r := range raw {
		n, err := parseIndex(r)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(color.Output)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
