package show

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/prompter/pkg/app"
	"tableflip.dev/prompter/pkg/collection/viewmodel"
	"tableflip.dev/prompter/pkg/notation"
	"tableflip.dev/prompter/pkg/section"
	"tableflip.dev/prompter/pkg/store"
)

func service(t *testing.T) *app.Service {
	t.Helper()
	p, err := store.Load(store.StaticConfig{Path: t.TempDir()}, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	svc := app.New(p, nil)
	if err := svc.Open(context.Background()); err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := svc.Route(context.Background(), "{{sunset}}, sky, !blur", section.Base); err != nil {
		t.Fatalf("route: %v", err)
	}
	return svc
}

func TestShowJSON(t *testing.T) {
	var buf bytes.Buffer
	s := Show{Service: service(t), Section: section.Base, Style: notation.StyleColon, JSON: true, Out: &buf}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	var v viewmodel.Section
	if err := json.Unmarshal(buf.Bytes(), &v); err != nil {
		t.Fatalf("decode: %v\n%s", err, buf.String())
	}
	if v.Output != "1.10::sunset::, sky" {
		t.Fatalf("output = %q", v.Output)
	}
	if len(v.Rows) != 2 || !v.Rows[0].Has(viewmodel.ClassPositive) {
		t.Fatalf("rows = %+v", v.Rows)
	}
}

func TestShowOutputOnly(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	s := Show{Service: service(t), Section: section.Negative, Style: notation.StyleKeep, OutputOnly: true, Out: &buf}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	if buf.String() != "blur\n" {
		t.Fatalf("output = %q", buf.String())
	}
}

func TestShowAll(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	s := Show{Service: service(t), Style: notation.StyleKeep, JSON: true, Out: &buf}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	var views []viewmodel.Section
	if err := json.Unmarshal(buf.Bytes(), &views); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(views) != 4 {
		t.Fatalf("expected base, one character, negative and extra, got %d", len(views))
	}
}
