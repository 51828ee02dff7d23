package commands

import (
	"sort"
	"testing"

	"tableflip.dev/prompter/pkg/errs"
)

func TestCommandTree(t *testing.T) {
	root := New()
	var got []string
	for _, c := range root.Commands() {
		got = append(got, c.Name())
	}
	sort.Strings(got)
	want := []string{
		"add", "character", "clear", "completion", "dict", "down", "edit", "extra",
		"key", "load", "mv", "rm", "show", "template", "up", "version", "watch", "weight",
	}
	have := map[string]bool{}
	for _, n := range got {
		have[n] = true
	}
	for _, n := range want {
		if !have[n] {
			t.Fatalf("missing command %q, have %v", n, got)
		}
	}
}

func TestSubcommands(t *testing.T) {
	root := New()
	tests := map[string][]string{
		"dict":      {"describe", "category", "rm", "search", "import", "export", "categories"},
		"template":  {"save", "load", "rm", "list", "export", "import"},
		"character": {"add", "rm"},
		"extra":     {"promote", "discard", "entries"},
	}
	for parent, children := range tests {
		cmd, _, err := root.Find([]string{parent})
		if err != nil {
			t.Fatalf("find %s: %v", parent, err)
		}
		for _, child := range children {
			if sub, _, err := cmd.Find([]string{child}); err != nil || sub.Name() != child {
				t.Fatalf("%s %s not found: %v", parent, child, err)
			}
		}
	}
}

func TestParseIndices(t *testing.T) {
	got, err := parseIndices([]string{"2", "0"})
	if err != nil || len(got) != 2 || got[0] != 2 || got[1] != 0 {
		t.Fatalf("parseIndices = %v, %v", got, err)
	}
	if _, err := parseIndex("x"); !errs.IsUserInput(err) {
		t.Fatalf("expected user input error, got %v", err)
	}
}
