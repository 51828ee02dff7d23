package template

import (
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"tableflip.dev/prompter/pkg/errs"
	"tableflip.dev/prompter/pkg/section"
)

func sample() section.Snapshot {
	return section.Snapshot{
		Base:       []string{"{{sunset}}", "sky"},
		Negative:   []string{"[[blur]]"},
		Extra:      []string{"cloud"},
		Characters: [][]string{{"knight"}, {"1.30::dragon::"}},
	}
}

func TestSaveLoad(t *testing.T) {
	s := New()
	replaced, err := s.Save("dusk", sample())
	if err != nil || replaced {
		t.Fatalf("Save() = %v, %v", replaced, err)
	}
	replaced, err = s.Save("dusk", sample())
	if err != nil || !replaced {
		t.Fatalf("second Save() = %v, %v", replaced, err)
	}
	got, err := s.Load("dusk")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, sample()) {
		t.Fatalf("Load() = %+v", got)
	}
}

func TestCopiesAreIndependent(t *testing.T) {
	s := New()
	snap := sample()
	_, _ = s.Save("dusk", snap)
	snap.Base[0] = "changed"
	snap.Characters[1][0] = "changed"

	got, _ := s.Load("dusk")
	got.Extra[0] = "changed"
	again, _ := s.Load("dusk")
	if !reflect.DeepEqual(again, sample()) {
		t.Fatalf("stored template was mutated: %+v", again)
	}
}

func TestErrors(t *testing.T) {
	s := New()
	if _, err := s.Save("  ", sample()); !errs.Is(err, errs.ErrNameRequired) {
		t.Fatalf("expected ErrNameRequired, got %v", err)
	}
	if _, err := s.Load("missing"); !errs.Is(err, errs.ErrTemplateNotFound) {
		t.Fatalf("expected ErrTemplateNotFound, got %v", err)
	}
	if err := s.Delete("missing"); !errs.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestListAndDelete(t *testing.T) {
	s := New()
	for _, name := range []string{"night", "dawn", "dusk"} {
		_, _ = s.Save(name, sample())
	}
	if got, want := s.List(), []string{"dawn", "dusk", "night"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("List() = %v, want %v", got, want)
	}
	if err := s.Delete("dusk"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Has("dusk") || !s.Has("dawn") {
		t.Fatalf("unexpected membership after delete")
	}
}

// Saving the registry and restoring it into a changed registry gives back
// the same sections.
func TestFidelity(t *testing.T) {
	r := section.New()
	if _, err := r.Route("{{sunset}}, !blur, #cloud", section.Base, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	id, _ := r.AddCharacter()
	_, _ = r.Route("knight, 1.30::dragon::", id, nil)
	want := r.Snapshot()

	s := New()
	_, _ = s.Save("scene", r.Snapshot())

	_ = r.RemoveCharacter(1)
	r.Base.Clear()
	r.Extra.Append("mist")

	got, _ := s.Load("scene")
	if err := r.Restore(got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(r.Snapshot(), want) {
		t.Fatalf("restored %+v, want %+v", r.Snapshot(), want)
	}
}

func TestYAML(t *testing.T) {
	s := New()
	_, _ = s.Save("dusk", sample())
	out, err := s.ExportYAML("dusk")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(out), "name: dusk") {
		t.Fatalf("missing name:\n%s", out)
	}
	doc, err := ImportYAML(out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Name != "dusk" || !reflect.DeepEqual(doc.Sections, sample()) {
		t.Fatalf("decoded %+v", doc)
	}

	if _, err := ImportYAML([]byte("sections: {}\n")); !errs.Is(err, errs.ErrNameRequired) {
		t.Fatalf("expected ErrNameRequired, got %v", err)
	}
	if _, err := ImportYAML([]byte("name: [")); !errs.IsUserInput(err) {
		t.Fatalf("expected user input error, got %v", err)
	}
}

func TestStoreIsNotAYAMLMarshaler(t *testing.T) {
	var s interface{} = New()
	if _, ok := s.(yaml.Marshaler); ok {
		t.Fatalf("Store must not be picked up by yaml.Marshal as a Marshaler")
	}
}
