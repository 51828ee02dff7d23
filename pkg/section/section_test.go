package section

import (
	"encoding/json"
	"reflect"
	"testing"

	"tableflip.dev/prompter/pkg/errs"
)

type fakeRegistrar struct {
	seen map[string]bool
}

func (f *fakeRegistrar) Register(text string) bool {
	if f.seen == nil {
		f.seen = map[string]bool{}
	}
	if f.seen[text] {
		return false
	}
	f.seen[text] = true
	return true
}

func TestRouteEndToEnd(t *testing.T) {
	r := New()
	reg := &fakeRegistrar{}
	res, err := r.Route("sky, !blurry, #cloud, {{sunset}}, (castle:1.30)", Base, reg)
	if err != nil {
		t.Fatalf("route: %v", err)
	}
	if got, want := r.Base.Items(), []string{"sky", "{{sunset}}", "1.30::castle::"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("base = %v, want %v", got, want)
	}
	if got, want := r.Negative.Items(), []string{"blurry"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("negative = %v, want %v", got, want)
	}
	if got, want := r.Extra.Items(), []string{"cloud"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("extra = %v, want %v", got, want)
	}
	if !reflect.DeepEqual(res.Registered, []string{"cloud"}) {
		t.Fatalf("registered = %v", res.Registered)
	}
	if res.Count(Base) != 3 || res.Count(Negative) != 1 || res.Count(Extra) != 1 {
		t.Fatalf("unexpected counts: %+v", res.Placed)
	}
}

func TestRouteRegistersBareText(t *testing.T) {
	r := New()
	reg := &fakeRegistrar{}
	if _, err := r.Route("#{{cloud}}, #{{cloud}}", Base, reg); err != nil {
		t.Fatalf("route: %v", err)
	}
	if got := r.Extra.Items(); !reflect.DeepEqual(got, []string{"{{cloud}}", "{{cloud}}"}) {
		t.Fatalf("extra = %v", got)
	}
	if !reg.seen["cloud"] || len(reg.seen) != 1 {
		t.Fatalf("registered = %v", reg.seen)
	}
}

func TestRouteToExtraRegisters(t *testing.T) {
	r := New()
	reg := &fakeRegistrar{}
	if _, err := r.Route("rain, 0.9::fog::", Extra, reg); err != nil {
		t.Fatalf("route: %v", err)
	}
	if !reg.seen["rain"] || !reg.seen["fog"] {
		t.Fatalf("registered = %v", reg.seen)
	}
}

func TestRouteRejectsMissingCharacter(t *testing.T) {
	r := New()
	_, err := r.Route("a, !b", Character(3), &fakeRegistrar{})
	if !errs.Is(err, errs.ErrNoSuchSection) || !errs.IsUserInput(err) {
		t.Fatalf("expected no such section, got %v", err)
	}
	if r.Negative.Len() != 0 || r.Base.Len() != 0 {
		t.Fatalf("rejected route must not mutate")
	}
}

func TestRouteToCharacter(t *testing.T) {
	r := New()
	if _, err := r.AddCharacter(); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := r.Route("girl, red hair", Character(1), nil); err != nil {
		t.Fatalf("route: %v", err)
	}
	if got := r.Characters[1].Items(); !reflect.DeepEqual(got, []string{"girl", "red hair"}) {
		t.Fatalf("character-1 = %v", got)
	}
}

func TestRouteExplodesGroups(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{input: "{{a, b}}", want: []string{"{{a}}", "{{b}}"}},
		{input: "[x, y], z", want: []string{"[x]", "[y]", "z"}},
		{input: "(a, b, c:1.2)", want: []string{"1.20::a::", "1.20::b::", "1.20::c::"}},
		{input: "(a, b)", want: []string{"(a)", "(b)"}},
		{input: "{{tag}}}", want: []string{"{{tag}}}"}},
		{input: " , a ,, ", want: []string{"a"}},
	}
	for _, tt := range tests {
		r := New()
		if _, err := r.Route(tt.input, Base, nil); err != nil {
			t.Fatalf("route %q: %v", tt.input, err)
		}
		if got := r.Base.Items(); !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("route %q: base = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestRoutePrefixAppliesToGroup(t *testing.T) {
	r := New()
	if _, err := r.Route("!{a, b}", Base, nil); err != nil {
		t.Fatalf("route: %v", err)
	}
	if got := r.Negative.Items(); !reflect.DeepEqual(got, []string{"{a}", "{b}"}) {
		t.Fatalf("negative = %v", got)
	}
}

func TestRouteNestedGroupUnsupported(t *testing.T) {
	r := New()
	_, err := r.Route("sky, [(a:1.2), (b:1.4)]", Base, nil)
	if !errs.Is(err, errs.ErrUnsupportedGroup) {
		t.Fatalf("expected unsupported group, got %v", err)
	}
	if r.Base.Len() != 0 {
		t.Fatalf("failed route must not mutate, base = %v", r.Base.Items())
	}
}

func TestCharacterBounds(t *testing.T) {
	r := New()
	for i := 1; i < MaxCharacters; i++ {
		id, err := r.AddCharacter()
		if err != nil {
			t.Fatalf("add %d: %v", i, err)
		}
		if id != Character(i) {
			t.Fatalf("expected %s, got %s", Character(i), id)
		}
	}
	if _, err := r.AddCharacter(); !errs.Is(err, errs.ErrCharacterLimit) {
		t.Fatalf("expected limit error, got %v", err)
	}
	if len(r.Characters) != MaxCharacters {
		t.Fatalf("expected %d characters, got %d", MaxCharacters, len(r.Characters))
	}
}

func TestRemoveCharacterReindexes(t *testing.T) {
	r := New()
	_, _ = r.AddCharacter()
	_, _ = r.AddCharacter()
	r.Characters[2].Append("third")
	if err := r.RemoveCharacter(1); err != nil {
		t.Fatalf("remove: %v", err)
	}
	tags, err := r.Get(Character(1))
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got := tags.Items(); !reflect.DeepEqual(got, []string{"third"}) {
		t.Fatalf("character-1 = %v", got)
	}
	want := []ID{Base, Character(0), Character(1), Negative, Extra}
	if got := r.Targets(); !reflect.DeepEqual(got, want) {
		t.Fatalf("targets = %v, want %v", got, want)
	}
	if _, err := r.Get(Character(2)); !errs.Is(err, errs.ErrNoSuchSection) {
		t.Fatalf("character-2 should be gone, got %v", err)
	}
	if err := r.RemoveCharacter(5); !errs.Is(err, errs.ErrNoSuchSection) {
		t.Fatalf("expected no such section, got %v", err)
	}
	_ = r.RemoveCharacter(0)
	if err := r.RemoveCharacter(0); !errs.Is(err, errs.ErrLastCharacter) {
		t.Fatalf("expected last character error, got %v", err)
	}
}

func TestSnapshotRestore(t *testing.T) {
	r := New()
	_, _ = r.Route("a, !b, #c", Base, nil)
	_, _ = r.AddCharacter()
	r.Characters[1].Append("{{d}}")
	snap := r.Snapshot()

	r.Base.Append("mutated")
	r.Characters[1].Clear()
	_ = r.RemoveCharacter(1)
	snap.Base[0] = "snapshot must be independent"

	if err := r.Restore(snap); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if got := r.Base.Items(); !reflect.DeepEqual(got, []string{"snapshot must be independent"}) {
		t.Fatalf("base = %v", got)
	}
	if len(r.Characters) != 2 || !reflect.DeepEqual(r.Characters[1].Items(), []string{"{{d}}"}) {
		t.Fatalf("characters not restored: %v", r.Snapshot().Characters)
	}

	if err := r.Restore(Snapshot{}); err != nil {
		t.Fatalf("restore empty: %v", err)
	}
	if len(r.Characters) != 1 {
		t.Fatalf("empty snapshot should restore one character section")
	}
	if err := r.Restore(Snapshot{Characters: make([][]string, 7)}); !errs.Is(err, errs.ErrCharacterLimit) {
		t.Fatalf("expected limit error, got %v", err)
	}
}

func TestPromoteAndDiscard(t *testing.T) {
	r := New()
	r.Extra.Append("a", "{b}", "a", "c")
	if err := r.Promote([]string{"{b}", "c"}, Negative); err != nil {
		t.Fatalf("promote: %v", err)
	}
	if got := r.Negative.Items(); !reflect.DeepEqual(got, []string{"{b}", "c"}) {
		t.Fatalf("negative = %v", got)
	}
	if err := r.Promote(nil, Base); !errs.Is(err, errs.ErrEmptySelection) {
		t.Fatalf("expected empty selection, got %v", err)
	}
	n, err := r.DiscardExtras([]string{"a"})
	if err != nil || n != 2 {
		t.Fatalf("discard: %d, %v", n, err)
	}
	if got := r.Extra.Items(); !reflect.DeepEqual(got, []string{"{b}", "c"}) {
		t.Fatalf("extra = %v", got)
	}
}

func TestRenderAndOutput(t *testing.T) {
	r := New()
	r.Base.Append("sky", "{{sunset}}", "1.30::castle::")
	out, err := r.Output(Base)
	if err != nil {
		t.Fatalf("output: %v", err)
	}
	if out != "sky, {{sunset}}, 1.30::castle::" {
		t.Fatalf("output = %q", out)
	}
	out, err = r.Render(Base, "paren")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "sky, (sunset:1.10), (castle:1.30)" {
		t.Fatalf("render = %q", out)
	}
}

func TestParseID(t *testing.T) {
	for _, raw := range []string{"base", "Negative", " extra ", "character-0", "character-12"} {
		if _, err := ParseID(raw); err != nil {
			t.Fatalf("ParseID(%q): %v", raw, err)
		}
	}
	for _, raw := range []string{"", "chars", "character-", "character--1", "character-x"} {
		if _, err := ParseID(raw); !errs.IsUserInput(err) {
			t.Fatalf("ParseID(%q) should fail, got %v", raw, err)
		}
	}
	if Character(2).Title() != "Character prompt 3" {
		t.Fatalf("title = %q", Character(2).Title())
	}
}

func TestSnapshotJSONAcceptsJoinedStrings(t *testing.T) {
	data := []byte(`{"base": "sky, {{sunset}}", "negative": ["blur"], "characters": ["knight", []]}`)
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := Snapshot{
		Base:       []string{"sky", "{{sunset}}"},
		Negative:   []string{"blur"},
		Characters: [][]string{{"knight"}, {}},
	}
	if !reflect.DeepEqual(s, want) {
		t.Fatalf("got %+v, want %+v", s, want)
	}
}

func TestSplitTopLevel(t *testing.T) {
	tests := map[string]struct {
		in   string
		want []string
	}{
		"plain":          {in: "a, b", want: []string{"a", " b"}},
		"closed group":   {in: "(a, b), c", want: []string{"(a, b)", " c"}},
		"nested group":   {in: "{[a, b]}, c", want: []string{"{[a, b]}", " c"}},
		"unclosed paren": {in: "sad :(, b, c", want: []string{"sad :(", " b", " c"}},
		"stray closer":   {in: "a), b", want: []string{"a)", " b"}},
		"wrong closer":   {in: "{a, b), c", want: []string{"{a", " b)", " c"}},
		"unclosed inner": {in: "(a, [b, c), d", want: []string{"(a, [b, c)", " d"}},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := SplitTopLevel(tc.in); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("SplitTopLevel(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestRouteUnclosedOpenerKeepsPrefixes(t *testing.T) {
	r := New()
	if _, err := r.Route("sad :(, !blurry, sky, >:[", Base, nil); err != nil {
		t.Fatalf("route: %v", err)
	}
	if got, want := r.Base.Items(), []string{"sad :(", "sky", ">:["}; !reflect.DeepEqual(got, want) {
		t.Fatalf("base = %q, want %q", got, want)
	}
	if got, want := r.Negative.Items(), []string{"blurry"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("negative = %q, want %q", got, want)
	}
}
