package dictionary

import (
	"reflect"
	"strings"
	"testing"

	"tableflip.dev/prompter/pkg/errs"
)

func seeded() *Dictionary {
	d := New()
	_ = d.SetDescription("sunset", "evening sky")
	_ = d.SetCategory("sunset", "scene")
	_ = d.SetDescription("castle", "stone keep")
	_ = d.SetCategory("castle", "building")
	d.Register("cloud")
	return d
}

func TestRegister(t *testing.T) {
	d := New()
	if !d.Register("cloud") {
		t.Fatalf("first register should create an entry")
	}
	if d.Register("cloud") {
		t.Fatalf("second register should be a no-op")
	}
	if d.Register("") {
		t.Fatalf("empty text should not register")
	}
	if e, ok := d.Get("cloud"); !ok || e != (Entry{}) {
		t.Fatalf("unexpected entry %+v, %v", e, ok)
	}
}

func TestSetDescriptionAndCategoryUpsert(t *testing.T) {
	d := New()
	if err := d.SetDescription("moon", "night light"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := d.SetCategory("moon", " sky "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e, _ := d.Get("moon")
	if e.Description != "night light" || e.Category != "sky" {
		t.Fatalf("unexpected entry %+v", e)
	}
	if err := d.SetCategory("", "sky"); !errs.Is(err, errs.ErrTagRequired) {
		t.Fatalf("expected ErrTagRequired, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	d := seeded()
	if err := d.Delete("sunset"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := d.Get("sunset"); ok {
		t.Fatalf("sunset should be gone")
	}
	err := d.Delete("sunset")
	if !errs.Is(err, errs.ErrTagNotFound) || !errs.IsNotFound(err) {
		t.Fatalf("expected ErrTagNotFound, got %v", err)
	}
}

func TestSearch(t *testing.T) {
	d := seeded()
	tests := []struct {
		query string
		want  []string
	}{
		{query: "", want: []string{"castle", "cloud", "sunset"}},
		{query: "SUN", want: []string{"sunset"}},
		{query: "keep", want: []string{"castle"}},
		{query: "scene", want: []string{"sunset"}},
		{query: "nothing", want: []string{}},
	}
	for _, tt := range tests {
		got := d.Search(tt.query).Texts()
		if !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("Search(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestSearchViewIsACopy(t *testing.T) {
	d := seeded()
	v := d.Search("")
	v.Records[0].Description = "changed"
	if e, _ := d.Get(v.Records[0].Text); e.Description == "changed" {
		t.Fatalf("view should not alias dictionary entries")
	}
}

func TestBulkSetCategory(t *testing.T) {
	d := seeded()
	if err := d.BulkSetCategory(nil, "x"); !errs.Is(err, errs.ErrEmptySelection) {
		t.Fatalf("expected ErrEmptySelection, got %v", err)
	}
	if err := d.BulkSetCategory([]string{"cloud", "rain"}, "weather"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, text := range []string{"cloud", "rain"} {
		if e, _ := d.Get(text); e.Category != "weather" {
			t.Fatalf("%s category = %q", text, e.Category)
		}
	}
}

func TestCategories(t *testing.T) {
	d := seeded()
	if got, want := d.Categories(), []string{"building", "scene"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Categories() = %v, want %v", got, want)
	}
	if err := d.CreateCategory("weather"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := d.UnusedCategories(); !reflect.DeepEqual(got, []string{"weather"}) {
		t.Fatalf("UnusedCategories() = %v", got)
	}

	err := d.CreateCategory("people")
	if !errs.Is(err, errs.ErrCategoryUnused) || !errs.IsUserInput(err) {
		t.Fatalf("expected ErrCategoryUnused, got %v", err)
	}
	if err := d.CreateCategory("scene"); !errs.Is(err, errs.ErrCategoryExists) {
		t.Fatalf("expected ErrCategoryExists, got %v", err)
	}
	if err := d.CreateCategory("  "); !errs.Is(err, errs.ErrCategoryRequired) {
		t.Fatalf("expected ErrCategoryRequired, got %v", err)
	}

	_ = d.SetCategory("cloud", "weather")
	if err := d.CreateCategory("people"); err != nil {
		t.Fatalf("creation should succeed once every category is used: %v", err)
	}
}

func TestDeleteCategoryKeepsEntries(t *testing.T) {
	d := seeded()
	_ = d.SetCategory("cloud", "scene")
	n, err := d.DeleteCategory("scene")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 2 {
		t.Fatalf("changed %d entries, want 2", n)
	}
	if d.Len() != 3 {
		t.Fatalf("entries should be kept, have %d", d.Len())
	}
	if e, _ := d.Get("sunset"); e.Category != "" || e.Description != "evening sky" {
		t.Fatalf("unexpected entry %+v", e)
	}
	if _, err := d.DeleteCategory("scene"); !errs.Is(err, errs.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestDataRoundTrip(t *testing.T) {
	d := seeded()
	_ = d.CreateCategory("weather")
	entries, cats := d.Data()
	got := FromData(entries, cats)
	if !reflect.DeepEqual(got.Search("").Records, d.Search("").Records) {
		t.Fatalf("entries differ after rebuild")
	}
	if !reflect.DeepEqual(got.Categories(), d.Categories()) {
		t.Fatalf("categories differ: %v vs %v", got.Categories(), d.Categories())
	}
}

func TestImportAligned(t *testing.T) {
	in := strings.Join([]string{
		"Tag                 Description              Category",
		"sunset              warm evening sky         scene",
		"castle\tstone keep\tbuilding",
		"moon　　night light",
		"",
		"   ",
		"cloud",
	}, "\n")

	d := New()
	_ = d.SetDescription("castle", "old")
	n, err := d.ImportAligned(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 4 {
		t.Fatalf("imported %d, want 4", n)
	}
	want := map[string]Entry{
		"sunset": {Description: "warm evening sky", Category: "scene"},
		"castle": {Description: "stone keep", Category: "building"},
		"moon":   {Description: "night light"},
		"cloud":  {},
	}
	for text, e := range want {
		if got, _ := d.Get(text); got != e {
			t.Fatalf("%s = %+v, want %+v", text, got, e)
		}
	}
	if _, ok := d.Get("Tag"); ok {
		t.Fatalf("header line should be skipped")
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	d := New()
	_ = d.SetDescription("sunset", "warm evening sky")
	_ = d.SetCategory("sunset", "scene")
	_ = d.SetCategory("castle", "building")
	_ = d.SetDescription("very long tag text that overflows", "wide")
	_ = d.SetDescription("夕焼け", "全角")
	_ = d.SetCategory("夕焼け", "scene")
	d.Register("cloud")

	out := ExportAligned(d.All())
	if !strings.HasPrefix(out, Header+"\n") {
		t.Fatalf("export should start with the header:\n%s", out)
	}

	back := New()
	n, err := back.ImportAligned(strings.NewReader(out))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != d.Len() {
		t.Fatalf("imported %d, want %d\n%s", n, d.Len(), out)
	}
	if !reflect.DeepEqual(back.All().Records, d.All().Records) {
		t.Fatalf("round trip mismatch:\n%s\n%+v\n%+v", out, back.All().Records, d.All().Records)
	}
}

func TestExportAlignsColumns(t *testing.T) {
	v := View{Records: []Record{{Text: "sky", Entry: Entry{Description: "blue", Category: "scene"}}}}
	lines := strings.Split(strings.TrimRight(ExportAligned(v), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header and one row, got %q", lines)
	}
	if got := strings.Index(lines[1], "blue"); got != TagWidth {
		t.Fatalf("description starts at %d, want %d", got, TagWidth)
	}
	if got := strings.Index(lines[1], "scene"); got != TagWidth+DescriptionWidth {
		t.Fatalf("category starts at %d, want %d", got, TagWidth+DescriptionWidth)
	}
}

func TestExportCollapsesInnerWhitespace(t *testing.T) {
	v := View{Records: []Record{
		{Text: "red  dress", Entry: Entry{Description: "long\tflowing　gown", Category: "outfit  top"}},
		{Text: "blue\tsky", Entry: Entry{Category: "scene"}},
	}}
	back := New()
	n, err := back.ImportAligned(strings.NewReader(ExportAligned(v)))
	if err != nil || n != 2 {
		t.Fatalf("import = %d, %v", n, err)
	}
	if got, _ := back.Get("red dress"); got != (Entry{Description: "long flowing gown", Category: "outfit top"}) {
		t.Fatalf("red dress = %+v", got)
	}
	if got, _ := back.Get("blue sky"); got != (Entry{Category: "scene"}) {
		t.Fatalf("blue sky = %+v", got)
	}
}
