// Package dictionary stores descriptions and categories for bare tag text.
package dictionary

import (
	"sort"
	"strings"

	"tableflip.dev/prompter/pkg/errs"
)

// Entry is the metadata kept for one tag. An empty category means
// uncategorised.
type Entry struct {
	Description string `json:"description"`
	Category    string `json:"category"`
}

// Record is an entry together with its tag text.
type Record struct {
	Text string `json:"text"`
	Entry
}

// View is a read-only, filtered listing of the dictionary. It never aliases
// the extra working set.
type View struct {
	Query   string   `json:"query"`
	Records []Record `json:"entries"`
}

// Texts returns the tag text of every record in order.
func (v View) Texts() []string {
	out := make([]string, len(v.Records))
	for i, r := range v.Records {
		out[i] = r.Text
	}
	return out
}

// Dictionary maps tag text to metadata. Categories are the union of the ones
// declared with CreateCategory and the ones referenced by entries.
type Dictionary struct {
	entries  map[string]Entry
	declared map[string]struct{}
}

// New returns an empty dictionary.
func New() *Dictionary {
	return &Dictionary{
		entries:  make(map[string]Entry),
		declared: make(map[string]struct{}),
	}
}

// FromData rebuilds a dictionary from persisted data.
func FromData(entries map[string]Entry, categories []string) *Dictionary {
	d := New()
	for text, e := range entries {
		if text = strings.TrimSpace(text); text != "" {
			d.entries[text] = e
		}
	}
	for _, c := range categories {
		if c = strings.TrimSpace(c); c != "" {
			d.declared[c] = struct{}{}
		}
	}
	return d
}

// Data returns copies of the entries and declared categories for
// persistence.
func (d *Dictionary) Data() (map[string]Entry, []string) {
	entries := make(map[string]Entry, len(d.entries))
	for k, v := range d.entries {
		entries[k] = v
	}
	cats := make([]string, 0, len(d.declared))
	for c := range d.declared {
		cats = append(cats, c)
	}
	sort.Strings(cats)
	return entries, cats
}

// Len is the number of entries.
func (d *Dictionary) Len() int {
	return len(d.entries)
}

// Get looks up text.
func (d *Dictionary) Get(text string) (Entry, bool) {
	e, ok := d.entries[text]
	return e, ok
}

// Register creates an empty entry for text if there is none.
func (d *Dictionary) Register(text string) bool {
	if text == "" {
		return false
	}
	if _, ok := d.entries[text]; ok {
		return false
	}
	d.entries[text] = Entry{}
	return true
}

// SetDescription upserts the description of text.
func (d *Dictionary) SetDescription(text, value string) error {
	if text == "" {
		return errs.ErrTagRequired
	}
	e := d.entries[text]
	e.Description = value
	d.entries[text] = e
	return nil
}

// SetCategory upserts the category of text.
func (d *Dictionary) SetCategory(text, value string) error {
	if text == "" {
		return errs.ErrTagRequired
	}
	e := d.entries[text]
	e.Category = strings.TrimSpace(value)
	d.entries[text] = e
	return nil
}

// BulkSetCategory sets category on every text, creating entries as needed.
func (d *Dictionary) BulkSetCategory(texts []string, category string) error {
	if len(texts) == 0 {
		return errs.ErrEmptySelection
	}
	for _, text := range texts {
		if text == "" {
			return errs.ErrTagRequired
		}
	}
	for _, text := range texts {
		_ = d.SetCategory(text, category)
	}
	return nil
}

// Delete removes the entry for text. Removing matching tags from the extra
// section is the caller's job.
func (d *Dictionary) Delete(text string) error {
	if _, ok := d.entries[text]; !ok {
		return errs.Wrapf(errs.ErrTagNotFound, "%q", text)
	}
	delete(d.entries, text)
	return nil
}

// All lists every entry sorted by text.
func (d *Dictionary) All() View {
	return d.Search("")
}

// Search matches query case-insensitively against text, description and
// category. An empty query matches everything.
func (d *Dictionary) Search(query string) View {
	q := strings.ToLower(strings.TrimSpace(query))
	v := View{Query: query, Records: []Record{}}
	for text, e := range d.entries {
		if q == "" ||
			strings.Contains(strings.ToLower(text), q) ||
			strings.Contains(strings.ToLower(e.Description), q) ||
			strings.Contains(strings.ToLower(e.Category), q) {
			v.Records = append(v.Records, Record{Text: text, Entry: e})
		}
	}
	sort.Slice(v.Records, func(i, j int) bool {
		return v.Records[i].Text < v.Records[j].Text
	})
	return v
}

// Lookup builds a view of the given texts in order, skipping unknown ones.
func (d *Dictionary) Lookup(texts []string) View {
	v := View{Records: []Record{}}
	for _, text := range texts {
		if e, ok := d.entries[text]; ok {
			v.Records = append(v.Records, Record{Text: text, Entry: e})
		}
	}
	return v
}
