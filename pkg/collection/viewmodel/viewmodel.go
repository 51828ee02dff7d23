// Package viewmodel derives display rows from a tag collection so UI layers
// and printers can show weights and emphasis without re-parsing raw strings
// all over the codebase.
package viewmodel

import (
	"tableflip.dev/prompter/pkg/collection"
	"tableflip.dev/prompter/pkg/notation"
	"tableflip.dev/prompter/pkg/weight"
)

// Class is the emphasis class of a row, used for colouring.
type Class string

const (
	ClassNeutral  Class = "neutral"
	ClassPositive Class = "positive"
	ClassNegative Class = "negative"
	ClassColon    Class = "colon"
)

// Row describes one collection entry.
type Row struct {
	Index    int     `json:"index"`
	Raw      string  `json:"raw"`
	Text     string  `json:"text"`
	Weight   string  `json:"weight"`
	Notation string  `json:"notation"`
	Positive int     `json:"positive,omitempty"`
	Negative int     `json:"negative,omitempty"`
	Classes  []Class `json:"classes"`
	Rendered string  `json:"rendered"`
}

// Section is a named list of rows plus the joined output line.
type Section struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Rows   []Row  `json:"tags"`
	Output string `json:"output"`
}

// Build turns every entry of tags into a Row rendered in style.
func Build(tags *collection.Tags, style notation.Style) []Row {
	items := tags.Items()
	rows := make([]Row, 0, len(items))
	for i, raw := range items {
		rows = append(rows, BuildRow(i, raw, style))
	}
	return rows
}

// BuildRow derives a single Row.
func BuildRow(index int, raw string, style notation.Style) Row {
	t := notation.Parse(raw)
	return Row{
		Index:    index,
		Raw:      raw,
		Text:     t.Text,
		Weight:   weight.Format(t.Weight),
		Notation: t.Notation.String(),
		Positive: t.PositiveLevel,
		Negative: t.NegativeLevel,
		Classes:  classes(t),
		Rendered: notation.Render(raw, style),
	}
}

func classes(t notation.Tag) []Class {
	var out []Class
	if t.Notation == notation.Colon {
		out = append(out, ClassColon)
	}
	if t.PositiveLevel > 0 {
		out = append(out, ClassPositive)
	}
	if t.NegativeLevel > 0 {
		out = append(out, ClassNegative)
	}
	if len(out) == 0 {
		out = append(out, ClassNeutral)
	}
	return out
}

// Has reports whether the row carries class c.
func (r Row) Has(c Class) bool {
	for _, have := range r.Classes {
		if have == c {
			return true
		}
	}
	return false
}
