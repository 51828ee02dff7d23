// Package collection holds the ordered tag list behind one prompt section.
package collection

import (
	"tableflip.dev/prompter/pkg/errs"
	"tableflip.dev/prompter/pkg/notation"
	"tableflip.dev/prompter/pkg/weight"
)

// Tags is an ordered list of raw tag strings. Order is output order and
// duplicates are allowed. Entries are re-parsed whenever their weight or
// text is needed.
type Tags struct {
	items []string
}

// New returns a collection holding a copy of raw.
func New(raw ...string) *Tags {
	t := &Tags{}
	t.items = append(t.items, raw...)
	return t
}

// Len is the number of entries.
func (t *Tags) Len() int {
	return len(t.items)
}

// Items returns a copy of the raw entries.
func (t *Tags) Items() []string {
	out := make([]string, len(t.items))
	copy(out, t.items)
	return out
}

// At returns the raw entry at index.
func (t *Tags) At(index int) (string, error) {
	if err := t.check(index); err != nil {
		return "", err
	}
	return t.items[index], nil
}

// Parsed returns the canonical reading of the entry at index.
func (t *Tags) Parsed(index int) (notation.Tag, error) {
	raw, err := t.At(index)
	if err != nil {
		return notation.Tag{}, err
	}
	return notation.Parse(raw), nil
}

// Contains reports whether raw is stored verbatim.
func (t *Tags) Contains(raw string) bool {
	for _, item := range t.items {
		if item == raw {
			return true
		}
	}
	return false
}

// Append pushes raw to the end without validating it.
func (t *Tags) Append(raw ...string) {
	t.items = append(t.items, raw...)
}

// ReplaceTextAt swaps the text of the entry at index, keeping its notation
// and emphasis.
func (t *Tags) ReplaceTextAt(index int, text string) error {
	tag, err := t.Parsed(index)
	if err != nil {
		return err
	}
	tag.Text = text
	t.items[index] = notation.Encode(tag)
	return nil
}

// IncrementEmphasis steps the entry one bracket level up: a negative level
// moves toward neutral, otherwise the positive level grows. Levels are not
// capped here; the weight saturates at lookup.
func (t *Tags) IncrementEmphasis(index int) error {
	tag, err := t.Parsed(index)
	if err != nil {
		return err
	}
	if tag.NegativeLevel > 0 {
		tag.NegativeLevel--
	} else {
		tag.PositiveLevel++
	}
	t.items[index] = notation.ToBracket(tag.Text, tag.PositiveLevel, tag.NegativeLevel)
	return nil
}

// DecrementEmphasis is the mirror of IncrementEmphasis.
func (t *Tags) DecrementEmphasis(index int) error {
	tag, err := t.Parsed(index)
	if err != nil {
		return err
	}
	if tag.PositiveLevel > 0 {
		tag.PositiveLevel--
	} else {
		tag.NegativeLevel++
	}
	t.items[index] = notation.ToBracket(tag.Text, tag.PositiveLevel, tag.NegativeLevel)
	return nil
}

// SetWeightDirect stores an explicit weight. 1.00 stores bare text. A value
// sitting exactly on a table level of the entry's current sign is stored as
// brackets at that level, anything else as W::text::. Entries without a
// sign take it from the direction of value.
func (t *Tags) SetWeightDirect(index int, value float64) error {
	tag, err := t.Parsed(index)
	if err != nil {
		return err
	}
	if !weight.InRange(value) {
		return errs.Wrapf(errs.ErrInvalidWeight, "%v", value)
	}
	if weight.IsNeutral(value) {
		t.items[index] = tag.Text
		return nil
	}
	sign, ok := tag.Sign()
	if !ok && weight.Cents(value) < 100 {
		sign = weight.Negative
	}
	if lvl, exact := weight.LevelFor(value, sign); exact {
		if sign == weight.Negative {
			t.items[index] = notation.ToBracket(tag.Text, 0, lvl)
		} else {
			t.items[index] = notation.ToBracket(tag.Text, lvl, 0)
		}
		return nil
	}
	t.items[index] = notation.ColonWeight(tag.Text, value)
	return nil
}

// RemoveAt deletes the entry at index; later entries shift down.
func (t *Tags) RemoveAt(index int) error {
	if err := t.check(index); err != nil {
		return err
	}
	t.items = append(t.items[:index], t.items[index+1:]...)
	return nil
}

// MoveTo removes the entry at from and reinserts it at to.
func (t *Tags) MoveTo(from, to int) error {
	if err := t.check(from); err != nil {
		return err
	}
	if err := t.check(to); err != nil {
		return err
	}
	if from == to {
		return nil
	}
	moved := t.items[from]
	t.items = append(t.items[:from], t.items[from+1:]...)
	t.items = append(t.items[:to], append([]string{moved}, t.items[to:]...)...)
	return nil
}

// RemoveFunc deletes every entry for which drop returns true and reports how
// many were removed.
func (t *Tags) RemoveFunc(drop func(raw string, tag notation.Tag) bool) int {
	kept := t.items[:0]
	removed := 0
	for _, raw := range t.items {
		if drop(raw, notation.Parse(raw)) {
			removed++
			continue
		}
		kept = append(kept, raw)
	}
	for i := len(kept); i < len(t.items); i++ {
		t.items[i] = ""
	}
	t.items = kept
	return removed
}

// Replace swaps the whole contents for a copy of raw.
func (t *Tags) Replace(raw []string) {
	t.items = append([]string(nil), raw...)
}

// Clear removes every entry.
func (t *Tags) Clear() {
	t.items = nil
}

func (t *Tags) check(index int) error {
	if index < 0 || index >= len(t.items) {
		return errs.Wrapf(errs.ErrIndexOutOfRange, "index %d of %d", index, len(t.items))
	}
	return nil
}
