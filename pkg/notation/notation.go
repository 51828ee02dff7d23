// Package notation converts tag strings between the emphasis notations used
// in image prompts.
//
// Four surface forms are recognised:
//
//	{{tag}}        bracket, positive level 2
//	[[[tag]]]      bracket, negative level 3
//	1.30::tag::    colon, explicit weight
//	(tag:1.30)     stable paren, explicit weight
//
// Anything else is a plain tag with weight 1.00. Parsing never fails.
package notation

import (
	"fmt"
	"strings"

	"tableflip.dev/prompter/pkg/weight"
)

// Notation identifies the surface syntax of a tag.
type Notation int

const (
	// Plain is bare text, weight 1.00.
	Plain Notation = iota
	// Bracket is {..} or [..] nesting.
	Bracket
	// Colon is W::text::.
	Colon
	// StableParen is (text:W).
	StableParen
)

func (n Notation) String() string {
	switch n {
	case Bracket:
		return "bracket"
	case Colon:
		return "colon"
	case StableParen:
		return "paren"
	default:
		return "plain"
	}
}

// Tag is the canonical reading of a raw tag string. It is derived on demand
// and never stored.
type Tag struct {
	Text          string   `json:"text"`
	Weight        float64  `json:"weight"`
	Notation      Notation `json:"-"`
	PositiveLevel int      `json:"positive,omitempty"`
	NegativeLevel int      `json:"negative,omitempty"`
}

// Sign reports the bracket direction carried by the tag levels. ok is false
// when both levels are zero.
func (t Tag) Sign() (sign weight.Sign, ok bool) {
	switch {
	case t.PositiveLevel > 0:
		return weight.Positive, true
	case t.NegativeLevel > 0:
		return weight.Negative, true
	default:
		return weight.Positive, false
	}
}

// Neutral reports whether the tag weight is exactly 1.00.
func (t Tag) Neutral() bool {
	return weight.IsNeutral(t.Weight)
}

func (t Tag) String() string {
	return fmt.Sprintf("%s (%s %s)", t.Text, t.Notation, weight.Format(t.Weight))
}

func plain(raw string) Tag {
	return Tag{Text: raw, Weight: weight.Neutral, Notation: Plain}
}

// Parse reads raw using the first matcher that accepts it.
func Parse(raw string) Tag {
	for _, m := range matchers {
		if t, ok := m.Match(raw); ok {
			return t
		}
	}
	return plain(raw)
}

// ToBracket emits {text} nested pos times, else [text] nested neg times,
// else text.
func ToBracket(text string, pos, neg int) string {
	switch {
	case pos > 0:
		return strings.Repeat("{", pos) + text + strings.Repeat("}", pos)
	case neg > 0:
		return strings.Repeat("[", neg) + text + strings.Repeat("]", neg)
	default:
		return text
	}
}

// ToColon emits W::text:: with W looked up from the level tables.
func ToColon(text string, pos, neg int) string {
	return ColonWeight(text, levelWeight(pos, neg))
}

// ColonWeight emits W::text:: for an explicit weight.
func ColonWeight(text string, w float64) string {
	return weight.Format(w) + "::" + text + "::"
}

// ToStableParen emits (text:W), or text when W is 1.00.
func ToStableParen(text string, w float64) string {
	if weight.IsNeutral(w) {
		return text
	}
	return "(" + text + ":" + weight.Format(w) + ")"
}

// Encode re-serialises t in its own notation. A tag whose weight is exactly
// 1.00 always comes out as bare text.
func Encode(t Tag) string {
	if t.Neutral() {
		return t.Text
	}
	switch t.Notation {
	case Bracket:
		return ToBracket(t.Text, t.PositiveLevel, t.NegativeLevel)
	case Colon:
		return ColonWeight(t.Text, t.Weight)
	case StableParen:
		return ToStableParen(t.Text, t.Weight)
	default:
		return t.Text
	}
}

// Normalize is the intake form of raw: stable paren becomes colon, colon
// weights get two fraction digits and neutral weights collapse to bare text.
// Bracket and plain tags are returned unchanged.
func Normalize(raw string) string {
	t := Parse(raw)
	switch t.Notation {
	case Colon, StableParen:
		if t.Neutral() {
			return t.Text
		}
		return ColonWeight(t.Text, t.Weight)
	default:
		return raw
	}
}

func levelWeight(pos, neg int) float64 {
	switch {
	case pos > 0:
		return weight.At(pos, weight.Positive)
	case neg > 0:
		return weight.At(neg, weight.Negative)
	default:
		return weight.Neutral
	}
}

// levelsFor fills bracket levels for an explicit weight when the weight
// sits exactly on a table level.
func levelsFor(w float64) (pos, neg int) {
	switch {
	case weight.Cents(w) > 100:
		if lvl, ok := weight.LevelFor(w, weight.Positive); ok {
			return lvl, 0
		}
	case weight.Cents(w) < 100:
		if lvl, ok := weight.LevelFor(w, weight.Negative); ok {
			return 0, lvl
		}
	}
	return 0, 0
}
