package notation

import (
	"fmt"
	"strings"

	"tableflip.dev/prompter/pkg/weight"
)

// Style selects the notation used when rendering a section for output.
type Style string

const (
	// StyleKeep renders every tag as stored.
	StyleKeep Style = "keep"
	// StyleBracket renders {..}/[..], falling back to colon for weights
	// without an exact level.
	StyleBracket Style = "bracket"
	// StyleColon renders W::text::.
	StyleColon Style = "colon"
	// StyleParen renders (text:W).
	StyleParen Style = "paren"
)

// AllStyles lists the supported output styles.
func AllStyles() []Style {
	return []Style{StyleKeep, StyleBracket, StyleColon, StyleParen}
}

// ParseStyle converts a flag value to a Style.
func ParseStyle(raw string) (Style, error) {
	s := Style(strings.ToLower(strings.TrimSpace(raw)))
	if s == "" {
		return StyleKeep, nil
	}
	for _, candidate := range AllStyles() {
		if candidate == s {
			return candidate, nil
		}
	}
	return StyleKeep, fmt.Errorf("notation: unknown style %q", raw)
}

// Render re-derives raw in the requested style.
func Render(raw string, style Style) string {
	if style == StyleKeep || style == "" {
		return raw
	}
	t := Parse(raw)
	if t.Neutral() {
		return t.Text
	}
	switch style {
	case StyleBracket:
		return bracketOrColon(t)
	case StyleColon:
		return ColonWeight(t.Text, t.Weight)
	case StyleParen:
		return ToStableParen(t.Text, t.Weight)
	default:
		return raw
	}
}

func bracketOrColon(t Tag) string {
	if t.Notation == Bracket {
		return ToBracket(t.Text, t.PositiveLevel, t.NegativeLevel)
	}
	sign := weight.Positive
	if weight.Cents(t.Weight) < 100 {
		sign = weight.Negative
	}
	if lvl, ok := weight.LevelFor(t.Weight, sign); ok {
		if sign == weight.Negative {
			return ToBracket(t.Text, 0, lvl)
		}
		return ToBracket(t.Text, lvl, 0)
	}
	return ColonWeight(t.Text, t.Weight)
}
