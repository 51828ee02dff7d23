package notation

import (
	"strconv"
	"strings"

	"tableflip.dev/prompter/pkg/weight"
)

// Matcher is one grammar in the parse precedence list.
type Matcher struct {
	Name     string
	Notation Notation
	Match    func(raw string) (Tag, bool)
}

// Evaluated in order; the first match wins.
var matchers = []Matcher{
	{Name: "stable-paren", Notation: StableParen, Match: matchStableParen},
	{Name: "bracket-positive", Notation: Bracket, Match: matchRun('{', '}', weight.Positive)},
	{Name: "bracket-negative", Notation: Bracket, Match: matchRun('[', ']', weight.Negative)},
	{Name: "colon", Notation: Colon, Match: matchColon},
}

// Matchers returns the parse precedence list.
func Matchers() []Matcher {
	out := make([]Matcher, len(matchers))
	copy(out, matchers)
	return out
}

// matchStableParen accepts (text:W). The last colon separates the weight;
// nested parentheses are not disambiguated.
func matchStableParen(raw string) (Tag, bool) {
	if len(raw) < 4 || raw[0] != '(' || raw[len(raw)-1] != ')' {
		return Tag{}, false
	}
	inner := raw[1 : len(raw)-1]
	i := strings.LastIndexByte(inner, ':')
	if i <= 0 {
		return Tag{}, false
	}
	w, ok := parseDecimal(inner[i+1:])
	if !ok {
		return Tag{}, false
	}
	pos, neg := levelsFor(w)
	return Tag{
		Text:          inner[:i],
		Weight:        w,
		Notation:      StableParen,
		PositiveLevel: pos,
		NegativeLevel: neg,
	}, true
}

// matchRun accepts open×n text close×n. Unequal runs are rejected.
func matchRun(open, close byte, sign weight.Sign) func(string) (Tag, bool) {
	return func(raw string) (Tag, bool) {
		lead := 0
		for lead < len(raw) && raw[lead] == open {
			lead++
		}
		if lead == 0 {
			return Tag{}, false
		}
		trail := 0
		for trail < len(raw)-lead && raw[len(raw)-1-trail] == close {
			trail++
		}
		if trail != lead {
			return Tag{}, false
		}
		t := Tag{
			Text:     raw[lead : len(raw)-trail],
			Weight:   weight.At(lead, sign),
			Notation: Bracket,
		}
		if sign == weight.Negative {
			t.NegativeLevel = lead
		} else {
			t.PositiveLevel = lead
		}
		return t, true
	}
}

// matchColon accepts W::text:: with exactly two colons on each side.
func matchColon(raw string) (Tag, bool) {
	n := decimalPrefix(raw)
	if n == 0 {
		return Tag{}, false
	}
	rest := raw[n:]
	if !strings.HasPrefix(rest, "::") || !strings.HasSuffix(rest, "::") || len(rest) < 5 {
		return Tag{}, false
	}
	text := rest[2 : len(rest)-2]
	if strings.HasPrefix(text, ":") || strings.HasSuffix(text, ":") {
		return Tag{}, false
	}
	w, ok := parseDecimal(raw[:n])
	if !ok {
		return Tag{}, false
	}
	pos, neg := levelsFor(w)
	return Tag{
		Text:          text,
		Weight:        w,
		Notation:      Colon,
		PositiveLevel: pos,
		NegativeLevel: neg,
	}, true
}

// decimalPrefix returns the length of the leading \d+(\.\d+)? in s.
func decimalPrefix(s string) int {
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == 0 {
		return 0
	}
	if i < len(s) && s[i] == '.' {
		j := i + 1
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j > i+1 {
			i = j
		}
	}
	return i
}

func parseDecimal(s string) (float64, bool) {
	if s == "" || decimalPrefix(s) != len(s) {
		return 0, false
	}
	w, err := strconv.ParseFloat(s, 64)
	if err != nil || !weight.InRange(w) {
		return 0, false
	}
	return w, true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
