package section

import (
	"strings"

	"tableflip.dev/prompter/pkg/errs"
	"tableflip.dev/prompter/pkg/notation"
)

const (
	negativePrefix = "!"
	extraPrefix    = "#"
)

// Registrar receives the bare text of every tag routed to the extra section.
// Register reports whether the text was new.
type Registrar interface {
	Register(text string) bool
}

// Placement records where one token ended up.
type Placement struct {
	Section ID     `json:"section"`
	Raw     string `json:"raw"`
}

// Result summarises a Route call.
type Result struct {
	Placed     []Placement `json:"placed"`
	Registered []string    `json:"registered,omitempty"`
}

// Count returns how many tokens landed in id.
func (r Result) Count(id ID) int {
	n := 0
	for _, p := range r.Placed {
		if p.Section == id {
			n++
		}
	}
	return n
}

// Route splits comma separated input into tags and appends them. A token
// prefixed with ! goes to the negative section, # goes to extra, anything
// else to dest. Tags landing in extra are registered with reg. Nothing is
// changed when dest does not exist or the input cannot be tokenised.
func (r *Registry) Route(input string, dest ID, reg Registrar) (Result, error) {
	if _, err := r.Get(dest); err != nil {
		return Result{}, err
	}

	var placed []Placement
	for _, token := range SplitTopLevel(input) {
		token = strings.TrimSpace(token)
		target := dest
		switch {
		case strings.HasPrefix(token, negativePrefix):
			target, token = Negative, strings.TrimSpace(strings.TrimPrefix(token, negativePrefix))
		case strings.HasPrefix(token, extraPrefix):
			target, token = Extra, strings.TrimSpace(strings.TrimPrefix(token, extraPrefix))
		}
		if token == "" {
			continue
		}
		members, err := Explode(token)
		if err != nil {
			return Result{}, err
		}
		for _, m := range members {
			placed = append(placed, Placement{Section: target, Raw: notation.Normalize(m)})
		}
	}

	res := Result{Placed: placed}
	for _, p := range placed {
		tags, _ := r.Get(p.Section)
		tags.Append(p.Raw)
		if p.Section == Extra && reg != nil {
			text := notation.Parse(p.Raw).Text
			if reg.Register(text) {
				res.Registered = append(res.Registered, text)
			}
		}
	}
	return res, nil
}

const groupChars = "{}[]()"

var pairs = map[byte]byte{'{': '}', '[': ']', '(': ')'}

func isOpen(c byte) bool {
	_, ok := pairs[c]
	return ok
}

func isClose(c byte) bool {
	return c == '}' || c == ']' || c == ')'
}

// SplitTopLevel splits s on commas that are not inside a closed {}, [] or ()
// group. Openers that never close and stray closers are plain text.
func SplitTopLevel(s string) []string {
	closeOf := matchGroups(s)
	var parts []string
	start, end := 0, -1
	for i := 0; i < len(s); i++ {
		if j, ok := closeOf[i]; ok && j > end {
			end = j
		}
		if s[i] == ',' && i > end {
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	return append(parts, s[start:])
}

// matchGroups maps the index of every opener to the index of the closer of
// the same kind that ends its group. Openers left unclosed when an outer
// group closes are dropped.
func matchGroups(s string) map[int]int {
	closeOf := map[int]int{}
	var open []int
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case isOpen(c):
			open = append(open, i)
		case isClose(c):
			for k := len(open) - 1; k >= 0; k-- {
				if pairs[s[open[k]]] == c {
					closeOf[open[k]] = i
					open = open[:k]
					break
				}
			}
		}
	}
	return closeOf
}

// Explode expands a wrapped group with internal commas into one token per
// member, re-applying the wrapper to each. A paren group whose last member
// ends in :W applies W to every member. The literal (text:W) form is never
// exploded. Members that carry their own groups are not supported.
func Explode(token string) ([]string, error) {
	if notation.Parse(token).Notation == notation.StableParen && !strings.Contains(token, ",") {
		return []string{token}, nil
	}
	open, depth, inner := unwrap(token)
	if depth == 0 {
		return []string{token}, nil
	}
	parts := SplitTopLevel(inner)
	if len(parts) < 2 {
		return []string{token}, nil
	}

	var members []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if strings.ContainsAny(p, groupChars) {
			return nil, errs.WithHint(
				errs.Wrapf(errs.ErrUnsupportedGroup, "%q", token),
				"split the group into separate comma separated tags")
		}
		members = append(members, p)
	}
	if len(members) == 0 {
		return nil, nil
	}

	if open == '(' {
		last := members[len(members)-1]
		if text, w, ok := weightSuffix(last); ok {
			members[len(members)-1] = text
			out := make([]string, len(members))
			for j, m := range members {
				out[j] = "(" + m + ":" + w + ")"
			}
			return out, nil
		}
	}

	close := string(pairs[open])
	out := make([]string, len(members))
	for j, m := range members {
		out[j] = strings.Repeat(string(open), depth) + m + strings.Repeat(close, depth)
	}
	return out, nil
}

// unwrap peels matching outer pairs of the same kind off token while each
// pair encloses the whole remainder.
func unwrap(token string) (open byte, depth int, inner string) {
	inner = token
	for len(inner) >= 2 && isOpen(inner[0]) && (depth == 0 || inner[0] == open) {
		if inner[len(inner)-1] != pairs[inner[0]] || !encloses(inner) {
			break
		}
		open = inner[0]
		depth++
		inner = inner[1 : len(inner)-1]
	}
	return open, depth, inner
}

// encloses reports whether the first byte of s opens a group that closes at
// the last byte.
func encloses(s string) bool {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch {
		case isOpen(s[i]):
			depth++
		case isClose(s[i]):
			depth--
			if depth == 0 && i != len(s)-1 {
				return false
			}
		}
	}
	return depth == 0
}

// weightSuffix splits "text:W" when W is a valid stable paren weight.
func weightSuffix(member string) (text, w string, ok bool) {
	i := strings.LastIndexByte(member, ':')
	if i <= 0 {
		return "", "", false
	}
	text, w = strings.TrimSpace(member[:i]), member[i+1:]
	if text == "" || notation.Parse("(x:"+w+")").Notation != notation.StableParen {
		return "", "", false
	}
	return text, w, true
}
