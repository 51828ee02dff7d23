// Package section owns the set of prompt sections and routes bulk tag input
// into them.
package section

import (
	"fmt"
	"strconv"
	"strings"

	"tableflip.dev/prompter/pkg/errs"
)

// ID addresses a section. Character IDs are positional and change whenever
// the character list is resized.
type ID string

const (
	// Base is the main prompt.
	Base ID = "base"
	// Negative is the negative prompt.
	Negative ID = "negative"
	// Extra is the scratch area that feeds the dictionary.
	Extra ID = "extra"

	characterPrefix = "character-"
)

// MaxCharacters caps the number of character sections.
const MaxCharacters = 6

// Character returns the ID of the character section at index.
func Character(index int) ID {
	return ID(characterPrefix + strconv.Itoa(index))
}

// ParseID validates the syntax of raw. Whether a character index exists is
// checked by the Registry.
func ParseID(raw string) (ID, error) {
	id := ID(strings.ToLower(strings.TrimSpace(raw)))
	switch id {
	case Base, Negative, Extra:
		return id, nil
	}
	if _, ok := id.CharacterIndex(); ok {
		return id, nil
	}
	return "", errs.WithHint(
		errs.Wrapf(errs.ErrNoSuchSection, "%q", raw),
		"use base, negative, extra or character-<n>")
}

// CharacterIndex returns the index of a character ID.
func (id ID) CharacterIndex() (int, bool) {
	s := string(id)
	if !strings.HasPrefix(s, characterPrefix) {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimPrefix(s, characterPrefix))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// Title is the human label of the section.
func (id ID) Title() string {
	switch id {
	case Base:
		return "Base prompt"
	case Negative:
		return "Negative prompt"
	case Extra:
		return "Extra"
	}
	if n, ok := id.CharacterIndex(); ok {
		return fmt.Sprintf("Character prompt %d", n+1)
	}
	return string(id)
}

func (id ID) String() string {
	return string(id)
}
