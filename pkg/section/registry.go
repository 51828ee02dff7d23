package section

import (
	"strings"

	"tableflip.dev/prompter/pkg/collection"
	"tableflip.dev/prompter/pkg/errs"
	"tableflip.dev/prompter/pkg/notation"
)

// Registry is the live set of sections: base, negative and extra are fixed,
// characters hold 1..MaxCharacters collections.
type Registry struct {
	Base       *collection.Tags
	Negative   *collection.Tags
	Extra      *collection.Tags
	Characters []*collection.Tags
}

// New returns empty sections with a single character section.
func New() *Registry {
	return &Registry{
		Base:       collection.New(),
		Negative:   collection.New(),
		Extra:      collection.New(),
		Characters: []*collection.Tags{collection.New()},
	}
}

// IDs lists every section in display order.
func (r *Registry) IDs() []ID {
	ids := []ID{Base}
	for i := range r.Characters {
		ids = append(ids, Character(i))
	}
	return append(ids, Negative, Extra)
}

// Targets lists the destinations bulk input can be routed to. It is
// recomputed from the current character count on every call.
func (r *Registry) Targets() []ID {
	return r.IDs()
}

// Get resolves id to its collection.
func (r *Registry) Get(id ID) (*collection.Tags, error) {
	switch id {
	case Base:
		return r.Base, nil
	case Negative:
		return r.Negative, nil
	case Extra:
		return r.Extra, nil
	}
	n, ok := id.CharacterIndex()
	if !ok || n >= len(r.Characters) {
		return nil, errs.WithHint(
			errs.Wrapf(errs.ErrNoSuchSection, "%q", string(id)),
			"valid sections: "+joinIDs(r.IDs()))
	}
	return r.Characters[n], nil
}

// AddCharacter appends an empty character section.
func (r *Registry) AddCharacter() (ID, error) {
	if len(r.Characters) >= MaxCharacters {
		return "", errs.Wrapf(errs.ErrCharacterLimit, "maximum is %d", MaxCharacters)
	}
	r.Characters = append(r.Characters, collection.New())
	return Character(len(r.Characters) - 1), nil
}

// RemoveCharacter discards the character section at index. Later sections
// shift down and their IDs change.
func (r *Registry) RemoveCharacter(index int) error {
	if index < 0 || index >= len(r.Characters) {
		return errs.Wrapf(errs.ErrNoSuchSection, "%q", string(Character(index)))
	}
	if len(r.Characters) == 1 {
		return errs.ErrLastCharacter
	}
	r.Characters = append(r.Characters[:index], r.Characters[index+1:]...)
	return nil
}

// Clear empties one section.
func (r *Registry) Clear(id ID) error {
	tags, err := r.Get(id)
	if err != nil {
		return err
	}
	tags.Clear()
	return nil
}

// Output joins the raw entries of a section as a prompt line.
func (r *Registry) Output(id ID) (string, error) {
	return r.Render(id, notation.StyleKeep)
}

// Render joins a section after re-deriving every entry in style.
func (r *Registry) Render(id ID, style notation.Style) (string, error) {
	tags, err := r.Get(id)
	if err != nil {
		return "", err
	}
	items := tags.Items()
	for i, raw := range items {
		items[i] = notation.Render(raw, style)
	}
	return strings.Join(items, ", "), nil
}

// Promote copies selected extra entries into dest.
func (r *Registry) Promote(raws []string, dest ID) error {
	if len(raws) == 0 {
		return errs.ErrEmptySelection
	}
	tags, err := r.Get(dest)
	if err != nil {
		return err
	}
	tags.Append(raws...)
	return nil
}

// DiscardExtras removes every extra entry equal to one of raws.
func (r *Registry) DiscardExtras(raws []string) (int, error) {
	if len(raws) == 0 {
		return 0, errs.ErrEmptySelection
	}
	drop := make(map[string]struct{}, len(raws))
	for _, raw := range raws {
		drop[raw] = struct{}{}
	}
	return r.Extra.RemoveFunc(func(raw string, _ notation.Tag) bool {
		_, ok := drop[raw]
		return ok
	}), nil
}

func joinIDs(ids []ID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = string(id)
	}
	return strings.Join(parts, ", ")
}
