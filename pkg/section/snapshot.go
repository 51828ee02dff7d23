package section

import (
	"encoding/json"

	"tableflip.dev/prompter/pkg/collection"
	"tableflip.dev/prompter/pkg/errs"
)

// Snapshot is a deep copy of every section.
type Snapshot struct {
	Base       []string   `json:"base" yaml:"base"`
	Negative   []string   `json:"negative" yaml:"negative"`
	Extra      []string   `json:"extra" yaml:"extra"`
	Characters [][]string `json:"characters" yaml:"characters"`
}

// Clone deep-copies s.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Base:       cloneList(s.Base),
		Negative:   cloneList(s.Negative),
		Extra:      cloneList(s.Extra),
		Characters: make([][]string, len(s.Characters)),
	}
	for i, c := range s.Characters {
		out.Characters[i] = cloneList(c)
	}
	return out
}

type snapshotJSON struct {
	Base       json.RawMessage   `json:"base"`
	Negative   json.RawMessage   `json:"negative"`
	Extra      json.RawMessage   `json:"extra"`
	Characters []json.RawMessage `json:"characters"`
}

// UnmarshalJSON accepts every section either as an array or as a single
// comma-joined string.
func (s *Snapshot) UnmarshalJSON(data []byte) error {
	var raw snapshotJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := Snapshot{}
	var err error
	if out.Base, err = collection.UnmarshalList(raw.Base); err != nil {
		return err
	}
	if out.Negative, err = collection.UnmarshalList(raw.Negative); err != nil {
		return err
	}
	if out.Extra, err = collection.UnmarshalList(raw.Extra); err != nil {
		return err
	}
	if raw.Characters != nil {
		out.Characters = make([][]string, 0, len(raw.Characters))
	}
	for _, c := range raw.Characters {
		list, err := collection.UnmarshalList(c)
		if err != nil {
			return err
		}
		if list == nil {
			list = []string{}
		}
		out.Characters = append(out.Characters, list)
	}
	*s = out
	return nil
}

// Snapshot captures the registry.
func (r *Registry) Snapshot() Snapshot {
	s := Snapshot{
		Base:       r.Base.Items(),
		Negative:   r.Negative.Items(),
		Extra:      r.Extra.Items(),
		Characters: make([][]string, len(r.Characters)),
	}
	for i, c := range r.Characters {
		s.Characters[i] = c.Items()
	}
	return s
}

// Restore replaces every section with a copy of s, resizing the character
// list to match. An empty character list restores a single empty section.
func (r *Registry) Restore(s Snapshot) error {
	if len(s.Characters) > MaxCharacters {
		return errs.Wrapf(errs.ErrCharacterLimit, "snapshot has %d character sections", len(s.Characters))
	}
	chars := make([]*collection.Tags, 0, len(s.Characters))
	for _, c := range s.Characters {
		chars = append(chars, collection.New(c...))
	}
	if len(chars) == 0 {
		chars = append(chars, collection.New())
	}
	r.Base = collection.New(s.Base...)
	r.Negative = collection.New(s.Negative...)
	r.Extra = collection.New(s.Extra...)
	r.Characters = chars
	return nil
}

func cloneList(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
