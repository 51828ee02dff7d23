package dictionary

import (
	"sort"
	"strings"

	"tableflip.dev/prompter/pkg/errs"
)

// Categories lists every known category, sorted.
func (d *Dictionary) Categories() []string {
	set := d.usage()
	out := make([]string, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Usage returns how many entries reference each known category.
func (d *Dictionary) Usage() map[string]int {
	return d.usage()
}

// UnusedCategories lists declared categories no entry references.
func (d *Dictionary) UnusedCategories() []string {
	var out []string
	for c, n := range d.usage() {
		if n == 0 {
			out = append(out, c)
		}
	}
	sort.Strings(out)
	return out
}

// CreateCategory declares a new category. It is rejected while any existing
// category is unused.
func (d *Dictionary) CreateCategory(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.ErrCategoryRequired
	}
	usage := d.usage()
	if _, ok := usage[name]; ok {
		return errs.Wrapf(errs.ErrCategoryExists, "%q", name)
	}
	if unused := d.UnusedCategories(); len(unused) > 0 {
		return errs.WithHint(
			errs.Wrapf(errs.ErrCategoryUnused, "%s", strings.Join(unused, ", ")),
			"assign or delete unused categories first")
	}
	d.declared[name] = struct{}{}
	return nil
}

// DeleteCategory uncategorises every entry in name and forgets it. Entries
// are never removed. It returns the number of entries changed.
func (d *Dictionary) DeleteCategory(name string) (int, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, errs.ErrCategoryRequired
	}
	if _, ok := d.usage()[name]; !ok {
		return 0, errs.Wrapf(errs.ErrCategoryNotFound, "%q", name)
	}
	n := 0
	for text, e := range d.entries {
		if e.Category == name {
			e.Category = ""
			d.entries[text] = e
			n++
		}
	}
	delete(d.declared, name)
	return n, nil
}

func (d *Dictionary) usage() map[string]int {
	out := make(map[string]int, len(d.declared))
	for c := range d.declared {
		out[c] = 0
	}
	for _, e := range d.entries {
		if e.Category != "" {
			out[e.Category]++
		}
	}
	return out
}
