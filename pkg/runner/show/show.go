// Package show prints the live sections.
package show

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/prompter/pkg/app"
	"tableflip.dev/prompter/pkg/collection/viewmodel"
	"tableflip.dev/prompter/pkg/errs"
	"tableflip.dev/prompter/pkg/notation"
	"tableflip.dev/prompter/pkg/printers"
	"tableflip.dev/prompter/pkg/section"
)

// Show renders one section, or every section when Section is empty.
type Show struct {
	Service *app.Service
	Section section.ID
	Style   notation.Style
	// OutputOnly prints just the prompt line.
	OutputOnly bool
	JSON       bool
	Wrap       int
	Out        io.Writer
}

func (s *Show) Do(ctx context.Context) error {
	if s.Service == nil {
		return errs.New("show: no service configured")
	}
	out := s.Out
	if out == nil {
		out = color.Output
	}

	var views []viewmodel.Section
	if s.Section != "" {
		v, err := s.Service.Section(ctx, s.Section, s.Style)
		if err != nil {
			return err
		}
		views = []viewmodel.Section{v}
	} else {
		views = s.Service.Sections(ctx, s.Style)
	}

	if s.JSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if s.Section != "" {
			return enc.Encode(views[0])
		}
		return enc.Encode(views)
	}

	pp := printers.PrettyPrint{Out: out, Wrap: s.Wrap, Indices: true}
	if s.OutputOnly {
		for _, v := range views {
			pp.Prompt(v.Output)
		}
		return nil
	}
	_, _ = fmt.Fprintln(out, "")
	for _, v := range views {
		pp.Section(v)
	}
	return nil
}
