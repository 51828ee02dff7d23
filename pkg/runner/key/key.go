// Package key provides CLI helpers to display the emphasis weight legend.
package key

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/prompter/pkg/notation"
	"tableflip.dev/prompter/pkg/weight"
)

// Key prints the bracket level to weight tables.
type Key struct {
	// Out defaults to color.Output.
	Out io.Writer
	// Sample is the tag text used in the example columns.
	Sample string
}

// Do renders the legend.
func (k *Key) Do(ctx context.Context) error {
	out := k.Out
	if out == nil {
		out = color.Output
	}
	sample := k.Sample
	if sample == "" {
		sample = "tag"
	}
	bold := color.New(color.Bold)
	pos := color.New(color.FgHiYellow)
	neg := color.New(color.FgHiBlue)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Level"), bold.Sprint("{ }"), bold.Sprint("Example"), bold.Sprint("[ ]"), bold.Sprint("Example"))
	for level := 1; level <= weight.MaxLevel; level++ {
		tbl.AddRow(
			strconv.Itoa(level),
			pos.Sprint(weight.Format(weight.At(level, weight.Positive))),
			notation.ToBracket(sample, level, 0),
			neg.Sprint(weight.Format(weight.At(level, weight.Negative))),
			notation.ToBracket(sample, 0, level),
		)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(out, "")
	_, _ = fmt.Fprintln(out, tbl)
	_, _ = fmt.Fprintln(out, "")
	return nil
}
