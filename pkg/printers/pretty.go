package printers

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/prompter/pkg/app"
	"tableflip.dev/prompter/pkg/collection/viewmodel"
	"tableflip.dev/prompter/pkg/dictionary"
	"tableflip.dev/prompter/pkg/section"
)

type PrettyPrint struct {
	// Out defaults to color.Output.
	Out io.Writer
	// Wrap is the width of the prompt line; 0 disables wrapping.
	Wrap int
	// Indices shows the tag index column.
	Indices bool
}

var (
	bold  = color.New(color.Bold)
	faint = color.New(color.Faint)
	none  = color.New(color.Faint, color.Italic)
)

var classColors = map[viewmodel.Class]*color.Color{
	viewmodel.ClassPositive: color.New(color.FgHiYellow),
	viewmodel.ClassNegative: color.New(color.FgHiBlue),
	viewmodel.ClassColon:    color.New(color.FgMagenta),
	viewmodel.ClassNeutral:  color.New(),
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = faint.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = faint.Fprintln(pp.out(), " tag")
	default:
		_, _ = faint.Fprintln(pp.out(), " tags")
	}
}

// Section prints the rows of one section followed by its prompt line.
func (pp *PrettyPrint) Section(s viewmodel.Section) {
	pp.TitleWithCount(s.Title+" ("+s.ID+")", len(s.Rows))
	if len(s.Rows) == 0 {
		_, _ = none.Fprint(pp.out(), " none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, r := range s.Rows {
		c := classColors[r.Classes[0]]
		if pp.Indices {
			tbl.AddRow(faint.Sprint(strconv.Itoa(r.Index)), c.Sprint(r.Rendered), faint.Sprint(r.Weight))
		} else {
			tbl.AddRow(c.Sprint(r.Rendered), faint.Sprint(r.Weight))
		}
	}
	if pp.Indices {
		tbl.RightAlign(0)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
	pp.Prompt(s.Output)
	pp.NewLine()
}

// Prompt prints a prompt line, word wrapped when Wrap is set.
func (pp *PrettyPrint) Prompt(line string) {
	if pp.Wrap > 0 {
		line = wordwrap.String(line, pp.Wrap)
	}
	_, _ = fmt.Fprintln(pp.out(), line)
}

// Routed summarises where bulk input went.
func (pp *PrettyPrint) Routed(res section.Result) {
	if len(res.Placed) == 0 {
		_, _ = none.Fprintln(pp.out(), "nothing to add")
		return
	}
	counts := map[section.ID]int{}
	var order []section.ID
	for _, p := range res.Placed {
		if counts[p.Section] == 0 {
			order = append(order, p.Section)
		}
		counts[p.Section]++
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, id := range order {
		tbl.AddRow(bold.Sprint(id.Title()), strconv.Itoa(counts[id]))
	}
	tbl.RightAlign(1)
	_, _ = fmt.Fprintln(pp.out(), tbl)
	if len(res.Registered) > 0 {
		_, _ = faint.Fprintf(pp.out(), "registered: %s\n", strings.Join(res.Registered, ", "))
	}
}

// Dictionary prints a dictionary view as a table.
func (pp *PrettyPrint) Dictionary(v dictionary.View) {
	if len(v.Records) == 0 {
		_, _ = none.Fprintln(pp.out(), " no entries")
		return
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	tbl.Wrap = true
	tbl.AddRow(bold.Sprint("Tag"), bold.Sprint("Description"), bold.Sprint("Category"))
	for _, r := range v.Records {
		tbl.AddRow(r.Text, r.Description, faint.Sprint(r.Category))
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Categories prints category usage.
func (pp *PrettyPrint) Categories(cats []app.Category) {
	if len(cats) == 0 {
		_, _ = none.Fprintln(pp.out(), " no categories")
		return
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Category"), bold.Sprint("Entries"))
	for _, c := range cats {
		n := strconv.Itoa(c.Entries)
		if c.Entries == 0 {
			n = color.New(color.FgRed).Sprint("unused")
		}
		tbl.AddRow(c.Name, n)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Templates lists template names.
func (pp *PrettyPrint) Templates(names []string) {
	pp.TitleWithCount("Templates", len(names))
	if len(names) == 0 {
		_, _ = none.Fprint(pp.out(), " none\n")
		return
	}
	for _, n := range names {
		_, _ = fmt.Fprintln(pp.out(), n)
	}
}
