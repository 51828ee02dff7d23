package dictionary

import (
	"bufio"
	"io"
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"

	"tableflip.dev/prompter/pkg/errs"
)

// Column widths of the aligned text format.
const (
	TagWidth         = 20
	DescriptionWidth = 25
	minGap           = 2
)

// Header is the first line of an aligned export. It is ignored on import.
var Header = strings.TrimRight(pad("Tag", TagWidth)+pad("Description", DescriptionWidth)+"Category", " ")

// A tab, a run of two or more spaces, or full-width spaces.
var fieldSep = regexp.MustCompile("\t| {2,}|　+")

// ImportAligned reads aligned text, skipping the header line, and overwrites
// the entry of every tag it finds. It returns the number of entries written.
func (d *Dictionary) ImportAligned(r io.Reader) (int, error) {
	sc := bufio.NewScanner(r)
	n := 0
	header := true
	for sc.Scan() {
		if header {
			header = false
			continue
		}
		tag, desc, cat, ok := parseLine(sc.Text())
		if !ok {
			continue
		}
		d.entries[tag] = Entry{Description: desc, Category: cat}
		n++
	}
	if err := sc.Err(); err != nil {
		return n, errs.Wrap(err, "dictionary: read aligned text")
	}
	return n, nil
}

func parseLine(line string) (tag, desc, cat string, ok bool) {
	line = strings.TrimRight(line, "\r\n")
	fields := fieldSep.Split(line, 3)
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	if len(fields) == 0 || fields[0] == "" {
		return "", "", "", false
	}
	tag = fields[0]
	if len(fields) > 1 {
		desc = fields[1]
	}
	if len(fields) > 2 {
		cat = fields[2]
	}
	return tag, desc, cat, true
}

// ExportAligned renders the records of v as aligned text with the header
// line first.
func ExportAligned(v View) string {
	var b strings.Builder
	b.WriteString(Header)
	b.WriteString("\n")
	for _, r := range v.Records {
		b.WriteString(formatLine(r))
		b.WriteString("\n")
	}
	return b.String()
}

// formatLine writes one record. Whitespace runs inside a field would read
// back as column separators, so each is collapsed to a single space.
func formatLine(r Record) string {
	text, desc, cat := collapse(r.Text), collapse(r.Description), collapse(r.Category)
	line := pad(text, TagWidth)
	switch {
	case desc == "" && cat != "":
		// A tab keeps the empty description column on re-import.
		line += "\t" + strings.Repeat(" ", DescriptionWidth-1) + cat
	default:
		line += pad(desc, DescriptionWidth) + cat
	}
	return strings.TrimRight(line, " ")
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// pad right-pads s to width display columns, always leaving a gap of at
// least two spaces so the column survives re-import.
func pad(s string, width int) string {
	n := width - runewidth.StringWidth(s)
	if n < minGap {
		n = minGap
	}
	return s + strings.Repeat(" ", n)
}
