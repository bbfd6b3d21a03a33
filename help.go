package opttab

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/napalu/opttab/util"
)

// Renderer produces usage and help text for a table. It only reads entry
// metadata: name classification (long/short) affects presentation, never
// matching.
type Renderer[ID comparable] struct {
	table *Table[ID]
	// wrapWidth is the column budget help text is wrapped to, 0 to disable.
	wrapWidth int
}

// NewRenderer creates a renderer for table. When the table's stdout writer
// is a terminal, option descriptions in the full help listing wrap to its
// width.
func NewRenderer[ID comparable](table *Table[ID]) *Renderer[ID] {
	r := &Renderer[ID]{table: table}
	if f, ok := table.stdout.(*os.File); ok {
		if width, isTerm := util.TerminalWidth(f); isTerm {
			r.wrapWidth = width
		}
	}
	return r
}

// WriteShortUsage writes the single-line usage summary: named options
// first ('[...]' when optional, '<...>' when required, short|long when both
// aliases exist), then positionals.
func (r *Renderer[ID]) WriteShortUsage(w io.Writer, programName string) error {
	var b strings.Builder
	b.WriteString("Usage: ")
	b.WriteString(programName)

	for i := range r.table.options {
		opt := &r.table.options[i]
		if opt.kind == Positional || !opt.ShownInShortUsage() {
			continue
		}
		open, closing := byte('['), byte(']')
		if opt.IsRequired() {
			open, closing = '<', '>'
		}
		b.WriteByte(' ')
		b.WriteByte(open)
		short, long := opt.FirstShortName(), opt.FirstLongName()
		switch {
		case short != "" && long != "":
			b.WriteString(short)
			b.WriteByte('|')
			b.WriteString(long)
		case short != "":
			b.WriteString(short)
		case long != "":
			b.WriteString(long)
		default:
			b.WriteString(opt.FirstName())
		}
		if opt.valueName != "" {
			b.WriteByte(' ')
			b.WriteString(opt.valueName)
		}
		b.WriteByte(closing)
	}

	for i := range r.table.options {
		opt := &r.table.options[i]
		if opt.kind != Positional || !opt.ShownInShortUsage() {
			continue
		}
		if opt.IsRequired() {
			b.WriteString(" <" + opt.FirstName() + ">")
		} else {
			b.WriteString(" [" + opt.FirstName() + "]")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteFullHelp writes the short usage, the program description, and the
// aligned listings of positional arguments and options.
func (r *Renderer[ID]) WriteFullHelp(w io.Writer, programName string) error {
	if err := r.WriteShortUsage(w, programName); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}

	if r.table.description != "" {
		if _, err := fmt.Fprintf(w, "\n%s\n", r.table.description); err != nil {
			return err
		}
	}

	// Alignment is derived from the widest left column across the table.
	alignWidth := 2
	for i := range r.table.options {
		if width := leftWidth(&r.table.options[i]); alignWidth < width+2 {
			alignWidth = width + 2
		}
	}

	first := true
	for i := range r.table.options {
		opt := &r.table.options[i]
		if opt.kind != Positional || !opt.ShownInFullHelp() {
			continue
		}
		if first {
			if _, err := io.WriteString(w, "\nPositional arguments:\n"); err != nil {
				return err
			}
			first = false
		}
		if err := r.writeEntry(w, "  "+opt.FirstName(), leftWidth(opt), alignWidth, opt.helpText); err != nil {
			return err
		}
	}

	first = true
	for i := range r.table.options {
		opt := &r.table.options[i]
		if opt.kind == Positional || !opt.ShownInFullHelp() {
			continue
		}
		if first {
			if _, err := io.WriteString(w, "\nOptions:\n"); err != nil {
				return err
			}
			first = false
		}
		left := "  " + strings.Join(opt.names, " | ")
		if opt.valueName != "" {
			left += " <" + opt.valueName + ">"
		}
		if err := r.writeEntry(w, left, leftWidth(opt), alignWidth, opt.helpText); err != nil {
			return err
		}
	}

	return nil
}

// WriteErrorUsage writes err prefixed with the program name; for
// missing-required failures it appends the short usage and, when the table
// defines a help flag, a pointer to it.
func (r *Renderer[ID]) WriteErrorUsage(w io.Writer, programName string, err *ParseError) error {
	if _, werr := fmt.Fprintf(w, "%s: %s\n", programName, err.Error()); werr != nil {
		return werr
	}
	if !errors.Is(err, ErrRequiredPositional) && !errors.Is(err, ErrRequiredParameter) {
		return nil
	}
	if werr := r.WriteShortUsage(w, programName); werr != nil {
		return werr
	}
	if _, werr := io.WriteString(w, "\n"); werr != nil {
		return werr
	}
	if help, ok := r.table.HelpOption(); ok {
		name := help.FirstLongName()
		if name == "" {
			name = help.FirstName()
		}
		if _, werr := fmt.Fprintf(w, "Run '%s %s' to view all available options.\n", programName, name); werr != nil {
			return werr
		}
	}
	return nil
}

// writeEntry writes one listing line with a dot leader padding the help
// text to the alignment column.
func (r *Renderer[ID]) writeEntry(w io.Writer, left string, width, alignWidth int, help string) error {
	if help == "" {
		_, err := fmt.Fprintf(w, "%s\n", left)
		return err
	}
	dots := strings.Repeat(".", alignWidth-width)
	helpCol := alignWidth + 4
	lines := r.wrapText(help, helpCol)
	if _, err := fmt.Fprintf(w, "%s %s %s\n", left, dots, lines[0]); err != nil {
		return err
	}
	indent := strings.Repeat(" ", helpCol)
	for _, line := range lines[1:] {
		if _, err := fmt.Fprintf(w, "%s%s\n", indent, line); err != nil {
			return err
		}
	}
	return nil
}

// wrapText greedily wraps text into lines fitting the columns left of the
// wrap width after startCol. Without a usable width the text stays on one
// line.
func (r *Renderer[ID]) wrapText(text string, startCol int) []string {
	avail := r.wrapWidth - startCol
	if r.wrapWidth <= 0 || avail < 16 {
		return []string{text}
	}

	var lines []string
	var line strings.Builder
	lineLen := 0
	for _, word := range strings.Fields(text) {
		wordLen := utf8.RuneCountInString(word)
		if lineLen > 0 && lineLen+1+wordLen > avail {
			lines = append(lines, line.String())
			line.Reset()
			lineLen = 0
		}
		if lineLen > 0 {
			line.WriteByte(' ')
			lineLen++
		}
		line.WriteString(word)
		lineLen += wordLen
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}

// leftWidth is the column width of an entry's name cell: all aliases with
// their separators plus the value placeholder.
func leftWidth[ID comparable](opt *Option[ID]) int {
	width := (len(opt.names) - 1) * 3
	for _, name := range opt.names {
		width += utf8.RuneCountInString(name)
	}
	if opt.valueName != "" {
		width += utf8.RuneCountInString(opt.valueName) + 3
	}
	return width
}

// PrintFullHelp writes the full help listing to the table's stdout writer.
func (t *Table[ID]) PrintFullHelp(programName string) {
	r := NewRenderer(t)
	_ = r.WriteFullHelp(t.stdout, programName)
}

// PrintShortUsage writes the short usage line to the table's stdout writer.
func (t *Table[ID]) PrintShortUsage(programName string) {
	r := NewRenderer(t)
	if err := r.WriteShortUsage(t.stdout, programName); err == nil {
		_, _ = io.WriteString(t.stdout, "\n")
	}
}
