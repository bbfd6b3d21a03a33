package opttab

import (
	"fmt"
	"os"
	"unicode/utf8"
)

// NewTable validates options and builds an immutable table. The default
// flag-prefix character is '-'. Validation failures indicate malformed
// option definitions, not user input: entries with no names, a required
// help flag, a help flag on a non-flag entry, or more than
// MaxRequiredOptions required non-positional entries.
func NewTable[ID comparable](options []Option[ID], configs ...ConfigureTableFunc[ID]) (*Table[ID], error) {
	t := &Table[ID]{
		options:   options,
		flagChars: []rune{'-'},
		stdout:    os.Stdout,
		stderr:    os.Stderr,
	}
	for _, config := range configs {
		config(t)
	}

	numRequired := 0
	for i := range t.options {
		opt := &t.options[i]
		if len(opt.names) == 0 {
			return nil, fmt.Errorf("%w: entry %d", ErrEmptyNames, i)
		}
		if opt.IsHelp() && opt.kind != Flag {
			return nil, fmt.Errorf("%w: entry '%s'", ErrHelpNotFlag, opt.FirstName())
		}
		if opt.IsHelp() && opt.IsRequired() {
			return nil, fmt.Errorf("%w: entry '%s'", ErrRequiredHelp, opt.FirstName())
		}
		if opt.kind != Positional && opt.IsRequired() {
			numRequired++
		}
	}
	if numRequired > MaxRequiredOptions {
		return nil, fmt.Errorf("%w: %d exceeds the maximum of %d", ErrTooManyRequired, numRequired, MaxRequiredOptions)
	}

	return t, nil
}

// MustTable is like NewTable but panics on validation failure. Intended for
// table definitions evaluated once at program startup.
func MustTable[ID comparable](options []Option[ID], configs ...ConfigureTableFunc[ID]) *Table[ID] {
	t, err := NewTable(options, configs...)
	if err != nil {
		panic(err)
	}
	return t
}

// Options returns the table's entries in definition order. The slice is the
// table's backing storage; treat it as read-only.
func (t *Table[ID]) Options() []Option[ID] { return t.options }

// Description returns the program description shown in full help output.
func (t *Table[ID]) Description() string { return t.description }

// FlagChars returns the characters that mark a token as an option reference.
func (t *Table[ID]) FlagChars() string { return string(t.flagChars) }

// HelpOption returns the first entry flagged as the help flag.
func (t *Table[ID]) HelpOption() (*Option[ID], bool) {
	for i := range t.options {
		if t.options[i].IsHelp() {
			return &t.options[i], true
		}
	}
	return nil, false
}

func (t *Table[ID]) hasFlagPrefix(token string) bool {
	first, size := utf8.DecodeRuneInString(token)
	if size == 0 {
		return false
	}
	for _, c := range t.flagChars {
		if first == c {
			return true
		}
	}
	return false
}
