package opttab

import (
	"errors"
	"io"

	"github.com/napalu/opttab/types/bitset"
)

// OptionKind describes how an option entry is matched against tokens.
type OptionKind int

const (
	// Positional is matched by position in the token stream rather than by name.
	Positional OptionKind = iota
	// Flag is a named option that takes no value.
	Flag
	// Value is a named option that requires exactly one value.
	Value
)

// ParseResult describes the outcome of parsing and how the program should behave.
type ParseResult int

const (
	// ContinueSuccess - parsing succeeded and program execution should continue.
	ContinueSuccess ParseResult = iota
	// ExitSuccess - parsing succeeded and the program should exit with status 0.
	ExitSuccess
	// ExitFailure - parsing failed and the program should exit with status 1.
	ExitFailure
)

// ParseControl is the execution control a handler returns to the parser.
type ParseControl int

const (
	// Continue parsing the next token.
	Continue ParseControl = iota
	// Stop consuming tokens, as if the stream had ended. End-of-stream
	// validation still runs.
	Stop
	// Quit parsing immediately and report success, skipping end-of-stream
	// validation. Used for early-exit actions such as showing help.
	Quit
)

// HideUsage selects which help surfaces an option is excluded from.
type HideUsage int

const (
	// HideShort removes the option from the short usage line.
	HideShort HideUsage = iota
	// HideFull removes the option from the full help listing.
	HideFull
	// HideAll removes the option from both.
	HideAll
)

type optionFlag uint8

const (
	optRequired optionFlag = 1 << iota
	optHelp
	optVisibleShort
	optVisibleFull

	optVisibleDefault = optVisibleShort | optVisibleFull
)

// Option describes one recognized argument: a positional, a flag, or a
// value-taking option. Build with NewPositional, NewFlag, NewValue,
// NewHelpFlag or NewOpt; immutable once handed to a Table.
type Option[ID comparable] struct {
	id        ID
	names     []string
	valueName string
	helpText  string
	kind      OptionKind
	flags     optionFlag
}

// Table is an immutable ordered collection of option entries plus
// parser-wide settings. Build once with NewTable or MustTable at program
// startup; a table is read-only during parsing and safe to share between
// any number of concurrent parses.
type Table[ID comparable] struct {
	options     []Option[ID]
	flagChars   []rune
	description string
	envPrefix   string
	stdout      io.Writer
	stderr      io.Writer
}

// MatchContext bundles the information passed to a handler for one matched
// entry.
type MatchContext[ID comparable] struct {
	// ProgramName is the invocation name, for printing statuses to the user.
	ProgramName string
	// ID is the caller-defined tag of the matched option.
	ID ID
	// Option is the table entry that was matched.
	Option *Option[ID]
	// Name is the alias the token matched; for positionals it is the
	// entry's first name.
	Name string
	// Value is the raw value for positionals and value options. HasValue is
	// false for flags; a present-but-empty value (as in "--opt=") reports
	// HasValue true with an empty Value.
	Value    string
	HasValue bool
}

// HandlerFunc is called synchronously once per matched entry. Returning an
// error aborts the parse; the error is surfaced through the error callback.
type HandlerFunc[ID comparable] func(ctx *MatchContext[ID]) (ParseControl, error)

// ErrorFunc is called exactly once when parsing fails, before the parse
// entry point returns ExitFailure.
type ErrorFunc func(programName string, err *ParseError)

// ConfigureTableFunc configures a Table during NewTable.
type ConfigureTableFunc[ID comparable] func(*Table[ID])

// ConfigureOptionFunc configures an Option during NewOpt.
type ConfigureOptionFunc[ID comparable] func(*Option[ID])

// Parse error categories. Every *ParseError unwraps to one of these, so
// callers can classify with errors.Is.
var (
	ErrUnknownOption      = errors.New("unrecognised option")
	ErrUnexpectedToken    = errors.New("unexpected positional argument")
	ErrExpectArgument     = errors.New("option requires an argument")
	ErrUnexpectedArgument = errors.New("flag doesn't take an argument")
	ErrArgument           = errors.New("invalid argument")
	ErrRequiredPositional = errors.New("missing required positional argument")
	ErrRequiredParameter  = errors.New("missing required option")
)

// Table construction errors. These indicate a bug in the program's own
// option definitions and are reported by NewTable before any parsing runs.
var (
	ErrEmptyNames      = errors.New("option has no names")
	ErrHelpNotFlag     = errors.New("only flags are allowed to be help options")
	ErrRequiredHelp    = errors.New("help flag cannot be made required")
	ErrTooManyRequired = errors.New("too many required non-positional options")
)

// MaxRequiredOptions is the maximum number of required Flag and Value
// entries a table may define, bounded by the presence bitset's capacity.
const MaxRequiredOptions = bitset.Capacity
