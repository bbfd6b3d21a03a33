package opttab

import (
	"errors"
	"fmt"
	"strconv"
)

// ArgumentErrorKind classifies value-conversion failures reported through
// an ArgumentError.
type ArgumentErrorKind int

const (
	IntegerEmpty ArgumentErrorKind = iota
	IntegerRange
	InvalidInteger
	InvalidFloat
	InvalidBool
	InvalidTime
)

// ParseError is the structured error produced when a token stream violates
// the option grammar. Err carries the category sentinel, so callers can
// classify with errors.Is; Option and Text carry the offending option name
// and token text where applicable.
type ParseError struct {
	Err    error
	Option string
	Text   string
	Kind   ArgumentErrorKind
}

func (e *ParseError) Error() string {
	switch {
	case errors.Is(e.Err, ErrUnknownOption):
		return fmt.Sprintf("Unrecognised option '%s'", e.Text)
	case errors.Is(e.Err, ErrUnexpectedToken):
		return fmt.Sprintf("Unexpected positional argument '%s'", e.Text)
	case errors.Is(e.Err, ErrExpectArgument):
		return fmt.Sprintf("Option '%s' requires an argument", e.Option)
	case errors.Is(e.Err, ErrUnexpectedArgument):
		return fmt.Sprintf("Flag '%s' doesn't take an argument", e.Text)
	case errors.Is(e.Err, ErrArgument):
		switch e.Kind {
		case IntegerEmpty:
			return fmt.Sprintf("Argument for option '%s' cannot be empty", e.Option)
		case IntegerRange:
			return fmt.Sprintf("Argument '%s' out of range for option '%s'", e.Text, e.Option)
		default:
			return fmt.Sprintf("Invalid argument '%s' for option '%s'", e.Text, e.Option)
		}
	case errors.Is(e.Err, ErrRequiredPositional):
		return fmt.Sprintf("Missing required positional argument '%s'", e.Option)
	case errors.Is(e.Err, ErrRequiredParameter):
		return fmt.Sprintf("Missing required option '%s'", e.Option)
	}
	return e.Err.Error()
}

// Unwrap returns the category sentinel.
func (e *ParseError) Unwrap() error { return e.Err }

// ArgumentError reports a value-conversion failure for an option's
// argument. Handlers may leave option and text empty; the parser fills them
// in with the matched name and raw value before surfacing the error.
func ArgumentError(kind ArgumentErrorKind, option, text string) *ParseError {
	return &ParseError{Err: ErrArgument, Kind: kind, Option: option, Text: text}
}

// ArgError coerces a strconv conversion error into an ArgumentError with
// blank option and text fields for the parser to fill in. Errors that are
// not strconv errors are returned unchanged, so handlers can wrap any
// numeric conversion:
//
//	n, err := strconv.Atoi(ctx.Value)
//	if err != nil {
//		return opttab.Continue, opttab.ArgError(err)
//	}
func ArgError(err error) error {
	if err == nil {
		return nil
	}
	var numErr *strconv.NumError
	if !errors.As(err, &numErr) {
		return err
	}
	switch {
	case numErr.Func == "ParseBool":
		return ArgumentError(InvalidBool, "", "")
	case numErr.Func == "ParseFloat":
		return ArgumentError(InvalidFloat, "", "")
	case numErr.Num == "":
		return ArgumentError(IntegerEmpty, "", "")
	case errors.Is(numErr.Err, strconv.ErrRange):
		return ArgumentError(IntegerRange, "", "")
	default:
		return ArgumentError(InvalidInteger, "", "")
	}
}

func unknownOption(spec string) *ParseError {
	return &ParseError{Err: ErrUnknownOption, Text: spec}
}

func unexpectedToken(token string) *ParseError {
	return &ParseError{Err: ErrUnexpectedToken, Text: token}
}

func expectArgument(name string) *ParseError {
	return &ParseError{Err: ErrExpectArgument, Option: name}
}

func unexpectedArgument(spec string) *ParseError {
	return &ParseError{Err: ErrUnexpectedArgument, Text: spec}
}

func requiredPositional(name string) *ParseError {
	return &ParseError{Err: ErrRequiredPositional, Option: name}
}

func requiredParameter(name string) *ParseError {
	return &ParseError{Err: ErrRequiredParameter, Option: name}
}

func asParseError(err error) *ParseError {
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return parseErr
	}
	return &ParseError{Err: err}
}
