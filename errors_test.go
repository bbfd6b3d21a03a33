package opttab

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseError_Messages(t *testing.T) {
	cases := []struct {
		err  *ParseError
		want string
	}{
		{unknownOption("--bogus"), "Unrecognised option '--bogus'"},
		{unexpectedToken("stray"), "Unexpected positional argument 'stray'"},
		{expectArgument("--count"), "Option '--count' requires an argument"},
		{unexpectedArgument("--verbose"), "Flag '--verbose' doesn't take an argument"},
		{requiredPositional("file"), "Missing required positional argument 'file'"},
		{requiredParameter("--count"), "Missing required option '--count'"},
		{ArgumentError(IntegerEmpty, "--count", ""), "Argument for option '--count' cannot be empty"},
		{ArgumentError(IntegerRange, "--count", "99999999999"), "Argument '99999999999' out of range for option '--count'"},
		{ArgumentError(InvalidInteger, "--count", "abc"), "Invalid argument 'abc' for option '--count'"},
		{ArgumentError(InvalidFloat, "--rate", "x"), "Invalid argument 'x' for option '--rate'"},
		{ArgumentError(InvalidBool, "--flag", "x"), "Invalid argument 'x' for option '--flag'"},
		{ArgumentError(InvalidTime, "--when", "x"), "Invalid argument 'x' for option '--when'"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.err.Error())
	}
}

func TestParseError_Unwrap(t *testing.T) {
	err := unknownOption("--bogus")
	assert.ErrorIs(t, err, ErrUnknownOption)
	assert.NotErrorIs(t, err, ErrUnexpectedToken)
}

func TestParseError_WrappedMessage(t *testing.T) {
	err := &ParseError{Err: assert.AnError}
	assert.Equal(t, assert.AnError.Error(), err.Error(), "uncategorized errors surface their own message")
}

func TestArgError(t *testing.T) {
	assert.NoError(t, ArgError(nil))

	otherErr := errors.New("not a conversion error")
	assert.Equal(t, otherErr, ArgError(otherErr), "non-strconv errors pass through unchanged")

	cases := []struct {
		give error
		kind ArgumentErrorKind
	}{
		{mustErr(strconv.Atoi("abc")), InvalidInteger},
		{mustErr(strconv.Atoi("")), IntegerEmpty},
		{mustErr(strconv.Atoi("99999999999999999999")), IntegerRange},
		{mustErr(strconv.ParseFloat("abc", 64)), InvalidFloat},
		{mustErr(strconv.ParseBool("maybe")), InvalidBool},
	}
	for _, tc := range cases {
		got := asParseError(ArgError(tc.give))
		assert.ErrorIs(t, got, ErrArgument)
		assert.Equal(t, tc.kind, got.Kind)
		assert.Empty(t, got.Option, "option is left blank for the parser to fill in")
		assert.Empty(t, got.Text)
	}
}

func mustErr[T any](_ T, err error) error { return err }

func TestAsParseError(t *testing.T) {
	original := unknownOption("--x")
	assert.Same(t, original, asParseError(original))

	plain := errors.New("boom")
	wrapped := asParseError(plain)
	assert.Equal(t, plain, wrapped.Err)
}
