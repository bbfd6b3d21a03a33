// Copyright 2025, The opttab authors. All rights reserved.
// Use of this source code is governed by the MIT license
// which can be found in the LICENSE file.

// Package opttab implements table-driven command-line argument parsing.
//
// A Table is an immutable, ordered collection of option entries built once
// at program startup:
//
//	Positional - an argument matched by position rather than by name
//	Flag       - a named boolean option taking no value
//	Value      - a named option requiring exactly one value
//
// Parsing walks the token stream exactly once, invoking a caller-supplied
// handler per matched entry and reporting the first grammar violation
// through an error callback. The handler's ParseControl return steers the
// parse: Continue consumes the next token, Stop behaves as if the stream
// had ended, and Quit terminates immediately with success, skipping the
// end-of-stream required-option checks (the usual behavior for a --help
// flag).
//
// Value options accept their argument inline ("--opt=value") or in the
// following token ("--opt value"); the two forms produce identical handler
// invocations. Required flags and value options are tracked in a fixed
// 128-slot presence bitset, so requiredness checking allocates nothing and
// costs a single linear sweep at end of stream.
package opttab

import (
	"fmt"

	"github.com/google/shlex"
	"github.com/napalu/opttab/types/queue"
)

// Parse classifies args against the table in a single pass. handler is
// called synchronously once per matched entry; errFn is called exactly
// once, only on failure, before ExitFailure is returned. args must be
// pre-split tokens; no shell quoting is interpreted.
func (t *Table[ID]) Parse(programName string, args []string, handler HandlerFunc[ID], errFn ErrorFunc) ParseResult {
	return t.parseStream(programName, &sliceSource{tokens: args}, handler, errFn)
}

// ParseString tokenizes commandLine with shell-style quoting rules and
// parses the result. The returned error is non-nil only when the command
// line cannot be tokenized; grammar violations are reported through errFn
// and the ParseResult, exactly as with Parse.
func (t *Table[ID]) ParseString(programName, commandLine string, handler HandlerFunc[ID], errFn ErrorFunc) (ParseResult, error) {
	tokens, err := shlex.Split(commandLine)
	if err != nil {
		return ExitFailure, fmt.Errorf("tokenize: %w", err)
	}
	q := queue.New[string]()
	for _, token := range tokens {
		q.Enqueue(token)
	}
	return t.parseStream(programName, &queueSource{q: q}, handler, errFn), nil
}

// ParseOS parses the process argument vector. The program name is the base
// name of the executable. When an env prefix is configured the token stream
// is preceded by environment-derived tokens, so named options can be
// satisfied from the environment. Errors are printed to the table's stderr
// writer in the standard user-facing format.
func (t *Table[ID]) ParseOS(handler HandlerFunc[ID]) ParseResult {
	programName, q := t.osTokens()
	return t.parseStream(programName, &queueSource{q: q}, handler, t.printError)
}

// printError writes err and, for missing-required failures, a usage hint to
// the table's stderr writer.
func (t *Table[ID]) printError(programName string, err *ParseError) {
	NewRenderer(t).WriteErrorUsage(t.stderr, programName, err)
}
