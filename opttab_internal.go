package opttab

import (
	"errors"
	"strings"

	"github.com/napalu/opttab/types/bitset"
	"github.com/napalu/opttab/types/queue"
)

// parserState is the ephemeral per-parse state. A fresh instance is created
// for every parse call and discarded when it returns.
type parserState[ID comparable] struct {
	positionalIndex int
	pendingName     string
	pendingOption   *Option[ID]
	requiredSeen    bitset.OrderedBitSet
}

// tokenSource yields argument tokens one at a time.
type tokenSource interface {
	next() (string, bool)
}

type sliceSource struct {
	tokens []string
	pos    int
}

func (s *sliceSource) next() (string, bool) {
	if s.pos >= len(s.tokens) {
		return "", false
	}
	token := s.tokens[s.pos]
	s.pos++
	return token, true
}

type queueSource struct {
	q *queue.Q[string]
}

func (s *queueSource) next() (string, bool) {
	return s.q.Dequeue()
}

// parseStream runs the classifier over src. It is the single core routine
// behind every parse entry point.
func (t *Table[ID]) parseStream(programName string, src tokenSource, handler HandlerFunc[ID], errFn ErrorFunc) ParseResult {
	state := &parserState[ID]{}

	for {
		token, ok := src.next()
		if !ok {
			break
		}
		ctl, err := t.next(state, programName, token, handler)
		if err != nil {
			t.reportError(programName, err, errFn)
			return ExitFailure
		}
		if ctl == Stop {
			break
		}
		if ctl == Quit {
			return ExitSuccess
		}
	}

	return t.validateState(programName, state, errFn)
}

// next classifies a single token, invoking the handler on a match.
func (t *Table[ID]) next(state *parserState[ID], programName, token string, handler HandlerFunc[ID]) (ParseControl, error) {
	// A value option matched in the previous token consumes this token
	// unconditionally as its argument, whatever the token looks like.
	if state.pendingOption != nil {
		opt, name := state.pendingOption, state.pendingName
		state.pendingOption, state.pendingName = nil, ""
		return t.callHandler(programName, handler, opt, name, token, true)
	}

	if !t.hasFlagPrefix(token) {
		// Positional: match the next Positional entry at or after the cursor.
		for i := state.positionalIndex; i < len(t.options); i++ {
			opt := &t.options[i]
			if opt.kind != Positional {
				continue
			}
			ctl, err := t.callHandler(programName, handler, opt, opt.FirstName(), token, true)
			if err != nil {
				return Continue, err
			}
			state.positionalIndex = i + 1
			return ctl, nil
		}
		return Continue, unexpectedToken(token)
	}

	// A value may be attached in the same token with '='; otherwise it
	// arrives in the next token.
	spec, inline := token, ""
	hasInline := false
	if idx := strings.IndexByte(token, '='); idx >= 0 {
		spec, inline, hasInline = token[:idx], token[idx+1:], true
	}

	// Search named entries in table order with the leading prefix character
	// skipped, counting the required entries passed over so the match's
	// required ordinal is known for the presence bitset.
	requiredIdx := 0
	var matched *Option[ID]
	var matchedName string
	for i := range t.options {
		opt := &t.options[i]
		if opt.kind == Positional {
			continue
		}
		if name, ok := opt.matchName(spec, 1); ok {
			matched, matchedName = opt, name
			break
		}
		if opt.IsRequired() {
			requiredIdx++
		}
	}
	if matched == nil {
		return Continue, unknownOption(spec)
	}
	if matched.IsRequired() {
		state.requiredSeen.Insert(requiredIdx, true)
	}

	switch {
	case matched.kind == Flag && !hasInline:
		return t.callHandler(programName, handler, matched, matchedName, "", false)
	case matched.kind == Value && hasInline:
		// A present-but-empty value ("--opt=") counts as supplied.
		return t.callHandler(programName, handler, matched, matchedName, inline, true)
	case matched.kind == Value:
		state.pendingOption, state.pendingName = matched, matchedName
		return Continue, nil
	default:
		return Continue, unexpectedArgument(spec)
	}
}

// callHandler invokes the handler and fixes up conversion errors that
// arrive with blank context: ArgError coercions carry no option name or
// literal text, so the matched name and raw value are filled in here rather
// than threaded through every conversion in every handler.
func (t *Table[ID]) callHandler(programName string, handler HandlerFunc[ID], opt *Option[ID], name, value string, hasValue bool) (ParseControl, error) {
	ctl, err := handler(&MatchContext[ID]{
		ProgramName: programName,
		ID:          opt.id,
		Option:      opt,
		Name:        name,
		Value:       value,
		HasValue:    hasValue,
	})
	if err != nil {
		var parseErr *ParseError
		if errors.As(err, &parseErr) && errors.Is(parseErr.Err, ErrArgument) &&
			parseErr.Option == "" && parseErr.Text == "" {
			parseErr.Option = name
			parseErr.Text = value
		}
		return Continue, err
	}
	return ctl, nil
}

// validateState runs end-of-stream validation: an outstanding pending
// value, then missing required positionals, then missing required
// parameters. The first failure in that order terminates the parse.
func (t *Table[ID]) validateState(programName string, state *parserState[ID], errFn ErrorFunc) ParseResult {
	if state.pendingOption != nil {
		t.reportError(programName, expectArgument(state.pendingName), errFn)
		return ExitFailure
	}

	for i := state.positionalIndex; i < len(t.options); i++ {
		opt := &t.options[i]
		if opt.kind == Positional && opt.IsRequired() {
			t.reportError(programName, requiredPositional(opt.FirstName()), errFn)
			return ExitFailure
		}
	}

	// Walk named entries with the same required-ordinal counter used during
	// token matching.
	requiredIdx := 0
	for i := range t.options {
		opt := &t.options[i]
		if opt.kind == Positional || !opt.IsRequired() {
			continue
		}
		if !state.requiredSeen.Get(requiredIdx) {
			t.reportError(programName, requiredParameter(opt.FirstName()), errFn)
			return ExitFailure
		}
		requiredIdx++
	}

	return ContinueSuccess
}

func (t *Table[ID]) reportError(programName string, err error, errFn ErrorFunc) {
	if errFn == nil {
		return
	}
	errFn(programName, asParseError(err))
}
