package opttab

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ParseMap parses args against a string-keyed table and collects each
// matched entry's raw value into an insertion-ordered map keyed by option
// id. Flags map to the empty string. A matched help flag prints the full
// help to the table's stdout writer and quits with ExitSuccess. The map is
// nil unless the result is ContinueSuccess.
func ParseMap(t *Table[string], programName string, args []string, errFn ErrorFunc) (*orderedmap.OrderedMap[string, string], ParseResult) {
	out := orderedmap.New[string, string]()
	result := t.Parse(programName, args, mapHandler(t, out), errFn)
	if result != ContinueSuccess {
		return nil, result
	}
	return out, result
}

// ParseMapOS is ParseMap over the process argument vector (and environment
// when an env prefix is configured), printing errors in the standard
// user-facing format.
func ParseMapOS(t *Table[string]) (*orderedmap.OrderedMap[string, string], ParseResult) {
	programName, q := t.osTokens()
	out := orderedmap.New[string, string]()
	result := t.parseStream(programName, &queueSource{q: q}, mapHandler(t, out), t.printError)
	if result != ContinueSuccess {
		return nil, result
	}
	return out, result
}

func mapHandler(t *Table[string], out *orderedmap.OrderedMap[string, string]) HandlerFunc[string] {
	return func(ctx *MatchContext[string]) (ParseControl, error) {
		if ctx.Option.IsHelp() {
			t.PrintFullHelp(ctx.ProgramName)
			return Quit, nil
		}
		out.Set(ctx.ID, ctx.Value)
		return Continue, nil
	}
}
