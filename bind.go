package opttab

import (
	"errors"
	"fmt"

	"github.com/napalu/opttab/util"
)

// BindHandler returns a handler that stores each matched value into the
// variable bound to the entry's id. See util.ConvertString for the
// supported pointer targets. Matching a flag sets a bound *bool to true, or
// increments a bound *int so repeated flags such as "-v -v" can count.
// Entries without a binding are ignored. Conversion failures surface as
// ArgumentError values with the option context filled in by the parser.
func BindHandler[ID comparable](bindings map[ID]any) HandlerFunc[ID] {
	return func(ctx *MatchContext[ID]) (ParseControl, error) {
		target, found := bindings[ctx.ID]
		if !found {
			return Continue, nil
		}

		if !ctx.HasValue {
			switch v := target.(type) {
			case *bool:
				*v = true
			case *int:
				*v++
			default:
				return Continue, fmt.Errorf("%w: flag '%s' can only bind *bool or *int", util.ErrUnsupportedTypeConversion, ctx.Name)
			}
			return Continue, nil
		}

		if err := util.ConvertString(ctx.Value, target); err != nil {
			return Continue, convertError(err)
		}
		return Continue, nil
	}
}

// convertError maps util conversion failures onto blank ArgumentError
// values so the parser can fill in the option name and raw text.
func convertError(err error) error {
	switch {
	case errors.Is(err, util.ErrParseEmpty):
		return ArgumentError(IntegerEmpty, "", "")
	case errors.Is(err, util.ErrParseOverflow):
		return ArgumentError(IntegerRange, "", "")
	case errors.Is(err, util.ErrParseInt):
		return ArgumentError(InvalidInteger, "", "")
	case errors.Is(err, util.ErrParseFloat):
		return ArgumentError(InvalidFloat, "", "")
	case errors.Is(err, util.ErrParseBool):
		return ArgumentError(InvalidBool, "", "")
	case errors.Is(err, util.ErrParseTime):
		return ArgumentError(InvalidTime, "", "")
	}
	return err
}
