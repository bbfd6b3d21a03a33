package util

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

var (
	ErrUnsupportedTypeConversion = errors.New("unsupported type conversion")
	ErrBindNilPointer            = errors.New("can't bind value to nil")
	ErrParseEmpty                = errors.New("empty value")
	ErrParseInt                  = errors.New("invalid integer")
	ErrParseOverflow             = errors.New("value out of range")
	ErrParseFloat                = errors.New("invalid float")
	ErrParseBool                 = errors.New("invalid boolean")
	ErrParseTime                 = errors.New("invalid time")
)

// ListDelimiters reports whether r separates elements of a list value.
// Lists are split on ',', '|' or ' '.
func ListDelimiters(r rune) bool {
	return r == ',' || r == '|' || r == ' '
}

// ConvertString converts value into the variable pointed to by data.
// Supported targets: *string, *[]string, all *int and *uint widths,
// *float32, *float64, *bool and *time.Time.
func ConvertString(value string, data any) error {
	if data == nil {
		return ErrBindNilPointer
	}

	switch t := data.(type) {
	case *string:
		*t = value
	case *[]string:
		*t = strings.FieldsFunc(value, ListDelimiters)
	case *int:
		v, err := strconv.ParseInt(value, 10, strconv.IntSize)
		if err != nil {
			return intError(value, err)
		}
		*t = int(v)
	case *int8:
		v, err := strconv.ParseInt(value, 10, 8)
		if err != nil {
			return intError(value, err)
		}
		*t = int8(v)
	case *int16:
		v, err := strconv.ParseInt(value, 10, 16)
		if err != nil {
			return intError(value, err)
		}
		*t = int16(v)
	case *int32:
		v, err := strconv.ParseInt(value, 10, 32)
		if err != nil {
			return intError(value, err)
		}
		*t = int32(v)
	case *int64:
		v, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return intError(value, err)
		}
		*t = v
	case *uint:
		v, err := strconv.ParseUint(value, 10, strconv.IntSize)
		if err != nil {
			return intError(value, err)
		}
		*t = uint(v)
	case *uint8:
		v, err := strconv.ParseUint(value, 10, 8)
		if err != nil {
			return intError(value, err)
		}
		*t = uint8(v)
	case *uint16:
		v, err := strconv.ParseUint(value, 10, 16)
		if err != nil {
			return intError(value, err)
		}
		*t = uint16(v)
	case *uint32:
		v, err := strconv.ParseUint(value, 10, 32)
		if err != nil {
			return intError(value, err)
		}
		*t = uint32(v)
	case *uint64:
		v, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return intError(value, err)
		}
		*t = v
	case *float32:
		v, err := strconv.ParseFloat(value, 32)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrParseFloat, value)
		}
		*t = float32(v)
	case *float64:
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrParseFloat, value)
		}
		*t = v
	case *bool:
		v, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrParseBool, value)
		}
		*t = v
	case *time.Time:
		v, err := dateparse.ParseAny(value)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrParseTime, value)
		}
		*t = v
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedTypeConversion, data)
	}

	return nil
}

func intError(value string, err error) error {
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		if numErr.Num == "" {
			return fmt.Errorf("%w: %q", ErrParseEmpty, value)
		}
		if errors.Is(numErr.Err, strconv.ErrRange) {
			return fmt.Errorf("%w: %q", ErrParseOverflow, value)
		}
	}
	return fmt.Errorf("%w: %q", ErrParseInt, value)
}
