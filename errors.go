package looseJSON

import (
	"errors"
	"fmt"
)

// Error classes. Every parse error wraps exactly one of these, so callers
// can errors.Is against the class or against the concrete condition.
var (
	ErrMalformed   = errors.New("malformed document")
	ErrUnsupported = errors.New("unsupported construct")
	ErrLimit       = errors.New("resource limit exceeded")
)

// parse errors
var (
	ErrEmptyInput         = fmt.Errorf("%w: input is empty", ErrMalformed)
	ErrExpectedObject     = fmt.Errorf("%w: expected opening brace", ErrMalformed)
	ErrExpectedColon      = fmt.Errorf("%w: expected colon after member name", ErrMalformed)
	ErrExpectedComma      = fmt.Errorf("%w: expected comma", ErrMalformed)
	ErrExpectedValue      = fmt.Errorf("%w: expected value", ErrMalformed)
	ErrUnterminatedString = fmt.Errorf("%w: unterminated string", ErrMalformed)
	ErrUnexpectedToken    = fmt.Errorf("%w: token out of place", ErrMalformed)
	ErrUnexpectedEnding   = fmt.Errorf("%w: unexpected end of document", ErrMalformed)
	ErrTrailingData       = fmt.Errorf("%w: data after closing brace", ErrMalformed)
	ErrBadNumber          = fmt.Errorf("%w: number out of range", ErrMalformed)

	ErrNestedArray  = fmt.Errorf("%w: array inside array", ErrUnsupported)
	ErrNestedObject = fmt.Errorf("%w: object inside array", ErrUnsupported)

	ErrTooDeep = fmt.Errorf("%w: object nesting over %d levels", ErrLimit, maxDepth)
)

// api errors
var (
	ErrNotFound  = errors.New("member isn't found")
	ErrNotObject = errors.New("value isn't an object")
	ErrNotArray  = errors.New("value isn't an array")
	ErrNotString = errors.New("value isn't a string")
	ErrNotNumber = errors.New("value isn't a number")
	ErrNotBool   = errors.New("value isn't a boolean")
	ErrNotFloat  = errors.New("value isn't a float")
)
