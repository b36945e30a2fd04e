package args

import (
	"errors"
	"fmt"
)

// Resolution failure kinds. Every error returned by Resolve matches exactly
// one of them with errors.Is.
var (
	ErrUnknownOption        = errors.New("unknown option")
	ErrInvalidValue         = errors.New("invalid value")
	ErrMissingRequiredValue = errors.New("missing required value")
)

// Error describes why a token list could not be resolved.
type Error struct {
	Kind   error  // one of the Err* sentinels
	Option string // option as written by the user, or its long form
	Value  string // offending value, if any
	Err    error  // underlying cause, may be nil
}

func (e *Error) Error() string {
	switch {
	case e.Kind == ErrUnknownOption:
		return fmt.Sprintf("unknown option %q", e.Option)
	case e.Kind == ErrMissingRequiredValue && e.Err != nil:
		return fmt.Sprintf("missing required value for %s: %v", e.Option, e.Err)
	case e.Kind == ErrMissingRequiredValue:
		return fmt.Sprintf("missing required value for %s", e.Option)
	case e.Value == "" && e.Err != nil:
		return fmt.Sprintf("invalid value for %s: %v", e.Option, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("invalid value %q for %s: %v", e.Value, e.Option, e.Err)
	default:
		return fmt.Sprintf("invalid value %q for %s", e.Value, e.Option)
	}
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func unknownOption(token string) *Error {
	return &Error{Kind: ErrUnknownOption, Option: token}
}

func missingValue(option string, cause error) *Error {
	return &Error{Kind: ErrMissingRequiredValue, Option: option, Err: cause}
}

func invalidValue(option, value string, cause error) *Error {
	return &Error{Kind: ErrInvalidValue, Option: option, Value: value, Err: cause}
}
