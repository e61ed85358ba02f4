package coerce

import (
	"errors"
	"fmt"

	"sheet-mapper/typetag"
)

var (
	ErrParseFailure    = errors.New("parse failure")
	ErrUnsupportedType = errors.New("unsupported type")
	ErrInvalidDefault  = errors.New("invalid default value")
)

// ValueFormatError reports non-absent text that does not conform to the
// canonical representation of the target type.
type ValueFormatError struct {
	Field string
	Text  string
	Type  typetag.Type
	Err   error
}

func (e *ValueFormatError) Error() string {
	msg := fmt.Sprintf("cannot parse %q as %s", e.Text, e.Type)
	if e.Field != "" {
		msg = fmt.Sprintf("field %q: %s", e.Field, msg)
	}

	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *ValueFormatError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrParseFailure}
	}

	return []error{ErrParseFailure, e.Err}
}

// ConfigurationError reports a field declaration that cannot be coerced.
// Kind is ErrUnsupportedType or ErrInvalidDefault.
type ConfigurationError struct {
	Field  string
	GoType string
	Kind   error
	Err    error
}

func (e *ConfigurationError) Error() string {
	msg := fmt.Sprintf("field %q", e.Field)
	if e.GoType != "" {
		msg += " (" + e.GoType + ")"
	}

	msg += ": " + e.Kind.Error()
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *ConfigurationError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}

	return []error{e.Kind, e.Err}
}
