package coerce

import (
	"fmt"
	"strings"

	"sheet-mapper/typetag"
)

// codec is the per-tag pair of parse and format functions over the tag's
// canonical Go type V.
type codec[V any] struct {
	parse  func(string) (V, error)
	format func(V) string
}

type valueCodec interface {
	parseValue(text string, nullable bool) (any, error)
	zero(nullable bool) any
	formatValue(v any) (string, bool)
}

func (c codec[V]) parseValue(text string, nullable bool) (any, error) {
	v, err := c.parse(text)
	if err != nil {
		return nil, err
	}

	if nullable {
		return &v, nil
	}

	return v, nil
}

func (c codec[V]) zero(nullable bool) any {
	if nullable {
		return (*V)(nil)
	}

	var v V

	return v
}

func (c codec[V]) formatValue(x any) (string, bool) {
	switch v := x.(type) {
	case V:
		return c.format(v), true
	case *V:
		if v == nil {
			return "", true
		}

		return c.format(*v), true
	case nil:
		return "", true
	default:
		return "", false
	}
}

// codecFor resolves the codec of a tag. The switch is exhaustive over the
// defined tags; anything else is unsupported.
func codecFor(tag typetag.Tag) (valueCodec, bool) {
	switch tag {
	case typetag.TagText:
		return textCodec, true
	case typetag.TagByte:
		return byteCodec, true
	case typetag.TagShort:
		return shortCodec, true
	case typetag.TagInt32:
		return int32Codec, true
	case typetag.TagInt64:
		return int64Codec, true
	case typetag.TagInt:
		return intCodec, true
	case typetag.TagFloat32:
		return float32Codec, true
	case typetag.TagFloat64:
		return float64Codec, true
	case typetag.TagDecimal:
		return decimalCodec, true
	case typetag.TagUUID:
		return uuidCodec, true
	case typetag.TagDateTime:
		return dateTimeCodec, true
	case typetag.TagTimeSpan:
		return timeSpanCodec, true
	case typetag.TagDateOnly:
		return dateOnlyCodec, true
	case typetag.TagTimeOnly:
		return timeOnlyCodec, true
	case typetag.TagBool:
		return boolCodec, true
	default:
		return nil, false
	}
}

// Supports reports whether t has a codec.
func Supports(t typetag.Type) bool {
	_, ok := codecFor(t.Tag)
	return ok
}

// IsAbsent reports whether text carries no value.
func IsAbsent(text string) bool {
	return strings.TrimSpace(text) == ""
}

// Zero returns the value of an absent cell: the zero value of the tag's Go
// type, or a typed nil pointer for nullable types. It returns nil for
// unsupported tags.
func Zero(t typetag.Type) any {
	c, ok := codecFor(t.Tag)
	if !ok {
		return nil
	}

	return c.zero(t.Nullable)
}

// Parse converts text into a value of t. Absent text yields Zero(t).
func Parse(text string, t typetag.Type) (any, error) {
	return ParseField("", text, t)
}

// ParseField is Parse with the field name recorded in returned errors.
func ParseField(field, text string, t typetag.Type) (any, error) {
	c, ok := codecFor(t.Tag)
	if !ok {
		return nil, &ConfigurationError{Field: field, GoType: t.String(), Kind: ErrUnsupportedType}
	}

	if IsAbsent(text) {
		return c.zero(t.Nullable), nil
	}

	if t.Tag != typetag.TagText {
		text = strings.TrimSpace(text)
	}

	v, err := c.parseValue(text, t.Nullable)
	if err != nil {
		return nil, &ValueFormatError{Field: field, Text: text, Type: t, Err: err}
	}

	return v, nil
}

// ParseDefault parses a declared default value. Failures are configuration
// errors because they are detected while describing a record type.
func ParseDefault(field, text string, t typetag.Type) (any, error) {
	v, err := ParseField(field, text, t)
	if err != nil {
		if _, ok := err.(*ConfigurationError); ok {
			return nil, err
		}

		return nil, &ConfigurationError{Field: field, GoType: t.String(), Kind: ErrInvalidDefault, Err: err}
	}

	return v, nil
}

// Format renders v as the canonical text of t. Nil pointers render as "".
// v must hold the tag's canonical Go type or a pointer to it.
func Format(v any, t typetag.Type) (string, error) {
	c, ok := codecFor(t.Tag)
	if !ok {
		return "", &ConfigurationError{GoType: t.String(), Kind: ErrUnsupportedType}
	}

	s, ok := c.formatValue(v)
	if !ok {
		return "", &ConfigurationError{
			GoType: fmt.Sprintf("%T", v),
			Kind:   ErrUnsupportedType,
			Err:    fmt.Errorf("value is not a %s", t),
		}
	}

	return s, nil
}
