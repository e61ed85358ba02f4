// Package typetag defines the closed set of cell value types that can be
// mapped between spreadsheet text and Go record fields.
package typetag

import (
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate go tool stringer -type=Tag -output=tag_string.go

type Tag int

const (
	_ Tag = iota // skip zero value, use it as a default (invalid) value for Tag

	TagText
	TagByte
	TagShort
	TagInt32
	TagInt64
	TagInt
	TagFloat32
	TagFloat64
	TagDecimal
	TagUUID
	TagDateTime
	TagTimeSpan
	TagDateOnly
	TagTimeOnly
	TagBool

	// TagTotal is a constant that represents the total number of tags defined
	TagTotal = int(iota)
)

var keywords = [...]string{
	TagText:     "text",
	TagByte:     "byte",
	TagShort:    "short",
	TagInt32:    "int32",
	TagInt64:    "int64",
	TagInt:      "int",
	TagFloat32:  "float32",
	TagFloat64:  "float64",
	TagDecimal:  "decimal",
	TagUUID:     "uuid",
	TagDateTime: "datetime",
	TagTimeSpan: "timespan",
	TagDateOnly: "date",
	TagTimeOnly: "time",
	TagBool:     "bool",
}

// IsValid reports whether t is one of the defined tags.
func (t Tag) IsValid() bool {
	return t > 0 && int(t) < TagTotal
}

// Keyword returns the lower-case name used in messages and configuration.
func (t Tag) Keyword() string {
	if !t.IsValid() {
		return "unknown"
	}

	return keywords[t]
}

func (t Tag) IsNumber() bool {
	switch t {
	default:
		return false
	case TagByte, TagShort, TagInt32, TagInt64, TagInt, TagFloat32, TagFloat64, TagDecimal:
		return true
	}
}

func (t Tag) IsInteger() bool {
	switch t {
	default:
		return false
	case TagByte, TagShort, TagInt32, TagInt64, TagInt:
		return true
	}
}

func (t Tag) IsTemporal() bool {
	switch t {
	default:
		return false
	case TagDateTime, TagTimeSpan, TagDateOnly, TagTimeOnly:
		return true
	}
}

// Bits returns the storage width of integer and float tags.
func (t Tag) Bits() int {
	switch t {
	default:
		panic("only numeric tags has meaningful bits amount, but requested for: " + t.String())
	case TagByte:
		return 8
	case TagShort:
		return 16
	case TagInt32, TagFloat32:
		return 32
	case TagInt64, TagFloat64:
		return 64
	case TagInt:
		return strconvIntSize
	}
}

const strconvIntSize = 32 << (^uint(0) >> 63)

// Type is a tag plus nullability. Nullable values are pointer fields in Go.
type Type struct {
	Tag      Tag
	Nullable bool
}

// Of returns the non-nullable Type for tag.
func Of(tag Tag) Type { return Type{Tag: tag} }

// NullableOf returns the nullable Type for tag.
func NullableOf(tag Tag) Type { return Type{Tag: tag, Nullable: true} }

func (t Type) String() string {
	if t.Nullable {
		return t.Tag.Keyword() + "?"
	}

	return t.Tag.Keyword()
}

var (
	timeType      = reflect.TypeOf(time.Time{})
	durationType  = reflect.TypeOf(time.Duration(0))
	uuidType      = reflect.TypeOf(uuid.UUID{})
	decimalType   = reflect.TypeOf(decimal.Decimal{})
	dateType      = reflect.TypeOf(Date{})
	timeOfDayType = reflect.TypeOf(TimeOfDay{})
)

// FromReflectType infers the Type of a struct field. A single pointer level
// marks the type as nullable. Named types are accepted when their underlying
// kind is one of the basic kinds in the set.
func FromReflectType(rtype reflect.Type) (Type, bool) {
	if rtype == nil {
		return Type{}, false
	}

	nullable := false
	if rtype.Kind() == reflect.Ptr {
		nullable = true
		rtype = rtype.Elem()
	}

	tag := tagOf(rtype)
	if tag == 0 {
		return Type{}, false
	}

	return Type{Tag: tag, Nullable: nullable}, true
}

// GoType returns the canonical Go type carried by values of tag.
func (t Tag) GoType() reflect.Type {
	switch t {
	case TagText:
		return reflect.TypeOf("")
	case TagByte:
		return reflect.TypeOf(uint8(0))
	case TagShort:
		return reflect.TypeOf(int16(0))
	case TagInt32:
		return reflect.TypeOf(int32(0))
	case TagInt64:
		return reflect.TypeOf(int64(0))
	case TagInt:
		return reflect.TypeOf(0)
	case TagFloat32:
		return reflect.TypeOf(float32(0))
	case TagFloat64:
		return reflect.TypeOf(float64(0))
	case TagDecimal:
		return decimalType
	case TagUUID:
		return uuidType
	case TagDateTime:
		return timeType
	case TagTimeSpan:
		return durationType
	case TagDateOnly:
		return dateType
	case TagTimeOnly:
		return timeOfDayType
	case TagBool:
		return reflect.TypeOf(false)
	default:
		return nil
	}
}

func tagOf(rtype reflect.Type) Tag {
	// exact types first: Duration is an int64 and must not fall through
	switch rtype {
	case timeType:
		return TagDateTime
	case durationType:
		return TagTimeSpan
	case uuidType:
		return TagUUID
	case decimalType:
		return TagDecimal
	case dateType:
		return TagDateOnly
	case timeOfDayType:
		return TagTimeOnly
	}

	switch rtype.Kind() {
	default:
		return 0
	case reflect.String:
		return TagText
	case reflect.Uint8:
		return TagByte
	case reflect.Int16:
		return TagShort
	case reflect.Int32:
		return TagInt32
	case reflect.Int64:
		return TagInt64
	case reflect.Int:
		return TagInt
	case reflect.Float32:
		return TagFloat32
	case reflect.Float64:
		return TagFloat64
	case reflect.Bool:
		return TagBool
	}
}
