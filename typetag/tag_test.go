package typetag_test

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"sheet-mapper/typetag"
)

func Example() {
	type Status string
	type Empty struct{}

	fmt.Println(typetag.FromReflectType(reflect.TypeOf(int32(0))))
	fmt.Println(typetag.FromReflectType(reflect.TypeOf("")))
	fmt.Println(typetag.FromReflectType(reflect.TypeOf(Status(""))))
	fmt.Println(typetag.FromReflectType(reflect.TypeOf(time.Duration(0))))
	fmt.Println(typetag.FromReflectType(reflect.TypeOf(&time.Time{})))
	fmt.Println(typetag.FromReflectType(reflect.TypeOf(Empty{})))
	// Output:
	// int32 true
	// text true
	// text true
	// timespan true
	// datetime? true
	// unknown false
}

func TestFromReflectType(t *testing.T) {
	var nilInt *int

	tests := []struct {
		name     string
		value    any
		expected typetag.Type
		ok       bool
	}{
		{"string", "", typetag.Of(typetag.TagText), true},
		{"uint8", uint8(0), typetag.Of(typetag.TagByte), true},
		{"int16", int16(0), typetag.Of(typetag.TagShort), true},
		{"int32", int32(0), typetag.Of(typetag.TagInt32), true},
		{"int64", int64(0), typetag.Of(typetag.TagInt64), true},
		{"int", 0, typetag.Of(typetag.TagInt), true},
		{"float32", float32(0), typetag.Of(typetag.TagFloat32), true},
		{"float64", float64(0), typetag.Of(typetag.TagFloat64), true},
		{"decimal", decimal.Decimal{}, typetag.Of(typetag.TagDecimal), true},
		{"uuid", uuid.UUID{}, typetag.Of(typetag.TagUUID), true},
		{"time", time.Time{}, typetag.Of(typetag.TagDateTime), true},
		{"duration", time.Duration(0), typetag.Of(typetag.TagTimeSpan), true},
		{"date", typetag.Date{}, typetag.Of(typetag.TagDateOnly), true},
		{"time of day", typetag.TimeOfDay{}, typetag.Of(typetag.TagTimeOnly), true},
		{"bool", false, typetag.Of(typetag.TagBool), true},
		{"nullable int", nilInt, typetag.NullableOf(typetag.TagInt), true},
		{"uint32", uint32(0), typetag.Type{}, false},
		{"complex", complex128(0), typetag.Type{}, false},
		{"slice", []string{}, typetag.Type{}, false},
		{"map", map[string]int{}, typetag.Type{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := typetag.FromReflectType(reflect.TypeOf(tt.value))
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestTagGoTypeRoundTrip(t *testing.T) {
	for tag := typetag.Tag(1); int(tag) < typetag.TagTotal; tag++ {
		got, ok := typetag.FromReflectType(tag.GoType())
		assert.True(t, ok, tag.String())
		assert.Equal(t, tag, got.Tag, tag.String())
	}
}

func TestTagPredicates(t *testing.T) {
	assert.True(t, typetag.TagInt.IsInteger())
	assert.True(t, typetag.TagDecimal.IsNumber())
	assert.False(t, typetag.TagDecimal.IsInteger())
	assert.True(t, typetag.TagTimeSpan.IsTemporal())
	assert.False(t, typetag.TagText.IsNumber())
	assert.False(t, typetag.Tag(0).IsValid())
	assert.Equal(t, "unknown", typetag.Tag(99).Keyword())
	assert.Equal(t, "Tag(99)", typetag.Tag(99).String())
	assert.Equal(t, "TagUUID", typetag.TagUUID.String())
	assert.Equal(t, 16, typetag.TagShort.Bits())
	assert.Panics(t, func() { typetag.TagText.Bits() })
}

func TestCivilStrings(t *testing.T) {
	assert.Equal(t, "2024-03-07", typetag.Date{Year: 2024, Month: time.March, Day: 7}.String())
	assert.Equal(t, "09:05:00", typetag.TimeOfDay{Hour: 9, Minute: 5}.String())
	assert.Equal(t, "23:59:59.5", typetag.TimeOfDay{Hour: 23, Minute: 59, Second: 59, Nanosecond: 500_000_000}.String())

	ts := time.Date(2024, time.March, 7, 13, 14, 15, 0, time.UTC)
	assert.Equal(t, typetag.Date{Year: 2024, Month: time.March, Day: 7}, typetag.DateOf(ts))
	assert.Equal(t, typetag.TimeOfDay{Hour: 13, Minute: 14, Second: 15}, typetag.TimeOf(ts))
	assert.True(t, typetag.Date{}.IsZero())
}
