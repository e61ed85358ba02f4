package schema

import (
	"errors"
	"fmt"
	"reflect"
	"slices"

	"sheet-mapper/coerce"
)

// ErrDuplicateField is the configuration error kind for two fields sharing
// a name or an alias.
var ErrDuplicateField = errors.New("duplicate field")

// ErrInvalidTag is the configuration error kind for a malformed `sheet` tag.
var ErrInvalidTag = errors.New("invalid struct tag")

// ErrUnknownField is returned when a descriptor is asked about a field it
// does not have.
var ErrUnknownField = errors.New("unknown field")

type accessor[T any] struct {
	get func(*T) any
	set func(*T, any)
}

// Constructor builds a record from the required field values in
// construction order.
type Constructor[T any] func(args []any) (T, error)

// Descriptor is the immutable field list of record type T.
type Descriptor[T any] struct {
	name     string
	columns  []FieldSpec // declaration order
	access   []accessor[T]
	order    []int // construction order, indexes into columns
	required int
	byName   map[string]int
	ctor     Constructor[T]
}

func newDescriptor[T any](name string, specs []FieldSpec, access []accessor[T]) (*Descriptor[T], error) {
	d := &Descriptor[T]{
		name:    name,
		columns: specs,
		access:  access,
		byName:  make(map[string]int, len(specs)),
	}

	aliases := make(map[string]string, len(specs))

	for i := range d.columns {
		f := &d.columns[i]
		f.Position = i

		if _, dup := d.byName[f.Name]; dup || f.Name == "" {
			return nil, &coerce.ConfigurationError{Field: f.Name, Kind: ErrDuplicateField}
		}

		d.byName[f.Name] = i

		if f.Alias != "" {
			if other, dup := aliases[f.Alias]; dup {
				return nil, &coerce.ConfigurationError{
					Field: f.Name,
					Kind:  ErrDuplicateField,
					Err:   fmt.Errorf("alias %q already used by %s", f.Alias, other),
				}
			}

			aliases[f.Alias] = f.Name
		}

		if !coerce.Supports(f.Type) {
			return nil, &coerce.ConfigurationError{Field: f.Name, GoType: f.Type.String(), Kind: coerce.ErrUnsupportedType}
		}

		if f.HasDefault {
			v, err := coerce.ParseDefault(f.Name, f.DefaultText, f.Type)
			if err != nil {
				return nil, err
			}

			f.Default = v
		}
	}

	for i, f := range d.columns {
		if f.Required {
			d.order = append(d.order, i)
		}
	}

	d.required = len(d.order)

	for i, f := range d.columns {
		if !f.Required {
			d.order = append(d.order, i)
		}
	}

	return d, nil
}

// Name returns the record type name.
func (d *Descriptor[T]) Name() string { return d.name }

// Len returns the number of fields.
func (d *Descriptor[T]) Len() int { return len(d.columns) }

// Fields returns the fields in construction order: required fields in
// declaration order, then the optional ones.
func (d *Descriptor[T]) Fields() []FieldSpec {
	result := make([]FieldSpec, len(d.order))
	for i, idx := range d.order {
		result[i] = d.columns[idx]
	}

	return result
}

// Columns returns the fields in declaration order.
func (d *Descriptor[T]) Columns() []FieldSpec {
	return slices.Clone(d.columns)
}

// Names returns the field names in declaration order.
func (d *Descriptor[T]) Names() []string {
	names := make([]string, len(d.columns))
	for i, f := range d.columns {
		names[i] = f.Name
	}

	return names
}

// Field looks a field up by name.
func (d *Descriptor[T]) Field(name string) (FieldSpec, bool) {
	i, ok := d.byName[name]
	if !ok {
		return FieldSpec{}, false
	}

	return d.columns[i], true
}

// Aliases returns the declared aliases keyed by field name.
func (d *Descriptor[T]) Aliases() map[string]string {
	result := make(map[string]string)

	for _, f := range d.columns {
		if f.Alias != "" {
			result[f.Name] = f.Alias
		}
	}

	return result
}

// Required returns the number of required fields.
func (d *Descriptor[T]) Required() int { return d.required }

// WithConstructor returns a copy of d that builds records with fn.
func (d *Descriptor[T]) WithConstructor(fn Constructor[T]) *Descriptor[T] {
	c := *d
	c.ctor = fn

	return &c
}

// New builds a record from the required values in construction order. Without
// a constructor the values are assigned to a zero record.
func (d *Descriptor[T]) New(args []any) (T, error) {
	var rec T

	if len(args) != d.required {
		return rec, fmt.Errorf("%s: want %d constructor arguments, got %d", d.name, d.required, len(args))
	}

	if d.ctor != nil {
		built, err := d.ctor(args)
		if err != nil {
			return built, fmt.Errorf("construct %s: %w", d.name, err)
		}

		return built, nil
	}

	for i, v := range args {
		idx := d.order[i]
		if err := d.setAt(&rec, idx, v); err != nil {
			return rec, err
		}
	}

	return rec, nil
}

// Get returns the value of field name in rec.
func (d *Descriptor[T]) Get(rec *T, name string) (any, error) {
	i, ok := d.byName[name]
	if !ok {
		return nil, fmt.Errorf("%s.%s: %w", d.name, name, ErrUnknownField)
	}

	return d.access[i].get(rec), nil
}

// Set assigns v to field name in rec. v must be the canonical Go value of
// the field type, or a pointer to it for nullable fields.
func (d *Descriptor[T]) Set(rec *T, name string, v any) error {
	i, ok := d.byName[name]
	if !ok {
		return fmt.Errorf("%s.%s: %w", d.name, name, ErrUnknownField)
	}

	return d.setAt(rec, i, v)
}

func (d *Descriptor[T]) setAt(rec *T, i int, v any) error {
	f := d.columns[i]

	want := f.Type.Tag.GoType()
	if f.Type.Nullable {
		want = reflect.PointerTo(want)
	}

	if v == nil {
		v = reflect.Zero(want).Interface()
	}

	if got := reflect.TypeOf(v); got != want {
		return &coerce.ConfigurationError{
			Field:  f.Name,
			GoType: got.String(),
			Kind:   coerce.ErrUnsupportedType,
			Err:    fmt.Errorf("want %s", want),
		}
	}

	d.access[i].set(rec, v)

	return nil
}
