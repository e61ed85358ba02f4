package schema

import (
	"reflect"

	"sheet-mapper/typetag"
)

// Builder assembles a Descriptor from explicit field accessors.
//
// get returns the canonical Go value of the field type (a pointer to it for
// nullable fields, nil when unset); set receives the same.
type Builder[T any] struct {
	name   string
	specs  []FieldSpec
	access []accessor[T]
	ctor   Constructor[T]
}

// NewBuilder starts a descriptor for T.
func NewBuilder[T any]() *Builder[T] {
	return &Builder[T]{name: reflect.TypeFor[T]().Name()}
}

// Named overrides the record type name used in messages.
func (b *Builder[T]) Named(name string) *Builder[T] {
	b.name = name
	return b
}

// Field registers the next field in declaration order.
func (b *Builder[T]) Field(name string, t typetag.Type, get func(*T) any, set func(*T, any), opts ...FieldOption) *Builder[T] {
	spec := FieldSpec{Name: name, Type: t}
	for _, opt := range opts {
		opt(&spec)
	}

	b.specs = append(b.specs, spec)
	b.access = append(b.access, accessor[T]{get: get, set: set})

	return b
}

// Constructor sets the function that builds records from required values.
func (b *Builder[T]) Constructor(fn Constructor[T]) *Builder[T] {
	b.ctor = fn
	return b
}

// Build validates the fields and returns the descriptor.
func (b *Builder[T]) Build() (*Descriptor[T], error) {
	d, err := newDescriptor(b.name, append([]FieldSpec(nil), b.specs...), append([]accessor[T](nil), b.access...))
	if err != nil {
		return nil, err
	}

	d.ctor = b.ctor

	return d, nil
}

// MustBuild is like Build but panics on error. Generated descriptors use it
// in package-level variables.
func (b *Builder[T]) MustBuild() *Descriptor[T] {
	d, err := b.Build()
	if err != nil {
		panic(err)
	}

	return d
}
