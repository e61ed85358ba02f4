package sheetmap

import (
	"sheet-mapper/header"
	"sheet-mapper/schema"
)

// materializer builds records of T from raw rows.
type materializer[T any] struct {
	desc     *schema.Descriptor[T]
	required []schema.FieldSpec
	optional []schema.FieldSpec
}

func newMaterializer[T any](d *schema.Descriptor[T]) *materializer[T] {
	fields := d.Fields()

	return &materializer[T]{
		desc:     d,
		required: fields[:d.Required()],
		optional: fields[d.Required():],
	}
}

// materialize resolves the required fields, constructs the record with them
// and then assigns the optional fields. An optional field with neither a
// column nor a default keeps the value the constructor gave it.
func (m *materializer[T]) materialize(raw header.RawRow) (T, error) {
	args := make([]any, len(m.required))

	for i, f := range m.required {
		v, err := f.Resolve(raw.Text(f.Name))
		if err != nil {
			var zero T
			return zero, err
		}

		args[i] = v
	}

	rec, err := m.desc.New(args)
	if err != nil {
		return rec, err
	}

	for _, f := range m.optional {
		text, mapped := raw[f.Name]
		if !mapped && !f.HasDefault {
			continue
		}

		v, err := f.Resolve(text)
		if err != nil {
			var zero T
			return zero, err
		}

		if err := m.desc.Set(&rec, f.Name, v); err != nil {
			var zero T
			return zero, err
		}
	}

	return rec, nil
}
