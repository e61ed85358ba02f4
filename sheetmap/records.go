package sheetmap

import (
	"context"
	"io"
	"iter"

	"sheet-mapper/config"
	"sheet-mapper/header"
	"sheet-mapper/schema"
)

// describe returns d, or the reflection-derived descriptor of T when d is
// nil.
func describe[T any](d *schema.Descriptor[T]) (*schema.Descriptor[T], error) {
	if d != nil {
		return d, nil
	}

	return schema.Describe[T]()
}

// Records yields the records of r's sheet. A nil descriptor means
// schema.Describe[T]. The sequence is lazy and single-pass: a second range
// yields ErrConsumed. The first parse failure is yielded as a *RowError and
// ends the sequence. Cancelling ctx ends it without an error.
func Records[T any](ctx context.Context, r *Reader, d *schema.Descriptor[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T

		d, err := describe(d)
		if err != nil {
			yield(zero, err)
			return
		}

		fields := d.Names()
		m := newMaterializer(d)

		err = r.scan(ctx, fields, fieldAliases(r.cfg, fields, d.Aliases()), func(row int, raw header.RawRow) bool {
			rec, err := m.materialize(raw)
			if err != nil {
				yield(zero, &RowError{Row: row, Err: err})
				return false
			}

			return yield(rec, nil)
		})
		if err != nil {
			yield(zero, err)
		}
	}
}

// Read reads every record of src and closes the workbook.
func Read[T any](ctx context.Context, src io.Reader, d *schema.Descriptor[T], cfg *config.Config) ([]T, error) {
	r, err := Open(src, cfg)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return collect(ctx, r, d)
}

// ReadFile is Read for a file path.
func ReadFile[T any](ctx context.Context, path string, d *schema.Descriptor[T], cfg *config.Config) ([]T, error) {
	r, err := OpenFile(path, cfg)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return collect(ctx, r, d)
}

// collect drains Records, returning the records read before any error.
func collect[T any](ctx context.Context, r *Reader, d *schema.Descriptor[T]) ([]T, error) {
	var records []T

	for rec, err := range Records(ctx, r, d) {
		if err != nil {
			return records, err
		}

		records = append(records, rec)
	}

	return records, nil
}
