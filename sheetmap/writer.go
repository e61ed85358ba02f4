package sheetmap

import (
	"context"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"os"
	"slices"
	"unicode/utf8"

	"sheet-mapper/config"
	"sheet-mapper/header"
	"sheet-mapper/schema"
	"sheet-mapper/workbook"
)

// Writer builds a single-table workbook in memory. A Writer is not safe for
// concurrent use.
type Writer struct {
	cfg   *config.Config
	log   *slog.Logger
	wb    workbook.Workbook
	sheet workbook.Sheet

	written bool
	closed  bool
}

// NewWriter creates an empty workbook for cfg. An unset format means xlsx.
func NewWriter(cfg *config.Config) (*Writer, error) {
	cfg, err := resolveConfig(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Format == "" {
		cfg.Format = workbook.FormatXLSX
	}

	wb, err := workbook.New(cfg.Format, workbook.WithDelimiter(cfg.Delimiter()))
	if err != nil {
		return nil, err
	}

	sheet, err := wb.NewSheet(cfg.SheetName)
	if err != nil {
		_ = wb.Close()
		return nil, err
	}

	log := cfg.Log().With(slog.String("sheet", sheet.Name()))

	return &Writer{cfg: cfg, log: log, wb: wb, sheet: sheet}, nil
}

// Flush serializes the workbook to out.
func (w *Writer) Flush(out io.Writer) error {
	if w.closed {
		return ErrClosed
	}

	return w.wb.Write(out)
}

// Close releases the workbook.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}

	w.closed = true

	return w.wb.Close()
}

// table is the column layout of a written sheet.
type table struct {
	columns *header.ColumnMap
	labels  []string
	sizes   []int // widest text per column, in characters
}

func (w *Writer) begin(fields, labels []string) (*table, error) {
	if w.closed {
		return nil, ErrClosed
	}

	if w.written {
		return nil, ErrTableWritten
	}

	w.written = true

	t := &table{
		columns: header.Sequential(fields),
		labels:  labels,
		sizes:   make([]int, len(fields)),
	}

	for i := range fields {
		t.sizes[i] = max(utf8.RuneCountInString(labels[i]), utf8.RuneCountInString(fields[i])) + 1
	}

	if err := w.sheet.SetRow(0, labels); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	if styler, ok := w.sheet.(workbook.HeaderStyler); ok && w.cfg.HeaderStyled() {
		if err := styler.StyleHeader(0, len(labels)); err != nil {
			return nil, err
		}
	}

	return t, nil
}

func (t *table) track(cells []string) {
	for i, text := range cells {
		t.sizes[i] = max(t.sizes[i], utf8.RuneCountInString(text))
	}
}

func (w *Writer) finish(t *table, rows int) error {
	for i, size := range t.sizes {
		if err := w.sheet.SetColumnWidth(i, size*w.cfg.ColumnSizeCoefficient); err != nil {
			return fmt.Errorf("size column %d: %w", i, err)
		}
	}

	w.log.Debug("wrote table", slog.Int("columns", t.columns.Len()), slog.Int("rows", rows))

	return nil
}

// cancelled reports a done ctx, logging the stop.
func (w *Writer) cancelled(ctx context.Context, rows int) bool {
	if err := ctx.Err(); err != nil {
		w.log.Debug("write cancelled", slog.Int("rows", rows), slog.Any("cause", err))
		return true
	}

	return false
}

// layout picks the written fields of d: the configured columns, else every
// field in declaration order.
func layout[T any](cfg *config.Config, d *schema.Descriptor[T]) ([]schema.FieldSpec, error) {
	if len(cfg.Columns) == 0 {
		return d.Columns(), nil
	}

	fields := make([]schema.FieldSpec, 0, len(cfg.Columns))

	for _, name := range cfg.Columns {
		f, ok := d.Field(name)
		if !ok {
			return nil, fmt.Errorf("column %q: %w", name, schema.ErrUnknownField)
		}

		fields = append(fields, f)
	}

	return fields, nil
}

// WriteRecords writes a header row and one row per record. A nil descriptor
// means schema.Describe[T]. Labels are the configured header, else the
// field alias, else the field name. Cancelling ctx stops before the next
// record; what was written stays a valid table.
func WriteRecords[T any](ctx context.Context, w *Writer, d *schema.Descriptor[T], records iter.Seq[T]) error {
	d, err := describe(d)
	if err != nil {
		return err
	}

	fields, err := layout(w.cfg, d)
	if err != nil {
		return err
	}

	names := make([]string, len(fields))
	labels := make([]string, len(fields))

	for i, f := range fields {
		names[i] = f.Name
		labels[i] = f.Label()

		if label, ok := w.cfg.Alias(f.Name); ok {
			labels[i] = label
		}
	}

	t, err := w.begin(names, labels)
	if err != nil {
		return err
	}

	rows := 0

	for rec := range records {
		if w.cancelled(ctx, rows) {
			break
		}

		cells := make([]string, len(fields))

		for i, f := range fields {
			v, err := d.Get(&rec, f.Name)
			if err != nil {
				return err
			}

			if cells[i], err = f.Format(v); err != nil {
				return &RowError{Row: rows + 2, Err: err}
			}
		}

		if err := w.sheet.SetRow(rows+1, cells); err != nil {
			return &RowError{Row: rows + 2, Err: err}
		}

		t.track(cells)
		rows++
	}

	return w.finish(t, rows)
}

// WriteRows writes an untyped table: headers in order, then one row per map.
// Configured labels replace header names.
func (w *Writer) WriteRows(ctx context.Context, headers []string, rows iter.Seq[map[string]string]) error {
	labels := slices.Clone(headers)
	for i, h := range headers {
		if label, ok := w.cfg.Alias(h); ok {
			labels[i] = label
		}
	}

	t, err := w.begin(headers, labels)
	if err != nil {
		return err
	}

	n := 0

	for row := range rows {
		if w.cancelled(ctx, n) {
			break
		}

		cells := make([]string, len(headers))
		for i, h := range headers {
			cells[i] = row[h]
		}

		if err := w.sheet.SetRow(n+1, cells); err != nil {
			return &RowError{Row: n + 2, Err: err}
		}

		t.track(cells)
		n++
	}

	return w.finish(t, n)
}

// Write writes records to out as a single-table workbook.
func Write[T any](ctx context.Context, out io.Writer, d *schema.Descriptor[T], records []T, cfg *config.Config) error {
	w, err := NewWriter(cfg)
	if err != nil {
		return err
	}
	defer w.Close()

	if err := WriteRecords(ctx, w, d, slices.Values(records)); err != nil {
		return err
	}

	return w.Flush(out)
}

// WriteFile is Write to a file path. An unset format is taken from the file
// extension.
func WriteFile[T any](ctx context.Context, path string, d *schema.Descriptor[T], records []T, cfg *config.Config) error {
	cfg, err := resolveConfig(cfg)
	if err != nil {
		return err
	}

	if cfg.Format == "" {
		if cfg.Format, err = workbook.FormatFromPath(path); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := Write(ctx, f, d, records, cfg); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
