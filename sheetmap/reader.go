package sheetmap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"maps"
	"os"

	"sheet-mapper/config"
	"sheet-mapper/header"
	"sheet-mapper/workbook"
)

// Reader owns an open workbook and one of its sheets. Its rows can be
// iterated once. A Reader is not safe for concurrent use.
type Reader struct {
	cfg   *config.Config
	log   *slog.Logger
	wb    workbook.Workbook
	sheet workbook.Sheet

	consumed bool
	closed   bool
	columns  *header.ColumnMap
	diags    header.Diagnostics
}

// Open reads a workbook from src. cfg.Format must be set; nil cfg means
// defaults, which fail for lack of a format.
func Open(src io.Reader, cfg *config.Config) (*Reader, error) {
	cfg, err := resolveConfig(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Format == "" {
		return nil, &workbook.UnsupportedFormatError{Err: errors.New("format not set")}
	}

	wb, err := workbook.Open(src, cfg.Format, workbook.WithDelimiter(cfg.Delimiter()))
	if err != nil {
		return nil, err
	}

	sheet, err := wb.Sheet(cfg.SheetName)
	if err != nil {
		_ = wb.Close()
		return nil, err
	}

	log := cfg.Log().With(slog.String("sheet", sheet.Name()))
	log.Debug("opened workbook", slog.String("format", string(cfg.Format)))

	return &Reader{cfg: cfg, log: log, wb: wb, sheet: sheet}, nil
}

// OpenFile opens the workbook at path. An unset format is taken from the
// file extension.
func OpenFile(path string, cfg *config.Config) (*Reader, error) {
	cfg, err := resolveConfig(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Format == "" {
		if cfg.Format, err = workbook.FormatFromPath(path); err != nil {
			return nil, err
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return Open(f, cfg)
}

// Close releases the workbook.
func (r *Reader) Close() error {
	if r.closed {
		return nil
	}

	r.closed = true

	return r.wb.Close()
}

// SheetName returns the name of the sheet being read.
func (r *Reader) SheetName() string { return r.sheet.Name() }

// Columns returns the column map of the last iteration, or nil before one
// started.
func (r *Reader) Columns() *header.ColumnMap { return r.columns }

// Diagnostics returns the reconciliation diagnostics of the last iteration.
func (r *Reader) Diagnostics() header.Diagnostics { return r.diags }

// Reconcile matches the header row against fields without consuming the
// data rows. Aliases are taken from the config.
func (r *Reader) Reconcile(fields []string) (*header.ColumnMap, header.Diagnostics, error) {
	if r.closed {
		return nil, header.Diagnostics{}, ErrClosed
	}

	it, err := r.sheet.Rows()
	if err != nil {
		return nil, header.Diagnostics{}, err
	}
	defer it.Close()

	cells, err := headerRow(it)
	if err != nil {
		return nil, header.Diagnostics{}, err
	}

	cm, diags := header.Reconcile(cells, fields, r.headerOptions(fieldAliases(r.cfg, fields, nil)))

	return cm, diags, nil
}

// Rows yields every non-blank data row keyed by trimmed header text.
func (r *Reader) Rows(ctx context.Context) iter.Seq2[map[string]string, error] {
	return func(yield func(map[string]string, error) bool) {
		err := r.scan(ctx, nil, nil, func(_ int, raw header.RawRow) bool {
			return yield(maps.Clone(raw), nil)
		})
		if err != nil {
			yield(nil, err)
		}
	}
}

func (r *Reader) headerOptions(aliases map[string]string) header.Options {
	opts := header.DefaultOptions()
	opts.Threshold = r.cfg.MatchingThreshold
	opts.Aliases = aliases

	return opts
}

// scan reconciles the header row and hands every non-blank data row to fn
// with its 1-based sheet row number. Cancellation is checked before each
// row and ends the scan without error.
func (r *Reader) scan(ctx context.Context, fields []string, aliases map[string]string, fn func(row int, raw header.RawRow) bool) error {
	if r.closed {
		return ErrClosed
	}

	if r.consumed {
		return ErrConsumed
	}

	r.consumed = true

	it, err := r.sheet.Rows()
	if err != nil {
		return err
	}
	defer it.Close()

	cells, err := headerRow(it)
	if err != nil {
		return err
	}

	r.columns, r.diags = header.Reconcile(cells, fields, r.headerOptions(aliases))
	logDiagnostics(r.log, r.diags)

	row := 1

	for {
		if err := ctx.Err(); err != nil {
			r.log.Debug("read cancelled", slog.Int("row", row), slog.Any("cause", err))
			return nil
		}

		if !it.Next() {
			break
		}

		row++

		data, err := it.Cells()
		if err != nil {
			return &RowError{Row: row, Err: err}
		}

		raw, blank := r.columns.Extract(data)
		if blank {
			continue
		}

		if !fn(row, raw) {
			return nil
		}
	}

	return it.Err()
}

// headerRow reads the first row of it. An empty sheet has an empty header.
func headerRow(it workbook.RowIterator) ([]header.Cell, error) {
	if !it.Next() {
		return nil, it.Err()
	}

	cells, err := it.Cells()
	if err != nil {
		return nil, &RowError{Row: 1, Err: err}
	}

	return header.CellsFromRow(cells), nil
}

// ReadMaps reads every non-blank row of src as a map keyed by header text
// and closes the workbook.
func ReadMaps(ctx context.Context, src io.Reader, cfg *config.Config) ([]map[string]string, error) {
	r, err := Open(src, cfg)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var rows []map[string]string

	for row, err := range r.Rows(ctx) {
		if err != nil {
			return rows, err
		}

		rows = append(rows, row)
	}

	return rows, nil
}
