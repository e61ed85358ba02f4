package workbook

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/oleg578/swiftcsv"
)

const utf8BOM = "\ufeff"

// csvWorkbook is a single-sheet workbook. Sheet names are labels only: any
// name resolves to the one sheet.
type csvWorkbook struct {
	opts  options
	sheet *csvSheet
}

func openCSV(r io.Reader, o options) (*csvWorkbook, error) {
	reader := swiftcsv.NewReader(r)
	reader.Comma = o.delimiter

	var rows [][]string

	for {
		// rows may be ragged; each record sets its own width
		reader.FieldsPerRecord = 0

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}

		rows = append(rows, record)
	}

	if len(rows) > 0 && len(rows[0]) > 0 {
		rows[0][0] = strings.TrimPrefix(rows[0][0], utf8BOM)
	}

	return &csvWorkbook{opts: o, sheet: &csvSheet{name: DefaultSheetName, rows: rows}}, nil
}

func newCSV(o options) *csvWorkbook {
	return &csvWorkbook{opts: o, sheet: &csvSheet{name: DefaultSheetName}}
}

func (w *csvWorkbook) Format() Format { return FormatCSV }

func (w *csvWorkbook) Sheets() []string { return []string{w.sheet.name} }

func (w *csvWorkbook) Sheet(string) (Sheet, error) { return w.sheet, nil }

func (w *csvWorkbook) NewSheet(name string) (Sheet, error) {
	if name != "" {
		w.sheet.name = name
	}

	return w.sheet, nil
}

func (w *csvWorkbook) Write(out io.Writer) error {
	width := 0
	for _, row := range w.sheet.rows {
		width = max(width, len(row))
	}

	cw := swiftcsv.NewWriter(out)
	cw.Comma = w.opts.delimiter

	for _, row := range w.sheet.rows {
		record := make([]string, width)
		copy(record, row)

		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
	}

	if err := cw.Flush(); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}

	return nil
}

func (w *csvWorkbook) Close() error {
	w.sheet.rows = nil
	return nil
}

type csvSheet struct {
	name string
	rows [][]string
}

func (s *csvSheet) Name() string { return s.name }

func (s *csvSheet) Rows() (RowIterator, error) {
	return &sliceRows{rows: s.rows, pos: -1}, nil
}

func (s *csvSheet) SetRow(index int, cells []string) error {
	if index < 0 {
		return fmt.Errorf("row index %d out of range", index)
	}

	for len(s.rows) <= index {
		s.rows = append(s.rows, nil)
	}

	row := s.rows[index]
	for len(row) < len(cells) {
		row = append(row, "")
	}

	for i, text := range cells {
		if text != "" {
			row[i] = text
		}
	}

	s.rows[index] = row

	return nil
}

// SetColumnWidth is a no-op: csv has no column widths.
func (s *csvSheet) SetColumnWidth(int, int) error { return nil }

type sliceRows struct {
	rows [][]string
	pos  int
}

func (r *sliceRows) Next() bool {
	if r.pos+1 >= len(r.rows) {
		r.pos = len(r.rows)
		return false
	}

	r.pos++

	return true
}

func (r *sliceRows) Cells() ([]string, error) {
	if r.pos < 0 || r.pos >= len(r.rows) {
		return nil, fmt.Errorf("no current row")
	}

	return r.rows[r.pos], nil
}

func (r *sliceRows) Err() error { return nil }

func (r *sliceRows) Close() error {
	r.rows = nil
	return nil
}
