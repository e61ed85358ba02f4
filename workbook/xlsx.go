package workbook

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// macroPath makes excelize write the macro-enabled content type.
const macroPath = "Book1.xlsm"

type xlsxWorkbook struct {
	file   *excelize.File
	format Format
	fresh  bool // default sheet not yet used
}

func openXLSX(r io.Reader, format Format) (*xlsxWorkbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		if errors.Is(err, zip.ErrFormat) || errors.Is(err, excelize.ErrWorkbookFileFormat) {
			return nil, &UnsupportedFormatError{Format: string(format), Err: err}
		}

		return nil, fmt.Errorf("open %s workbook: %w", format, err)
	}

	if format == FormatXLSM {
		f.Path = macroPath
	}

	return &xlsxWorkbook{file: f, format: format}, nil
}

func newXLSX(format Format) *xlsxWorkbook {
	f := excelize.NewFile()
	if format == FormatXLSM {
		f.Path = macroPath
	}

	return &xlsxWorkbook{file: f, format: format, fresh: true}
}

func (w *xlsxWorkbook) Format() Format { return w.format }

func (w *xlsxWorkbook) Sheets() []string { return w.file.GetSheetList() }

func (w *xlsxWorkbook) Sheet(name string) (Sheet, error) {
	if name == "" {
		name = w.file.GetSheetName(w.file.GetActiveSheetIndex())
	}

	idx, err := w.file.GetSheetIndex(name)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", name, err)
	}

	if idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, name)
	}

	w.fresh = false

	return &xlsxSheet{wb: w, name: name}, nil
}

func (w *xlsxWorkbook) NewSheet(name string) (Sheet, error) {
	if name == "" {
		return w.Sheet("")
	}

	idx, err := w.file.GetSheetIndex(name)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", name, err)
	}

	switch {
	case idx >= 0:
	case w.fresh:
		if err := w.file.SetSheetName(DefaultSheetName, name); err != nil {
			return nil, fmt.Errorf("rename default sheet to %q: %w", name, err)
		}
	default:
		if _, err := w.file.NewSheet(name); err != nil {
			return nil, fmt.Errorf("create sheet %q: %w", name, err)
		}
	}

	w.fresh = false

	return &xlsxSheet{wb: w, name: name}, nil
}

func (w *xlsxWorkbook) Write(out io.Writer) error {
	if err := w.file.Write(out); err != nil {
		return fmt.Errorf("write %s workbook: %w", w.format, err)
	}

	return nil
}

func (w *xlsxWorkbook) Close() error {
	return w.file.Close()
}

type xlsxSheet struct {
	wb   *xlsxWorkbook
	name string
}

func (s *xlsxSheet) Name() string { return s.name }

func (s *xlsxSheet) Rows() (RowIterator, error) {
	rows, err := s.wb.file.Rows(s.name)
	if err != nil {
		return nil, fmt.Errorf("rows of sheet %q: %w", s.name, err)
	}

	return &xlsxRows{rows: rows}, nil
}

func (s *xlsxSheet) SetRow(index int, cells []string) error {
	for i, text := range cells {
		if text == "" {
			continue
		}

		cell, err := excelize.CoordinatesToCellName(i+1, index+1)
		if err != nil {
			return err
		}

		if err := s.wb.file.SetCellStr(s.name, cell, text); err != nil {
			return fmt.Errorf("set %s!%s: %w", s.name, cell, err)
		}
	}

	return nil
}

func (s *xlsxSheet) SetColumnWidth(col, width int) error {
	name, err := excelize.ColumnNumberToName(col + 1)
	if err != nil {
		return err
	}

	return s.wb.file.SetColWidth(s.name, name, name, columnChars(width))
}

// headerStyle is bold white text on a dark fill with a bottom border.
var headerStyle = excelize.Style{
	Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
	Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"595959"}},
	Border: []excelize.Border{
		{Type: "bottom", Color: "000000", Style: 1},
	},
	Alignment: &excelize.Alignment{Vertical: "center"},
}

func (s *xlsxSheet) StyleHeader(row, cols int) error {
	if cols <= 0 {
		return nil
	}

	style := headerStyle

	id, err := s.wb.file.NewStyle(&style)
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	first, err := excelize.CoordinatesToCellName(1, row+1)
	if err != nil {
		return err
	}

	last, err := excelize.CoordinatesToCellName(cols, row+1)
	if err != nil {
		return err
	}

	return s.wb.file.SetCellStyle(s.name, first, last, id)
}

type xlsxRows struct {
	rows *excelize.Rows
}

func (r *xlsxRows) Next() bool { return r.rows.Next() }

func (r *xlsxRows) Cells() ([]string, error) { return r.rows.Columns() }

func (r *xlsxRows) Err() error { return r.rows.Error() }

func (r *xlsxRows) Close() error { return r.rows.Close() }
