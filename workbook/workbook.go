package workbook

import (
	"io"
)

// DefaultSheetName is the sheet a fresh workbook starts with.
const DefaultSheetName = "Sheet1"

// MaxColumnWidth is the widest column a spreadsheet accepts, in characters.
const MaxColumnWidth = 255

// WidthUnit is the number of column width units per character.
const WidthUnit = 256

// Workbook is an open spreadsheet document. A Workbook is not safe for
// concurrent use.
type Workbook interface {
	io.Closer

	// Format returns the file format of the workbook.
	Format() Format
	// Sheets returns the sheet names in workbook order.
	Sheets() []string
	// Sheet returns the named sheet, or the active sheet for "".
	Sheet(name string) (Sheet, error)
	// NewSheet returns the named sheet, creating it if needed. The untouched
	// default sheet of a fresh workbook is renamed instead of kept.
	NewSheet(name string) (Sheet, error)
	// Write serializes the workbook.
	Write(w io.Writer) error
}

// Sheet is a single worksheet.
type Sheet interface {
	// Name returns the sheet name.
	Name() string
	// Rows iterates the sheet from its first row.
	Rows() (RowIterator, error)
	// SetRow writes cells into the zero-based row, starting at column 0.
	// Empty cells are left unset.
	SetRow(index int, cells []string) error
	// SetColumnWidth sets the width of a zero-based column in 1/256ths of a
	// character.
	SetColumnWidth(col, width int) error
}

// RowIterator walks the rows of a sheet once.
type RowIterator interface {
	io.Closer

	// Next advances to the next row.
	Next() bool
	// Cells returns the cell text of the current row. Trailing empty cells
	// may be omitted.
	Cells() ([]string, error)
	// Err returns the error that stopped the iteration, if any.
	Err() error
}

// HeaderStyler is implemented by sheets that can style a header row.
type HeaderStyler interface {
	StyleHeader(row, cols int) error
}

type options struct {
	delimiter byte
}

// Option configures Open and New.
type Option func(*options)

// WithDelimiter sets the single-byte csv field delimiter. Zero keeps the
// comma.
func WithDelimiter(b byte) Option {
	return func(o *options) {
		if b != 0 {
			o.delimiter = b
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{delimiter: ','}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Open reads a workbook of the given format from r.
func Open(r io.Reader, format Format, opts ...Option) (Workbook, error) {
	o := buildOptions(opts)

	switch format {
	case FormatXLSX, FormatXLSM:
		return openXLSX(r, format)
	case FormatCSV:
		return openCSV(r, o)
	default:
		return nil, &UnsupportedFormatError{Format: string(format)}
	}
}

// New creates an empty workbook with a single default sheet.
func New(format Format, opts ...Option) (Workbook, error) {
	o := buildOptions(opts)

	switch format {
	case FormatXLSX, FormatXLSM:
		return newXLSX(format), nil
	case FormatCSV:
		return newCSV(o), nil
	default:
		return nil, &UnsupportedFormatError{Format: string(format)}
	}
}

// columnChars converts a width in 1/256ths of a character to characters,
// clamped to MaxColumnWidth.
func columnChars(width int) float64 {
	return min(float64(max(width, 0))/WidthUnit, MaxColumnWidth)
}
