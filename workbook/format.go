package workbook

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Format is a workbook file format.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatXLSM Format = "xlsm"
	FormatCSV  Format = "csv"
)

var (
	// ErrUnsupportedFormat matches every *UnsupportedFormatError.
	ErrUnsupportedFormat = errors.New("unsupported workbook format")
	// ErrSheetNotFound is returned for a sheet name the workbook lacks.
	ErrSheetNotFound = errors.New("sheet not found")
)

// UnsupportedFormatError reports a workbook that cannot be opened or created
// in the requested format.
type UnsupportedFormatError struct {
	Format string
	Err    error
}

func (e *UnsupportedFormatError) Error() string {
	msg := fmt.Sprintf("unsupported workbook format %q", e.Format)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *UnsupportedFormatError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrUnsupportedFormat}
	}

	return []error{ErrUnsupportedFormat, e.Err}
}

// ParseFormat resolves a format name such as "xlsx" or ".CSV".
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "."))

	switch f := Format(name); f {
	case FormatXLSX, FormatXLSM, FormatCSV:
		return f, nil
	default:
		return "", &UnsupportedFormatError{Format: s}
	}
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", &UnsupportedFormatError{Format: path, Err: errors.New("no file extension")}
	}

	return ParseFormat(ext)
}

// IsValid reports whether f is a supported format.
func (f Format) IsValid() bool {
	_, err := ParseFormat(string(f))
	return err == nil
}

// Extension returns the file extension of f, with the dot.
func (f Format) Extension() string {
	return "." + string(f)
}
