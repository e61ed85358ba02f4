package sheetmap

import (
	"errors"
	"fmt"
)

var (
	// ErrConsumed is yielded when the rows of a Reader are iterated twice.
	ErrConsumed = errors.New("sheet rows already consumed")
	// ErrTableWritten is returned when a Writer is asked for a second table.
	ErrTableWritten = errors.New("table already written")
	// ErrClosed is returned by operations on a closed Reader or Writer.
	ErrClosed = errors.New("closed")
)

// RowError locates a failure at a 1-based sheet row.
type RowError struct {
	Row int
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}
