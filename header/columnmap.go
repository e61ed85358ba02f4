package header

import (
	"slices"
	"strings"

	"sheet-mapper/internal/common"
)

// Source tells how a column got its field.
type Source int

const (
	// SourceAlias is an exact match against a configured alias.
	SourceAlias Source = iota + 1
	// SourceFuzzy is a partial similarity match at or above the threshold.
	SourceFuzzy
	// SourcePassthrough is a leftover header cell keyed by its own text.
	SourcePassthrough
	// SourceOrdinal is a column laid out by field position on write.
	SourceOrdinal
)

func (s Source) String() string {
	switch s {
	case SourceAlias:
		return "alias"
	case SourceFuzzy:
		return "fuzzy"
	case SourcePassthrough:
		return "passthrough"
	case SourceOrdinal:
		return "ordinal"
	default:
		return common.UnknownStr
	}
}

// Cell is a header cell at a zero-based column index.
type Cell struct {
	Index int
	Text  string
}

// CellsFromRow turns a row of cell texts into header cells indexed by
// position.
func CellsFromRow(row []string) []Cell {
	cells := make([]Cell, len(row))
	for i, text := range row {
		cells[i] = Cell{Index: i, Text: text}
	}

	return cells
}

// Column binds a column index to a field.
type Column struct {
	Index  int
	Field  string
	Header string // trimmed header text
	Score  int    // similarity score, 100 for alias matches
	Source Source
}

// Suggestion is a header cell that came close to an unmapped field.
type Suggestion struct {
	Index  int
	Header string
	Score  int
}

// UnmappedField is a field no header cell was accepted for.
type UnmappedField struct {
	Field       string
	Reason      string
	Suggestions []Suggestion
}

// RawRow holds the trimmed cell text of one data row keyed by field name.
// Empty text means absence.
type RawRow map[string]string

// Text returns the text for field, or "" if the field has no column.
func (r RawRow) Text(field string) string {
	return r[field]
}

// ColumnMap maps zero-based column indexes to field names.
type ColumnMap struct {
	columns  []Column
	byIndex  map[int]int
	byField  map[string]int
	unmapped []UnmappedField
}

func newColumnMap(columns []Column, unmapped []UnmappedField) *ColumnMap {
	slices.SortFunc(columns, func(a, b Column) int { return a.Index - b.Index })

	m := &ColumnMap{
		columns:  columns,
		byIndex:  make(map[int]int, len(columns)),
		byField:  make(map[string]int, len(columns)),
		unmapped: unmapped,
	}

	for i, c := range columns {
		m.byIndex[c.Index] = i
		m.byField[c.Field] = i
	}

	return m
}

// Sequential lays fields out left to right, one column per field.
func Sequential(fields []string) *ColumnMap {
	columns := make([]Column, len(fields))
	for i, f := range fields {
		columns[i] = Column{Index: i, Field: f, Header: f, Score: 100, Source: SourceOrdinal}
	}

	return newColumnMap(columns, nil)
}

// Columns returns the mapped columns ordered by index.
func (m *ColumnMap) Columns() []Column {
	return slices.Clone(m.columns)
}

// Len returns the number of mapped columns.
func (m *ColumnMap) Len() int {
	return len(m.columns)
}

// Field returns the field mapped at column index.
func (m *ColumnMap) Field(index int) (string, bool) {
	i, ok := m.byIndex[index]
	if !ok {
		return "", false
	}

	return m.columns[i].Field, true
}

// Index returns the column index of field.
func (m *ColumnMap) Index(field string) (int, bool) {
	i, ok := m.byField[field]
	if !ok {
		return -1, false
	}

	return m.columns[i].Index, true
}

// Column returns the column bound to field.
func (m *ColumnMap) Column(field string) (Column, bool) {
	i, ok := m.byField[field]
	if !ok {
		return Column{}, false
	}

	return m.columns[i], true
}

// Unmapped returns the fields that did not get a column.
func (m *ColumnMap) Unmapped() []UnmappedField {
	return slices.Clone(m.unmapped)
}

// Extract builds the RawRow for one data row. Cells beyond the end of row
// are absent. blank reports that every cell of the row is empty or
// whitespace, mapped or not.
func (m *ColumnMap) Extract(row []string) (raw RawRow, blank bool) {
	blank = true

	for _, text := range row {
		if strings.TrimSpace(text) != "" {
			blank = false

			break
		}
	}

	raw = make(RawRow, len(m.columns))

	for _, c := range m.columns {
		text := ""
		if c.Index < len(row) {
			text = strings.TrimSpace(row[c.Index])
		}

		raw[c.Field] = text
	}

	return raw, blank
}
