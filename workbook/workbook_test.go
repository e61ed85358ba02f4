package workbook

import (
	"bytes"
	"strings"
	"testing"

	"github.com/oleg578/swiftcsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, sh Sheet) [][]string {
	t.Helper()

	it, err := sh.Rows()
	require.NoError(t, err)

	defer it.Close()

	var rows [][]string

	for it.Next() {
		cells, err := it.Cells()
		require.NoError(t, err)

		rows = append(rows, cells)
	}

	require.NoError(t, it.Err())

	return rows
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"xlsx", FormatXLSX, false},
		{".XLSX", FormatXLSX, false},
		{"xlsm", FormatXLSM, false},
		{" csv ", FormatCSV, false},
		{"xls", "", true},
		{"ods", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.IsValid())
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	f, err := FormatFromPath("/data/people.xlsx")
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, f)
	assert.Equal(t, ".xlsx", f.Extension())

	f, err = FormatFromPath("export.CSV")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	_, err = FormatFromPath("legacy.xls")

	var ufe *UnsupportedFormatError
	require.ErrorAs(t, err, &ufe)
	assert.Equal(t, ".xls", ufe.Format)

	_, err = FormatFromPath("README")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestUnsupportedFormat(t *testing.T) {
	_, err := New(Format("xls"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Open(strings.NewReader(""), Format("ods"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.EqualError(t, err, `unsupported workbook format "ods"`)
}

func TestOpen_NotAWorkbook(t *testing.T) {
	_, err := Open(strings.NewReader("Name,Email\nJane,jane@x.com\n"), FormatXLSX)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestXLSX_RoundTrip(t *testing.T) {
	wb, err := New(FormatXLSX)
	require.NoError(t, err)

	defer wb.Close()

	sh, err := wb.NewSheet("People")
	require.NoError(t, err)
	assert.Equal(t, []string{"People"}, wb.Sheets(), "default sheet is renamed")

	require.NoError(t, sh.SetRow(0, []string{"Name", "Email", "Age"}))
	require.NoError(t, sh.SetRow(1, []string{"Jane Doe", "", "41"}))
	require.NoError(t, sh.SetRow(2, []string{"John", "john@x.com"}))

	styler, ok := sh.(HeaderStyler)
	require.True(t, ok)
	require.NoError(t, styler.StyleHeader(0, 3))

	require.NoError(t, sh.SetColumnWidth(0, 10*280))
	require.NoError(t, sh.SetColumnWidth(1, 1<<20))

	file := wb.(*xlsxWorkbook).file

	width, err := file.GetColWidth("People", "A")
	require.NoError(t, err)
	assert.InDelta(t, 10.9375, width, 1e-9)

	width, err = file.GetColWidth("People", "B")
	require.NoError(t, err)
	assert.InDelta(t, 255.0, width, 1e-9)

	style, err := file.GetCellStyle("People", "C1")
	require.NoError(t, err)
	assert.NotZero(t, style)

	var buf bytes.Buffer
	require.NoError(t, wb.Write(&buf))

	back, err := Open(bytes.NewReader(buf.Bytes()), FormatXLSX)
	require.NoError(t, err)

	defer back.Close()

	read, err := back.Sheet("")
	require.NoError(t, err)
	assert.Equal(t, "People", read.Name())

	assert.Equal(t, [][]string{
		{"Name", "Email", "Age"},
		{"Jane Doe", "", "41"},
		{"John", "john@x.com"},
	}, readAll(t, read))
}

func TestXLSX_Sheets(t *testing.T) {
	wb, err := New(FormatXLSX)
	require.NoError(t, err)

	defer wb.Close()

	first, err := wb.NewSheet("People")
	require.NoError(t, err)

	again, err := wb.NewSheet("People")
	require.NoError(t, err)
	assert.Equal(t, first.Name(), again.Name())

	_, err = wb.NewSheet("Orders")
	require.NoError(t, err)
	assert.Equal(t, []string{"People", "Orders"}, wb.Sheets())

	_, err = wb.Sheet("Missing")
	assert.ErrorIs(t, err, ErrSheetNotFound)

	orders, err := wb.Sheet("Orders")
	require.NoError(t, err)
	assert.Empty(t, readAll(t, orders))
}

func TestXLSX_DefaultSheetKeptOnceUsed(t *testing.T) {
	wb, err := New(FormatXLSX)
	require.NoError(t, err)

	defer wb.Close()

	sh, err := wb.Sheet("")
	require.NoError(t, err)
	assert.Equal(t, DefaultSheetName, sh.Name())

	_, err = wb.NewSheet("Other")
	require.NoError(t, err)
	assert.Equal(t, []string{DefaultSheetName, "Other"}, wb.Sheets())
}

func TestXLSM_RoundTrip(t *testing.T) {
	wb, err := New(FormatXLSM)
	require.NoError(t, err)
	assert.Equal(t, FormatXLSM, wb.Format())

	sh, err := wb.NewSheet("Data")
	require.NoError(t, err)
	require.NoError(t, sh.SetRow(0, []string{"Id"}))
	require.NoError(t, sh.SetRow(1, []string{"7"}))

	var buf bytes.Buffer
	require.NoError(t, wb.Write(&buf))
	require.NoError(t, wb.Close())

	back, err := Open(&buf, FormatXLSM)
	require.NoError(t, err)

	defer back.Close()

	read, err := back.Sheet("Data")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Id"}, {"7"}}, readAll(t, read))
}

func TestCSV_RoundTrip(t *testing.T) {
	wb, err := New(FormatCSV, WithDelimiter(';'))
	require.NoError(t, err)

	sh, err := wb.NewSheet("People")
	require.NoError(t, err)
	assert.Equal(t, []string{"People"}, wb.Sheets())

	require.NoError(t, sh.SetRow(0, []string{"Name", "Notes", "Age"}))
	require.NoError(t, sh.SetRow(2, []string{"Jane; Doe", "", "41"}))
	require.NoError(t, sh.SetColumnWidth(0, 1000))

	_, ok := sh.(HeaderStyler)
	assert.False(t, ok)

	var buf bytes.Buffer
	require.NoError(t, wb.Write(&buf))
	require.NoError(t, wb.Close())

	assert.Equal(t, "Name;Notes;Age\n;;\n\"Jane; Doe\";;41\n", buf.String())

	back, err := Open(&buf, FormatCSV, WithDelimiter(';'))
	require.NoError(t, err)

	read, err := back.Sheet("anything")
	require.NoError(t, err)

	assert.Equal(t, [][]string{
		{"Name", "Notes", "Age"},
		{"", "", ""},
		{"Jane; Doe", "", "41"},
	}, readAll(t, read))
}

func TestCSV_OpenLenient(t *testing.T) {
	input := "\ufeffName,Age\nJane,41,extra\nJohn\n"

	wb, err := Open(strings.NewReader(input), FormatCSV)
	require.NoError(t, err)

	sh, err := wb.Sheet("")
	require.NoError(t, err)

	assert.Equal(t, [][]string{
		{"Name", "Age"},
		{"Jane", "41", "extra"},
		{"John"},
	}, readAll(t, sh))
}

func TestCSV_OpenMalformed(t *testing.T) {
	_, err := Open(strings.NewReader("Name\n\"unterminated\n"), FormatCSV)
	assert.ErrorContains(t, err, "read csv")
	assert.ErrorIs(t, err, swiftcsv.ErrUnterminatedQuote)
}

func TestCSV_Quoting(t *testing.T) {
	wb, err := New(FormatCSV)
	require.NoError(t, err)

	sh, err := wb.NewSheet("")
	require.NoError(t, err)

	require.NoError(t, sh.SetRow(0, []string{"Note", "Quote"}))
	require.NoError(t, sh.SetRow(1, []string{"two\nlines", `say "hi"`}))

	var buf bytes.Buffer
	require.NoError(t, wb.Write(&buf))
	assert.Equal(t, "Note,Quote\n\"two\nlines\",\"say \"\"hi\"\"\"\n", buf.String())

	back, err := Open(&buf, FormatCSV)
	require.NoError(t, err)

	read, err := back.Sheet("")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Note", "Quote"}, {"two\nlines", `say "hi"`}}, readAll(t, read))
}

func TestColumnChars(t *testing.T) {
	assert.InDelta(t, 10.9375, columnChars(2800), 1e-9)
	assert.InDelta(t, 0.0, columnChars(-5), 1e-9)
	assert.InDelta(t, 255.0, columnChars(1<<20), 1e-9)
}
