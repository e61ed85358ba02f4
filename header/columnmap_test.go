package header

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColumnMap_Extract(t *testing.T) {
	m, _ := Reconcile(
		CellsFromRow([]string{"Full Name", "e-mail", "Age"}),
		[]string{"Name", "Email", "Age"},
		DefaultOptions(),
	)

	tests := []struct {
		name      string
		row       []string
		wantRaw   RawRow
		wantBlank bool
	}{
		{
			name:    "full row",
			row:     []string{" Jane Doe ", "jane@x.com", "41"},
			wantRaw: RawRow{"Name": "Jane Doe", "Email": "jane@x.com", "Age": "41"},
		},
		{
			name:    "short row",
			row:     []string{"Jane Doe", "jane@x.com"},
			wantRaw: RawRow{"Name": "Jane Doe", "Email": "jane@x.com", "Age": ""},
		},
		{
			name:      "blank row",
			row:       []string{"", "  ", ""},
			wantRaw:   RawRow{"Name": "", "Email": "", "Age": ""},
			wantBlank: true,
		},
		{
			name:      "empty row",
			row:       nil,
			wantRaw:   RawRow{"Name": "", "Email": "", "Age": ""},
			wantBlank: true,
		},
		{
			name:    "data only outside mapped columns",
			row:     []string{"", "", "", "note"},
			wantRaw: RawRow{"Name": "", "Email": "", "Age": ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, blank := m.Extract(tt.row)
			assert.Equal(t, tt.wantRaw, raw)
			assert.Equal(t, tt.wantBlank, blank)
		})
	}
}

func TestSequential(t *testing.T) {
	m := Sequential([]string{"Name", "Email", "Age"})

	assert.Equal(t, 3, m.Len())

	idx, ok := m.Index("Age")
	assert.True(t, ok)
	assert.Equal(t, 2, idx)

	f, ok := m.Field(1)
	assert.True(t, ok)
	assert.Equal(t, "Email", f)

	_, ok = m.Field(3)
	assert.False(t, ok)

	idx, ok = m.Index("Phone")
	assert.False(t, ok)
	assert.Equal(t, -1, idx)
}

func TestRawRow_Text(t *testing.T) {
	raw := RawRow{"Name": "Jane"}

	assert.Equal(t, "Jane", raw.Text("Name"))
	assert.Equal(t, "", raw.Text("Age"))
}

func TestSource_String(t *testing.T) {
	assert.Equal(t, "alias", SourceAlias.String())
	assert.Equal(t, "fuzzy", SourceFuzzy.String())
	assert.Equal(t, "passthrough", SourcePassthrough.String())
	assert.Equal(t, "ordinal", SourceOrdinal.String())
	assert.Equal(t, "unknown", Source(0).String())
}
