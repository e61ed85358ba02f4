package config

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sheet-mapper/workbook"
)

func TestParse(t *testing.T) {
	yaml := `
format: xlsx
sheet: People
matching_threshold: 75
column_size_coefficient: 300
main_column: Name
headers:
  Name: Full Name
  email: e-mail
columns: [Name, Email, Age]
style_header: false
csv_delimiter: ";"
`

	cfg, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, workbook.FormatXLSX, cfg.Format)
	assert.Equal(t, "People", cfg.SheetName)
	assert.Equal(t, 75, cfg.MatchingThreshold)
	assert.Equal(t, 300, cfg.ColumnSizeCoefficient)
	assert.Equal(t, []string{"Name", "Email", "Age"}, cfg.Columns)
	assert.False(t, cfg.HeaderStyled())
	assert.Equal(t, byte(';'), cfg.Delimiter())

	label, ok := cfg.Alias("Name")
	assert.True(t, ok)
	assert.Equal(t, "Full Name", label)

	// keys match by normalized identifier
	label, ok = cfg.Alias("Email")
	assert.True(t, ok)
	assert.Equal(t, "e-mail", label)

	_, ok = cfg.Alias("Age")
	assert.False(t, ok)
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte("sheet: Data\n"))
	require.NoError(t, err)

	assert.Equal(t, workbook.Format(""), cfg.Format)
	assert.Equal(t, DefaultMatchingThreshold, cfg.MatchingThreshold)
	assert.Equal(t, DefaultColumnSizeCoefficient, cfg.ColumnSizeCoefficient)
	assert.True(t, cfg.HeaderStyled())
	assert.Equal(t, byte(','), cfg.Delimiter())
	assert.NotNil(t, cfg.Log())
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "threshold too high",
			yaml:    "matching_threshold: 150",
			wantErr: "invalid_threshold",
		},
		{
			name:    "negative threshold",
			yaml:    "matching_threshold: -1",
			wantErr: "invalid_threshold",
		},
		{
			name:    "negative coefficient",
			yaml:    "column_size_coefficient: -280",
			wantErr: "invalid_coefficient",
		},
		{
			name:    "legacy format",
			yaml:    "format: xls",
			wantErr: "invalid_format",
		},
		{
			name:    "long delimiter",
			yaml:    `csv_delimiter: ";;"`,
			wantErr: "invalid_delimiter",
		},
		{
			name:    "multi-byte delimiter",
			yaml:    `csv_delimiter: "§"`,
			wantErr: "invalid_delimiter",
		},
		{
			name:    "quote delimiter",
			yaml:    `csv_delimiter: '"'`,
			wantErr: "invalid_delimiter",
		},
		{
			name:    "duplicate column",
			yaml:    "columns: [Name, Name]",
			wantErr: "duplicate_column",
		},
		{
			name:    "malformed yaml",
			yaml:    "headers: [",
			wantErr: "failed to parse config YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_DuplicateLabelIsWarning(t *testing.T) {
	cfg := Default()
	cfg.HumanReadableHeaders = map[string]string{"Name": "Name", "Title": "Name"}

	res := Validate(cfg)
	assert.True(t, res.IsValid())
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, "duplicate_header_label", res.Warnings[0].Code)
	assert.Equal(t, "Title", res.Warnings[0].Column)
}

func TestValidate_Nil(t *testing.T) {
	assert.False(t, Validate(nil).IsValid())
}

func TestDelimiter(t *testing.T) {
	tests := []struct {
		input string
		want  byte
	}{
		{"", ','},
		{";", ';'},
		{"tab", '\t'},
		{`\t`, '\t'},
		{"\t", '\t'},
		{"|", '|'},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cfg := &Config{CSVDelimiter: tt.input}
			assert.Equal(t, tt.want, cfg.Delimiter())
		})
	}
}

func TestWriteFileLoadFile(t *testing.T) {
	styled := false
	cfg := &Config{
		Format:               workbook.FormatCSV,
		SheetName:            "People",
		HumanReadableHeaders: map[string]string{"Name": "Full Name"},
		Columns:              []string{"Name", "Age"},
		StyleHeader:          &styled,
		CSVDelimiter:         ";",
		Logger:               slog.Default(),
	}
	ApplyDefaults(cfg)

	path := filepath.Join(t.TempDir(), "sheet.yaml")
	require.NoError(t, WriteFile(cfg, path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)

	assert.Nil(t, loaded.Logger, "the logger is never serialized")

	loaded.Logger = cfg.Logger
	assert.Equal(t, cfg, loaded)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestMarshal_OmitsEmpty(t *testing.T) {
	data, err := Marshal(&Config{SheetName: "People"})
	require.NoError(t, err)
	assert.Equal(t, "sheet: People\n", string(data))
}

func TestClone(t *testing.T) {
	cfg := Default()
	cfg.HumanReadableHeaders = map[string]string{"Name": "Full Name"}
	cfg.Columns = []string{"Name"}

	cp := cfg.Clone()
	cp.HumanReadableHeaders["Name"] = "Client"
	cp.Columns[0] = "Email"
	*cp.StyleHeader = false

	assert.Equal(t, "Full Name", cfg.HumanReadableHeaders["Name"])
	assert.Equal(t, "Name", cfg.Columns[0])
	assert.True(t, cfg.HeaderStyled())
}

func TestLog_Discard(t *testing.T) {
	var buf bytes.Buffer

	cfg := &Config{}
	cfg.Log().Info("dropped")

	cfg.Logger = slog.New(slog.NewTextHandler(&buf, nil))
	cfg.Log().Info("kept")

	assert.Contains(t, buf.String(), "kept")
	assert.NotContains(t, buf.String(), "dropped")
}
