package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const peopleCSV = "Full Name,e-mail,Age,Notes\n" +
	"Jane Doe,jane@example.com,41,first\n" +
	",,,\n" +
	"John Roe,john@example.com,,\n"

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestInspect(t *testing.T) {
	path := writeFile(t, "people.csv", peopleCSV)

	out, _, err := run(t, "inspect", path, "--fields", "Name,Email,Age,Phone")
	require.NoError(t, err)

	assert.Contains(t, out, `sheet "Sheet1"`)
	assert.Contains(t, out, "e-mail")
	assert.Contains(t, out, "fuzzy")
	assert.Contains(t, out, "passthrough")
	assert.Contains(t, out, "unmapped Phone")
	assert.Contains(t, out, "[unmapped_field]")
}

func TestInspect_Alias(t *testing.T) {
	path := writeFile(t, "people.csv", "Name,Contact\nJane,jane@example.com\n")

	out, _, err := run(t, "inspect", path, "--fields", "Name,Email", "--alias", "Email=Contact")
	require.NoError(t, err)
	assert.Contains(t, out, "alias")
	assert.NotContains(t, out, "unmapped Email")
}

func TestInspect_RequiresFields(t *testing.T) {
	path := writeFile(t, "people.csv", peopleCSV)

	_, _, err := run(t, "inspect", path)
	require.Error(t, err)
}

func TestDump(t *testing.T) {
	path := writeFile(t, "people.csv", peopleCSV)

	out, _, err := run(t, "dump", path)
	require.NoError(t, err)

	var rows []map[string]string
	require.NoError(t, yaml.Unmarshal([]byte(out), &rows))

	want := []map[string]string{
		{"Full Name": "Jane Doe", "e-mail": "jane@example.com", "Age": "41", "Notes": "first"},
		{"Full Name": "John Roe", "e-mail": "john@example.com", "Age": "", "Notes": ""},
	}
	assert.Equal(t, want, rows)
}

func TestDump_Config(t *testing.T) {
	path := writeFile(t, "people.txt", "Name;Age\nJane;41\n")
	cfgPath := writeFile(t, "sheetmap.yaml", "format: csv\ncsv_delimiter: \";\"\n")

	out, _, err := run(t, "dump", path, "--config", cfgPath)
	require.NoError(t, err)

	var rows []map[string]string
	require.NoError(t, yaml.Unmarshal([]byte(out), &rows))
	assert.Equal(t, []map[string]string{{"Name": "Jane", "Age": "41"}}, rows)
}

func TestConvert(t *testing.T) {
	in := writeFile(t, "people.csv", peopleCSV)
	out := filepath.Join(t.TempDir(), "people.xlsx")

	stdout, _, err := run(t, "convert", in, out, "--out-sheet", "People")
	require.NoError(t, err)
	assert.Contains(t, stdout, "wrote 2 rows")

	dumped, _, err := run(t, "dump", out, "--sheet", "People")
	require.NoError(t, err)

	var rows []map[string]string
	require.NoError(t, yaml.Unmarshal([]byte(dumped), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "Jane Doe", rows[0]["Full Name"])
	assert.Equal(t, "", rows[1]["Age"])
}

func TestConvert_UnsupportedTarget(t *testing.T) {
	in := writeFile(t, "people.csv", peopleCSV)

	_, _, err := run(t, "convert", in, filepath.Join(t.TempDir(), "people.xls"))
	require.Error(t, err)
}

func TestGen(t *testing.T) {
	dir := t.TempDir()

	out, _, err := run(t, "gen", "--type", "Person", "--out", dir, "sheet-mapper/examples/people")
	require.NoError(t, err)
	assert.Contains(t, out, "person_sheet.go")

	generated, err := os.ReadFile(filepath.Join(dir, "person_sheet.go"))
	require.NoError(t, err)

	checkedIn, err := os.ReadFile(filepath.Join("..", "..", "examples", "people", "person_sheet.go"))
	require.NoError(t, err)
	assert.Equal(t, string(checkedIn), string(generated))

	// A second run leaves the file alone.
	out, _, err = run(t, "gen", "--type", "Person", "--out", dir, "sheet-mapper/examples/people")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestGen_Unsupported(t *testing.T) {
	_, _, err := run(t, "gen", "--type", "Team", "--out", t.TempDir(), "sheet-mapper/examples/people")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Members")
}
