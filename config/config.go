package config

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"sheet-mapper/internal/common"
	"sheet-mapper/internal/diagnostic"
	"sheet-mapper/internal/match"
	"sheet-mapper/workbook"
)

const (
	// DefaultMatchingThreshold is the minimum header similarity score.
	DefaultMatchingThreshold = match.DefaultThreshold
	// DefaultColumnSizeCoefficient converts characters to column width units.
	DefaultColumnSizeCoefficient = 280
)

// Config drives reading and writing. The zero value is usable once
// ApplyDefaults has run.
type Config struct {
	// Format of the workbook. Empty means detect from the file name.
	Format workbook.Format `yaml:"format,omitempty"`
	// SheetName selects the sheet; empty means the active one on read and
	// the default one on write.
	SheetName string `yaml:"sheet,omitempty"`
	// MatchingThreshold is the minimum partial similarity (1-100) for a
	// header cell to denote a field.
	MatchingThreshold int `yaml:"matching_threshold,omitempty"`
	// HumanReadableHeaders maps field names to header labels.
	HumanReadableHeaders map[string]string `yaml:"headers,omitempty"`
	// ColumnSizeCoefficient multiplies the widest text of a column into a
	// width in 1/256ths of a character.
	ColumnSizeCoefficient int `yaml:"column_size_coefficient,omitempty"`
	// Columns overrides the written field order.
	Columns []string `yaml:"columns,omitempty"`
	// StyleHeader enables header styling where the format supports it.
	StyleHeader *bool `yaml:"style_header,omitempty"`
	// CSVDelimiter is a single-byte character; empty means a comma.
	CSVDelimiter string `yaml:"csv_delimiter,omitempty"`

	// Logger receives debug and warning records. Nil discards them.
	Logger *slog.Logger `yaml:"-"`
}

// Default returns a config with every default applied.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)

	return cfg
}

// ApplyDefaults fills in default values for unset fields.
func ApplyDefaults(cfg *Config) {
	if cfg.MatchingThreshold == 0 {
		cfg.MatchingThreshold = DefaultMatchingThreshold
	}

	if cfg.ColumnSizeCoefficient == 0 {
		cfg.ColumnSizeCoefficient = DefaultColumnSizeCoefficient
	}

	if cfg.StyleHeader == nil {
		styled := true
		cfg.StyleHeader = &styled
	}
}

// Clone returns a copy that shares only the logger.
func (c *Config) Clone() *Config {
	cp := *c
	cp.HumanReadableHeaders = maps.Clone(c.HumanReadableHeaders)
	cp.Columns = slices.Clone(c.Columns)

	if c.StyleHeader != nil {
		styled := *c.StyleHeader
		cp.StyleHeader = &styled
	}

	return &cp
}

// Log returns the configured logger or one that discards everything.
func (c *Config) Log() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}

	return c.Logger
}

// HeaderStyled reports whether header styling is on.
func (c *Config) HeaderStyled() bool {
	return c.StyleHeader == nil || *c.StyleHeader
}

// Delimiter returns the csv delimiter byte. Validate rejects delimiters
// longer than one byte.
func (c *Config) Delimiter() byte {
	switch c.CSVDelimiter {
	case "":
		return ','
	case `\t`, "tab":
		return '\t'
	default:
		return c.CSVDelimiter[0]
	}
}

// Alias returns the header label configured for field. Keys are matched
// exactly first, then by normalized identifier ("full_name" finds FullName).
func (c *Config) Alias(field string) (string, bool) {
	if label, ok := c.HumanReadableHeaders[field]; ok {
		return label, true
	}

	norm := match.NormalizeIdent(field)

	for _, key := range slices.Sorted(maps.Keys(c.HumanReadableHeaders)) {
		if match.NormalizeIdent(key) == norm {
			return c.HumanReadableHeaders[key], true
		}
	}

	return "", false
}

// Validate checks the config values. Defaults should be applied first.
func Validate(cfg *Config) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if cfg == nil {
		res.AddError("config_is_nil", "config is nil", "", "")
		return res
	}

	if !common.IsInRange(1, cfg.MatchingThreshold, 100) {
		res.AddError("invalid_threshold",
			fmt.Sprintf("matching threshold %d is outside 1..100", cfg.MatchingThreshold), "matching_threshold", "")
	}

	if cfg.ColumnSizeCoefficient < 0 {
		res.AddError("invalid_coefficient",
			fmt.Sprintf("column size coefficient %d is negative", cfg.ColumnSizeCoefficient), "column_size_coefficient", "")
	}

	if cfg.Format != "" && !cfg.Format.IsValid() {
		res.AddError("invalid_format", fmt.Sprintf("unsupported format %q", cfg.Format), "format", "")
	}

	switch d := cfg.CSVDelimiter; {
	case d == "" || d == `\t` || d == "tab":
	case len(d) != 1:
		res.AddError("invalid_delimiter", fmt.Sprintf("csv delimiter %q is not a single-byte character", d), "csv_delimiter", "")
	case d == "\"" || d == "\r" || d == "\n":
		res.AddError("invalid_delimiter", fmt.Sprintf("csv delimiter %q is not allowed", d), "csv_delimiter", "")
	}

	seen := make(map[string]bool, len(cfg.Columns))
	for _, col := range cfg.Columns {
		if seen[col] {
			res.AddError("duplicate_column", fmt.Sprintf("column %q listed twice", col), "columns", col)
		}

		seen[col] = true
	}

	labels := make(map[string]string, len(cfg.HumanReadableHeaders))
	for _, field := range slices.Sorted(maps.Keys(cfg.HumanReadableHeaders)) {
		label := cfg.HumanReadableHeaders[field]
		if other, dup := labels[label]; dup {
			res.AddWarning("duplicate_header_label",
				fmt.Sprintf("label %q is also used by %s", label, other), "headers", field)
		}

		labels[label] = field
	}

	return res
}
