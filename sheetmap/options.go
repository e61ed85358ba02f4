package sheetmap

import (
	"fmt"
	"log/slog"

	"sheet-mapper/config"
	"sheet-mapper/internal/diagnostic"
)

// resolveConfig copies cfg, applies defaults and validates it.
func resolveConfig(cfg *config.Config) (*config.Config, error) {
	if cfg == nil {
		return config.Default(), nil
	}

	resolved := cfg.Clone()
	config.ApplyDefaults(resolved)

	if err := config.Validate(resolved).Error(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return resolved, nil
}

// fieldAliases merges descriptor aliases with configured ones; the config
// wins.
func fieldAliases(cfg *config.Config, fields []string, declared map[string]string) map[string]string {
	aliases := make(map[string]string, len(fields))

	for _, f := range fields {
		if label, ok := cfg.Alias(f); ok {
			aliases[f] = label
		} else if label, ok := declared[f]; ok {
			aliases[f] = label
		}
	}

	return aliases
}

func logDiagnostics(log *slog.Logger, diags diagnostic.Diagnostics) {
	for _, d := range diags.Errors {
		log.Error(d.Message, diagAttrs(d)...)
	}

	for _, d := range diags.Warnings {
		log.Warn(d.Message, diagAttrs(d)...)
	}

	for _, d := range diags.Infos {
		log.Debug(d.Message, diagAttrs(d)...)
	}
}

func diagAttrs(d diagnostic.Diagnostic) []any {
	attrs := []any{slog.String("code", d.Code)}
	if d.Field != "" {
		attrs = append(attrs, slog.String("field", d.Field))
	}

	if d.Column != "" {
		attrs = append(attrs, slog.String("column", d.Column))
	}

	if len(d.Suggestions) > 0 {
		attrs = append(attrs, slog.Any("candidates", d.Suggestions))
	}

	return attrs
}
