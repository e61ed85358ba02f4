package header

import (
	"fmt"
	"strings"

	"sheet-mapper/internal/diagnostic"
	"sheet-mapper/internal/match"
)

// Diagnostics collects the explanations produced by Reconcile.
type Diagnostics = diagnostic.Diagnostics

// aliasNearMissDistance is the largest edit distance at which a header cell
// is reported as a likely misspelling of a configured alias.
const aliasNearMissDistance = 2

// Reconcile maps header cells to fields. Cells equal to a field's alias are
// bound first; the remaining fields are then fuzzy matched greedily in the
// given order. Blank cells never take part.
func Reconcile(cells []Cell, fields []string, opts Options) (*ColumnMap, Diagnostics) {
	opts = opts.withDefaults()

	var diags Diagnostics

	pool := make([]match.Header, 0, len(cells))
	for _, c := range cells {
		h := match.NewHeader(c.Index, c.Text)
		if h.Text == "" {
			continue
		}

		pool = append(pool, h)
	}

	taken := make(map[int]bool, len(pool))
	columns := make([]Column, 0, len(pool))
	bound := make(map[string]bool, len(opts.Aliases))

	// Exact alias cells are reserved before any fuzzy scoring.
	for _, field := range fields {
		alias := strings.TrimSpace(opts.Aliases[field])
		if alias == "" {
			continue
		}

		h, ok := findExact(remaining(pool, taken), alias)
		if !ok {
			continue
		}

		taken[h.Index] = true
		bound[field] = true
		columns = append(columns, Column{
			Index:  h.Index,
			Field:  field,
			Header: h.Text,
			Score:  100,
			Source: SourceAlias,
		})
		diags.AddInfo(diagnostic.CodeMatchedAlias,
			fmt.Sprintf("column %d matched alias %q", h.Index, alias), field, h.Text)
	}

	var unmapped []UnmappedField

	for _, field := range fields {
		if bound[field] {
			continue
		}

		available := remaining(pool, taken)

		if alias := strings.TrimSpace(opts.Aliases[field]); alias != "" {
			reportNearMiss(&diags, available, field, alias)
		}

		ranked := match.RankHeaders(field, available)

		best := ranked.Accept(opts.Threshold)
		if best == nil {
			u := UnmappedField{
				Field:       field,
				Reason:      fmt.Sprintf("no header scored at least %d", opts.Threshold),
				Suggestions: suggestions(ranked, opts.MaxCandidates),
			}
			if len(available) == 0 {
				u.Reason = "no header cells left"
			}

			unmapped = append(unmapped, u)
			diags.AddWarning(diagnostic.CodeUnmappedField, u.Reason, field, "", describe(u.Suggestions)...)

			continue
		}

		taken[best.Header.Index] = true
		columns = append(columns, Column{
			Index:  best.Header.Index,
			Field:  field,
			Header: best.Header.Text,
			Score:  best.Score,
			Source: SourceFuzzy,
		})
		diags.AddInfo(diagnostic.CodeMatchedFuzzy,
			fmt.Sprintf("column %d matched with score %d", best.Header.Index, best.Score), field, best.Header.Text)

		accepted := ranked.AboveThreshold(opts.Threshold)
		if len(accepted) > 1 && accepted.IsAmbiguous(opts.AmbiguityGap) {
			diags.AddWarning(diagnostic.CodeAmbiguousMatch,
				fmt.Sprintf("runner-up scored %d", accepted[1].Score), field, best.Header.Text,
				describe(suggestions(accepted[1:], opts.MaxCandidates))...)
		}
	}

	keys := make(map[string]int, len(columns))
	for _, c := range columns {
		keys[c.Field] = c.Index
	}

	for _, h := range remaining(pool, taken) {
		if prev, dup := keys[h.Text]; dup {
			diags.AddWarning(diagnostic.CodeDuplicateHeader,
				fmt.Sprintf("column %d repeats the key of column %d and is ignored", h.Index, prev), "", h.Text)

			continue
		}

		keys[h.Text] = h.Index
		columns = append(columns, Column{
			Index:  h.Index,
			Field:  h.Text,
			Header: h.Text,
			Source: SourcePassthrough,
		})
		diags.AddInfo(diagnostic.CodePassthrough,
			fmt.Sprintf("column %d kept under its header text", h.Index), "", h.Text)
	}

	return newColumnMap(columns, unmapped), diags
}

func remaining(pool []match.Header, taken map[int]bool) []match.Header {
	result := make([]match.Header, 0, len(pool))
	for _, h := range pool {
		if !taken[h.Index] {
			result = append(result, h)
		}
	}

	return result
}

func findExact(headers []match.Header, label string) (match.Header, bool) {
	for _, h := range headers {
		if h.Text == label {
			return h, true
		}
	}

	return match.Header{}, false
}

func reportNearMiss(diags *Diagnostics, headers []match.Header, field, alias string) {
	for _, h := range headers {
		if d := match.Levenshtein(h.Text, alias); d <= aliasNearMissDistance {
			diags.AddWarning(diagnostic.CodeAliasNearMiss,
				fmt.Sprintf("alias %q not found; column %d is %d edit(s) away", alias, h.Index, d), field, h.Text)

			return
		}
	}
}

func suggestions(ranked match.CandidateList, n int) []Suggestion {
	var result []Suggestion

	for _, c := range ranked.Top(n) {
		if c.Score == 0 {
			break
		}

		result = append(result, Suggestion{Index: c.Header.Index, Header: c.Header.Text, Score: c.Score})
	}

	return result
}

func describe(ss []Suggestion) []string {
	result := make([]string, len(ss))
	for i, s := range ss {
		result[i] = fmt.Sprintf("%q (%d)", s.Header, s.Score)
	}

	return result
}
