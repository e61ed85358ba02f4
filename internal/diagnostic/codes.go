package diagnostic

// Reconciliation diagnostic codes.
const (
	// CodeMatchedAlias marks a column bound to a field by its exact alias.
	CodeMatchedAlias = "matched_alias"
	// CodeMatchedFuzzy marks a column bound to a field by similarity score.
	CodeMatchedFuzzy = "matched_fuzzy"
	// CodeUnmappedField marks a field with no column in the header.
	CodeUnmappedField = "unmapped_field"
	// CodeAliasNearMiss marks a configured alias that is absent but close
	// to an existing header cell.
	CodeAliasNearMiss = "alias_near_miss"
	// CodeAmbiguousMatch marks a fuzzy match whose runner-up scored within
	// the ambiguity gap.
	CodeAmbiguousMatch = "ambiguous_match"
	// CodePassthrough marks a header cell kept under its own text.
	CodePassthrough = "passthrough_column"
	// CodeDuplicateHeader marks a header cell repeating an earlier one.
	CodeDuplicateHeader = "duplicate_header"
)
