// Package coerce converts spreadsheet cell text to and from typed Go values.
//
// Every tag in typetag has exactly one codec. Parsing distinguishes absence
// (empty or whitespace-only text, never an error) from malformed text
// (a *ValueFormatError). Formatting is deterministic so that written sheets
// can be read back and diffed.
//
// Key functions:
//   - Parse / ParseField: text -> typed value (zero value on absence)
//   - Zero: the absent value for a type (typed nil pointer when nullable)
//   - Format: typed value -> canonical text
//   - ParseDefault: eager parsing of declared default values
package coerce
