// Package match provides name normalization, edit distances, partial
// similarity scoring and candidate ranking for header reconciliation.
//
// Key functions:
//   - NormalizeIdent / NormalizeField: normalize field names and header
//     text into the same word form for matching
//   - NormalizeHeader: lower-case header text into single-spaced words
//   - Levenshtein: classic edit distance, used for alias near misses
//   - PartialRatio: 0-100 similarity tolerant of extra surrounding words
//   - RankHeaders: ranks header cells as candidates for a field
package match
