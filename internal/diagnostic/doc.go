// Package diagnostic provides structured infos, warnings and errors
// produced while reconciling a sheet header against record fields.
//
// Key capabilities:
//   - "Why this column mapped" explanations (alias or fuzzy score)
//   - Unmapped field warnings with top-N candidate suggestions
//   - Passthrough column reports
package diagnostic
