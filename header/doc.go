// Package header reconciles a spreadsheet header row with the fields of a
// record type.
//
// Reconcile walks the fields in declaration order. A field whose configured
// alias equals a header cell exactly takes that cell; otherwise the
// remaining cells are ranked by partial similarity to the field name and
// the best one is taken if it reaches the threshold. Taken cells leave the
// pool, so no cell serves two fields. Cells nobody claimed are passed
// through under their own text.
//
// The resulting ColumnMap is immutable and belongs to one read or write
// operation.
package header
