// Package sheetmap maps spreadsheet rows to typed records and back.
//
// Reading reconciles the header row of a sheet with the fields of a
// schema.Descriptor, then materializes every non-blank data row into a
// record. Records is a lazy single-pass sequence that stops cleanly when its
// context is cancelled:
//
//	r, err := sheetmap.OpenFile("people.xlsx", cfg)
//	if err != nil {
//		return err
//	}
//	defer r.Close()
//
//	for p, err := range sheetmap.Records[Person](ctx, r, nil) {
//		if err != nil {
//			return err
//		}
//		...
//	}
//
// Writing lays fields out left to right in declaration order, labels them
// with their aliases and sizes the columns from the widest text seen.
//
// Absent cells resolve to the field default or the zero value. Present cells
// that do not parse stop the read with a *coerce.ValueFormatError wrapped in
// a *RowError.
package sheetmap
