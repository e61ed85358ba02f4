// Package schema describes record types for the sheet mapper.
//
// A Descriptor lists the fields of a record type with their value types,
// header aliases, required flags and defaults, and carries typed accessors
// so records can be built and read without per-row reflection.
//
// Descriptors come from two places:
//   - Describe derives one from struct fields and `sheet` tags, once per type.
//   - NewBuilder registers fields with explicit getter and setter closures;
//     generated descriptors use this path.
//
// The `sheet` tag grammar is:
//
//	sheet:"[alias][,required][,default=<text>]"
//	sheet:"-"
//
// default takes the rest of the tag, commas included.
package schema
