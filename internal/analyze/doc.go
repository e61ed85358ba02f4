// Package analyze provides package loading and record type extraction.
//
// It uses golang.org/x/tools/go/packages with go/types to build an
// in-memory model of exported structs and their mappable fields.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeInfo: a struct type with its fields, embedded structs flattened
//   - FieldInfo: field name, selector path, inferred typetag.Type, the
//     conversion to its canonical Go type, and the parsed sheet tag
package analyze
