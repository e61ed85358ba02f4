// Package gen generates record descriptors as Go source.
//
// A generated descriptor is a schema.Builder chain with typed getter and
// setter closures, so reading and writing records needs no reflection.
// Generation uses text/template + go/format and is deterministic.
//
// Codegen patterns:
//   - Direct access for canonical field types
//   - Named basic conversions: int(r.Age), Years(v.(int))
//   - Pointer conversions for nullable named types: (*int)(r.Rank)
//   - Qualified imports for records generated into another package
package gen
