package analyze

import (
	"go/types"
	"reflect"
	"strings"

	"sheet-mapper/internal/common"
	"sheet-mapper/typetag"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "sheet-mapper/examples/people"
	Name    string // e.g., "Person"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// ConvKind says how a field value is converted to and from the canonical Go
// type of its tag.
type ConvKind int

const (
	ConvNone    ConvKind = iota // field type is the canonical type
	ConvNamed                   // named type over the canonical type: int(v), Years(v)
	ConvPointer                 // pointer to a named type: (*int)(v), (*Years)(v)
)

// String returns a human-readable representation of the ConvKind.
func (k ConvKind) String() string {
	switch k {
	case ConvNone:
		return "none"
	case ConvNamed:
		return "named"
	case ConvPointer:
		return "pointer"
	default:
		return common.UnknownStr
	}
}

// TypeInfo describes a struct type and its mappable fields.
type TypeInfo struct {
	ID     TypeID      // Unique identifier
	Fields []FieldInfo // Fields in declaration order, embedded structs flattened
	GoType types.Type  // The original go/types.Type
}

// FieldInfo describes a struct field.
type FieldInfo struct {
	Name       string            // Go field name
	Path       []string          // Selector path from the record, e.g. ["Base", "ID"]
	GoType     types.Type        // Declared field type
	Type       typetag.Type      // Inferred value type
	Supported  bool              // Whether Type could be inferred
	Conv       ConvKind          // Conversion to the canonical type
	Tag        reflect.StructTag // Raw struct tag
	Alias      string            // Header alias from the sheet tag
	Required   bool              // Constructor argument
	Default    string            // Default text, parsed by the descriptor
	HasDefault bool              // Default was given
	Err        error             // Malformed sheet tag
}

// Selector returns the field selector relative to a record value, e.g.
// "Base.ID".
func (f *FieldInfo) Selector() string {
	return strings.Join(f.Path, ".")
}

// HasTag returns true if the field has the specified tag.
func (f *FieldInfo) HasTag(key string) bool {
	_, ok := f.Tag.Lookup(key)
	return ok
}

// GetTag returns the value of the specified tag.
func (f *FieldInfo) GetTag(key string) string {
	return f.Tag.Get(key)
}

// TypeGraph holds all analyzed struct types from loaded packages.
type TypeGraph struct {
	// Types maps TypeID to TypeInfo for all exported struct types.
	Types map[TypeID]*TypeInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:    make(map[TypeID]*TypeInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetType returns the TypeInfo for a given TypeID, or nil if not found.
func (g *TypeGraph) GetType(id TypeID) *TypeInfo {
	return g.Types[id]
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string   // Import path
	Name  string   // Package name
	Dir   string   // Directory of the package sources
	Types []TypeID // Struct types defined in this package
}
