package analyze

import (
	"fmt"
	"go/types"
	"path/filepath"
	"reflect"

	"golang.org/x/tools/go/packages"

	"sheet-mapper/schema"
	"sheet-mapper/typetag"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analyzer loads Go packages and builds a type graph.
type Analyzer struct {
	graph *TypeGraph
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		graph: NewTypeGraph(),
	}
}

// LoadPackages loads the specified packages and builds the type graph.
// Patterns are standard Go package patterns (e.g., "./examples/people").
func (a *Analyzer) LoadPackages(patterns ...string) (*TypeGraph, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	for _, pkg := range pkgs {
		a.processPackage(pkg)
	}

	return a.graph, nil
}

// Graph returns the current type graph.
func (a *Analyzer) Graph() *TypeGraph {
	return a.graph
}

// processPackage extracts the exported struct types of a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) {
	pkgInfo := &PackageInfo{
		Path: pkg.PkgPath,
		Name: pkg.Name,
	}

	if len(pkg.GoFiles) > 0 {
		pkgInfo.Dir = filepath.Dir(pkg.GoFiles[0])
	}

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !typeName.Exported() || typeName.IsAlias() {
			continue
		}

		st, ok := typeName.Type().Underlying().(*types.Struct)
		if !ok {
			continue
		}

		typeID := TypeID{PkgPath: pkg.PkgPath, Name: name}

		a.graph.Types[typeID] = &TypeInfo{
			ID:     typeID,
			Fields: analyzeStruct(st, nil),
			GoType: typeName.Type(),
		}
		pkgInfo.Types = append(pkgInfo.Types, typeID)
	}

	a.graph.Packages[pkg.PkgPath] = pkgInfo
}

// analyzeStruct lists the mappable fields of st. Untagged embedded structs
// whose type has no value mapping are flattened into their parent.
func analyzeStruct(st *types.Struct, base []string) []FieldInfo {
	var fields []FieldInfo

	for i := range st.NumFields() {
		field := st.Field(i)
		if !field.Exported() && !field.Embedded() {
			continue
		}

		tag := reflect.StructTag(st.Tag(i))

		sheetTag, tagged := tag.Lookup(schema.TagName)
		if sheetTag == "-" {
			continue
		}

		path := append(append([]string(nil), base...), field.Name())

		t, conv, supported := inferType(field.Type())
		if field.Embedded() && !tagged && !supported {
			if inner, ok := field.Type().Underlying().(*types.Struct); ok {
				if _, isPtr := field.Type().(*types.Pointer); !isPtr {
					fields = append(fields, analyzeStruct(inner, path)...)
					continue
				}
			}
		}

		if !field.Exported() {
			continue
		}

		info := FieldInfo{
			Name:      field.Name(),
			Path:      path,
			GoType:    field.Type(),
			Type:      t,
			Supported: supported,
			Conv:      conv,
			Tag:       tag,
		}

		spec, err := schema.ParseTag(sheetTag)
		if err != nil {
			info.Err = err
		}

		info.Alias = spec.Alias
		info.Required = spec.Required
		info.Default = spec.DefaultText
		info.HasDefault = spec.HasDefault

		fields = append(fields, info)
	}

	return fields
}

// canonicalTypes maps "pkgpath.Name" of the non-builtin canonical types to
// their tags.
var canonicalTypes = func() map[string]typetag.Tag {
	m := make(map[string]typetag.Tag)

	for tag := typetag.TagText; int(tag) < typetag.TagTotal; tag++ {
		rt := tag.GoType()
		if rt.PkgPath() != "" {
			m[rt.PkgPath()+"."+rt.Name()] = tag
		}
	}

	return m
}()

// inferType maps a declared field type to its value type. A single pointer
// level makes the type nullable.
func inferType(t types.Type) (typetag.Type, ConvKind, bool) {
	nullable := false
	if p, ok := types.Unalias(t).(*types.Pointer); ok {
		nullable = true
		t = p.Elem()
	}

	tag, exact := tagOf(types.Unalias(t))
	if tag == 0 {
		return typetag.Type{}, ConvNone, false
	}

	conv := ConvNone

	switch {
	case exact:
	case nullable:
		conv = ConvPointer
	default:
		conv = ConvNamed
	}

	return typetag.Type{Tag: tag, Nullable: nullable}, conv, true
}

// tagOf returns the tag of t and whether t is the canonical type itself
// rather than a named type over it.
func tagOf(t types.Type) (typetag.Tag, bool) {
	if named, ok := t.(*types.Named); ok {
		obj := named.Obj()
		if obj.Pkg() != nil {
			if tag, ok := canonicalTypes[obj.Pkg().Path()+"."+obj.Name()]; ok {
				return tag, true
			}
		}
	}

	basic, ok := t.Underlying().(*types.Basic)
	if !ok {
		return 0, false
	}

	_, exact := t.(*types.Basic)

	switch basic.Kind() {
	case types.String:
		return typetag.TagText, exact
	case types.Uint8:
		return typetag.TagByte, exact
	case types.Int16:
		return typetag.TagShort, exact
	case types.Int32:
		return typetag.TagInt32, exact
	case types.Int64:
		return typetag.TagInt64, exact
	case types.Int:
		return typetag.TagInt, exact
	case types.Float32:
		return typetag.TagFloat32, exact
	case types.Float64:
		return typetag.TagFloat64, exact
	case types.Bool:
		return typetag.TagBool, exact
	default:
		return 0, false
	}
}

// GetStruct returns the TypeInfo for a struct by package path and name.
func (a *Analyzer) GetStruct(pkgPath, typeName string) (*TypeInfo, error) {
	id := TypeID{PkgPath: pkgPath, Name: typeName}

	info := a.graph.GetType(id)
	if info == nil {
		return nil, fmt.Errorf("struct type %s not found", id)
	}

	return info, nil
}

// FindStruct looks a struct up by name across all loaded packages. The name
// must be unique.
func (a *Analyzer) FindStruct(typeName string) (*TypeInfo, error) {
	var found []*TypeInfo

	for id, info := range a.graph.Types {
		if id.Name == typeName {
			found = append(found, info)
		}
	}

	switch len(found) {
	case 0:
		return nil, fmt.Errorf("struct type %s not found", typeName)
	case 1:
		return found[0], nil
	default:
		return nil, fmt.Errorf("struct type %s is defined in %d packages", typeName, len(found))
	}
}
