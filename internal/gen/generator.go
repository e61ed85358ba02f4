package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"go/types"
	"maps"
	"slices"
	"strings"
	"text/template"

	"sheet-mapper/coerce"
	"sheet-mapper/internal/analyze"
	"sheet-mapper/internal/common"
	"sheet-mapper/internal/match"
)

const (
	schemaPkg  = "sheet-mapper/schema"
	typetagPkg = "sheet-mapper/typetag"
)

// Options holds configuration for code generation.
type Options struct {
	// PackageName is the name of the generated package. Empty means the
	// record's package.
	PackageName string
	// PackagePath is the import path of the generated package. Empty means
	// the record's package.
	PackagePath string
	// Suffix is appended to the record type name to name the descriptor
	// variable.
	Suffix string
}

// DefaultOptions returns the default generator options.
func DefaultOptions() Options {
	return Options{Suffix: "Sheet"}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "person_sheet.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// importSpec represents an import statement.
type importSpec struct {
	Alias string
	Path  string
}

type templateData struct {
	PackageName string
	StdImports  []importSpec
	Imports     []importSpec
	Var         string
	Name        string
	Record      string
	Fields      []fieldData
}

type fieldData struct {
	Name    string
	Type    string
	Get     string
	Set     string
	Options []string
}

// Generate renders a schema.Builder descriptor for info. Every field must
// have an inferred value type.
func Generate(info *analyze.TypeInfo, opts Options) (GeneratedFile, error) {
	if opts.Suffix == "" {
		opts.Suffix = DefaultOptions().Suffix
	}

	named, ok := info.GoType.(*types.Named)
	if !ok {
		return GeneratedFile{}, fmt.Errorf("%s: not a named struct type", info.ID)
	}

	g := &generator{
		pkgPath:    opts.PackagePath,
		recordPath: info.ID.PkgPath,
		imports:    make(map[string]importSpec),
	}
	if g.pkgPath == "" {
		g.pkgPath = info.ID.PkgPath
	}

	pkgName := opts.PackageName
	if pkgName == "" {
		pkgName = named.Obj().Pkg().Name()
	}

	data := &templateData{
		PackageName: pkgName,
		Var:         info.ID.Name + opts.Suffix,
		Name:        info.ID.Name,
		Record:      types.TypeString(named, g.qualifier),
	}

	g.addImport(schemaPkg, "schema")
	g.addImport(typetagPkg, "typetag")

	foreign := g.pkgPath != info.ID.PkgPath

	for i := range info.Fields {
		f := &info.Fields[i]

		fd, err := g.field(f, foreign)
		if err != nil {
			return GeneratedFile{}, fmt.Errorf("%s: %w", info.ID, err)
		}

		data.Fields = append(data.Fields, fd)
	}

	if len(data.Fields) == 0 {
		return GeneratedFile{}, fmt.Errorf("%s: no mappable fields", info.ID)
	}

	for _, spec := range slices.SortedFunc(maps.Values(g.imports), func(a, b importSpec) int {
		return strings.Compare(a.Path, b.Path)
	}) {
		if g.isStdLib(spec.Path) {
			data.StdImports = append(data.StdImports, spec)
		} else {
			data.Imports = append(data.Imports, spec)
		}
	}

	var buf bytes.Buffer
	if err := descriptorTemplate.Execute(&buf, data); err != nil {
		return GeneratedFile{}, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return GeneratedFile{Filename: filename(info.ID.Name), Content: buf.Bytes()},
			fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	return GeneratedFile{
		Filename: filename(info.ID.Name),
		Content:  formatted,
	}, nil
}

type generator struct {
	pkgPath    string
	recordPath string
	imports    map[string]importSpec
}

func (g *generator) qualifier(pkg *types.Package) string {
	if pkg.Path() == g.pkgPath {
		return ""
	}

	g.addImport(pkg.Path(), pkg.Name())

	return pkg.Name()
}

// addImport records pkgPath, aliased only when name differs from the last
// path element.
func (g *generator) addImport(pkgPath, name string) {
	if pkgPath == g.pkgPath {
		return
	}

	spec := importSpec{Path: pkgPath}
	if name != common.PkgAlias(pkgPath) {
		spec.Alias = name
	}

	g.imports[pkgPath] = spec
}

// canonical returns the Go expression of the canonical type of f.
func (g *generator) canonical(f *analyze.FieldInfo) string {
	rt := f.Type.Tag.GoType()
	if rt.PkgPath() == "" {
		return rt.String()
	}

	name, _, _ := strings.Cut(rt.String(), ".")
	g.addImport(rt.PkgPath(), name)

	if rt.PkgPath() == g.pkgPath {
		return rt.Name()
	}

	return rt.String()
}

func (g *generator) field(f *analyze.FieldInfo, foreign bool) (fieldData, error) {
	if f.Err != nil {
		return fieldData{}, &coerce.ConfigurationError{
			Field:  f.Name,
			GoType: types.TypeString(f.GoType, nil),
			Kind:   coerce.ErrUnsupportedType,
			Err:    f.Err,
		}
	}

	if !f.Supported {
		return fieldData{}, &coerce.ConfigurationError{
			Field:  f.Name,
			GoType: types.TypeString(f.GoType, nil),
			Kind:   coerce.ErrUnsupportedType,
		}
	}

	if foreign {
		for _, part := range f.Path {
			if !token.IsExported(part) {
				return fieldData{}, fmt.Errorf("field %s: %s is not reachable from package %s",
					f.Name, f.Selector(), g.pkgPath)
			}
		}
	}

	sel := "r." + f.Selector()
	canonical := g.canonical(f)

	fd := fieldData{
		Name: f.Name,
		Type: fmt.Sprintf("typetag.Of(typetag.%s)", f.Type.Tag),
	}

	if f.Type.Nullable {
		fd.Type = fmt.Sprintf("typetag.NullableOf(typetag.%s)", f.Type.Tag)
		canonical = "*" + canonical
	}

	switch f.Conv {
	case analyze.ConvNamed:
		fd.Get = fmt.Sprintf("%s(%s)", canonical, sel)
		fd.Set = fmt.Sprintf("%s = %s(v.(%s))", sel, types.TypeString(f.GoType, g.qualifier), canonical)
	case analyze.ConvPointer:
		fd.Get = fmt.Sprintf("(%s)(%s)", canonical, sel)
		fd.Set = fmt.Sprintf("%s = (%s)(v.(%s))", sel, types.TypeString(f.GoType, g.qualifier), canonical)
	default:
		fd.Get = sel
		fd.Set = fmt.Sprintf("%s = v.(%s)", sel, canonical)
	}

	if f.Alias != "" {
		fd.Options = append(fd.Options, fmt.Sprintf("schema.Alias(%q)", f.Alias))
	}

	if f.Required {
		fd.Options = append(fd.Options, "schema.Required()")
	}

	if f.HasDefault {
		fd.Options = append(fd.Options, fmt.Sprintf("schema.Default(%q)", f.Default))
	}

	return fd, nil
}

// isStdLib reports whether pkgPath looks like a standard library path: no
// dot in its first element, and not in this module or the record's.
func (g *generator) isStdLib(pkgPath string) bool {
	first, _, _ := strings.Cut(pkgPath, "/")
	if strings.Contains(first, ".") {
		return false
	}

	for _, local := range []string{schemaPkg, g.recordPath} {
		if root, _, _ := strings.Cut(local, "/"); root == first {
			return false
		}
	}

	return true
}

// filename returns the snake_case file name for a record type, e.g.
// "order_line_sheet.go" for OrderLine.
func filename(typeName string) string {
	return strings.Join(match.TokenizeIdent(typeName), "_") + "_sheet.go"
}

var descriptorTemplate = template.Must(template.New("descriptor").
	Funcs(template.FuncMap{"join": strings.Join}).
	Parse(`// Code generated by sheetmap gen. DO NOT EDIT.

package {{.PackageName}}

import (
{{range .StdImports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}}{{if and .StdImports .Imports}}
{{end}}{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})

// {{.Var}} describes {{.Record}} without reflection.
var {{.Var}} = schema.NewBuilder[{{.Record}}]().
	Named({{printf "%q" .Name}}).
{{range .Fields}}	Field({{printf "%q" .Name}}, {{.Type}},
		func(r *{{$.Record}}) any { return {{.Get}} },
		func(r *{{$.Record}}, v any) { {{.Set}} }{{if .Options}},
		{{join .Options ", "}}{{end}}).
{{end}}	MustBuild()
`))
