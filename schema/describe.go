package schema

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"sheet-mapper/coerce"
	"sheet-mapper/typetag"
)

// TagName is the struct tag key read by Describe.
const TagName = "sheet"

type describeResult struct {
	desc any
	err  error
}

var descriptors sync.Map // reflect.Type -> describeResult

// Describe derives the descriptor of struct type T from its exported fields
// and `sheet` tags. The result, including an error, is computed once per type.
//
// Embedded structs without a tag are flattened. Fields whose type has no
// value codec fail with a *coerce.ConfigurationError.
func Describe[T any]() (*Descriptor[T], error) {
	rt := reflect.TypeFor[T]()
	if v, ok := descriptors.Load(rt); ok {
		res := v.(describeResult)
		if res.err != nil {
			return nil, res.err
		}

		return res.desc.(*Descriptor[T]), nil
	}

	d, err := describe[T](rt)

	v, _ := descriptors.LoadOrStore(rt, describeResult{desc: d, err: err})

	res := v.(describeResult)
	if res.err != nil {
		return nil, res.err
	}

	return res.desc.(*Descriptor[T]), nil
}

// MustDescribe is like Describe but panics on error.
func MustDescribe[T any]() *Descriptor[T] {
	d, err := Describe[T]()
	if err != nil {
		panic(err)
	}

	return d
}

func describe[T any](rt reflect.Type) (*Descriptor[T], error) {
	if rt.Kind() != reflect.Struct {
		return nil, &coerce.ConfigurationError{
			GoType: rt.String(),
			Kind:   coerce.ErrUnsupportedType,
			Err:    fmt.Errorf("record type must be a struct"),
		}
	}

	var (
		specs  []FieldSpec
		access []accessor[T]
	)

	var walk func(t reflect.Type, base []int) error
	walk = func(t reflect.Type, base []int) error {
		for i := range t.NumField() {
			sf := t.Field(i)
			if !sf.IsExported() && !sf.Anonymous {
				continue
			}

			tag, tagged := sf.Tag.Lookup(TagName)
			if tag == "-" {
				continue
			}

			path := append(append([]int(nil), base...), i)

			_, supported := typetag.FromReflectType(sf.Type)
			if sf.Anonymous && !tagged && !supported && sf.Type.Kind() == reflect.Struct {
				if err := walk(sf.Type, path); err != nil {
					return err
				}

				continue
			}

			if !sf.IsExported() {
				continue
			}

			spec, err := fieldSpec(sf, tag)
			if err != nil {
				return err
			}

			specs = append(specs, spec)
			access = append(access, reflectAccessor[T](path, sf.Type))
		}

		return nil
	}

	if err := walk(rt, nil); err != nil {
		return nil, err
	}

	return newDescriptor(rt.Name(), specs, access)
}

func fieldSpec(sf reflect.StructField, tag string) (FieldSpec, error) {
	t, ok := typetag.FromReflectType(sf.Type)
	if !ok {
		return FieldSpec{}, &coerce.ConfigurationError{
			Field:  sf.Name,
			GoType: sf.Type.String(),
			Kind:   coerce.ErrUnsupportedType,
		}
	}

	spec := FieldSpec{Name: sf.Name, Type: t}
	if err := parseTag(tag, &spec); err != nil {
		return FieldSpec{}, &coerce.ConfigurationError{
			Field:  sf.Name,
			GoType: sf.Type.String(),
			Kind:   ErrInvalidTag,
			Err:    err,
		}
	}

	return spec, nil
}

// ParseTag reads a `sheet` tag value into the Alias, Required, HasDefault
// and DefaultText of a FieldSpec. The default text is not parsed.
func ParseTag(tag string) (FieldSpec, error) {
	var spec FieldSpec
	if err := parseTag(tag, &spec); err != nil {
		return FieldSpec{}, err
	}

	return spec, nil
}

// parseTag applies `[alias][,required][,default=<text>]` to spec.
func parseTag(tag string, spec *FieldSpec) error {
	if tag == "" {
		return nil
	}

	alias, rest, _ := strings.Cut(tag, ",")
	spec.Alias = strings.TrimSpace(alias)

	for rest != "" {
		if text, ok := strings.CutPrefix(rest, "default="); ok {
			spec.HasDefault = true
			spec.DefaultText = text

			return nil
		}

		var opt string

		opt, rest, _ = strings.Cut(rest, ",")

		switch strings.TrimSpace(opt) {
		case "required":
			spec.Required = true
		case "":
		default:
			return fmt.Errorf("unknown %s tag option %q", TagName, opt)
		}
	}

	return nil
}

// reflectAccessor reads and writes the field at path, converting between
// the field's Go type and the canonical type of its tag.
func reflectAccessor[T any](path []int, ft reflect.Type) accessor[T] {
	t, _ := typetag.FromReflectType(ft)
	canonical := t.Tag.GoType()

	field := func(rec *T) reflect.Value {
		return reflect.ValueOf(rec).Elem().FieldByIndex(path)
	}

	if !t.Nullable {
		return accessor[T]{
			get: func(rec *T) any {
				return field(rec).Convert(canonical).Interface()
			},
			set: func(rec *T, v any) {
				field(rec).Set(reflect.ValueOf(v).Convert(ft))
			},
		}
	}

	return accessor[T]{
		get: func(rec *T) any {
			fv := field(rec)
			if fv.IsNil() {
				return reflect.Zero(reflect.PointerTo(canonical)).Interface()
			}

			p := reflect.New(canonical)
			p.Elem().Set(fv.Elem().Convert(canonical))

			return p.Interface()
		},
		set: func(rec *T, v any) {
			fv := field(rec)

			pv := reflect.ValueOf(v)
			if pv.IsNil() {
				fv.SetZero()

				return
			}

			p := reflect.New(ft.Elem())
			p.Elem().Set(pv.Elem().Convert(ft.Elem()))
			fv.Set(p)
		},
	}
}
