package schema

import (
	"errors"

	"sheet-mapper/coerce"
	"sheet-mapper/typetag"
)

// FieldSpec describes one record field.
type FieldSpec struct {
	// Name is the Go field name.
	Name string
	// Type is the value type of the field.
	Type typetag.Type
	// Alias is the header label that denotes the field, if any.
	Alias string
	// Required fields are constructor arguments.
	Required bool
	// Position is the declaration index of the field.
	Position int
	// HasDefault marks a field whose absent cells take Default.
	HasDefault bool
	// Default is the parsed default value.
	Default any
	// DefaultText is the declared default before parsing.
	DefaultText string
}

// Label returns the header label for the field: its alias, else its name.
func (f FieldSpec) Label() string {
	if f.Alias != "" {
		return f.Alias
	}

	return f.Name
}

// Resolve turns cell text into a field value. Absent text yields the
// default when one is declared, else the zero value; each call returns a
// fresh value so nullable defaults are never shared between records.
func (f FieldSpec) Resolve(text string) (any, error) {
	if f.HasDefault && coerce.IsAbsent(text) {
		return coerce.ParseField(f.Name, f.DefaultText, f.Type)
	}

	return coerce.ParseField(f.Name, text, f.Type)
}

// Format renders a field value as cell text.
func (f FieldSpec) Format(v any) (string, error) {
	s, err := coerce.Format(v, f.Type)
	if err != nil {
		var ce *coerce.ConfigurationError
		if errors.As(err, &ce) {
			ce.Field = f.Name
		}

		return "", err
	}

	return s, nil
}

// FieldOption adjusts a field registered with a Builder.
type FieldOption func(*FieldSpec)

// Alias sets the header label of the field.
func Alias(label string) FieldOption {
	return func(f *FieldSpec) { f.Alias = label }
}

// Required marks the field as a constructor argument.
func Required() FieldOption {
	return func(f *FieldSpec) { f.Required = true }
}

// Default declares the text used when the field's cell is absent.
func Default(text string) FieldOption {
	return func(f *FieldSpec) {
		f.HasDefault = true
		f.DefaultText = text
	}
}
