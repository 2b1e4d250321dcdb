package table

import (
	"fmt"
	"reflect"
	"strings"

	clierrors "github.com/salmonumbrella/consoletable/internal/errors"
)

// Field is one labelled value of a record.
type Field struct {
	Label string
	Value any
}

// From builds a table from records. mapper turns each record into its
// fields; the labels of the first record become the columns. Every record
// must yield the same number of fields.
func From[T any](records []T, mapper func(T) []Field) (*Table, error) {
	t := New()
	for i, rec := range records {
		fields := mapper(rec)
		if i == 0 {
			if len(fields) == 0 {
				return nil, &clierrors.ShapeError{Op: "from records", Got: 0, Message: "mapper returned no fields for record 0"}
			}
			for _, f := range fields {
				t.AddColumn(f.Label)
			}
		}
		values := make([]any, len(fields))
		for j, f := range fields {
			values[j] = f.Value
		}
		if err := t.AddRow(values...); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
	}
	return t, nil
}

// FromStructs builds a table from a slice of structs (or struct pointers)
// using StructFields.
func FromStructs[T any](records []T) (*Table, error) {
	t, err := From(records, StructFields[T]())
	if err != nil {
		return nil, err
	}
	if t.ColumnCount() == 0 {
		// No records: take the labels from the type alone.
		for _, f := range structFieldsOf(reflect.TypeOf((*T)(nil)).Elem()) {
			t.AddColumn(f.name)
		}
	}
	return t, nil
}

type structField struct {
	index int
	name  string
}

// StructFields returns a mapper that reads the exported fields of T in
// declaration order. Labels come from the json tag when present. A nil
// pointer record maps to nil values. Non-struct types map to no fields.
func StructFields[T any]() func(T) []Field {
	fields := structFieldsOf(reflect.TypeOf((*T)(nil)).Elem())
	return func(rec T) []Field {
		out := make([]Field, len(fields))
		v := reflect.ValueOf(rec)
		for v.IsValid() && v.Kind() == reflect.Ptr {
			if v.IsNil() {
				v = reflect.Value{}
				break
			}
			v = v.Elem()
		}
		for i, f := range fields {
			out[i].Label = f.name
			if v.IsValid() {
				out[i].Value = v.Field(f.index).Interface()
			}
		}
		return out
	}
}

func structFieldsOf(t reflect.Type) []structField {
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}

	var fields []structField
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() || f.Tag.Get("json") == "-" {
			continue
		}
		fields = append(fields, structField{index: i, name: fieldJSONName(f)})
	}
	return fields
}

// fieldJSONName returns the json tag name for a struct field, or the field name.
func fieldJSONName(f reflect.StructField) string {
	if tag := f.Tag.Get("json"); tag != "" && tag != "-" {
		if idx := strings.Index(tag, ","); idx > 0 {
			return tag[:idx]
		}
		return tag
	}
	return f.Name
}
