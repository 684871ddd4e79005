package dashboard

import (
	"context"

	"farmdash/pkg/schema"
)

// FieldErrors maps a field name to its inline validation message.
type FieldErrors = schema.FieldErrors

type FieldType int

const (
	FieldText FieldType = iota
	FieldNumber
	FieldDate
	FieldSelect
)

type Option struct {
	Value string
	Label string
}

// Field describes one form input, keyed by the write shape's JSON name.
type Field struct {
	Name    string
	Label   string
	Type    FieldType
	Options func() []Option // FieldSelect only
}

// Values holds raw form input by field name. Dates are YYYY-MM-DD.
type Values map[string]string

func (v Values) clone() Values {
	out := make(Values, len(v))
	for k, s := range v {
		out[k] = s
	}
	return out
}

func (v Values) equal(o Values) bool {
	if len(v) != len(o) {
		return false
	}
	for k, s := range v {
		if os, ok := o[k]; !ok || os != s {
			return false
		}
	}
	return true
}

type Column[R any] struct {
	Header string
	Cell   func(R) string
}

// Backend is the REST collection a page reads and mutates.
type Backend[R any] interface {
	List(ctx context.Context) ([]R, error)
	Create(ctx context.Context, body any) error
	Update(ctx context.Context, id string, body any) error
	Delete(ctx context.Context, id string) error
}

// Kind is everything that differs between the crop, activity and resource
// screens. R is the read shape held by the store.
type Kind[R any] struct {
	Singular string // "Crop"
	Plural   string // "Crops"
	Fields   []Field
	Columns  []Column[R]
	Filter   int // index of the column the table filter matches

	ID    func(R) string
	Label func(R) string

	// Defaults are the create-mode values for the given day.
	Defaults func(today string) Values
	// Values flattens a read-shape entity into form values.
	Values func(R) Values
	// Normalize fixes up values after every change. Optional.
	Normalize func(Values)
	// Payload builds the typed write shape. Parse failures are reported per
	// field; the payload is always returned so schema rules still run.
	Payload func(Values) (any, schema.FieldErrors)
}

func (k *Kind[R]) field(name string) (Field, bool) {
	for _, f := range k.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}
