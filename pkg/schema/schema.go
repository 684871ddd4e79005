// Package schema holds the validation rules shared by the dashboard forms and
// the backend handlers. Rules live as `validate` tags on the entities' write
// shapes; errors are reported per JSON field name.
package schema

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// labels maps JSON field names to the human label used in messages.
var labels = map[string]string{
	"name":         "Name",
	"variety":      "Variety",
	"plantingDate": "Planting date",
	"harvestDate":  "Harvest date",
	"status":       "Status",
	"description":  "Description",
	"date":         "Date",
	"cropId":       "Crop",
	"quantity":     "Quantity",
	"type":         "Type",
}

// Label returns the display label for a JSON field name.
func Label(field string) string {
	if l, ok := labels[field]; ok {
		return l
	}
	return field
}

// FieldErrors maps a JSON field name to its first validation message.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, e[k])
	}
	return strings.Join(parts, "; ")
}

// Validate checks v against its tags. It returns nil, a FieldErrors, or the
// validator's own error for unusable input (nil pointers, non-structs).
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return err
	}
	out := FieldErrors{}
	for _, fe := range ves {
		if _, seen := out[fe.Field()]; !seen {
			out[fe.Field()] = message(fe)
		}
	}
	return out
}

func message(fe validator.FieldError) string {
	label := Label(fe.Field())
	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "gte", "min":
		return fmt.Sprintf("%s must be at least %s", label, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", label, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gtefield":
		return fmt.Sprintf("%s must not be before %s", label, strings.ToLower(Label(jsonName(fe.Param()))))
	}
	return fmt.Sprintf("%s is invalid", label)
}

// jsonName converts a Go field name such as PlantingDate into plantingDate.
func jsonName(goName string) string {
	if goName == "" {
		return goName
	}
	return strings.ToLower(goName[:1]) + goName[1:]
}

// EchoValidator adapts Validate to echo's Validator interface.
type EchoValidator struct{}

func (EchoValidator) Validate(i any) error { return Validate(i) }
