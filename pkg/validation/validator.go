package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	// Report field paths using wire names so findings point at the document
	// the user wrote, not at Go identifiers.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"yaml", "json"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})
}

// Struct runs tag-based validation on a document struct.
func Struct(v any) error {
	return validate.Struct(v)
}

// FieldErrors extracts per-field findings from a Struct error, if any.
func FieldErrors(err error) validator.ValidationErrors {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		return fieldErrs
	}
	return nil
}

// FieldPath rewrites a field error namespace into a document path,
// dropping the root struct name: "spec.habitat.radius" -> "habitat.radius".
func FieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
