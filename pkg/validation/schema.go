package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/tarunkusetti2004/Orb-of-night-habitat/pkg/habitat"
)

// ValidateSpec performs schema-level validation on a parsed habitat spec.
// It checks structural correctness before any metrics or placement work.
func ValidateSpec(s *habitat.Spec) *Report {
	r := NewReport()

	validateShell(s, r)
	validatePlan(s, r)

	return r
}

func validateShell(s *habitat.Spec, r *Report) {
	err := Struct(s)
	if err == nil {
		return
	}
	for _, fe := range FieldErrors(err) {
		path := FieldPath(fe)
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     constraintMessage(path, fe),
			FieldPath:   path,
			ActualValue: fe.Value(),
			Expected:    constraintExpected(fe),
		})
	}
}

func validatePlan(s *habitat.Spec, r *Report) {
	for i, p := range s.Zones {
		if p.Position != nil && p.Count > 1 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("zones[%d] (%s): count cannot be combined with an explicit position", i, p.Type),
				FieldPath:   fmt.Sprintf("zones[%d].count", i),
				ActualValue: p.Count,
				Expected:    "1, or omit count",
				Suggestions: []string{"Split the entry into one positioned zone and one counted entry"},
			})
		}
	}
}

func constraintMessage(path string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", path)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", path, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", path, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", path, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", path, fe.Param())
	}
	return fmt.Sprintf("%s is invalid (%s)", path, fe.Tag())
}

func constraintExpected(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "a value"
	case "gt":
		return "> " + fe.Param()
	case "gte", "min":
		return ">= " + fe.Param()
	case "oneof":
		return "one of: " + fe.Param()
	}
	if fe.Param() != "" {
		return fe.Tag() + "=" + fe.Param()
	}
	return fe.Tag()
}
