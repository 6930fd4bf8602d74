package layout

import "fmt"

// ParseError reports a layout document that is not valid JSON.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing layout document: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// SchemaError reports a structurally valid document with a missing or
// malformed required field. Field is the document path of the offender,
// e.g. "habitat.radius" or "zones[2].position.x".
type SchemaError struct {
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("layout document field %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("layout document missing required field %s", e.Field)
}
