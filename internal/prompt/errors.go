package prompt

import (
	"errors"
	"fmt"
)

// Common errors returned by the prompt package. Both indicate programming
// errors in the caller and should fail the request immediately rather
// than being retried.
var (
	// ErrUnknownTemplate is returned when rendering a template ID that
	// was never registered.
	ErrUnknownTemplate = errors.New("unknown template")

	// ErrMissingVariable is returned when a required variable is absent
	// at render time. Use errors.As with *MissingVariableError to learn
	// which variable was missing.
	ErrMissingVariable = errors.New("missing template variable")
)

// MissingVariableError reports the specific variable a render call was
// missing.
type MissingVariableError struct {
	Template string
	Variable string
}

func (e *MissingVariableError) Error() string {
	return fmt.Sprintf("template %q: missing variable %q", e.Template, e.Variable)
}

// Unwrap makes the error match ErrMissingVariable under errors.Is.
func (e *MissingVariableError) Unwrap() error {
	return ErrMissingVariable
}
