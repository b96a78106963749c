package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by repositories for a missing entity.
var ErrNotFound = errors.New("not found")

// ValidationError reports a missing or malformed request field. It is
// surfaced to the caller before the pipeline runs.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// InfrastructureError wraps a dependency failure with the pipeline stage it
// happened in. It is logged and fed into the stage's fail policy, never
// returned to the caller of Match.
type InfrastructureError struct {
	Stage Stage
	Err   error
}

func (e *InfrastructureError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
