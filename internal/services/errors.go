package services

import (
	"errors"
	"fmt"
)

// ErrNotFound marks the normal "no such record" outcome. Callers decide
// whether it is a 404 or simply an empty view.
var ErrNotFound = errors.New("not found")

// ValidationError rejects user input, naming the field that failed so the
// message can be shown inline next to it. The operation that raised it has
// not mutated anything.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalidField(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
