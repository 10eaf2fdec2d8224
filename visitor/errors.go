package visitor

import (
	"errors"
	"fmt"
)

// IncompatibleVisitorError indicates that a plain dispatch (or a
// reference-returning cast) exhausted an entity's ancestor table without
// finding a handled type. It carries the display name of the type that could
// not be matched.
type IncompatibleVisitorError struct {
	TypeName string
}

// Error implements the error interface.
func (e *IncompatibleVisitorError) Error() string {
	return fmt.Sprintf("incompatible visitor for %s", e.TypeName)
}

// NewIncompatibleVisitorError creates an IncompatibleVisitorError for the
// given type name.
func NewIncompatibleVisitorError(typeName string) *IncompatibleVisitorError {
	return &IncompatibleVisitorError{TypeName: typeName}
}

// IsIncompatibleVisitor reports whether err is (or wraps) an
// IncompatibleVisitorError.
func IsIncompatibleVisitor(err error) bool {
	var target *IncompatibleVisitorError
	return errors.As(err, &target)
}
