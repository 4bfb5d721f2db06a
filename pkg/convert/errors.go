package convert

import (
	"errors"
	"fmt"
)

// Conversion error types
var (
	ErrUnsupportedType = errors.New("unsupported element type")
	ErrInvalidConfig   = errors.New("invalid converter configuration")
)

// UnsupportedTypeError is returned when a typed list is requested for an
// element type outside the supported set. No partial list is produced.
type UnsupportedTypeError struct {
	Tag Tag
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("%s: %s (supported types are: Integer, Float, String, Boolean, Node, Relationship)",
		ErrUnsupportedType, e.Tag)
}

func (e *UnsupportedTypeError) Is(target error) bool {
	return target == ErrUnsupportedType
}
