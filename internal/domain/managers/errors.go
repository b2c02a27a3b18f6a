package managers

import (
	"errors"
	"fmt"
)

// ErrNoDefinition is returned by New when no entity definition is provided.
var ErrNoDefinition = errors.New("managers: entity definition is required")

// UnknownFieldError reports a field-map key that names no declared field
// during construction.
type UnknownFieldError struct {
	Entity string
	Field  string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("managers: entity %q has no field %q", e.Entity, e.Field)
}

// InvalidValueError reports a field-map value whose type does not fit the
// declared field during construction.
type InvalidValueError struct {
	Entity string
	Field  string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("managers: invalid value for field %q of entity %q", e.Field, e.Entity)
}
