package models

import (
	"errors"
	"fmt"
)

var ErrChargeNotFound = errors.New("charge not found")

// ValidationError is returned for input the caller has to fix before retrying.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}
