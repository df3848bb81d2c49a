// Package fault defines the error kinds shared by the domain, the gateway and the transports.
package fault

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type Kind int

const (
	Infrastructure Kind = iota
	Validation
	NotFound
	Conflict
	InvalidTransition
)

var kindNames = map[Kind]string{
	Infrastructure:    "infrastructure",
	Validation:        "validation",
	NotFound:          "not_found",
	Conflict:          "conflict",
	InvalidTransition: "invalid_transition",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

var (
	ErrValidation        = errors.New("validation failed")
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("conflict")
	ErrInvalidTransition = errors.New("invalid transition")
)

// ValidationError carries the aggregated rule violations of one value.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", ErrValidation, e.Err)
}

func (e *ValidationError) Unwrap() []error {
	return []error{ErrValidation, e.Err}
}

// Fields returns per-field messages when the cause is an ozzo validation.Errors map.
func (e *ValidationError) Fields() map[string]string {
	var errs validation.Errors
	if !errors.As(e.Err, &errs) {
		return nil
	}

	fields := make(map[string]string, len(errs))
	for name, err := range errs {
		fields[name] = err.Error()
	}
	return fields
}

// Invalid wraps err as a validation failure. A nil err stays nil.
func Invalid(err error) error {
	if err == nil {
		return nil
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return err
	}
	return &ValidationError{Err: err}
}

// KindOf classifies an error chain. Unknown errors are Infrastructure.
func KindOf(err error) Kind {
	if err == nil {
		return Infrastructure
	}

	var internal validation.InternalError
	if errors.As(err, &internal) {
		return Infrastructure
	}

	switch {
	case errors.Is(err, ErrValidation):
		return Validation
	case errors.Is(err, ErrNotFound):
		return NotFound
	case errors.Is(err, ErrConflict):
		return Conflict
	case errors.Is(err, ErrInvalidTransition):
		return InvalidTransition
	}

	var errs validation.Errors
	if errors.As(err, &errs) {
		return Validation
	}
	var verr validation.Error
	if errors.As(err, &verr) {
		return Validation
	}

	return Infrastructure
}
