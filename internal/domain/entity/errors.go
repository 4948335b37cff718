package entity

import (
	"errors"
	"fmt"
)

// Kind classifies why an entity operation was rejected.
type Kind int

const (
	// KindUnknown is reported for errors that did not come from this package.
	KindUnknown Kind = iota
	// KindType means a required Author or Magazine reference was missing.
	KindType
	// KindValue means a value was empty or outside its allowed length.
	KindValue
	// KindImmutable means a field that is fixed at construction was assigned.
	KindImmutable
)

func (k Kind) String() string {
	switch k {
	case KindType:
		return "type"
	case KindValue:
		return "value"
	case KindImmutable:
		return "immutable"
	default:
		return "unknown"
	}
}

// Sentinel errors, one per Kind. A *ValidationError unwraps to the sentinel
// of its kind, so callers can use errors.Is(err, ErrValue).
var (
	ErrType      = errors.New("wrong entity type")
	ErrValue     = errors.New("invalid value")
	ErrImmutable = errors.New("field is immutable")
)

// ValidationError represents a rejected entity operation with detailed field information.
type ValidationError struct {
	Field   string
	Message string
	Kind    Kind
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s error on field '%s': %s", e.Kind, e.Field, e.Message)
}

// Unwrap returns the sentinel matching the error's Kind.
func (e *ValidationError) Unwrap() error {
	switch e.Kind {
	case KindType:
		return ErrType
	case KindValue:
		return ErrValue
	case KindImmutable:
		return ErrImmutable
	default:
		return nil
	}
}

// KindOf returns the Kind carried by err, or KindUnknown.
func KindOf(err error) Kind {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Kind
	}
	return KindUnknown
}

func typeError(field, message string) error {
	return &ValidationError{Field: field, Message: message, Kind: KindType}
}

func immutableError(field, message string) error {
	return &ValidationError{Field: field, Message: message, Kind: KindImmutable}
}
