package fantasy

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownMatch     = errors.New("unknown match")
	ErrMalformedPayload = errors.New("malformed payload")
	ErrInvalidEntry     = errors.New("invalid entry")
	ErrUnknownTeam      = errors.New("unknown team")
)

// ValidationError describes why a submission was rejected. Index is the
// zero-based offending element, or -1 when the whole payload is at fault.
type ValidationError struct {
	Kind    error
	Index   int
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%s: entry %d: %s", e.Kind, e.Index, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

func payloadError(kind error, msg string) *ValidationError {
	return &ValidationError{Kind: kind, Index: -1, Message: msg}
}

func entryError(kind error, index int, field string, value any, msg string) *ValidationError {
	return &ValidationError{Kind: kind, Index: index, Field: field, Value: value, Message: msg}
}
