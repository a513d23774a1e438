package client

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind classifies why a backend call failed.
type ErrorKind int

const (
	// KindNetwork covers connection failures, timeouts and cancellation.
	KindNetwork ErrorKind = iota + 1
	// KindStatus is a response with a non-2xx status code.
	KindStatus
	// KindMalformed is a 2xx response whose body is not valid JSON.
	KindMalformed
	// KindMissingField is valid JSON lacking the expected field.
	KindMissingField
)

func (k ErrorKind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindStatus:
		return "status"
	case KindMalformed:
		return "malformed_response"
	case KindMissingField:
		return "missing_field"
	default:
		return "unknown"
	}
}

// Sentinels to match a *Error with errors.Is.
var (
	ErrNetwork           = errors.New("backend unreachable")
	ErrStatus            = errors.New("backend returned an error status")
	ErrMalformedResponse = errors.New("backend returned malformed JSON")
	ErrMissingField      = errors.New("backend response misses expected field")
)

// Error is returned by every failing Client call.
type Error struct {
	Kind ErrorKind
	// Op is the backend operation, "mint" or "balance".
	Op string
	// StatusCode is set for KindStatus and KindMalformed.
	StatusCode int
	// Message is the error message sent by the backend, if any.
	Message string
	// Field is set for KindMissingField.
	Field string
	Err   error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindStatus:
		if len(e.Message) > 0 {
			return fmt.Sprintf("%s: backend returned status %d: %s", e.Op, e.StatusCode, e.Message)
		}
		return fmt.Sprintf("%s: backend returned status %d", e.Op, e.StatusCode)
	case KindMissingField:
		return fmt.Sprintf("%s: backend response misses field %q", e.Op, e.Field)
	case KindNetwork, KindMalformed:
		return fmt.Sprintf("%s: %v: %v", e.Op, e.sentinel(), e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	return target == e.sentinel()
}

func (e *Error) sentinel() error {
	switch e.Kind {
	case KindNetwork:
		return ErrNetwork
	case KindStatus:
		return ErrStatus
	case KindMalformed:
		return ErrMalformedResponse
	case KindMissingField:
		return ErrMissingField
	default:
		return nil
	}
}
