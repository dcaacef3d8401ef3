package api

import (
	"errors"
	"fmt"

	"github.com/example/covermate/internal/jsonx"
)

// Kind classifies a transport or domain-operation failure. The set is
// closed; the presentation layer maps each kind to a user-facing alert.
type Kind string

const (
	KindInvalidURL      Kind = "invalid_url"
	KindRequestFailed   Kind = "request_failed"
	KindInvalidResponse Kind = "invalid_response"
	KindDecodingFailed  Kind = "decoding_failed"
	KindUnauthorized    Kind = "unauthorized"
	KindValidation      Kind = "validation_error"
	KindServer          Kind = "server_error"
	KindUnknown         Kind = "unknown_error"
	KindEmptyFields     Kind = "empty_fields"
	KindInvalidEmail    Kind = "invalid_email"
)

// Error is the failure type surfaced by every operation in this package
// and by the domain services built on it. Message carries server-provided
// text where one exists; Err carries the underlying cause for wrapped
// transport and decode failures.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Message != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	case e.Message != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	default:
		return string(e.Kind)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches by kind, so errors.Is(err, ErrUnauthorized) holds for any
// unauthorized failure regardless of message or cause.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinel values for kinds that carry no message. Use errors.Is against
// these; message-bearing kinds are matched with KindOf.
var (
	ErrUnauthorized    = &Error{Kind: KindUnauthorized}
	ErrInvalidURL      = &Error{Kind: KindInvalidURL}
	ErrInvalidResponse = &Error{Kind: KindInvalidResponse}
	ErrEmptyFields     = &Error{Kind: KindEmptyFields}
	ErrInvalidEmail    = &Error{Kind: KindInvalidEmail}
)

// KindOf extracts the failure kind from err, or "" if err does not wrap
// an *Error from this package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// ValidationDetail is one entry of a structured 422 response. The loc
// field mixes strings and indexes, so it is held as tagged JSON values.
type ValidationDetail struct {
	Loc  []jsonx.Value `json:"loc"`
	Msg  string        `json:"msg"`
	Type string        `json:"type"`
}

// validationErrorBody is the wire shape of a structured validation error:
// {"detail": [{"loc": [...], "msg": "...", "type": "..."}]}.
type validationErrorBody struct {
	Detail []ValidationDetail `json:"detail"`
}
