// Package lkerr defines the closed error taxonomy shared by all transport
// layers of the kit. Each kind maps to a fixed HTTP status code, and any
// error that does not carry a kind is treated as Unknown.
package lkerr

import (
	"net/http"

	"github.com/cockroachdb/errors"
)

// GenericMessage is the client-facing message for Unknown-kind errors.
// Internal error text must never reach clients; it goes to logs only.
const GenericMessage = "An error has occurred"

// Kind identifies the category of a request-handling error.
type Kind int

const (
	// KindUnknown is the fallback for untyped or unrecognized errors.
	KindUnknown Kind = iota
	// KindValidation indicates invalid request input.
	KindValidation
	// KindUnauthorised indicates missing or invalid credentials.
	KindUnauthorised
	// KindForbidden indicates the caller lacks permission.
	KindForbidden
	// KindNotFound indicates a missing resource.
	KindNotFound
	// KindConflict indicates a state conflict, such as a duplicate write.
	KindConflict
	// KindTooManyRequests indicates the caller is being rate limited.
	KindTooManyRequests
)

// Status returns the HTTP status code for the kind.
func (k Kind) Status() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthorised:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindTooManyRequests:
		return http.StatusTooManyRequests
	case KindUnknown:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// String returns the kind's name as used in structured log fields.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "Validation"
	case KindUnauthorised:
		return "Unauthorised"
	case KindForbidden:
		return "Forbidden"
	case KindNotFound:
		return "NotFound"
	case KindConflict:
		return "Conflict"
	case KindTooManyRequests:
		return "TooManyRequests"
	default:
		return "Unknown"
	}
}

// Error is a kinded error with a client-safe message. The message of a
// known kind is returned to clients verbatim; the message of an Unknown
// error is replaced with GenericMessage at the transport boundary.
type Error struct {
	kind  Kind
	msg   string
	cause error
}

// New creates an error with the given kind and message.
func New(kind Kind, msg string) *Error {
	return &Error{kind: kind, msg: msg, cause: errors.NewWithDepth(1, msg)}
}

// Validation creates a KindValidation error.
func Validation(msg string) *Error { return New(KindValidation, msg) }

// Unauthorised creates a KindUnauthorised error.
func Unauthorised(msg string) *Error { return New(KindUnauthorised, msg) }

// Forbidden creates a KindForbidden error.
func Forbidden(msg string) *Error { return New(KindForbidden, msg) }

// NotFound creates a KindNotFound error.
func NotFound(msg string) *Error { return New(KindNotFound, msg) }

// Conflict creates a KindConflict error.
func Conflict(msg string) *Error { return New(KindConflict, msg) }

// TooManyRequests creates a KindTooManyRequests error.
func TooManyRequests(msg string) *Error { return New(KindTooManyRequests, msg) }

// Wrap attaches a kind and client-safe message to an underlying cause.
// The cause is preserved for logs and errors.Is/As chains.
func Wrap(cause error, kind Kind, msg string) *Error {
	return &Error{kind: kind, msg: msg, cause: errors.WrapWithDepth(1, cause, msg)}
}

func (e *Error) Error() string { return e.msg }

// Kind returns the error's kind.
func (e *Error) Kind() Kind { return e.kind }

// Status returns the HTTP status code for the error's kind.
func (e *Error) Status() int { return e.kind.Status() }

// Message returns the message that may be shown to clients. For Unknown
// kinds this is GenericMessage, never the internal error text.
func (e *Error) Message() string {
	if e.kind == KindUnknown {
		return GenericMessage
	}
	return e.msg
}

// Unwrap exposes the cause for standard error chains.
func (e *Error) Unwrap() error { return e.cause }

// KindOf classifies an arbitrary error. Errors without a Kind, including
// nil causes wrapped by other libraries, classify as KindUnknown.
func KindOf(err error) Kind {
	var kerr *Error
	if errors.As(err, &kerr) {
		return kerr.kind
	}
	return KindUnknown
}

// ClientMessage returns the message safe to expose for any error. Known
// kinds surface their message; everything else surfaces GenericMessage.
func ClientMessage(err error) string {
	var kerr *Error
	if errors.As(err, &kerr) {
		return kerr.Message()
	}
	return GenericMessage
}
