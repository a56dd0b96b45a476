package xerrors

import (
	"fmt"
	"net/http"

	"google.golang.org/grpc/codes"
)

// Kind is the fixed classification of a failure. Every failure leaving the
// service layer carries exactly one Kind; the transport adapters map it to a
// protocol status via the tables below and never invent their own codes.
type Kind string

const (
	KindValidationFailed Kind = "VALIDATION_FAILED"
	KindUnauthenticated  Kind = "UNAUTHENTICATED"
	KindForbidden        Kind = "FORBIDDEN"
	KindNotFound         Kind = "NOT_FOUND"
	KindConflict         Kind = "CONFLICT"
	KindRateLimited      Kind = "RATE_LIMITED"
	KindWriteFailed      Kind = "WRITE_FAILED"
	KindServiceFailure   Kind = "SERVICE_FAILURE"
	KindUnimplemented    Kind = "UNIMPLEMENTED"
	KindUnavailable      Kind = "UNAVAILABLE"
	KindUnknown          Kind = "UNKNOWN"
)

// Source is one (field path, message) pair of a validation breakdown.
type Source struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Error is a classified failure. Sources is non-empty only for validation
// failures. The wrapped cause is kept for diagnostics and log output; it is
// never rendered to clients in production.
type Error struct {
	Kind    Kind
	Message string
	Sources []Source
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, cause: cause}
}

// Validation builds a ValidationFailed error from field sources. The overall
// message is taken from the first source, matching the envelope the HTTP
// surface has always produced.
func Validation(sources ...Source) *Error {
	msg := "Validation error"
	if len(sources) > 0 {
		msg = sources[0].Message
	}
	return &Error{Kind: KindValidationFailed, Message: msg, Sources: sources}
}

func NotFound(message string) *Error { return New(KindNotFound, message) }

func Conflict(field string) *Error {
	return &Error{
		Kind:    KindConflict,
		Message: field + " already exists",
		Sources: []Source{{Path: field, Message: field + " already exists"}},
	}
}

// HTTPStatus maps a Kind to its HTTP status code. WriteFailed is an internal
// kind and is surfaced as a service failure.
func HTTPStatus(kind Kind) int {
	switch kind {
	case KindValidationFailed:
		return http.StatusBadRequest
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindRateLimited:
		return http.StatusTooManyRequests
	case KindWriteFailed, KindServiceFailure:
		return http.StatusInternalServerError
	case KindUnimplemented:
		return http.StatusNotImplemented
	case KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// GRPCCode maps a Kind to its gRPC status code, mirroring HTTPStatus row for row.
func GRPCCode(kind Kind) codes.Code {
	switch kind {
	case KindValidationFailed:
		return codes.InvalidArgument
	case KindUnauthenticated:
		return codes.Unauthenticated
	case KindForbidden:
		return codes.PermissionDenied
	case KindNotFound:
		return codes.NotFound
	case KindConflict:
		return codes.AlreadyExists
	case KindRateLimited:
		return codes.ResourceExhausted
	case KindWriteFailed, KindServiceFailure:
		return codes.Internal
	case KindUnimplemented:
		return codes.Unimplemented
	case KindUnavailable:
		return codes.Unavailable
	default:
		return codes.Unknown
	}
}
