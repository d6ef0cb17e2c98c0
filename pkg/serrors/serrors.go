// Package serrors provides semantic error kinds shared by every layer of the
// service. Services return kinds; the HTTP boundary turns them into status
// codes with HTTPStatus.
package serrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is a semantic error category. Only values created by NewKind
// implement it.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new comparable error kind sentinel.
func NewKind(name string) Kind { return kind{s: name} }

var (
	// ErrNotFound indicates the requested entity does not exist or is not visible to the caller.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrUnauthorized indicates the request carries no valid session.
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	// ErrTenantRequired indicates a valid session that is not bound to any tenant.
	ErrTenantRequired = NewKind("TENANT_REQUIRED")
	// ErrForbidden indicates the caller's role is too low for the operation.
	ErrForbidden = NewKind("FORBIDDEN")
	// ErrBadRequest indicates malformed or invalid input.
	ErrBadRequest = NewKind("BAD_REQUEST")
	// ErrConflict indicates the request clashes with current state
	// (duplicates, invalid transitions, mismatching webhooks).
	ErrConflict = NewKind("CONFLICT")
	// ErrInternal indicates an internal server error.
	ErrInternal = NewKind("INTERNAL")
	// ErrTimeout indicates the operation timed out.
	ErrTimeout = NewKind("TIMEOUT")
	// ErrUnavailable indicates the service is temporarily unavailable.
	ErrUnavailable = NewKind("UNAVAILABLE")
	// ErrRateLimited indicates the caller exceeded a rate-limit policy.
	ErrRateLimited = NewKind("RATE_LIMITED")
)

// Error pairs a Kind with an optional message and an optional cause.
// errors.Is and errors.As match both the kind and anything in the cause chain.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With returns an error of kind k with a formatted message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap returns an error of kind k wrapping err with a formatted message.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly returns an error that carries nothing but k.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

// Error renders "<msg>: <cause>", falling back to whichever part is set and
// finally to the kind name.
func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	case e.kind != nil:
		return e.kind.Error()
	default:
		return "unknown error"
	}
}

func (e *Error) Unwrap() error { return e.err }

func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}

	return e.err != nil && errors.Is(e.err, target)
}

func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}

	return e.err != nil && errors.As(e.err, target)
}

// Kind returns the kind sentinel, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message attached to the error.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped cause, or nil.
func (e *Error) Cause() error { return e.err }

// KindOf returns the first kind found in err's chain, or ErrInternal when err
// carries no semantic kind.
func KindOf(err error) Kind {
	var k Kind
	if errors.As(err, &k) {
		return k
	}

	return ErrInternal
}

// HTTPStatus maps the kind carried by err to an HTTP status code.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case ErrNotFound:
		return http.StatusNotFound
	case ErrUnauthorized:
		return http.StatusUnauthorized
	case ErrTenantRequired, ErrBadRequest:
		return http.StatusBadRequest
	case ErrForbidden:
		return http.StatusForbidden
	case ErrConflict:
		return http.StatusConflict
	case ErrTimeout:
		return http.StatusGatewayTimeout
	case ErrUnavailable:
		return http.StatusServiceUnavailable
	case ErrRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
