package service

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure into exactly one taxonomy entry. Handlers map a
// Kind to an HTTP status; nothing below the service layer leaks to callers.
type Kind int

const (
	KindInternal Kind = iota
	KindBadRequest
	KindUnauthenticated
	KindForbidden
	KindQuotaExceeded
	KindConflict
	KindNotFound
	KindUpstream
)

func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindForbidden:
		return "forbidden"
	case KindQuotaExceeded:
		return "quota_exceeded"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	case KindUpstream:
		return "upstream"
	default:
		return "internal"
	}
}

// Error is the tagged-variant error returned by every service operation.
// Only the fields relevant to the Kind are set: RequestsMade/Limit for
// KindQuotaExceeded, Detail for KindUpstream.
type Error struct {
	Kind    Kind
	Message string

	RequestsMade int
	Limit        int

	Detail string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Message, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func ErrBadRequest(message string) *Error {
	return &Error{Kind: KindBadRequest, Message: message}
}

func ErrUnauthenticated(message string) *Error {
	return &Error{Kind: KindUnauthenticated, Message: message}
}

func ErrForbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

func ErrQuotaExceeded(requestsMade, limit int) *Error {
	return &Error{
		Kind:         KindQuotaExceeded,
		Message:      fmt.Sprintf("Free tier limited to %d requests per day. Upgrade to paid plan for unlimited access.", limit),
		RequestsMade: requestsMade,
		Limit:        limit,
	}
}

func ErrConflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func ErrNotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func ErrUpstream(message, detail string) *Error {
	return &Error{Kind: KindUpstream, Message: message, Detail: detail}
}

func ErrInternal(message string) *Error {
	return &Error{Kind: KindInternal, Message: message}
}

// AsError unwraps err into the service error type.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// KindOf returns the taxonomy kind of err, treating anything outside the
// taxonomy as internal.
func KindOf(err error) Kind {
	if e, ok := AsError(err); ok {
		return e.Kind
	}
	return KindInternal
}

// HTTPStatus maps a Kind to its transport status code.
func HTTPStatus(kind Kind) int {
	switch kind {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindQuotaExceeded:
		return http.StatusTooManyRequests
	case KindConflict:
		return http.StatusConflict
	case KindNotFound:
		return http.StatusNotFound
	case KindUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
