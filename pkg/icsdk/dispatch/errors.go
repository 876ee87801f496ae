package dispatch

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
)

// RejectCode classifies a transport-level rejection.
type RejectCode int

const (
	// CodeRejected covers replica or canister rejects and undecodable replies.
	CodeRejected RejectCode = iota
	// CodeTimeout means no reply arrived before the deadline.
	CodeTimeout
	// CodeUnreachable means the replica could not be reached.
	CodeUnreachable
	// CodeCanceled means the caller gave up before a reply arrived.
	CodeCanceled
)

func (c RejectCode) String() string {
	switch c {
	case CodeTimeout:
		return "Timeout"
	case CodeUnreachable:
		return "Unreachable"
	case CodeCanceled:
		return "Canceled"
	default:
		return "Rejected"
	}
}

// RejectError is returned when a call could not be completed or its reply
// could not be decoded. Application-level errors returned by the callee are
// never RejectErrors.
type RejectError struct {
	Code     RejectCode
	Canister string
	Method   string
	Message  string
	Err      error
}

func (e *RejectError) Error() string {
	return fmt.Sprintf("%s.%s rejected (%s): %s", e.Canister, e.Method, e.Code, e.Message)
}

func (e *RejectError) Unwrap() error {
	return e.Err
}

// IsRejection reports whether err is, or wraps, a transport rejection.
func IsRejection(err error) bool {
	_, ok := AsRejection(err)
	return ok
}

// AsRejection extracts the RejectError from err.
func AsRejection(err error) (*RejectError, bool) {
	var rej *RejectError
	if errors.As(err, &rej) {
		return rej, true
	}
	return nil, false
}

func classify(err error) RejectCode {
	var (
		netErr net.Error
		urlErr *url.Error
	)
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return CodeTimeout
	case errors.Is(err, context.Canceled):
		return CodeCanceled
	case errors.As(err, &netErr) && netErr.Timeout():
		return CodeTimeout
	case errors.As(err, &urlErr), errors.As(err, &netErr):
		return CodeUnreachable
	default:
		return CodeRejected
	}
}

// AppError is implemented by decoded application-level error variants, the
// Err side of a canister's result type.
type AppError interface {
	error
	Variant() string
}

// AsAppError extracts an application-level error from err.
func AsAppError(err error) (AppError, bool) {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
