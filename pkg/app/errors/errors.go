// Package errors contains helper functions and types to work with errors
package errors

import (
	"errors"
	"net/http"
)

// Category defines error category
type Category int

const (
	// CategoryNoError marks a request that completed without error.
	CategoryNoError Category = iota
	// CategoryDataError The client sends some invalid data in the request,
	// for example, a malformed principal, amount or recipient address.
	CategoryDataError
	// CategoryUnauthorized The client is not authorized to access the requested resource
	CategoryUnauthorized
	// CategoryForbidden The client is authenticated as someone else than the acting principal
	CategoryForbidden
	// CategoryResourceNotFound The client is attempting to access a resource that does not exist
	CategoryResourceNotFound
	// CategoryNotSupported The requested functionality is not supported
	CategoryNotSupported
	// CategoryRejected A canister accepted the call and answered with an error variant
	CategoryRejected
	// CategoryDependencyFailure A canister call was rejected by the network or the canister
	CategoryDependencyFailure
	// CategoryGeneralError The service failed in an unexpected way
	CategoryGeneralError
	// CategoryRecovering The remote side is failing but is expected to recover
	CategoryRecovering
	// CategoryConnectionTimeout A canister call did not answer in time
	CategoryConnectionTimeout
)

func (c Category) String() string {
	switch c {
	case CategoryNoError:
		return "CategoryNoError"
	case CategoryDataError:
		return "CategoryDataError"
	case CategoryUnauthorized:
		return "CategoryUnauthorized"
	case CategoryForbidden:
		return "CategoryForbidden"
	case CategoryResourceNotFound:
		return "CategoryResourceNotFound"
	case CategoryNotSupported:
		return "CategoryNotSupported"
	case CategoryRejected:
		return "CategoryRejected"
	case CategoryDependencyFailure:
		return "CategoryDependencyFailure"
	case CategoryRecovering:
		return "CategoryRecovering"
	case CategoryConnectionTimeout:
		return "CategoryConnectionTimeout"
	default:
		return "CategoryGeneralError"
	}
}

// ServiceError represents service specific type that
// is used all over the services.
type ServiceError struct {
	Category Category
	Message  string
	// Reason carries the remote error variant name, if any.
	Reason string
	Err    error
}

// Error method to comply with error interface
func (err ServiceError) Error() string {
	if err.Err != nil {
		return err.Err.Error()
	}
	return err.Message
}

// Unwrap returns the underlying error
func (err ServiceError) Unwrap() error {
	return err.Err
}

// Is checks that provided error is a ServiceError with desired Category
func Is(err error, cat Category) bool {
	var svcErr *ServiceError
	return errors.As(err, &svcErr) && svcErr.Category == cat
}

// IsInternalError checks that provided error is not caused by the client
func IsInternalError(err error) bool {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) && svcErr.Category < CategoryDependencyFailure {
		return false
	}
	return true
}

// GeneralError returns a general service error
// this error message sent to the user is "Internal Server Error"
// the error passed is logged in the logger
func GeneralError(err error) error {
	if err == nil {
		err = errors.New("internal server error")
	}
	return &ServiceError{
		Category: CategoryGeneralError,
		Message:  "Internal Server Error",
		Err:      err,
	}
}

// ResourceNotFoundError returns an error with category ResourceNotFound
// the error message provided is returned to the user
func ResourceNotFoundError(err error, message string) error {
	if err == nil {
		err = errors.New("resource not found: " + message)
	}
	return &ServiceError{
		Category: CategoryResourceNotFound,
		Message:  message,
		Err:      err,
	}
}

// BadRequestError returns an error with category DataError
// the error message provided is returned to the user
func BadRequestError(err error, message string) error {
	if err == nil {
		err = errors.New("bad request: " + message)
	}
	return &ServiceError{
		Category: CategoryDataError,
		Message:  message,
		Err:      err,
	}
}

// NotSupportedError returns an error with category NotSupported
func NotSupportedError(err error, message string) error {
	if err == nil {
		err = errors.New("not supported: " + message)
	}
	return &ServiceError{
		Category: CategoryNotSupported,
		Message:  message,
		Err:      err,
	}
}

// ForbiddenError returns an error with category CategoryForbidden
func ForbiddenError(err error, message string) error {
	if err == nil {
		err = errors.New("request forbidden")
	}
	return &ServiceError{
		Category: CategoryForbidden,
		Message:  message,
		Err:      err,
	}
}

// UnAuthorizedError returns an error with category CategoryUnauthorized
func UnAuthorizedError(err error, message string) error {
	if err == nil {
		err = errors.New("unauthorized")
	}
	return &ServiceError{
		Category: CategoryUnauthorized,
		Message:  message,
		Err:      err,
	}
}

// RejectedError returns an error with category CategoryRejected.
// reason is the name of the error variant the canister answered with.
func RejectedError(err error, reason, message string) error {
	if err == nil {
		err = errors.New("rejected: " + reason)
	}
	return &ServiceError{
		Category: CategoryRejected,
		Message:  message,
		Reason:   reason,
		Err:      err,
	}
}

// DependencyFailureError returns an error with category CategoryDependencyFailure
func DependencyFailureError(err error, message string) error {
	if err == nil {
		err = errors.New("dependency failure: " + message)
	}
	return &ServiceError{
		Category: CategoryDependencyFailure,
		Message:  message,
		Err:      err,
	}
}

// RecoveringError returns an error with category CategoryRecovering
func RecoveringError(err error, message string) error {
	if err == nil {
		err = errors.New("temporarily unavailable: " + message)
	}
	return &ServiceError{
		Category: CategoryRecovering,
		Message:  message,
		Err:      err,
	}
}

// ConnectionTimeoutError returns an error with category CategoryConnectionTimeout
func ConnectionTimeoutError(err error, message string) error {
	if err == nil {
		err = errors.New("timeout: " + message)
	}
	return &ServiceError{
		Category: CategoryConnectionTimeout,
		Message:  message,
		Err:      err,
	}
}

// StatusCode returns the HTTP status code for the error category
func (err ServiceError) StatusCode() int {
	switch err.Category {
	case CategoryDataError:
		return http.StatusBadRequest
	case CategoryUnauthorized:
		return http.StatusUnauthorized
	case CategoryForbidden:
		return http.StatusForbidden
	case CategoryResourceNotFound:
		return http.StatusNotFound
	case CategoryNotSupported:
		return http.StatusMethodNotAllowed
	case CategoryRejected:
		return http.StatusUnprocessableEntity
	case CategoryDependencyFailure:
		return http.StatusBadGateway
	case CategoryGeneralError:
		return http.StatusInternalServerError
	case CategoryRecovering:
		return http.StatusServiceUnavailable
	case CategoryConnectionTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
