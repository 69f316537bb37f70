package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Common error sentinel values
var (
	ErrNotFound             = errors.New("not found")
	ErrBadRequest           = errors.New("malformed request")
	ErrFetchFailure         = errors.New("content fetch failed")
	ErrSubmissionFailure    = errors.New("submission failed")
	ErrConfigurationMissing = errors.New("missing configuration")
	ErrInternal             = errors.New("internal server error")
)

type ApiErr struct {
	StatusCode int
	err        error
	Details    string // Additional details about the error
	Field      string // Field that caused the error (for validation errors)
	Cause      error  // The underlying cause of the error
}

// implements error interface. this allows us to pass an instance of ApiErr as an argument of type `error`
func (e *ApiErr) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.err.Error(), e.Details)
	}
	return e.err.Error()
}

// GetFullError returns a recursive error message including all causes
func (e *ApiErr) GetFullError() string {
	msg := e.Error()
	if e.Cause != nil {
		if apiErr, ok := e.Cause.(*ApiErr); ok {
			msg = fmt.Sprintf("%s -> %s", msg, apiErr.GetFullError())
		} else {
			msg = fmt.Sprintf("%s -> %s", msg, e.Cause.Error())
		}
	}
	return msg
}

// this function allows us to do the following:
// err := &ApiErr{StatusCode: ..., err: someSentinelError}
// errors.Is(err, someSentinelError) ==> evaluates to true
func (e *ApiErr) Unwrap() error {
	return e.err
}

// Common error constructors with appropriate HTTP status codes

func NewNotFoundError(details string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusNotFound, err: ErrNotFound, Details: details}
}

func NewBadRequestError(details string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusBadRequest, err: ErrBadRequest, Details: details}
}

func NewBadRequestErrorWithField(field, details string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusBadRequest, err: ErrBadRequest, Field: field, Details: details}
}

// NewFetchError wraps a content-store failure. Fatal for the page render;
// the caller falls through to the generic error page, never a retry.
func NewFetchError(operation string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrFetchFailure,
		Details:    operation,
		Cause:      cause,
	}
}

// NewSubmissionError reports a contact-relay failure. Always distinct from
// success; masking these behind a fake success response is a bug.
func NewSubmissionError(details string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        ErrSubmissionFailure,
		Details:    details,
		Cause:      cause,
	}
}

func NewConfigurationError(key string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrConfigurationMissing,
		Details:    fmt.Sprintf("required configuration %s is not set", key),
		Field:      key,
	}
}

func NewInternalError(details string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusInternalServerError, err: ErrInternal, Details: details}
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsBadRequest(err error) bool {
	return errors.Is(err, ErrBadRequest)
}

func IsFetchFailure(err error) bool {
	return errors.Is(err, ErrFetchFailure)
}

func IsSubmissionFailure(err error) bool {
	return errors.Is(err, ErrSubmissionFailure)
}

func IsConfigurationMissing(err error) bool {
	return errors.Is(err, ErrConfigurationMissing)
}
