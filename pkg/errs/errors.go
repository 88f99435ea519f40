package errs

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrInternalServer         = errors.New("Internal server error")
	ErrClient                 = errors.New("Bad request")
	ErrNotLoggedIn            = errors.New("Unauthorized access")
	ErrUnauthorized           = errors.New("Forbidden access")
	ErrNotFound               = errors.New("Resource not found")
	ErrConflict               = errors.New("Conflicting record found")
	ErrFileSizeExceedingLimit = errors.New("Uploaded file exceeds the size limit")
	ErrUnsupportedMediaType   = errors.New("Unsupported media type")
	ErrBadGateway             = errors.New("Bad gateway")
	ErrServiceUnavailable     = errors.New("Service unavailable")
	ErrUnexpectedStatus       = errors.New("Unexpected response status")

	ErrInvalidForm      = errors.New("Form has invalid fields")
	ErrSubmitInFlight   = errors.New("A submission is already in progress")
	ErrEmptyPrompt      = errors.New("Prompt is empty")
	ErrGeneratorNotOpen = errors.New("Generator dialog is not open")
	ErrMissingImage     = errors.New("No image selected")
	ErrNotAnImage       = errors.New("Selected file is not an image")
	ErrMissingBaseURL   = errors.New("Product API base URL is not configured")
)

var statusMap = map[int]error{
	http.StatusBadRequest:            ErrClient,
	http.StatusUnauthorized:          ErrNotLoggedIn,
	http.StatusForbidden:             ErrUnauthorized,
	http.StatusNotFound:              ErrNotFound,
	http.StatusConflict:              ErrConflict,
	http.StatusRequestEntityTooLarge: ErrFileSizeExceedingLimit,
	http.StatusUnsupportedMediaType:  ErrUnsupportedMediaType,
	http.StatusInternalServerError:   ErrInternalServer,
	http.StatusBadGateway:            ErrBadGateway,
	http.StatusServiceUnavailable:    ErrServiceUnavailable,
}

// GetStatusCodeError maps a non-2xx response status to its sentinel error.
func GetStatusCodeError(statusCode int) error {
	err, ok := statusMap[statusCode]
	if !ok {
		if statusCode >= http.StatusInternalServerError {
			return ErrInternalServer
		}
		return ErrUnexpectedStatus
	}
	return err
}

// StatusError is a rejected request whose body carried nothing the form can attribute to a field.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("product api returned status %d: %s", e.StatusCode, GetStatusCodeError(e.StatusCode))
}

func (e *StatusError) Unwrap() error {
	return GetStatusCodeError(e.StatusCode)
}

// ValidationError is a rejected request whose body is a {field: message} object.
type ValidationError struct {
	StatusCode int
	Fields     map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("product api rejected the request with status %d: %d field error(s)", e.StatusCode, len(e.Fields))
}

func (e *ValidationError) Unwrap() error {
	return GetStatusCodeError(e.StatusCode)
}
