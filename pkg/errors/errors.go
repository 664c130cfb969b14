package errors

import "fmt"

// HTTPError carries an HTTP status plus a stable application error code and
// message, for mapping domain errors at the delivery layer.
type HTTPError struct {
	StatusCode int
	Code       int
	Message    string
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("http error %d (code %d): %s", e.StatusCode, e.Code, e.Message)
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(statusCode, code int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Code:       code,
		Message:    message,
	}
}
