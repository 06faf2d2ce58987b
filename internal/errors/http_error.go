package errors

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"go.uber.org/zap"
)

// HTTPError represents an error with an associated HTTP status code.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTPError with the given code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{
		Code:    code,
		Message: message,
	}
}

// Helper for common errors
var (
	ErrUnauthorized = func(msg string) *HTTPError { return NewHTTPError(http.StatusUnauthorized, msg) }
	ErrBadRequest   = func(msg string) *HTTPError { return NewHTTPError(http.StatusBadRequest, msg) }
)

// Sentinels returned by repositories and services.
var (
	ErrNotFound           = stderrors.New("not found")
	ErrConflict           = stderrors.New("conflict")
	ErrInvalidCredentials = stderrors.New("invalid credentials")
)

// Response is the body written for failed requests.
type Response struct {
	Response string `json:"response"`
}

// StatusFor picks the HTTP status matching err.
func StatusFor(err error) int {
	var httpErr *HTTPError
	switch {
	case stderrors.As(err, &httpErr):
		return httpErr.Code
	case stderrors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case stderrors.Is(err, ErrConflict):
		return http.StatusConflict
	case stderrors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// ErrorStatus logs err and writes message with the given status code.
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	zap.S().Errorw(message, "status", httpStatusCode, "error", err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatusCode)
	json.NewEncoder(w).Encode(Response{Response: message})
}

// Write reports err using the status chosen by StatusFor.
func Write(message string, w http.ResponseWriter, err error) {
	ErrorStatus(message, StatusFor(err), w, err)
}
