package errors

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error represents an application error
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// JSON returns the error as a JSON string
func (e *Error) JSON() string {
	b, _ := json.Marshal(e)
	return string(b)
}

// New creates a new Error
func New(code int, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// InvalidArgument marks rejected input (empty or unpurchasable product
// lists, malformed requests).
func InvalidArgument(message string) *Error {
	return New(http.StatusBadRequest, message, nil)
}

// NotFound marks lookups that matched nothing.
func NotFound(message string) *Error {
	return New(http.StatusNotFound, message, nil)
}

// Internal marks remote collaborator failures surfaced to the caller.
func Internal(message string, err error) *Error {
	return New(http.StatusInternalServerError, message, err)
}

// Common error types
var (
	ErrBadRequest     = New(http.StatusBadRequest, "Bad request", nil)
	ErrUnauthorized   = New(http.StatusUnauthorized, "Unauthorized", nil)
	ErrNotFound       = New(http.StatusNotFound, "Not found", nil)
	ErrInternalServer = New(http.StatusInternalServerError, "Internal server error", nil)
)

// Respond writes an error to a gin context, mapping unknown error types to
// an internal server error.
func Respond(c *gin.Context, err error) {
	var appErr *Error
	if e, ok := err.(*Error); ok {
		appErr = e
	} else {
		appErr = New(http.StatusInternalServerError, "Internal server error", err)
	}
	c.JSON(appErr.Code, gin.H{"error": appErr.Message})
}
