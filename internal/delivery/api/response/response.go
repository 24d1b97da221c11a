// Package response writes JSON bodies for the API.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorBody is returned for every non-2xx response.
type ErrorBody struct {
	Code    string `json:"code"`    // Machine-readable error code, e.g., "TOKEN_INVALID"
	Message string `json:"message"` // User-facing message
}

// MessageBody carries a plain confirmation message.
type MessageBody struct {
	Message string `json:"message"`
}

// Success writes data as the response body unchanged.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// Message writes {"message": message}.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, MessageBody{Message: message})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string) error {
	return c.JSON(statusCode, ErrorBody{
		Code:    errorCode,
		Message: message,
	})
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message)
}
