package errors

import (
	"fmt"
	"net/http"

	"recipebox/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types. Client-facing messages are fixed; the login and
// token messages do not say which check failed.
var (
	// Authentication-related errors
	ErrCredentialsRequired = NewBaseError(
		http.StatusBadRequest,
		"CREDENTIALS_REQUIRED",
		"Email and password are required.",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusBadRequest,
		"USER_ALREADY_EXISTS",
		"User already exists.",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid credentials",
		"",
	)

	ErrTokenMissing = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_MISSING",
		"Unauthorized: No token provided",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"Invalid token",
		"",
	)

	ErrAuthFailed = NewBaseError(
		http.StatusInternalServerError,
		"AUTH_FAILED",
		"Server error",
		"",
	)

	// Recipe-related errors
	ErrIngredientsRequired = NewBaseError(
		http.StatusBadRequest,
		"INGREDIENTS_REQUIRED",
		"Ingredients are required.",
		"",
	)

	ErrRecipeFieldsRequired = NewBaseError(
		http.StatusBadRequest,
		"RECIPE_FIELDS_REQUIRED",
		"All recipe fields are required.",
		"",
	)

	ErrRecipeNotFound = NewBaseError(
		http.StatusNotFound,
		"RECIPE_NOT_FOUND",
		"Recipe not found.",
		"",
	)

	ErrRecipeSearchFailed = NewBaseError(
		http.StatusInternalServerError,
		"RECIPE_SEARCH_FAILED",
		"Failed to fetch recipes.",
		"",
	)

	ErrRecipeSaveFailed = NewBaseError(
		http.StatusInternalServerError,
		"RECIPE_SAVE_FAILED",
		"Failed to save recipe.",
		"",
	)

	ErrRecipeListFailed = NewBaseError(
		http.StatusInternalServerError,
		"RECIPE_LIST_FAILED",
		"Failed to fetch saved recipes.",
		"",
	)

	ErrRecipeDeleteFailed = NewBaseError(
		http.StatusInternalServerError,
		"RECIPE_DELETE_FAILED",
		"Failed to delete recipe.",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error, please try again later",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// InternalError is a server-side failure reported to the client through a
// route-specific sentinel while keeping the original cause for logging.
type InternalError struct {
	*BaseError
	cause error
}

// Error includes the cause so logs show what actually failed.
func (e *InternalError) Error() string {
	return fmt.Sprintf("%s: %v", e.message, e.cause)
}

// Unwrap returns the underlying cause.
func (e *InternalError) Unwrap() error {
	return e.cause
}

// WrapInternal maps err onto the route sentinel unless it already carries a
// client error (4xx). Returns nil for a nil err.
func WrapInternal(err error, sentinel *BaseError) error {
	if err == nil {
		return nil
	}

	var appErr AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
		return err
	}

	var internalErr *InternalError
	if errors.As(err, &internalErr) && internalErr.BaseError == sentinel {
		return err
	}

	return &InternalError{BaseError: sentinel, cause: err}
}
