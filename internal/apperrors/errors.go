package apperrors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode identifies an application error class.
type ErrorCode string

// AppError is the application error carried from services up to handlers.
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

// WithDetails returns a copy carrying extra detail payload, so the shared
// sentinel errors below stay immutable.
func (e *AppError) WithDetails(details interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

func (e *AppError) MarshalJSON() ([]byte, error) {
	type alias struct {
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}
	return json.Marshal(&alias{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Predeclared errors.
//
// Login failures are deliberately 400 with an identical message for unknown
// email and wrong password, and duplicate registration is 400 as well; the
// API contract predates the conventional 401/409 mapping.
var (
	ErrInvalidCredentials = New(CodeInvalidCredentials, "Invalid credentials", http.StatusBadRequest)
	ErrUnauthorized       = New(CodeUnauthorized, "Authentication required", http.StatusUnauthorized)
	ErrForbidden          = New(CodeForbidden, "Access denied", http.StatusForbidden)
	ErrInvalidToken       = New(CodeInvalidToken, "Invalid or expired token", http.StatusBadRequest)

	ErrUserNotFound       = New(CodeUserNotFound, "User not found", http.StatusNotFound)
	ErrEmailAlreadyExists = New(CodeEmailAlreadyExists, "User already exists with this email", http.StatusBadRequest)
	ErrUserNotVerified    = New(CodeUserNotVerified, "Please verify your email before logging in", http.StatusBadRequest)
	ErrUserBanned         = New(CodeUserBanned, "Account is banned", http.StatusForbidden)
	ErrWeakPassword       = New(CodeWeakPassword, "Password must be at least 6 characters long", http.StatusBadRequest)
	ErrInvalidUserRole    = New(CodeInvalidUserRole, "Invalid role", http.StatusBadRequest)

	ErrValidationFailed = New(CodeValidationFailed, "Validation failed", http.StatusBadRequest)

	ErrForumNotFound      = New(CodeForumNotFound, "Forum not found", http.StatusNotFound)
	ErrThreadNotFound     = New(CodeThreadNotFound, "Thread not found", http.StatusNotFound)
	ErrPostNotFound       = New(CodePostNotFound, "Post not found", http.StatusNotFound)
	ErrForumAlreadyExists = New(CodeForumAlreadyExists, "Forum with this name already exists", http.StatusBadRequest)

	ErrInvalidModeration = New(CodeInvalidModeration, `Invalid action. Use "approve" or "reject"`, http.StatusBadRequest)
	ErrInvalidFileType   = New(CodeInvalidFileType, "Only image files are allowed", http.StatusBadRequest)
	ErrFileTooLarge      = New(CodeFileTooLarge, "File too large", http.StatusBadRequest)
)

func ValidationError(details interface{}) *AppError {
	return ErrValidationFailed.WithDetails(details)
}

func NotFound(resource string) *AppError {
	return New(CodeResourceNotFound, fmt.Sprintf("%s not found", resource), http.StatusNotFound)
}

func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "Internal server error", http.StatusInternalServerError)
}

func InvalidTransition(err error) *AppError {
	return Wrap(err, CodeInvalidTransition, "Action not allowed in the account's current status", http.StatusBadRequest)
}

func ExternalServiceError(err error, message string) *AppError {
	return Wrap(err, CodeExternalServiceError, message, http.StatusBadGateway)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusBadRequest)
}

func NewUnauthorizedError(message string) *AppError {
	return New(CodeUnauthorized, message, http.StatusUnauthorized)
}

func NewForbiddenError(message string) *AppError {
	return New(CodeForbidden, message, http.StatusForbidden)
}

func NewNotFoundError(message string) *AppError {
	return New(CodeResourceNotFound, message, http.StatusNotFound)
}
