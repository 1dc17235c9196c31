package apperrors

// Error codes grouped by domain.
const (
	// Authentication and authorization
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"

	// Validation
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeWeakPassword     ErrorCode = "WEAK_PASSWORD"
	CodeInvalidUserRole  ErrorCode = "INVALID_USER_ROLE"

	// Resources
	CodeUserNotFound     ErrorCode = "USER_NOT_FOUND"
	CodeResourceNotFound ErrorCode = "RESOURCE_NOT_FOUND"
	CodeForumNotFound    ErrorCode = "FORUM_NOT_FOUND"
	CodeThreadNotFound   ErrorCode = "THREAD_NOT_FOUND"
	CodePostNotFound     ErrorCode = "POST_NOT_FOUND"

	// Business logic
	CodeEmailAlreadyExists  ErrorCode = "EMAIL_ALREADY_EXISTS"
	CodeUserNotVerified     ErrorCode = "USER_NOT_VERIFIED"
	CodeUserBanned          ErrorCode = "USER_BANNED"
	CodeInvalidTransition   ErrorCode = "INVALID_STATUS_TRANSITION"
	CodeForumAlreadyExists  ErrorCode = "FORUM_ALREADY_EXISTS"
	CodeInvalidModeration   ErrorCode = "INVALID_MODERATION_ACTION"
	CodeInvalidFileType     ErrorCode = "INVALID_FILE_TYPE"
	CodeFileTooLarge        ErrorCode = "FILE_TOO_LARGE"

	// System
	CodeInternalError        ErrorCode = "INTERNAL_ERROR"
	CodeExternalServiceError ErrorCode = "EXTERNAL_SERVICE_ERROR"
)
