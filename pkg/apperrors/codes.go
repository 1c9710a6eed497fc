package apperrors

// Коды ошибок сгруппированные по доменам
const (
	// Аутентификация и авторизация
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"

	// Валидация
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeWeakPassword     ErrorCode = "WEAK_PASSWORD"
	CodeInvalidUserRole  ErrorCode = "INVALID_USER_ROLE"

	// Ресурсы
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeUserNotFound     ErrorCode = "USER_NOT_FOUND"
	CodePostNotFound     ErrorCode = "POST_NOT_FOUND"
	CodeCategoryNotFound ErrorCode = "CATEGORY_NOT_FOUND"
	CodeCommentNotFound  ErrorCode = "COMMENT_NOT_FOUND"
	CodeBookmarkNotFound ErrorCode = "BOOKMARK_NOT_FOUND"

	// Бизнес-логика
	CodeUsernameAlreadyExists ErrorCode = "USERNAME_ALREADY_EXISTS"
	CodeEmailAlreadyExists    ErrorCode = "EMAIL_ALREADY_EXISTS"
	CodeUserNotVerified       ErrorCode = "USER_NOT_VERIFIED"
	CodeUserBlocked           ErrorCode = "USER_BLOCKED"
	CodeInvalidVerifyCode     ErrorCode = "INVALID_VERIFICATION_CODE"
	CodeInvalidTopics         ErrorCode = "INVALID_TOPICS"
	CodeInvalidCategory       ErrorCode = "INVALID_CATEGORY"
	CodeInvalidTransition     ErrorCode = "INVALID_STATUS_TRANSITION"
	CodeInvalidScheduleTime   ErrorCode = "INVALID_SCHEDULE_TIME"

	// Системные ошибки
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError ErrorCode = "DATABASE_ERROR"
	CodeRateLimited   ErrorCode = "RATE_LIMITED"
)
