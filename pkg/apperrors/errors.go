package apperrors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode - тип для кодов ошибок
type ErrorCode string

// AppError - основная структура ошибки приложения
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

// Конструктор
func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

// С цепочкой ошибок
func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

// Вспомогательные методы
func (e *AppError) WithDetails(details interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

func (e *AppError) WithError(err error) *AppError {
	clone := *e
	clone.Err = err
	return &clone
}

// Для маршалинга в JSON
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

// Is - обертка над стандартной функцией errors.Is
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As - обертка над стандартной функцией errors.As
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Предопределенные ошибки
var (
	// Аутентификация
	ErrInvalidCredentials = New(CodeInvalidCredentials, "Incorrect username or password", http.StatusUnauthorized)
	ErrUnauthorized       = New(CodeUnauthorized, "Authentication required", http.StatusUnauthorized)
	ErrForbidden          = New(CodeForbidden, "Access denied", http.StatusForbidden)
	ErrInvalidToken       = New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)

	// Пользователи
	ErrUserNotFound          = New(CodeUserNotFound, "User not found", http.StatusNotFound)
	ErrUsernameAlreadyExists = New(CodeUsernameAlreadyExists, "Username already registered", http.StatusConflict)
	ErrEmailAlreadyExists    = New(CodeEmailAlreadyExists, "Email already registered", http.StatusConflict)
	ErrUserNotVerified       = New(CodeUserNotVerified, "Account is not verified", http.StatusForbidden)
	ErrUserBlocked           = New(CodeUserBlocked, "Account is blocked", http.StatusForbidden)
	ErrWeakPassword          = New(CodeWeakPassword, "Password must be at least 8 characters", http.StatusBadRequest)
	ErrInvalidUserRole       = New(CodeInvalidUserRole, "Invalid user role", http.StatusBadRequest)
	ErrInvalidVerifyCode     = New(CodeInvalidVerifyCode, "Invalid or expired verification code", http.StatusBadRequest)

	// Контент
	ErrPostNotFound     = New(CodePostNotFound, "Post not found", http.StatusNotFound)
	ErrPostNotVisible   = New(CodeForbidden, "Not authorized to view this post", http.StatusForbidden)
	ErrCategoryNotFound = New(CodeCategoryNotFound, "Category not found", http.StatusNotFound)
	ErrCommentNotFound  = New(CodeCommentNotFound, "Comment not found", http.StatusNotFound)
	ErrBookmarkNotFound = New(CodeBookmarkNotFound, "Bookmark not found", http.StatusNotFound)

	ErrInvalidTopics       = New(CodeInvalidTopics, "Invalid topic IDs", http.StatusBadRequest)
	ErrInvalidCategory     = New(CodeInvalidCategory, "Category must be one of the parent categories of the topics", http.StatusBadRequest)
	ErrInvalidTransition   = New(CodeInvalidTransition, "Invalid status transition", http.StatusBadRequest)
	ErrInvalidScheduleTime = New(CodeInvalidScheduleTime, "scheduled_at must be set and in the future", http.StatusBadRequest)

	// Валидация
	ErrValidationFailed = New(CodeValidationFailed, "Validation failed", http.StatusBadRequest)

	// Троттлинг
	ErrRateLimited = New(CodeRateLimited, "Too many requests", http.StatusTooManyRequests)
)

// Функции-помощники для создания ошибок с деталями
func ValidationError(details interface{}) *AppError {
	return ErrValidationFailed.WithDetails(details)
}

func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "Internal server error", http.StatusInternalServerError)
}

func NewNotFoundError(message string) *AppError {
	return New(CodeNotFound, message, http.StatusNotFound)
}

func NewForbiddenError(message string) *AppError {
	return New(CodeForbidden, message, http.StatusForbidden)
}

func NewUnauthorizedError(message string) *AppError {
	return New(CodeUnauthorized, message, http.StatusUnauthorized)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusBadRequest)
}
