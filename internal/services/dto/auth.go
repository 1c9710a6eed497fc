package dto

import (
	"time"

	"newsroom_backend/internal/models"
)

// SignupRequest - запрос открытой регистрации (роль всегда subscriber)
type SignupRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// VerifyRequest - подтверждение email по 6-значному коду
type VerifyRequest struct {
	Username string `json:"username" binding:"required"`
	Code     string `json:"code" binding:"required,len=6"`
}

// ResendVerificationRequest - повторная отправка кода подтверждения
type ResendVerificationRequest struct {
	Username string `json:"username" binding:"required"`
}

// LoginRequest - запрос входа
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest - запрос обновления пары токенов
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// PasswordResetRequest - запрос кода сброса пароля
type PasswordResetRequest struct {
	Username string `json:"username" binding:"required"`
}

// PasswordResetConfirm - подтверждение сброса пароля
type PasswordResetConfirm struct {
	Username    string `json:"username" binding:"required"`
	Code        string `json:"code" binding:"required,len=6"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

// AuthResponse - ответ с парой токенов
type AuthResponse struct {
	AccessToken  string  `json:"access_token"`
	RefreshToken string  `json:"refresh_token"`
	TokenType    string  `json:"token_type"`
	User         UserDTO `json:"user"`
}

// UserDTO - базовая информация о пользователе
type UserDTO struct {
	ID         uint            `json:"id"`
	Username   string          `json:"username"`
	FullName   string          `json:"full_name"`
	Email      string          `json:"email"`
	Role       models.UserRole `json:"role"`
	IsVerified bool            `json:"is_verified"`
	CreatedAt  time.Time       `json:"created_at"`
}

// NewUserDTO собирает UserDTO из модели
func NewUserDTO(user *models.User) UserDTO {
	return UserDTO{
		ID:         user.ID,
		Username:   user.Username,
		FullName:   user.FullName,
		Email:      user.Email,
		Role:       user.Role,
		IsVerified: user.IsVerified,
		CreatedAt:  user.CreatedAt,
	}
}
