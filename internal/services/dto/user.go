package dto

import (
	"time"

	"newsroom_backend/internal/models"
)

// CreateUserRequest - создание пользователя администратором,
// в отличие от SignupRequest роль задается явно
type CreateUserRequest struct {
	Username                string          `json:"username" binding:"required,min=3,max=50"`
	FullName                string          `json:"full_name" binding:"required"`
	Email                   string          `json:"email" binding:"required,email"`
	Password                string          `json:"password" binding:"required,min=8"`
	Role                    models.UserRole `json:"role" binding:"required" validate:"is-user-role"`
	PostReviewBeforePublish *bool           `json:"post_review_before_publish"`
	IsVerified              *bool           `json:"is_verified"`
}

// UpdateUserRequest - частичное обновление, nil-поля не трогаются
type UpdateUserRequest struct {
	FullName                *string          `json:"full_name,omitempty"`
	Email                   *string          `json:"email,omitempty" binding:"omitempty,email"`
	Password                *string          `json:"password,omitempty" binding:"omitempty,min=8"`
	Role                    *models.UserRole `json:"role,omitempty" validate:"omitempty,is-user-role"`
	PostReviewBeforePublish *bool            `json:"post_review_before_publish,omitempty"`
	IsVerified              *bool            `json:"is_verified,omitempty"`
	IsBlocked               *bool            `json:"is_blocked,omitempty"`
}

// UpdateMeRequest - обновление собственного профиля: роль и
// флаги модерации здесь менять нельзя
type UpdateMeRequest struct {
	FullName *string `json:"full_name,omitempty"`
	Email    *string `json:"email,omitempty" binding:"omitempty,email"`
	Password *string `json:"password,omitempty" binding:"omitempty,min=8"`
}

// UserResponse содержит полные данные о пользователе
type UserResponse struct {
	ID                      uint            `json:"id"`
	Username                string          `json:"username"`
	FullName                string          `json:"full_name"`
	Email                   string          `json:"email"`
	Role                    models.UserRole `json:"role"`
	PostReviewBeforePublish bool            `json:"post_review_before_publish"`
	IsVerified              bool            `json:"is_verified"`
	IsBlocked               bool            `json:"is_blocked"`
	CreatedAt               time.Time       `json:"created_at"`
	UpdatedAt               time.Time       `json:"updated_at"`
}

// UserListResponse - список с общим количеством
type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int64          `json:"total"`
}

// PaginationQuery - параметры пагинации (?skip=&limit=)
type PaginationQuery struct {
	Skip  int `form:"skip" binding:"omitempty,min=0"`
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}

// NewUserResponse собирает UserResponse из модели
func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:                      user.ID,
		Username:                user.Username,
		FullName:                user.FullName,
		Email:                   user.Email,
		Role:                    user.Role,
		PostReviewBeforePublish: user.PostReviewBeforePublish,
		IsVerified:              user.IsVerified,
		IsBlocked:               user.IsBlocked,
		CreatedAt:               user.CreatedAt,
		UpdatedAt:               user.UpdatedAt,
	}
}
