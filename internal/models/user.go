package models

import "time"

type User struct {
	BaseModel
	Username       string   `gorm:"uniqueIndex;not null" json:"username"`
	FullName       string   `json:"full_name"`
	Email          string   `gorm:"uniqueIndex;not null" json:"email"`
	HashedPassword string   `gorm:"not null" json:"-"`
	Role           UserRole `gorm:"type:varchar(20);default:'subscriber'" json:"role"`

	// Новые посты этого автора требуют одобрения перед публикацией
	PostReviewBeforePublish bool `gorm:"default:false" json:"post_review_before_publish"`

	IsVerified bool `gorm:"default:false" json:"is_verified"`
	IsBlocked  bool `gorm:"default:false" json:"is_blocked"`

	// Одноразовый код (верификация либо сброс пароля); максимум один активный
	VerificationCode   string     `json:"-"`
	VerificationExpiry *time.Time `json:"-"`

	// Relations
	Posts     []Post     `gorm:"foreignKey:AuthorID" json:"-"`
	Bookmarks []Bookmark `gorm:"foreignKey:UserID" json:"-"`
}
