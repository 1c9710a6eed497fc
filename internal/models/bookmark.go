package models

// Bookmark уникален для пары (user, post); повторное создание
// идемпотентно возвращает существующую запись.
type Bookmark struct {
	BaseModel
	UserID uint `gorm:"uniqueIndex:idx_bookmark_user_post;not null" json:"user_id"`
	PostID uint `gorm:"uniqueIndex:idx_bookmark_user_post;not null" json:"post_id"`

	Post *Post `gorm:"foreignKey:PostID" json:"post,omitempty"`
}
