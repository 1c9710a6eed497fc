package models

import "time"

type Post struct {
	BaseModel
	Title       string     `gorm:"not null" json:"title"`
	Description string     `json:"description"`
	Status      PostStatus `gorm:"type:varchar(20);index;default:'draft'" json:"status"`

	// status=scheduled подразумевает непустой ScheduledAt в будущем
	ScheduledAt *time.Time `gorm:"index" json:"scheduled_at,omitempty"`

	// Автор неизменяем после создания
	AuthorID uint  `gorm:"index;not null" json:"author_id"`
	Author   *User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`

	// Родительская рубрика, выводится из тем
	CategoryID *uint     `gorm:"index" json:"category_id,omitempty"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`

	Topics []Category `gorm:"many2many:post_category_links" json:"topics,omitempty"`
}
