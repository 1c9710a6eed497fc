package models

type Comment struct {
	BaseModel
	Content string `gorm:"not null" json:"content"`

	PostID uint  `gorm:"index;not null" json:"post_id"`
	Post   *Post `gorm:"foreignKey:PostID" json:"-"`

	AuthorID uint  `gorm:"index;not null" json:"author_id"`
	Author   *User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}
