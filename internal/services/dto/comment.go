package dto

import (
	"time"

	"newsroom_backend/internal/models"
)

// CreateCommentRequest - новый комментарий к публикации
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required,min=1,max=2000"`
}

// CommentResponse - комментарий для выдачи наружу
type CommentResponse struct {
	ID        uint      `json:"id"`
	Content   string    `json:"content"`
	PostID    uint      `json:"post_id"`
	AuthorID  uint      `json:"author_id"`
	Author    *UserDTO  `json:"author,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewCommentResponse собирает CommentResponse из модели
func NewCommentResponse(comment *models.Comment) CommentResponse {
	resp := CommentResponse{
		ID:        comment.ID,
		Content:   comment.Content,
		PostID:    comment.PostID,
		AuthorID:  comment.AuthorID,
		CreatedAt: comment.CreatedAt,
	}
	if comment.Author != nil {
		author := NewUserDTO(comment.Author)
		resp.Author = &author
	}
	return resp
}
