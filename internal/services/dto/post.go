package dto

import (
	"time"

	"newsroom_backend/internal/models"
)

// CreatePostRequest - создание публикации.
// Status опционален: без права ревью явный статус запрещен.
// CategoryID обязателен только когда темы лежат в разных рубриках.
type CreatePostRequest struct {
	Title       string             `json:"title" binding:"required,min=1,max=300"`
	Description string             `json:"description" binding:"required"`
	Status      *models.PostStatus `json:"status,omitempty" validate:"omitempty,is-post-status"`
	ScheduledAt *time.Time         `json:"scheduled_at,omitempty"`
	TopicIDs    []uint             `json:"topic_ids" binding:"required,min=1"`
	CategoryID  *uint              `json:"category_id,omitempty"`
}

// UpdatePostRequest - частичное обновление публикации
type UpdatePostRequest struct {
	Title       *string            `json:"title,omitempty" binding:"omitempty,min=1,max=300"`
	Description *string            `json:"description,omitempty"`
	Status      *models.PostStatus `json:"status,omitempty" validate:"omitempty,is-post-status"`
	ScheduledAt *time.Time         `json:"scheduled_at,omitempty"`
	TopicIDs    []uint             `json:"topic_ids,omitempty"`
	CategoryID  *uint              `json:"category_id,omitempty"`
}

// UpdatePostStatusRequest - решение ревьюера: published либо rejected
type UpdatePostStatusRequest struct {
	Status models.PostStatus `json:"status" binding:"required" validate:"is-post-status"`
}

// PostResponse - публикация для выдачи наружу
type PostResponse struct {
	ID          uint               `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Status      models.PostStatus  `json:"status"`
	ScheduledAt *time.Time         `json:"scheduled_at,omitempty"`
	AuthorID    uint               `json:"author_id"`
	Author      *UserDTO           `json:"author,omitempty"`
	CategoryID  *uint              `json:"category_id"`
	Category    *CategoryResponse  `json:"category,omitempty"`
	Topics      []CategoryResponse `json:"topics"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// PostListResponse - страница публикаций
type PostListResponse struct {
	Posts []PostResponse `json:"posts"`
}

// SyncQuery - курсор инкрементальной синхронизации
type SyncQuery struct {
	LastID uint `form:"last_id" binding:"omitempty,min=0"`
}

// SyncResponse - пачка новых публикаций плюс счетчики по рубрикам
type SyncResponse struct {
	Posts          []PostResponse `json:"posts"`
	CategoryCounts map[uint]int64 `json:"category_counts"`
}

// NewPostResponse собирает PostResponse из модели с загруженными связями
func NewPostResponse(post *models.Post) PostResponse {
	resp := PostResponse{
		ID:          post.ID,
		Title:       post.Title,
		Description: post.Description,
		Status:      post.Status,
		ScheduledAt: post.ScheduledAt,
		AuthorID:    post.AuthorID,
		CategoryID:  post.CategoryID,
		Topics:      make([]CategoryResponse, 0, len(post.Topics)),
		CreatedAt:   post.CreatedAt,
		UpdatedAt:   post.UpdatedAt,
	}
	if post.Author != nil {
		author := NewUserDTO(post.Author)
		resp.Author = &author
	}
	if post.Category != nil {
		resp.Category = &CategoryResponse{
			ID:       post.Category.ID,
			Name:     post.Category.Name,
			BnName:   post.Category.BnName,
			ParentID: post.Category.ParentID,
		}
	}
	for _, topic := range post.Topics {
		resp.Topics = append(resp.Topics, CategoryResponse{
			ID:       topic.ID,
			Name:     topic.Name,
			BnName:   topic.BnName,
			ParentID: topic.ParentID,
		})
	}
	return resp
}
