package dto

import (
	"time"

	"newsroom_backend/internal/models"
)

// CreateBookmarkRequest - добавление публикации в закладки
type CreateBookmarkRequest struct {
	PostID uint `json:"post_id" binding:"required"`
}

// SyncBookmarksRequest - пакетная загрузка закладок с клиента
type SyncBookmarksRequest struct {
	PostIDs []uint `json:"post_ids" binding:"required"`
}

// SyncBookmarksResponse - результат пакетной загрузки
type SyncBookmarksResponse struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
}

// BookmarkResponse - закладка с вложенной публикацией
type BookmarkResponse struct {
	ID        uint          `json:"id"`
	PostID    uint          `json:"post_id"`
	Post      *PostResponse `json:"post,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}

// NewBookmarkResponse собирает BookmarkResponse из модели
func NewBookmarkResponse(bookmark *models.Bookmark) BookmarkResponse {
	resp := BookmarkResponse{
		ID:        bookmark.ID,
		PostID:    bookmark.PostID,
		CreatedAt: bookmark.CreatedAt,
	}
	if bookmark.Post != nil {
		post := NewPostResponse(bookmark.Post)
		resp.Post = &post
	}
	return resp
}
