package repositories

import (
	"errors"

	"newsroom_backend/internal/models"

	"gorm.io/gorm"
)

var ErrBookmarkNotFound = errors.New("bookmark not found")

type BookmarkRepository interface {
	Create(db *gorm.DB, bookmark *models.Bookmark) error
	FindByUser(db *gorm.DB, userID uint) ([]models.Bookmark, error)
	FindByUserAndPost(db *gorm.DB, userID, postID uint) (*models.Bookmark, error)
	Delete(db *gorm.DB, userID, postID uint) error
}

type BookmarkRepositoryImpl struct{}

func NewBookmarkRepository() BookmarkRepository {
	return &BookmarkRepositoryImpl{}
}

func (r *BookmarkRepositoryImpl) Create(db *gorm.DB, bookmark *models.Bookmark) error {
	return db.Create(bookmark).Error
}

func (r *BookmarkRepositoryImpl) FindByUser(db *gorm.DB, userID uint) ([]models.Bookmark, error) {
	var bookmarks []models.Bookmark
	err := db.Preload("Post").Preload("Post.Author").Preload("Post.Category").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookmarks).Error
	return bookmarks, err
}

func (r *BookmarkRepositoryImpl) FindByUserAndPost(db *gorm.DB, userID, postID uint) (*models.Bookmark, error) {
	var bookmark models.Bookmark
	err := db.Where("user_id = ? AND post_id = ?", userID, postID).First(&bookmark).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookmarkNotFound
		}
		return nil, err
	}
	return &bookmark, nil
}

func (r *BookmarkRepositoryImpl) Delete(db *gorm.DB, userID, postID uint) error {
	result := db.Where("user_id = ? AND post_id = ?", userID, postID).Delete(&models.Bookmark{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBookmarkNotFound
	}
	return nil
}
