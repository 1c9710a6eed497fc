package repositories

import (
	"errors"

	"newsroom_backend/internal/models"

	"gorm.io/gorm"
)

var ErrCommentNotFound = errors.New("comment not found")

type CommentRepository interface {
	Create(db *gorm.DB, comment *models.Comment) error
	FindByID(db *gorm.DB, id uint) (*models.Comment, error)
	FindByPost(db *gorm.DB, postID uint) ([]models.Comment, error)
	Delete(db *gorm.DB, id uint) error
}

type CommentRepositoryImpl struct{}

func NewCommentRepository() CommentRepository {
	return &CommentRepositoryImpl{}
}

func (r *CommentRepositoryImpl) Create(db *gorm.DB, comment *models.Comment) error {
	return db.Create(comment).Error
}

func (r *CommentRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.Comment, error) {
	var comment models.Comment
	err := db.First(&comment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return &comment, nil
}

func (r *CommentRepositoryImpl) FindByPost(db *gorm.DB, postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := db.Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}

func (r *CommentRepositoryImpl) Delete(db *gorm.DB, id uint) error {
	result := db.Delete(&models.Comment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCommentNotFound
	}
	return nil
}
