package repositories

import (
	"errors"
	"time"

	"newsroom_backend/internal/models"

	"gorm.io/gorm"
)

var ErrPostNotFound = errors.New("post not found")

// Scope - ограничение видимости, накладываемое сервисным слоем
// (кто что видит решает не репозиторий).
type Scope func(*gorm.DB) *gorm.DB

type PostRepository interface {
	Create(db *gorm.DB, post *models.Post) error
	FindByID(db *gorm.DB, id uint) (*models.Post, error)
	FindScoped(db *gorm.DB, scope Scope, limit, offset int) ([]models.Post, error)
	FindSince(db *gorm.DB, scope Scope, lastID uint, limit int) ([]models.Post, error)
	Save(db *gorm.DB, post *models.Post) error
	ReplaceTopics(db *gorm.DB, post *models.Post, topics []models.Category) error
	UpdateStatus(db *gorm.DB, id uint, status models.PostStatus) error
	Delete(db *gorm.DB, id uint) error
	CountPublishedByCategory(db *gorm.DB) (map[uint]int64, error)
	PublishDue(db *gorm.DB, now time.Time) (int64, error)
}

type PostRepositoryImpl struct{}

func NewPostRepository() PostRepository {
	return &PostRepositoryImpl{}
}

func (r *PostRepositoryImpl) Create(db *gorm.DB, post *models.Post) error {
	return db.Create(post).Error
}

func (r *PostRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.Post, error) {
	var post models.Post
	err := db.Preload("Author").Preload("Category").Preload("Topics").
		First(&post, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (r *PostRepositoryImpl) FindScoped(db *gorm.DB, scope Scope, limit, offset int) ([]models.Post, error) {
	var posts []models.Post
	err := scope(db.Preload("Author").Preload("Category").Preload("Topics")).
		Order("id").Limit(limit).Offset(offset).Find(&posts).Error
	return posts, err
}

func (r *PostRepositoryImpl) FindSince(db *gorm.DB, scope Scope, lastID uint, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := scope(db.Preload("Author").Preload("Category").Preload("Topics")).
		Where("id > ?", lastID).
		Order("id").Limit(limit).Find(&posts).Error
	return posts, err
}

func (r *PostRepositoryImpl) Save(db *gorm.DB, post *models.Post) error {
	result := db.Model(post).Updates(map[string]interface{}{
		"title":        post.Title,
		"description":  post.Description,
		"status":       post.Status,
		"scheduled_at": post.ScheduledAt,
		"category_id":  post.CategoryID,
		"updated_at":   time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPostNotFound
	}
	return nil
}

func (r *PostRepositoryImpl) ReplaceTopics(db *gorm.DB, post *models.Post, topics []models.Category) error {
	return db.Model(post).Association("Topics").Replace(topics)
}

func (r *PostRepositoryImpl) UpdateStatus(db *gorm.DB, id uint, status models.PostStatus) error {
	result := db.Model(&models.Post{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPostNotFound
	}
	return nil
}

func (r *PostRepositoryImpl) Delete(db *gorm.DB, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Bookmark{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM post_category_links WHERE post_id = ?", id).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Post{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrPostNotFound
		}
		return nil
	})
}

func (r *PostRepositoryImpl) CountPublishedByCategory(db *gorm.DB) (map[uint]int64, error) {
	var rows []struct {
		CategoryID uint
		Count      int64
	}

	err := db.Model(&models.Post{}).
		Select("category_id, count(*) as count").
		Where("status = ? AND category_id IS NOT NULL", models.PostStatusPublished).
		Group("category_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uint]int64, len(rows))
	for _, row := range rows {
		counts[row.CategoryID] = row.Count
	}
	return counts, nil
}

// PublishDue переводит все просроченные scheduled-посты в published
// одним батчем; возвращает число затронутых строк.
func (r *PostRepositoryImpl) PublishDue(db *gorm.DB, now time.Time) (int64, error) {
	result := db.Model(&models.Post{}).
		Where("status = ? AND scheduled_at IS NOT NULL AND scheduled_at <= ?", models.PostStatusScheduled, now).
		Updates(map[string]interface{}{
			"status":     models.PostStatusPublished,
			"updated_at": now,
		})

	return result.RowsAffected, result.Error
}
