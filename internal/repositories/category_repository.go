package repositories

import (
	"errors"
	"time"

	"newsroom_backend/internal/models"

	"gorm.io/gorm"
)

var ErrCategoryNotFound = errors.New("category not found")

type CategoryRepository interface {
	FindByID(db *gorm.DB, id uint) (*models.Category, error)
	FindByIDs(db *gorm.DB, ids []uint) ([]models.Category, error)
	FindAll(db *gorm.DB, limit, offset int) ([]models.Category, error)
	Create(db *gorm.DB, category *models.Category) error
	Update(db *gorm.DB, category *models.Category) error
	Delete(db *gorm.DB, id uint) error
	HasAny(db *gorm.DB) (bool, error)
}

type CategoryRepositoryImpl struct{}

func NewCategoryRepository() CategoryRepository {
	return &CategoryRepositoryImpl{}
}

func (r *CategoryRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.Category, error) {
	var category models.Category
	err := db.First(&category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepositoryImpl) FindByIDs(db *gorm.DB, ids []uint) ([]models.Category, error) {
	var categories []models.Category
	err := db.Where("id IN ?", ids).Find(&categories).Error
	return categories, err
}

func (r *CategoryRepositoryImpl) FindAll(db *gorm.DB, limit, offset int) ([]models.Category, error) {
	var categories []models.Category
	err := db.Order("id").Limit(limit).Offset(offset).Find(&categories).Error
	return categories, err
}

func (r *CategoryRepositoryImpl) Create(db *gorm.DB, category *models.Category) error {
	return db.Create(category).Error
}

func (r *CategoryRepositoryImpl) Update(db *gorm.DB, category *models.Category) error {
	result := db.Model(category).Updates(map[string]interface{}{
		"name":       category.Name,
		"bn_name":    category.BnName,
		"parent_id":  category.ParentID,
		"updated_at": time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

func (r *CategoryRepositoryImpl) Delete(db *gorm.DB, id uint) error {
	result := db.Delete(&models.Category{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

func (r *CategoryRepositoryImpl) HasAny(db *gorm.DB) (bool, error) {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
