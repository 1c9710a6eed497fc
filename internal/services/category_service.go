package services

import (
	"newsroom_backend/internal/models"
	"newsroom_backend/internal/repositories"
	"newsroom_backend/internal/services/dto"
	"newsroom_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type CategoryService interface {
	List(db *gorm.DB, skip, limit int) ([]dto.CategoryResponse, error)
	GetByID(db *gorm.DB, id uint) (*dto.CategoryResponse, error)
	Create(db *gorm.DB, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	Update(db *gorm.DB, id uint, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error)
	Delete(db *gorm.DB, id uint) error
}

type CategoryServiceImpl struct {
	categoryRepo repositories.CategoryRepository
}

func NewCategoryService(categoryRepo repositories.CategoryRepository) CategoryService {
	return &CategoryServiceImpl{categoryRepo: categoryRepo}
}

func (s *CategoryServiceImpl) List(db *gorm.DB, skip, limit int) ([]dto.CategoryResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	categories, err := s.categoryRepo.FindAll(db, limit, skip)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := make([]dto.CategoryResponse, 0, len(categories))
	for i := range categories {
		resp = append(resp, toCategoryResponse(&categories[i]))
	}
	return resp, nil
}

func (s *CategoryServiceImpl) GetByID(db *gorm.DB, id uint) (*dto.CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	resp := toCategoryResponse(category)
	return &resp, nil
}

func (s *CategoryServiceImpl) Create(db *gorm.DB, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if req.ParentID != nil {
		parent, err := s.categoryRepo.FindByID(db, *req.ParentID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrCategoryNotFound) {
				return nil, apperrors.ErrCategoryNotFound
			}
			return nil, apperrors.InternalError(err)
		}
		// Дерево двухуровневое: тема не может быть родителем
		if !parent.IsRoot() {
			return nil, apperrors.NewBadRequestError("Parent must be a root category")
		}
	}

	category := &models.Category{
		Name:     req.Name,
		BnName:   req.BnName,
		ParentID: req.ParentID,
	}
	if err := s.categoryRepo.Create(db, category); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := toCategoryResponse(category)
	return &resp, nil
}

func (s *CategoryServiceImpl) Update(db *gorm.DB, id uint, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.BnName != nil {
		category.BnName = *req.BnName
	}
	if req.ParentID != nil {
		if *req.ParentID == category.ID {
			return nil, apperrors.NewBadRequestError("Category cannot be its own parent")
		}
		parent, err := s.categoryRepo.FindByID(db, *req.ParentID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrCategoryNotFound) {
				return nil, apperrors.ErrCategoryNotFound
			}
			return nil, apperrors.InternalError(err)
		}
		if !parent.IsRoot() {
			return nil, apperrors.NewBadRequestError("Parent must be a root category")
		}
		category.ParentID = req.ParentID
	}

	if err := s.categoryRepo.Update(db, category); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := toCategoryResponse(category)
	return &resp, nil
}

func (s *CategoryServiceImpl) Delete(db *gorm.DB, id uint) error {
	if err := s.categoryRepo.Delete(db, id); err != nil {
		if apperrors.Is(err, repositories.ErrCategoryNotFound) {
			return apperrors.ErrCategoryNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func toCategoryResponse(category *models.Category) dto.CategoryResponse {
	resp := dto.CategoryResponse{
		ID:       category.ID,
		Name:     category.Name,
		BnName:   category.BnName,
		ParentID: category.ParentID,
	}
	for i := range category.Subcategories {
		sub := &category.Subcategories[i]
		resp.Subcategories = append(resp.Subcategories, dto.CategoryResponse{
			ID:       sub.ID,
			Name:     sub.Name,
			BnName:   sub.BnName,
			ParentID: sub.ParentID,
		})
	}
	return resp
}
