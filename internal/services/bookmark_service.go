package services

import (
	"newsroom_backend/internal/models"
	"newsroom_backend/internal/repositories"
	"newsroom_backend/internal/services/dto"
	"newsroom_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type BookmarkService interface {
	List(db *gorm.DB, user *models.User) ([]dto.BookmarkResponse, error)
	Create(db *gorm.DB, user *models.User, postID uint) (*dto.BookmarkResponse, error)
	Delete(db *gorm.DB, user *models.User, postID uint) error
	Sync(db *gorm.DB, user *models.User, postIDs []uint) (*dto.SyncBookmarksResponse, error)
}

type BookmarkServiceImpl struct {
	bookmarkRepo repositories.BookmarkRepository
	postRepo     repositories.PostRepository
}

func NewBookmarkService(bookmarkRepo repositories.BookmarkRepository, postRepo repositories.PostRepository) BookmarkService {
	return &BookmarkServiceImpl{
		bookmarkRepo: bookmarkRepo,
		postRepo:     postRepo,
	}
}

func (s *BookmarkServiceImpl) List(db *gorm.DB, user *models.User) ([]dto.BookmarkResponse, error) {
	bookmarks, err := s.bookmarkRepo.FindByUser(db, user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := make([]dto.BookmarkResponse, 0, len(bookmarks))
	for i := range bookmarks {
		resp = append(resp, dto.NewBookmarkResponse(&bookmarks[i]))
	}
	return resp, nil
}

// Create идемпотентен: повторная закладка возвращает существующую
func (s *BookmarkServiceImpl) Create(db *gorm.DB, user *models.User, postID uint) (*dto.BookmarkResponse, error) {
	post, err := s.postRepo.FindByID(db, postID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPostNotFound) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if !visibleTo(user, post) {
		return nil, apperrors.ErrPostNotVisible
	}

	existing, err := s.bookmarkRepo.FindByUserAndPost(db, user.ID, postID)
	if err == nil {
		resp := dto.NewBookmarkResponse(existing)
		return &resp, nil
	}
	if !apperrors.Is(err, repositories.ErrBookmarkNotFound) {
		return nil, apperrors.InternalError(err)
	}

	bookmark := &models.Bookmark{
		UserID: user.ID,
		PostID: postID,
		Post:   post,
	}
	if err := s.bookmarkRepo.Create(db, bookmark); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewBookmarkResponse(bookmark)
	return &resp, nil
}

func (s *BookmarkServiceImpl) Delete(db *gorm.DB, user *models.User, postID uint) error {
	if err := s.bookmarkRepo.Delete(db, user.ID, postID); err != nil {
		if apperrors.Is(err, repositories.ErrBookmarkNotFound) {
			return apperrors.ErrBookmarkNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// Sync - пакетная загрузка закладок с клиента. Неизвестные,
// недоступные и уже существующие посты молча пропускаются.
func (s *BookmarkServiceImpl) Sync(db *gorm.DB, user *models.User, postIDs []uint) (*dto.SyncBookmarksResponse, error) {
	resp := &dto.SyncBookmarksResponse{}

	for _, postID := range uniqueIDs(postIDs) {
		post, err := s.postRepo.FindByID(db, postID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrPostNotFound) {
				resp.Skipped++
				continue
			}
			return nil, apperrors.InternalError(err)
		}
		if !visibleTo(user, post) {
			resp.Skipped++
			continue
		}

		if _, err := s.bookmarkRepo.FindByUserAndPost(db, user.ID, postID); err == nil {
			resp.Skipped++
			continue
		} else if !apperrors.Is(err, repositories.ErrBookmarkNotFound) {
			return nil, apperrors.InternalError(err)
		}

		bookmark := &models.Bookmark{UserID: user.ID, PostID: postID}
		if err := s.bookmarkRepo.Create(db, bookmark); err != nil {
			return nil, apperrors.InternalError(err)
		}
		resp.Created++
	}
	return resp, nil
}
