package services

import (
	"newsroom_backend/internal/auth"
	"newsroom_backend/internal/models"
	"newsroom_backend/internal/repositories"
	"newsroom_backend/internal/services/dto"
	"newsroom_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type CommentService interface {
	ListByPost(db *gorm.DB, requester *models.User, postID uint) ([]dto.CommentResponse, error)
	Create(db *gorm.DB, author *models.User, postID uint, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
	Delete(db *gorm.DB, requester *models.User, commentID uint) error
}

type CommentServiceImpl struct {
	commentRepo repositories.CommentRepository
	postRepo    repositories.PostRepository
}

func NewCommentService(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository) CommentService {
	return &CommentServiceImpl{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// ListByPost отдает комментарии только видимого поста
func (s *CommentServiceImpl) ListByPost(db *gorm.DB, requester *models.User, postID uint) ([]dto.CommentResponse, error) {
	post, err := s.visiblePost(db, requester, postID)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.FindByPost(db, post.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := make([]dto.CommentResponse, 0, len(comments))
	for i := range comments {
		resp = append(resp, dto.NewCommentResponse(&comments[i]))
	}
	return resp, nil
}

func (s *CommentServiceImpl) Create(db *gorm.DB, author *models.User, postID uint, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	post, err := s.visiblePost(db, author, postID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Content:  req.Content,
		PostID:   post.ID,
		AuthorID: author.ID,
		Author:   author,
	}
	if err := s.commentRepo.Create(db, comment); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewCommentResponse(comment)
	return &resp, nil
}

// Delete - удалить может автор комментария либо ревьюер
func (s *CommentServiceImpl) Delete(db *gorm.DB, requester *models.User, commentID uint) error {
	comment, err := s.commentRepo.FindByID(db, commentID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCommentNotFound) {
			return apperrors.ErrCommentNotFound
		}
		return apperrors.InternalError(err)
	}

	if comment.AuthorID != requester.ID && !auth.CanReview(requester) {
		return apperrors.NewForbiddenError("Not authorized to delete this comment")
	}

	if err := s.commentRepo.Delete(db, commentID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *CommentServiceImpl) visiblePost(db *gorm.DB, requester *models.User, postID uint) (*models.Post, error) {
	post, err := s.postRepo.FindByID(db, postID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPostNotFound) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if !visibleTo(requester, post) {
		return nil, apperrors.ErrPostNotVisible
	}
	return post, nil
}
