package services

import (
	"time"

	"newsroom_backend/internal/auth"
	"newsroom_backend/internal/models"
	"newsroom_backend/internal/repositories"
	"newsroom_backend/internal/services/dto"
	"newsroom_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// Страница инкрементальной синхронизации
const syncBatchSize = 50

type PostService interface {
	List(db *gorm.DB, requester *models.User, skip, limit int) (*dto.PostListResponse, error)
	GetByID(db *gorm.DB, requester *models.User, id uint) (*dto.PostResponse, error)
	Create(db *gorm.DB, author *models.User, req *dto.CreatePostRequest) (*dto.PostResponse, error)
	Update(db *gorm.DB, requester *models.User, id uint, req *dto.UpdatePostRequest) (*dto.PostResponse, error)
	UpdateStatus(db *gorm.DB, reviewer *models.User, id uint, req *dto.UpdatePostStatusRequest) (*dto.PostResponse, error)
	Delete(db *gorm.DB, requester *models.User, id uint) error
	Sync(db *gorm.DB, requester *models.User, lastID uint) (*dto.SyncResponse, error)
}

type PostServiceImpl struct {
	postRepo     repositories.PostRepository
	categoryRepo repositories.CategoryRepository
	now          func() time.Time
}

func NewPostService(postRepo repositories.PostRepository, categoryRepo repositories.CategoryRepository) *PostServiceImpl {
	return &PostServiceImpl{
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
		now:          time.Now,
	}
}

// visibleScope возвращает предикат видимости для запрашивающего:
// аноним и subscriber видят только published, writer дополнительно
// свои посты в любом статусе, ревьюеры видят все.
func visibleScope(requester *models.User) repositories.Scope {
	if requester == nil || requester.Role == models.UserRoleSubscriber {
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("status = ?", models.PostStatusPublished)
		}
	}
	if auth.CanReview(requester) {
		return func(db *gorm.DB) *gorm.DB { return db }
	}
	authorID := requester.ID
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("author_id = ? OR status = ?", authorID, models.PostStatusPublished)
	}
}

// visibleTo проверяет один пост против того же предиката
func visibleTo(requester *models.User, post *models.Post) bool {
	if post.Status == models.PostStatusPublished {
		return true
	}
	if requester == nil {
		return false
	}
	if auth.CanReview(requester) {
		return true
	}
	return post.AuthorID == requester.ID && requester.Role != models.UserRoleSubscriber
}

func (s *PostServiceImpl) List(db *gorm.DB, requester *models.User, skip, limit int) (*dto.PostListResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	posts, err := s.postRepo.FindScoped(db, visibleScope(requester), limit, skip)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.PostListResponse{Posts: toPostResponses(posts)}, nil
}

// GetByID различает отсутствие и недоступность: чужой черновик
// существует, но отдается как 403, несуществующий id как 404.
func (s *PostServiceImpl) GetByID(db *gorm.DB, requester *models.User, id uint) (*dto.PostResponse, error) {
	post, err := s.findPost(db, id)
	if err != nil {
		return nil, err
	}
	if !visibleTo(requester, post) {
		return nil, apperrors.ErrPostNotVisible
	}
	resp := dto.NewPostResponse(post)
	return &resp, nil
}

// Create - создание публикации с разрешением статуса и рубрики
func (s *PostServiceImpl) Create(db *gorm.DB, author *models.User, req *dto.CreatePostRequest) (*dto.PostResponse, error) {
	if !auth.CanPublish(author) {
		return nil, apperrors.ErrForbidden
	}

	topics, categoryID, err := s.resolveTopics(db, req.TopicIDs, req.CategoryID)
	if err != nil {
		return nil, err
	}

	status, scheduledAt, err := s.resolveInitialStatus(author, req.Status, req.ScheduledAt)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		ScheduledAt: scheduledAt,
		AuthorID:    author.ID,
		CategoryID:  categoryID,
		Topics:      topics,
	}
	if err := s.postRepo.Create(db, post); err != nil {
		return nil, apperrors.InternalError(err)
	}

	created, err := s.findPost(db, post.ID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewPostResponse(created)
	return &resp, nil
}

// resolveInitialStatus реализует порядок разрешения статуса при создании.
// Флаг автора "на ревью перед публикацией" сильнее всего остального.
func (s *PostServiceImpl) resolveInitialStatus(author *models.User, requested *models.PostStatus, scheduledAt *time.Time) (models.PostStatus, *time.Time, error) {
	if author.PostReviewBeforePublish {
		return models.PostStatusPending, nil, nil
	}

	if requested != nil {
		switch {
		case auth.CanReview(author):
			if *requested == models.PostStatusScheduled {
				if scheduledAt == nil || !scheduledAt.After(s.now()) {
					return "", nil, apperrors.ErrInvalidScheduleTime
				}
				return models.PostStatusScheduled, scheduledAt, nil
			}
			return *requested, nil, nil
		case *requested == models.PostStatusDraft:
			return models.PostStatusDraft, nil, nil
		default:
			return "", nil, apperrors.NewForbiddenError("Not authorized to set post status")
		}
	}

	if scheduledAt != nil && scheduledAt.After(s.now()) {
		return models.PostStatusScheduled, scheduledAt, nil
	}
	return models.PostStatusPublished, nil, nil
}

// Update - частичное обновление автором или администратором
func (s *PostServiceImpl) Update(db *gorm.DB, requester *models.User, id uint, req *dto.UpdatePostRequest) (*dto.PostResponse, error) {
	post, err := s.findPost(db, id)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != requester.ID && !auth.CanAdmin(requester) {
		return nil, apperrors.NewForbiddenError("Not authorized to edit this post")
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Description != nil {
		post.Description = *req.Description
	}

	if req.Status != nil {
		if !auth.CanReview(requester) {
			return nil, apperrors.NewForbiddenError("Not authorized to set post status")
		}
		if *req.Status == models.PostStatusScheduled {
			at := req.ScheduledAt
			if at == nil {
				at = post.ScheduledAt
			}
			if at == nil || !at.After(s.now()) {
				return nil, apperrors.ErrInvalidScheduleTime
			}
			post.ScheduledAt = at
		}
		post.Status = *req.Status
	} else if req.ScheduledAt != nil {
		post.ScheduledAt = req.ScheduledAt
	}

	if len(req.TopicIDs) > 0 {
		topics, categoryID, err := s.resolveTopics(db, req.TopicIDs, req.CategoryID)
		if err != nil {
			return nil, err
		}
		if err := s.postRepo.ReplaceTopics(db, post, topics); err != nil {
			return nil, apperrors.InternalError(err)
		}
		post.CategoryID = categoryID
	}

	if err := s.postRepo.Save(db, post); err != nil {
		return nil, apperrors.InternalError(err)
	}

	updated, err := s.findPost(db, id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewPostResponse(updated)
	return &resp, nil
}

// UpdateStatus - решение ревьюера, допустим только переход
// pending -> published | rejected. scheduled -> published делает
// исключительно фоновый воркер.
func (s *PostServiceImpl) UpdateStatus(db *gorm.DB, reviewer *models.User, id uint, req *dto.UpdatePostStatusRequest) (*dto.PostResponse, error) {
	if !auth.CanReview(reviewer) {
		return nil, apperrors.NewForbiddenError("Not authorized to review posts")
	}

	post, err := s.findPost(db, id)
	if err != nil {
		return nil, err
	}

	if post.Status != models.PostStatusPending {
		return nil, apperrors.ErrInvalidTransition
	}
	if req.Status != models.PostStatusPublished && req.Status != models.PostStatusRejected {
		return nil, apperrors.ErrInvalidTransition
	}

	if err := s.postRepo.UpdateStatus(db, id, req.Status); err != nil {
		return nil, apperrors.InternalError(err)
	}

	post.Status = req.Status
	resp := dto.NewPostResponse(post)
	return &resp, nil
}

func (s *PostServiceImpl) Delete(db *gorm.DB, requester *models.User, id uint) error {
	post, err := s.findPost(db, id)
	if err != nil {
		return err
	}
	if post.AuthorID != requester.ID && !auth.CanAdmin(requester) {
		return apperrors.NewForbiddenError("Not authorized to delete this post")
	}
	if err := s.postRepo.Delete(db, id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// Sync - инкрементальная выдача: посты с id > last_id в порядке
// возрастания, плюс глобальные счетчики опубликованного по рубрикам.
func (s *PostServiceImpl) Sync(db *gorm.DB, requester *models.User, lastID uint) (*dto.SyncResponse, error) {
	posts, err := s.postRepo.FindSince(db, visibleScope(requester), lastID, syncBatchSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	counts, err := s.postRepo.CountPublishedByCategory(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.SyncResponse{
		Posts:          toPostResponses(posts),
		CategoryCounts: counts,
	}, nil
}

// resolveTopics проверяет темы и выводит из них родительскую рубрику.
// Корневая тема считается родителем самой себя; при нескольких
// кандидатах решает явный category_id из запроса.
func (s *PostServiceImpl) resolveTopics(db *gorm.DB, topicIDs []uint, categoryID *uint) ([]models.Category, *uint, error) {
	topics, err := s.categoryRepo.FindByIDs(db, topicIDs)
	if err != nil {
		return nil, nil, apperrors.InternalError(err)
	}
	if len(topics) != len(uniqueIDs(topicIDs)) {
		return nil, nil, apperrors.ErrInvalidTopics
	}

	parents := make(map[uint]struct{})
	for i := range topics {
		parents[topics[i].RootID()] = struct{}{}
	}

	if len(parents) == 1 {
		resolved := topics[0].RootID()
		return topics, &resolved, nil
	}

	if categoryID == nil {
		return nil, nil, apperrors.ErrInvalidCategory
	}
	if _, ok := parents[*categoryID]; !ok {
		return nil, nil, apperrors.ErrInvalidCategory
	}
	return topics, categoryID, nil
}

func (s *PostServiceImpl) findPost(db *gorm.DB, id uint) (*models.Post, error) {
	post, err := s.postRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPostNotFound) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return post, nil
}

func toPostResponses(posts []models.Post) []dto.PostResponse {
	resp := make([]dto.PostResponse, 0, len(posts))
	for i := range posts {
		resp = append(resp, dto.NewPostResponse(&posts[i]))
	}
	return resp
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
