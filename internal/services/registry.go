package services

import (
	"newsroom_backend/internal/email"
	"newsroom_backend/internal/repositories"
)

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService     AuthService
	UserService     UserService
	CategoryService CategoryService
	PostService     PostService
	CommentService  CommentService
	BookmarkService BookmarkService
	EmailProvider   email.Provider
}

// NewServiceContainer собирает сервисы поверх stateless-репозиториев
func NewServiceContainer(emailProvider email.Provider) *ServiceContainer {
	userRepo := repositories.NewUserRepository()
	categoryRepo := repositories.NewCategoryRepository()
	postRepo := repositories.NewPostRepository()
	commentRepo := repositories.NewCommentRepository()
	bookmarkRepo := repositories.NewBookmarkRepository()

	return &ServiceContainer{
		AuthService:     NewAuthService(userRepo, emailProvider),
		UserService:     NewUserService(userRepo),
		CategoryService: NewCategoryService(categoryRepo),
		PostService:     NewPostService(postRepo, categoryRepo),
		CommentService:  NewCommentService(commentRepo, postRepo),
		BookmarkService: NewBookmarkService(bookmarkRepo, postRepo),
		EmailProvider:   emailProvider,
	}
}
