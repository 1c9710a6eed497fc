package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AuthHandler     *AuthHandler
	UserHandler     *UserHandler
	CategoryHandler *CategoryHandler
	PostHandler     *PostHandler
	CommentHandler  *CommentHandler
	BookmarkHandler *BookmarkHandler
	SystemHandler   *SystemHandler
}
