package handlers

import (
	"net/http"

	"newsroom_backend/internal/middleware"
	"newsroom_backend/internal/services"
	"newsroom_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type BookmarkHandler struct {
	*BaseHandler
	bookmarkService services.BookmarkService
}

func NewBookmarkHandler(base *BaseHandler, bookmarkService services.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{
		BaseHandler:     base,
		bookmarkService: bookmarkService,
	}
}

func (h *BookmarkHandler) RegisterRoutes(r *gin.RouterGroup) {
	bookmarks := r.Group("/bookmarks")
	bookmarks.Use(middleware.AuthMiddleware())
	{
		bookmarks.GET("/", h.List)
		bookmarks.POST("/", h.Create)
		bookmarks.POST("/sync", h.Sync)
		bookmarks.DELETE("/:post_id", h.Delete)
	}
}

func (h *BookmarkHandler) List(c *gin.Context) {
	db := h.GetDB(c)
	user, ok := h.CurrentUser(c, db)
	if !ok {
		return
	}

	bookmarks, err := h.bookmarkService.List(db, user)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, bookmarks)
}

func (h *BookmarkHandler) Create(c *gin.Context) {
	var req dto.CreateBookmarkRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	user, ok := h.CurrentUser(c, db)
	if !ok {
		return
	}

	bookmark, err := h.bookmarkService.Create(db, user, req.PostID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, bookmark)
}

func (h *BookmarkHandler) Sync(c *gin.Context) {
	var req dto.SyncBookmarksRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	user, ok := h.CurrentUser(c, db)
	if !ok {
		return
	}

	resp, err := h.bookmarkService.Sync(db, user, req.PostIDs)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *BookmarkHandler) Delete(c *gin.Context) {
	postID, err := ParseParamUint(c, "post_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	db := h.GetDB(c)
	user, ok := h.CurrentUser(c, db)
	if !ok {
		return
	}

	if err := h.bookmarkService.Delete(db, user, postID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Bookmark removed"})
}
