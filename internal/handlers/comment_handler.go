package handlers

import (
	"net/http"

	"newsroom_backend/internal/middleware"
	"newsroom_backend/internal/services"
	"newsroom_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	*BaseHandler
	commentService services.CommentService
}

func NewCommentHandler(base *BaseHandler, commentService services.CommentService) *CommentHandler {
	return &CommentHandler{
		BaseHandler:    base,
		commentService: commentService,
	}
}

func (h *CommentHandler) RegisterRoutes(r *gin.RouterGroup) {
	posts := r.Group("/posts")
	{
		public := posts.Group("")
		public.Use(middleware.OptionalAuthMiddleware())
		{
			public.GET("/:id/comments", h.ListByPost)
		}

		authed := posts.Group("")
		authed.Use(middleware.AuthMiddleware())
		{
			authed.POST("/:id/comments", h.Create)
			authed.DELETE("/comments/:id", h.Delete)
		}
	}
}

func (h *CommentHandler) ListByPost(c *gin.Context) {
	postID, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	db := h.GetDB(c)
	user, ok := h.OptionalUser(c, db)
	if !ok {
		return
	}

	comments, err := h.commentService.ListByPost(db, user, postID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, comments)
}

func (h *CommentHandler) Create(c *gin.Context) {
	postID, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.CreateCommentRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	user, ok := h.CurrentUser(c, db)
	if !ok {
		return
	}

	comment, err := h.commentService.Create(db, user, postID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

func (h *CommentHandler) Delete(c *gin.Context) {
	commentID, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	db := h.GetDB(c)
	user, ok := h.CurrentUser(c, db)
	if !ok {
		return
	}

	if err := h.commentService.Delete(db, user, commentID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted"})
}
