package handlers

import (
	"net/http"

	"newsroom_backend/internal/middleware"
	"newsroom_backend/internal/services"
	"newsroom_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	*BaseHandler
	postService services.PostService
}

func NewPostHandler(base *BaseHandler, postService services.PostService) *PostHandler {
	return &PostHandler{
		BaseHandler: base,
		postService: postService,
	}
}

func (h *PostHandler) RegisterRoutes(r *gin.RouterGroup) {
	posts := r.Group("/posts")
	{
		// Чтение доступно и анониму, но аутентификация расширяет выдачу
		public := posts.Group("")
		public.Use(middleware.OptionalAuthMiddleware())
		{
			public.GET("/", h.List)
			public.GET("/sync", h.Sync)
			public.GET("/:id", h.GetByID)
		}

		authed := posts.Group("")
		authed.Use(middleware.AuthMiddleware())
		{
			authed.POST("/", h.Create)
			authed.PATCH("/:id", h.Update)
			authed.DELETE("/:id", h.Delete)
			authed.PATCH("/status/:id", h.UpdateStatus)
		}
	}
}

func (h *PostHandler) List(c *gin.Context) {
	skip, limit := ParsePagination(c)

	db := h.GetDB(c)
	user, ok := h.OptionalUser(c, db)
	if !ok {
		return
	}

	resp, err := h.postService.List(db, user, skip, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *PostHandler) Sync(c *gin.Context) {
	var query dto.SyncQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	db := h.GetDB(c)
	user, ok := h.OptionalUser(c, db)
	if !ok {
		return
	}

	resp, err := h.postService.Sync(db, user, query.LastID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *PostHandler) GetByID(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	db := h.GetDB(c)
	user, ok := h.OptionalUser(c, db)
	if !ok {
		return
	}

	post, err := h.postService.GetByID(db, user, id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) Create(c *gin.Context) {
	var req dto.CreatePostRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	user, ok := h.CurrentUser(c, db)
	if !ok {
		return
	}

	post, err := h.postService.Create(db, user, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

func (h *PostHandler) Update(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdatePostRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	user, ok := h.CurrentUser(c, db)
	if !ok {
		return
	}

	post, err := h.postService.Update(db, user, id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) Delete(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	db := h.GetDB(c)
	user, ok := h.CurrentUser(c, db)
	if !ok {
		return
	}

	if err := h.postService.Delete(db, user, id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}

func (h *PostHandler) UpdateStatus(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdatePostStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	user, ok := h.CurrentUser(c, db)
	if !ok {
		return
	}

	post, err := h.postService.UpdateStatus(db, user, id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}
