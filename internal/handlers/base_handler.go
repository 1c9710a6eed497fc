package handlers

import (
	"fmt"
	"strconv"

	"newsroom_backend/internal/logger"
	"newsroom_backend/internal/middleware"
	"newsroom_backend/internal/models"
	"newsroom_backend/internal/services"
	"newsroom_backend/internal/validator"
	"newsroom_backend/pkg/apperrors"
	"newsroom_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type BaseHandler struct {
	validator   *validator.Validator
	userService services.UserService
}

func NewBaseHandler(v *validator.Validator, userService services.UserService) *BaseHandler {
	return &BaseHandler{
		validator:   v,
		userService: userService,
	}
}

// GetDB извлекает *gorm.DB (пул или тестовую транзакцию) из gin.Context.
// DBMiddleware обязан был его положить; иначе приложение собрано неверно.
func (h *BaseHandler) GetDB(c *gin.Context) *gorm.DB {
	dbKey := string(contextkeys.DBContextKey)

	val, ok := c.Get(dbKey)
	if !ok {
		logger.CtxError(c.Request.Context(), "db key not found in context", "key", dbKey)
		panic("DBMiddleware did not set the db key")
	}

	db, ok := val.(*gorm.DB)
	if !ok {
		logger.CtxError(c.Request.Context(), "db in context is not *gorm.DB", "type", fmt.Sprintf("%T", val))
		panic("db in context has incorrect type")
	}

	return db
}

func (h *BaseHandler) BindAndValidate_JSON(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBind(obj); err != nil {
		logger.CtxWithError(ctx, "Failed to bind JSON body", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return false
	}

	if err := h.validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			logger.CtxWarn(ctx, "Validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			logger.CtxWithError(ctx, "Internal validator error", err, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

func (h *BaseHandler) BindAndValidate_Query(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBindQuery(obj); err != nil {
		logger.CtxWithError(ctx, "Failed to bind query params", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid query parameters: "+err.Error()))
		return false
	}

	if err := h.validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			logger.CtxWarn(ctx, "Validation failed (query)", "errors", vErr.Errors, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			logger.CtxWithError(ctx, "Internal validator error (query)", err, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		logger.CtxWarn(ctx, "Service error",
			"error", appErr.Message,
			"details", appErr.Details,
			"path", c.Request.URL.Path,
		)
		apperrors.HandleError(c, appErr)
	} else {
		logger.CtxWithError(ctx, "Internal server error", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.InternalError(err))
	}
}

// CurrentUser загружает аутентифицированного пользователя. Для
// маршрутов за AuthMiddleware отсутствие username означает ошибку
// конфигурации маршрута, но наружу уходит обычный 401.
func (h *BaseHandler) CurrentUser(c *gin.Context, db *gorm.DB) (*models.User, bool) {
	username := middleware.GetUsername(c)
	if username == "" {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("User not authenticated"))
		return nil, false
	}

	user, err := h.userService.GetByUsername(db, username)
	if err != nil {
		h.HandleServiceError(c, err)
		return nil, false
	}
	if user.IsBlocked {
		apperrors.HandleError(c, apperrors.ErrUserBlocked)
		return nil, false
	}
	return user, true
}

// OptionalUser - как CurrentUser, но анонимный запрос не ошибка:
// возвращается nil без ответа клиенту.
func (h *BaseHandler) OptionalUser(c *gin.Context, db *gorm.DB) (*models.User, bool) {
	username := middleware.GetUsername(c)
	if username == "" {
		return nil, true
	}

	user, err := h.userService.GetByUsername(db, username)
	if err != nil {
		// Токен валиден, но пользователя больше нет: считаем анонимом
		if apperrors.Is(err, apperrors.ErrUserNotFound) {
			return nil, true
		}
		h.HandleServiceError(c, err)
		return nil, false
	}
	if user.IsBlocked {
		return nil, true
	}
	return user, true
}

func ParseParamUint(c *gin.Context, key string) (uint, error) {
	valueStr := c.Param(key)
	if valueStr == "" {
		return 0, apperrors.NewBadRequestError("Missing required path parameter: " + key)
	}
	value, err := strconv.ParseUint(valueStr, 10, 64)
	if err != nil {
		return 0, apperrors.NewBadRequestError("Invalid path parameter: " + key + " is not an integer")
	}
	return uint(value), nil
}

func ParseQueryInt(c *gin.Context, key string, defaultValue int) int {
	valueStr := c.Query(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// ParsePagination читает ?skip=&limit= с разумными границами
func ParsePagination(c *gin.Context) (skip int, limit int) {
	const defaultLimit = 20
	const maxLimit = 100

	skip = ParseQueryInt(c, "skip", 0)
	if skip < 0 {
		skip = 0
	}

	limit = ParseQueryInt(c, "limit", defaultLimit)
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return skip, limit
}
