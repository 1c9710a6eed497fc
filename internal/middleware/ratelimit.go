package middleware

import (
	"newsroom_backend/internal/logger"
	"newsroom_backend/internal/ratelimit"
	"newsroom_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// RateLimitMiddleware ограничивает частоту запросов по IP клиента.
// Отказ лимитера (например, недоступный Redis) пропускает запрос:
// троттлинг не должен ронять API.
func RateLimitMiddleware(limiter ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			logger.CtxWithError(c.Request.Context(), "rate limiter unavailable", err)
			c.Next()
			return
		}

		if !allowed {
			apperrors.HandleError(c, apperrors.ErrRateLimited)
			c.Abort()
			return
		}

		c.Next()
	}
}
