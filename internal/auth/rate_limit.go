package auth

import (
	"context"
	"strconv"
	"time"

	"jigarafy/backend/internal/apperror"
	"jigarafy/backend/internal/metrics"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var ErrTooManyRequests = apperror.New(apperror.TooManyRequests, "Too many requests, please try again later")

type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
	Limit() int
	Window() time.Duration
}

// RateLimit limits attempts per client IP. When the limiter itself fails the
// request is let through.
func RateLimit(limiter RateLimiter, route string, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.Request.Context(), route+":"+c.ClientIP())
		if err != nil {
			log.Warn("rate limit check failed", zap.String("route", route), zap.Error(err))
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(limiter.Limit()))
		if !allowed {
			metrics.RateLimitExceeded.WithLabelValues(route).Inc()
			c.Header("Retry-After", strconv.Itoa(int(limiter.Window().Seconds())))
			c.AbortWithStatusJSON(apperror.StatusOf(ErrTooManyRequests), gin.H{"message": apperror.MessageOf(ErrTooManyRequests)})
			return
		}

		c.Next()
	}
}
