package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/piresc/loadboard/internal/pkg/logger"
	"github.com/piresc/loadboard/internal/utils"
)

// RateLimiterConfig contains configuration for the fixed-window rate limiter
type RateLimiterConfig struct {
	RedisClient *redis.Client
	Key         string
	Limit       int
	Period      time.Duration
}

// RateLimiterMiddleware limits requests per caller and route with a Redis counter.
// Redis failures let the request through.
func RateLimiterMiddleware(config RateLimiterConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identifier := c.RealIP()
			if actor, ok := ActorFromContext(c); ok {
				identifier = actor.ID.String()
			}

			key := fmt.Sprintf("%s:%s:%s", config.Key, c.Path(), identifier)
			ctx := c.Request().Context()

			count64, err := config.RedisClient.Incr(ctx, key).Result()
			if err != nil {
				logger.WarnCtx(ctx, "Rate limiter unavailable", logger.String("key", key), logger.Err(err))
				return next(c)
			}
			if count64 == 1 {
				if err := config.RedisClient.Expire(ctx, key, config.Period).Err(); err != nil {
					logger.WarnCtx(ctx, "Rate limiter expiry not set", logger.String("key", key), logger.Err(err))
				}
			}

			count := int(count64)
			remaining := config.Limit - count
			if remaining < 0 {
				remaining = 0
			}
			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))
			c.Response().Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

			if count > config.Limit {
				return utils.ErrorResponseHandler(c, http.StatusTooManyRequests, "Rate limit exceeded")
			}

			return next(c)
		}
	}
}
