// Package ratelimit throttles abuse-prone storefront endpoints with a
// Redis-backed sliding window.
package ratelimit

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis_rate/v10"
	"github.com/redis/go-redis/v9"

	"github.com/tokobajusablon/storefront/pkg/logger"
)

// Limiter checks whether a request identified by key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string, limit Limit) (*Result, error)
}

// Limit is requests per period with a burst allowance.
type Limit struct {
	Rate   int
	Period time.Duration
	Burst  int
}

// PerMinute is a per-minute limit with burst equal to the rate.
func PerMinute(rate int) Limit {
	return Limit{Rate: rate, Period: time.Minute, Burst: rate}
}

// Result is the outcome of one limit check.
type Result struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

type redisLimiter struct {
	limiter *redis_rate.Limiter
}

// NewRedisLimiter creates a Redis-backed limiter shared across
// instances.
func NewRedisLimiter(client *redis.Client) Limiter {
	return &redisLimiter{limiter: redis_rate.NewLimiter(client)}
}

func (r *redisLimiter) Allow(ctx context.Context, key string, limit Limit) (*Result, error) {
	res, err := r.limiter.Allow(ctx, key, redis_rate.Limit{
		Rate:   limit.Rate,
		Period: limit.Period,
		Burst:  limit.Burst,
	})
	if err != nil {
		return nil, fmt.Errorf("rate limit check failed: %w", err)
	}
	return &Result{
		Allowed:    res.Allowed > 0,
		Remaining:  res.Remaining,
		RetryAfter: res.RetryAfter,
	}, nil
}

// Middleware rejects requests over limit with 429. Requests are keyed
// by client IP under prefix. A limiter error fails open: the request
// proceeds.
func Middleware(limiter Limiter, prefix string, limit Limit) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := limiter.Allow(c.Request.Context(), prefix+":"+c.ClientIP(), limit)
		if err != nil {
			logger.Warn(c.Request.Context(), "rate limiter unavailable", "error", err)
			c.Next()
			return
		}
		if !res.Allowed {
			retryAfter := int(res.RetryAfter.Seconds() + 0.5)
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}
