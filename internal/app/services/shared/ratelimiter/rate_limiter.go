package ratelimiter

import (
	"clinic-service/internal/app/config"
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/pkg/constvars"
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// FixedWindowLimiter counts hits per key in Redis within fixed windows.
// The counter key expires one second after its window closes.
type FixedWindowLimiter struct {
	redis    contracts.RedisRepository
	log      *zap.Logger
	group    string
	window   int
	maxQuota int
	nowUTC   func() time.Time
}

func NewFixedWindowLimiter(redis contracts.RedisRepository, log *zap.Logger, group string, windowSec, maxQuota int) *FixedWindowLimiter {
	if windowSec <= 0 {
		windowSec = 60
	}
	return &FixedWindowLimiter{
		redis:    redis,
		log:      log,
		group:    strings.ToUpper(strings.TrimSpace(group)),
		window:   windowSec,
		maxQuota: maxQuota,
		nowUTC:   func() time.Time { return time.Now().UTC() },
	}
}

// Hit registers one attempt for resource and reports whether it stays within
// quota. When denied, retryAfterSecs counts until the next window boundary.
func (l *FixedWindowLimiter) Hit(ctx context.Context, resource string) (allowed bool, retryAfterSecs int, err error) {
	if l.maxQuota <= 0 {
		return true, 0, nil
	}

	resource = strings.ToLower(strings.TrimSpace(resource))
	if resource == "" {
		return false, l.window, nil
	}

	now := l.nowUTC()
	windowID := now.Unix() / int64(l.window)
	key := fmt.Sprintf("%s:%s:%d", l.group, resource, windowID)

	ttl := time.Duration(l.window)*time.Second + time.Second
	count, err := l.redis.IncrementWithTTL(ctx, key, ttl)
	if err != nil {
		l.log.Error("FixedWindowLimiter.Hit increment failed",
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return false, 0, err
	}

	if count > l.maxQuota {
		nextWindowStart := (windowID + 1) * int64(l.window)
		return false, int(nextWindowStart-now.Unix()) + 1, nil
	}
	return true, 0, nil
}

type loginLimiter struct {
	limiter *FixedWindowLimiter
}

// NewLoginLimiter bounds login attempts per subject using InternalConfig.LoginThrottle.
func NewLoginLimiter(redis contracts.RedisRepository, log *zap.Logger, cfg *config.InternalConfig) contracts.LoginLimiter {
	return &loginLimiter{
		limiter: NewFixedWindowLimiter(
			redis,
			log,
			constvars.RedisKeyLoginThrottleGroup,
			cfg.LoginThrottle.WindowInSeconds,
			cfg.LoginThrottle.MaxAttempts,
		),
	}
}

func (l *loginLimiter) Allow(ctx context.Context, subject string) (bool, int, error) {
	return l.limiter.Hit(ctx, subject)
}
