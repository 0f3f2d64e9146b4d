package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	fiberredis "github.com/gofiber/storage/redis/v3"
	"github.com/redis/go-redis/v9"

	"github.com/Alijeyrad/glider_backend/config"
)

// NewLimiter returns a per-IP sliding-window limiter keyed under scope, so
// routes do not share budgets. Counters live in Redis when rdb is non-nil,
// otherwise in process memory.
func NewLimiter(scope string, cfg config.RateLimitConfig, rdb *redis.Client) fiber.Handler {
	if !cfg.Enabled {
		return func(c fiber.Ctx) error { return c.Next() }
	}

	limit := cfg.RequestsPerWindow
	if limit <= 0 {
		limit = 20
	}
	window := time.Duration(cfg.WindowSeconds) * time.Second
	if window <= 0 {
		window = 30 * time.Second
	}

	lc := limiter.Config{
		Max:               limit,
		Expiration:        window,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator: func(c fiber.Ctx) string {
			return "glider:limit:" + scope + ":" + c.IP()
		},
		LimitReached: func(c fiber.Ctx) error {
			return fiber.ErrTooManyRequests
		},
	}
	if rdb != nil {
		lc.Storage = fiberredis.NewFromConnection(rdb)
	}
	return limiter.New(lc)
}
