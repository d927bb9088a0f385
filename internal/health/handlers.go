// Package health answers liveness checks with the state of both backing
// stores.
package health

import (
	"time"

	"recyklat-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Handlers struct {
	DB        *gorm.DB
	Rdb       *redis.Client
	StartedAt time.Time
}

// JSON GET /health/json — overall status plus per-dependency state. Overall
// is "ok" only when every configured dependency answers.
func (h *Handlers) JSON(c *fiber.Ctx) error {
	dbStatus := h.checkDB()
	redisStatus := h.checkRedis(c)

	overall := "ok"
	if dbStatus != "ok" || redisStatus != "ok" {
		overall = "degraded"
	}
	return response.Success(c, "Health", fiber.Map{
		"status":         overall,
		"database":       dbStatus,
		"redis":          redisStatus,
		"uptime_seconds": int64(time.Since(h.StartedAt).Seconds()),
	})
}

func (h *Handlers) checkDB() string {
	if h.DB == nil {
		return "not configured"
	}
	sqlDB, err := h.DB.DB()
	if err != nil {
		return err.Error()
	}
	if err := sqlDB.Ping(); err != nil {
		return err.Error()
	}
	return "ok"
}

func (h *Handlers) checkRedis(c *fiber.Ctx) string {
	if h.Rdb == nil {
		return "not configured"
	}
	if err := h.Rdb.Ping(c.Context()).Err(); err != nil {
		return err.Error()
	}
	return "ok"
}
