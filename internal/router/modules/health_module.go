package modules

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/go-ddd-social/pkg/response"
)

// HealthModule exposes GET /health, pinging Postgres and Redis.
type HealthModule struct {
	DB    *pgxpool.Pool
	Redis *redis.Client
}

func NewHealthModule(db *pgxpool.Pool, rdb *redis.Client) *HealthModule {
	return &HealthModule{DB: db, Redis: rdb}
}

func (m *HealthModule) Register(rg *gin.RouterGroup) {
	rg.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		checks := map[string]string{"postgres": "ok", "redis": "ok"}
		healthy := true
		if m.DB == nil || m.DB.Ping(ctx) != nil {
			checks["postgres"] = "down"
			healthy = false
		}
		if m.Redis == nil || m.Redis.Ping(ctx).Err() != nil {
			checks["redis"] = "down"
			healthy = false
		}
		if !healthy {
			response.Error[any](c, http.StatusServiceUnavailable, "unhealthy", checks)
			return
		}
		response.Success(c, http.StatusOK, checks, "healthy", nil)
	})
}
