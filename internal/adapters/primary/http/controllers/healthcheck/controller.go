package healthcheckController

import (
	"context"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
)

const pingTimeout = 2 * time.Second

// Pinger зависимость, доступность которой проверяет /ready
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthCheckController struct {
	appName string
	pingers map[string]Pinger
	log     *slog.Logger
}

// New pingers - только включённые бэкенды, по имени
func New(appName string, pingers map[string]Pinger, log *slog.Logger) *HealthCheckController {
	return &HealthCheckController{
		appName: appName,
		pingers: pingers,
		log:     log,
	}
}

func (c *HealthCheckController) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", c.health)
	r.GET("/ready", c.ready)
}

// health базовая проверка (всегда возвращает 200)
func (c *HealthCheckController) health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"app":    c.appName,
	})
}

// ready проверка готовности всех подключённых бэкендов
func (c *HealthCheckController) ready(ctx *gin.Context) {
	names := make([]string, 0, len(c.pingers))
	for name := range c.pingers {
		names = append(names, name)
	}
	sort.Strings(names)

	failed := make([]string, 0)
	for _, name := range names {
		pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), pingTimeout)
		err := c.pingers[name].Ping(pingCtx)
		cancel()
		if err != nil {
			c.log.Error("backend not ready", "backend", name, "error", err)
			failed = append(failed, name)
		}
	}

	if len(failed) > 0 {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"status":      "not ready",
			"unavailable": failed,
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":   "ready",
		"backends": names,
	})
}
