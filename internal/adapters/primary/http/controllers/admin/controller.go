package admin

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/admin/tg-bots/gpt-bot/internal/domain"
	"github.com/admin/tg-bots/gpt-bot/internal/ports/repository"
	"github.com/gin-gonic/gin"
)

const maxUsageLogLimit = 365

// StatisticsProvider текущий дневной отчёт
type StatisticsProvider interface {
	Statistics() string
}

type Controller struct {
	Statistics StatisticsProvider
	UsageLog   repository.IUsageLogRepo // nil, если postgres не настроен
	Log        *slog.Logger
}

func New(
	statistics StatisticsProvider,
	usageLog repository.IUsageLogRepo,
	log *slog.Logger,
) *Controller {
	return &Controller{
		Statistics: statistics,
		UsageLog:   usageLog,
		Log:        log,
	}
}

func (c *Controller) RegisterRoutes(router *gin.Engine) {
	admin := router.Group("/admin")
	{
		admin.GET("/statistics", c.statistics)
		admin.GET("/usage-log", c.usageLog)
	}
}

// StatisticsResponse текущий отчёт тем же текстом, что и /get-user-statistics
type StatisticsResponse struct {
	Report string `json:"report"`
}

// UsageLogResponse записи журнала, новые первыми
type UsageLogResponse struct {
	Records []domain.UsageLogRecord `json:"records"`
}

func (c *Controller) statistics(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, StatisticsResponse{Report: c.Statistics.Statistics()})
}

func (c *Controller) usageLog(ctx *gin.Context) {
	if c.UsageLog == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "usage log storage is not configured"})
		return
	}

	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > maxUsageLogLimit {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 365"})
			return
		}
		limit = parsed
	}

	records, err := c.UsageLog.ListRecent(ctx.Request.Context(), limit)
	if err != nil {
		c.Log.Error("failed to list usage log", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list usage log"})
		return
	}
	if records == nil {
		records = []domain.UsageLogRecord{}
	}

	ctx.JSON(http.StatusOK, UsageLogResponse{Records: records})
}
