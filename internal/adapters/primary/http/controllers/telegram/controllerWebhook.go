package telegram

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/admin/tg-bots/gpt-bot/internal/domain"
	"github.com/gin-gonic/gin"
)

const secretTokenHeader = "X-Telegram-Bot-Api-Secret-Token"

// UpdateHandler обработчик обновлений, обычно services/telegram.Service
type UpdateHandler interface {
	HandleUpdate(ctx context.Context, update *domain.Update) error
}

type Controller struct {
	Handler UpdateHandler
	Secret  string
	Log     *slog.Logger
}

// New secret - значение, переданное в setWebhook; пустой secret отключает проверку
func New(handler UpdateHandler, secret string, log *slog.Logger) *Controller {
	return &Controller{
		Handler: handler,
		Secret:  secret,
		Log:     log,
	}
}

func (c *Controller) RegisterRoutes(router *gin.Engine) {
	router.POST("/webhook", c.handleWebhook)
}

func (c *Controller) handleWebhook(ctx *gin.Context) {
	if c.Secret != "" {
		secretToken := ctx.GetHeader(secretTokenHeader)
		if subtle.ConstantTimeCompare([]byte(secretToken), []byte(c.Secret)) != 1 {
			c.Log.Warn("webhook request with invalid secret token", "client_ip", ctx.ClientIP())
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "invalid secret token"})
			return
		}
	}

	var update domain.Update
	if err := ctx.ShouldBindJSON(&update); err != nil {
		c.Log.Error("failed to bind webhook request", "error", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	c.Log.Debug("received webhook update", "update_id", update.UpdateID)

	if err := c.Handler.HandleUpdate(ctx.Request.Context(), &update); err != nil {
		// бизнес-ошибка уже залогирована в use case, повторная доставка ничего не исправит
		if domain.IsBusinessError(err) {
			ctx.JSON(http.StatusOK, gin.H{"ok": true})
			return
		}
		c.Log.Error("failed to handle update",
			"error", err,
			"update_id", update.UpdateID,
		)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process update"})
		return
	}

	// Telegram ожидает 200 OK в ответ
	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}
