package alerter

import (
	"context"
	"fmt"

	"log/slog"

	"github.com/admin/tg-bots/gpt-bot/internal/adapters/secondary/telegram"
)

// Client клиент для отправки алертов и дневной статистики в чат админа через Telegram
type Client struct {
	telegramClient  *telegram.Client
	chatID          int64
	messageThreadID *int64
	log             *slog.Logger
}

// NewClient создаёт клиент поверх уже настроенного telegram.Client
func NewClient(cfg *Config, tgClient *telegram.Client, log *slog.Logger) *Client {
	if !cfg.Enabled() || tgClient == nil {
		return nil
	}

	return &Client{
		telegramClient:  tgClient,
		chatID:          cfg.ChatID,
		messageThreadID: cfg.MessageThreadID,
		log:             log,
	}
}

// SendAlert отправляет текст без разметки в чат (или топик форума) админа
func (c *Client) SendAlert(ctx context.Context, message string) error {
	if c == nil || c.telegramClient == nil {
		return fmt.Errorf("alerter client is not initialized")
	}

	req := telegram.SendMessageRequest{
		ChatID:          c.chatID,
		Text:            message,
		MessageThreadID: c.messageThreadID,
	}

	if _, err := c.telegramClient.SendMessageWithRequest(ctx, req); err != nil {
		c.log.Warn("failed to send alert",
			"error", err,
			"chat_id", c.chatID,
			"message_thread_id", c.messageThreadID,
		)
		return fmt.Errorf("failed to send alert: %w", err)
	}

	c.log.Debug("alert sent successfully", "chat_id", c.chatID)
	return nil
}
