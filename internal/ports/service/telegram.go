package service

import (
	"context"
)

// ITelegramService интерфейс для отправки сообщений через Telegram
type ITelegramService interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	SendMessageWithMarkdown(ctx context.Context, chatID int64, text string) error
}
