package telegram

import (
	"context"
)

// IClient интерфейс для клиента Telegram API
type IClient interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	SendMessageWithMarkdown(ctx context.Context, chatID int64, text string) error
}
