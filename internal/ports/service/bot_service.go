package service

import (
	"context"

	"github.com/admin/tg-bots/gpt-bot/internal/domain"
)

// IBotService бизнес-логика бота
type IBotService interface {
	HandleMessage(ctx context.Context, message domain.IncomingMessage) error
}
