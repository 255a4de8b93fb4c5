package service

import (
	"context"

	"github.com/admin/tg-bots/gpt-bot/internal/domain"
)

// ICompletionService внешний chat-completion API.
// Возвращает текст первого choice или domain.ErrEmptyCompletion.
type ICompletionService interface {
	Complete(ctx context.Context, messages []domain.ChatMessage) (string, error)
}
