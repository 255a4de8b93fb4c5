package gpt

import (
	"context"
	"fmt"

	"github.com/admin/tg-bots/gpt-bot/internal/domain"
	"github.com/admin/tg-bots/gpt-bot/internal/usecases/gpt/texts"
)

// HandleClear обрабатывает команду /clear
func (s *Service) HandleClear(ctx context.Context, chatID int64) error {
	s.Conversation.Clear(chatID)
	s.Log.Info("conversation cleared", "chat_id", chatID)

	if err := s.Telegram.SendMessageWithMarkdown(ctx, chatID, texts.ContextCleared); err != nil {
		return domain.WrapBusinessError(fmt.Errorf("failed to send clear reply: %w", err))
	}
	return nil
}

// HandleStatistics обрабатывает команду /get-user-statistics, без разметки
func (s *Service) HandleStatistics(ctx context.Context, chatID int64) error {
	report := s.Usage.ReportText(s.now())

	if err := s.Telegram.SendMessage(ctx, chatID, report); err != nil {
		return domain.WrapBusinessError(fmt.Errorf("failed to send statistics: %w", err))
	}
	return nil
}

// Statistics текущий отчёт, для админского HTTP API
func (s *Service) Statistics() string {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()

	return s.Usage.ReportText(s.now())
}
