package gpt

import (
	"context"

	"github.com/admin/tg-bots/gpt-bot/internal/domain"
	"github.com/admin/tg-bots/gpt-bot/internal/usecases/gpt/texts"
)

// HandleMessage обрабатывает одно входящее сообщение.
// Запрос считается в статистике до любого ветвления, даже если дальше всё упадёт.
func (s *Service) HandleMessage(ctx context.Context, message domain.IncomingMessage) error {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()

	s.Usage.Record(message.ChatID, domain.UsageLabel(message.Username, message.FirstName))

	switch message.Command {
	case texts.CommandClear:
		return s.HandleClear(ctx, message.ChatID)
	case texts.CommandStatistics:
		return s.HandleStatistics(ctx, message.ChatID)
	default:
		// неизвестные команды уходят в модель как обычный текст
		_, err := s.HandleText(ctx, message)
		return err
	}
}
