package gpt

import (
	"context"
	"fmt"
)

// ResetDaily очищает все окна и выгружает дневную статистику.
// Берёт эксклюзивную блокировку, новые сообщения ждут окончания сброса.
func (s *Service) ResetDaily(ctx context.Context) error {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()

	s.Conversation.ClearAll()

	if err := s.Usage.FlushAndReset(ctx, s.now()); err != nil {
		return fmt.Errorf("failed to flush usage: %w", err)
	}

	s.Log.Info("daily reset completed")
	return nil
}
