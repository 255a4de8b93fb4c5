package telegram

import (
	"context"
	"fmt"
)

// SendMessage отправляет текстовое сообщение пользователю
func (s *Service) SendMessage(ctx context.Context, chatID int64, text string) error {
	if err := s.TelegramClient.SendMessage(ctx, chatID, text); err != nil {
		s.Log.Error("failed to send message",
			"error", err,
			"chat_id", chatID,
		)
		return fmt.Errorf("failed to send message: %w", err)
	}

	s.Log.Debug("message sent successfully",
		"chat_id", chatID,
	)
	return nil
}

// SendMessageWithMarkdown отправляет текстовое сообщение с MarkdownV2 форматированием
func (s *Service) SendMessageWithMarkdown(ctx context.Context, chatID int64, text string) error {
	if err := s.TelegramClient.SendMessageWithMarkdown(ctx, chatID, text); err != nil {
		// ошибка разметки ожидаема, вызывающий повторит без неё
		s.Log.Warn("failed to send message with markdown",
			"error", err,
			"chat_id", chatID,
		)
		return fmt.Errorf("failed to send message with markdown: %w", err)
	}

	s.Log.Debug("message with markdown sent successfully",
		"chat_id", chatID,
	)
	return nil
}
