package telegram

import (
	"context"
	"fmt"
	"strings"

	"github.com/admin/tg-bots/gpt-bot/internal/domain"
)

// HandleUpdate Основной метод для обработки всех типов обновлений
func (s *Service) HandleUpdate(ctx context.Context, update *domain.Update) error {
	if update == nil {
		return fmt.Errorf("update is nil")
	}

	if update.Message != nil {
		return s.HandleMessage(ctx, update.Message, update.UpdateID)
	}

	s.Log.Debug("ignoring update without message", "update_id", update.UpdateID)
	return nil
}

// HandleMessage обрабатывает входящее сообщение - роутинг в usecase
func (s *Service) HandleMessage(ctx context.Context, message *domain.Message, updateID int64) error {
	if message == nil {
		return fmt.Errorf("message is nil")
	}

	if message.From != nil && message.From.IsBot {
		s.Log.Debug("ignoring message from bot", "update_id", updateID)
		return nil
	}

	if message.Chat == nil {
		s.Log.Warn("ignoring message without chat", "update_id", updateID)
		return nil
	}

	// стикеры, фото и прочее без текста боту не интересны
	if message.Text == nil {
		s.Log.Debug("ignoring non-text message", "update_id", updateID, "chat_id", message.Chat.ID)
		return nil
	}

	if s.BotService == nil {
		return fmt.Errorf("bot service is not configured")
	}

	incoming := message.ToIncoming(updateID)
	if IsCommand(incoming.Text) {
		incoming.Command = ParseCommand(incoming.Text)
	}

	return s.BotService.HandleMessage(ctx, incoming)
}

// ParseCommand возвращает имя команды без "/", "@botname" и аргументов
func ParseCommand(text string) string {
	text = strings.TrimPrefix(text, "/")

	if idx := strings.Index(text, "@"); idx != -1 {
		text = text[:idx]
	}

	if idx := strings.Index(text, " "); idx != -1 {
		text = text[:idx]
	}

	return text
}

func IsCommand(text string) bool {
	return len(text) > 0 && text[0] == '/'
}
