package gpt

import (
	"context"
	"errors"
	"fmt"

	"github.com/admin/tg-bots/gpt-bot/internal/domain"
	"github.com/admin/tg-bots/gpt-bot/internal/pkg/tgmarkdown"
	"github.com/google/uuid"
)

// HandleText отправляет окно диалога в модель и пересылает ответ пользователю
func (s *Service) HandleText(ctx context.Context, message domain.IncomingMessage) (domain.SendOutcome, error) {
	requestID := uuid.New()
	log := s.Log.With("request_id", requestID.String(), "chat_id", message.ChatID)

	s.Conversation.Append(message.ChatID, domain.NewUserMessage(message.Text))
	s.Conversation.TrimIfExceeding(message.ChatID)
	window := s.Conversation.Window(message.ChatID)

	log.Debug("sending completion request", "window_size", len(window))

	content, err := s.Completion.Complete(ctx, window)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyCompletion) {
			log.Warn("completion returned no choices")
		} else {
			log.Error("failed to get completion", "error", err)
		}
		return domain.SendOutcomeFailed, domain.WrapBusinessError(fmt.Errorf("failed to get completion: %w", err))
	}

	outcome := s.sendReply(ctx, message.ChatID, content)
	if !outcome.Delivered() {
		log.Error("failed to deliver reply")
		return outcome, domain.WrapBusinessError(fmt.Errorf("failed to deliver reply to chat %d", message.ChatID))
	}

	// в историю идёт исходный текст модели, не сконвертированный
	s.Conversation.Append(message.ChatID, domain.NewAssistantMessage(content))
	log.Info("reply sent", "outcome", string(outcome))
	return outcome, nil
}

// sendReply пробует MarkdownV2, при отказе повторяет исходный текст без разметки
func (s *Service) sendReply(ctx context.Context, chatID int64, content string) domain.SendOutcome {
	if err := s.Telegram.SendMessageWithMarkdown(ctx, chatID, tgmarkdown.Convert(content)); err == nil {
		return domain.SendOutcomeMarkdown
	}

	if err := s.Telegram.SendMessage(ctx, chatID, content); err != nil {
		return domain.SendOutcomeFailed
	}
	return domain.SendOutcomeFallback
}
