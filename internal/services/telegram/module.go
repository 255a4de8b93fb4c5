package telegram

import (
	"log/slog"

	"github.com/admin/tg-bots/gpt-bot/internal/ports/service"
	"github.com/admin/tg-bots/gpt-bot/internal/ports/telegram"
)

var _ service.ITelegramService = (*Service)(nil)

type Service struct {
	BotService     service.IBotService
	TelegramClient telegram.IClient
	Log            *slog.Logger
}

func New(
	botService service.IBotService,
	telegramClient telegram.IClient,
	log *slog.Logger,
) *Service {
	return &Service{
		BotService:     botService,
		TelegramClient: telegramClient,
		Log:            log,
	}
}

// SetBotService устанавливает use case после создания (use case сам зависит от Service как отправителя)
func (s *Service) SetBotService(botService service.IBotService) {
	s.BotService = botService
}
