package gpt

import (
	"sync"
	"time"

	"log/slog"

	"github.com/admin/tg-bots/gpt-bot/internal/ports/repository"
	"github.com/admin/tg-bots/gpt-bot/internal/ports/service"
)

var _ service.IBotService = (*Service)(nil)

// Service бизнес-логика gpt-бота.
// Каждое обновление обрабатывается под RLock stateMu, ежедневный сброс берёт Lock,
// поэтому сброс никогда не разрывает обработку одного сообщения.
type Service struct {
	Conversation repository.IConversationStore
	Usage        repository.IUsageTracker
	Telegram     service.ITelegramService
	Completion   service.ICompletionService
	Log          *slog.Logger

	stateMu sync.RWMutex
	now     func() time.Time
}

// New создаёт новый сервис для бизнес-логики gpt-бота
func New(
	conversation repository.IConversationStore,
	usage repository.IUsageTracker,
	telegram service.ITelegramService,
	completion service.ICompletionService,
	log *slog.Logger,
) *Service {
	return &Service{
		Conversation: conversation,
		Usage:        usage,
		Telegram:     telegram,
		Completion:   completion,
		Log:          log,
		now:          time.Now,
	}
}

