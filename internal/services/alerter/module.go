package alerter

import (
	"context"
	"fmt"

	"github.com/admin/tg-bots/gpt-bot/internal/adapters/secondary/alerter"
	"github.com/admin/tg-bots/gpt-bot/internal/ports/service"
	"github.com/admin/tg-bots/gpt-bot/internal/ports/sink"
)

var (
	_ service.IAlerterService = (*Service)(nil)
	_ sink.IUsageLogSink      = (*Service)(nil)
)

// Service реализует IAlerterService для отправки алертов
type Service struct {
	client *alerter.Client
}

// New создаёт новый сервис для отправки алертов
func New(client *alerter.Client) *Service {
	return &Service{
		client: client,
	}
}

// SendAlert отправляет алерт
func (s *Service) SendAlert(ctx context.Context, message string) error {
	if s.client == nil {
		return fmt.Errorf("alerter client is not initialized")
	}

	return s.client.SendAlert(ctx, message)
}

// Append отдаёт дневную строку статистики в чат админа, как sink
func (s *Service) Append(ctx context.Context, day string, line string) error {
	return s.SendAlert(ctx, line)
}
