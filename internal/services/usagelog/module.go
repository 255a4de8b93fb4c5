package usagelog

import (
	"context"
	"fmt"

	"log/slog"

	"github.com/admin/tg-bots/gpt-bot/internal/ports/sink"
	"golang.org/x/sync/errgroup"
)

var _ sink.IUsageLogSink = (*Service)(nil)

type mirror struct {
	name string
	sink sink.IUsageLogSink
}

// Service раздаёт дневную строку статистики: сначала в основной журнал,
// затем параллельно во все зеркала. Ошибка зеркала только логируется.
type Service struct {
	primary sink.IUsageLogSink
	mirrors []mirror
	log     *slog.Logger
}

func New(primary sink.IUsageLogSink, log *slog.Logger) *Service {
	return &Service{
		primary: primary,
		log:     log,
	}
}

// AddMirror регистрирует дополнительный приёмник. Не потокобезопасен, вызывать до старта.
func (s *Service) AddMirror(name string, m sink.IUsageLogSink) {
	s.mirrors = append(s.mirrors, mirror{name: name, sink: m})
}

// Mirrors имена зарегистрированных зеркал
func (s *Service) Mirrors() []string {
	names := make([]string, 0, len(s.mirrors))
	for _, m := range s.mirrors {
		names = append(names, m.name)
	}
	return names
}

// Append пишет строку в основной журнал. Если основной журнал упал,
// зеркала не трогаются, чтобы повторная выгрузка не задвоила строку в них.
func (s *Service) Append(ctx context.Context, day string, line string) error {
	if err := s.primary.Append(ctx, day, line); err != nil {
		return fmt.Errorf("failed to append to primary usage log: %w", err)
	}

	var g errgroup.Group
	for _, m := range s.mirrors {
		m := m
		g.Go(func() error {
			if err := m.sink.Append(ctx, day, line); err != nil {
				s.log.Warn("failed to mirror usage log", "mirror", m.name, "day", day, "error", err)
				return nil
			}
			s.log.Debug("usage log mirrored", "mirror", m.name, "day", day)
			return nil
		})
	}
	_ = g.Wait()

	s.log.Info("usage log written", "day", day, "mirrors", len(s.mirrors))
	return nil
}
