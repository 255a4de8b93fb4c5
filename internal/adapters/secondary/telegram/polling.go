package telegram

import (
	"context"
	"errors"
	"net/http"
	"time"

	"log/slog"

	"github.com/admin/tg-bots/gpt-bot/internal/domain"
)

const (
	defaultPollingTimeout = 30
	pollingRetryDelay     = 5 * time.Second
)

var errPollingConflict = errors.New("telegram polling conflict")

// UpdateHandler функция для обработки обновлений от Telegram
type UpdateHandler func(ctx context.Context, update *domain.Update) error

// Poller реализует long polling для получения обновлений от Telegram.
// Обновления обрабатываются строго по очереди.
type Poller struct {
	client       *Client
	timeout      int
	handler      UpdateHandler
	lastUpdateID int64
	log          *slog.Logger
	httpClient   *http.Client // отдельный HTTP клиент с увеличенным таймаутом для polling
}

func NewPoller(client *Client, config *Config, handler UpdateHandler, log *slog.Logger) *Poller {
	pollingTimeout := config.PollingTimeout
	if pollingTimeout <= 0 {
		pollingTimeout = defaultPollingTimeout
	}
	// HTTP таймаут = polling timeout + запас (10 секунд)
	httpTimeout := time.Duration(pollingTimeout+10) * time.Second

	return &Poller{
		client:  client,
		timeout: pollingTimeout,
		handler: handler,
		log:     log,
		httpClient: &http.Client{
			Timeout: httpTimeout,
		},
	}
}

// Start крутит getUpdates до отмены ctx
func (p *Poller) Start(ctx context.Context) error {
	p.log.Info("starting telegram polling", "timeout", p.timeout)

	for {
		if ctx.Err() != nil {
			p.log.Info("polling stopped")
			return nil
		}

		updates, err := p.getUpdates(ctx)
		if err != nil {
			if ctx.Err() != nil {
				p.log.Info("polling stopped")
				return nil
			}
			if !errors.Is(err, errPollingConflict) {
				p.log.Error("failed to get updates", "error", err)
			}
			// Ждём перед повтором
			select {
			case <-ctx.Done():
			case <-time.After(pollingRetryDelay):
			}
			continue
		}

		for i := range updates {
			update := &updates[i]

			if update.UpdateID >= p.lastUpdateID {
				p.lastUpdateID = update.UpdateID + 1
			}

			if err := p.handler(ctx, update); err != nil {
				p.log.Error("failed to handle update",
					"error", err,
					"update_id", update.UpdateID,
				)
				// Продолжаем обработку следующих обновлений
			}
		}
	}
}

// getUpdates получает обновления от Telegram API
func (p *Poller) getUpdates(ctx context.Context) ([]domain.Update, error) {
	reqBody := struct {
		Offset         int64    `json:"offset"`
		Timeout        int      `json:"timeout"`
		AllowedUpdates []string `json:"allowed_updates"`
	}{
		Offset:         p.lastUpdateID,
		Timeout:        p.timeout,
		AllowedUpdates: []string{"message"},
	}

	var updates []domain.Update
	err := p.client.callWith(ctx, p.httpClient, "getUpdates", reqBody, &updates)

	var apiErr *APIError
	// 409 - конфликт (другой экземпляр бота или webhook активен), пробуем в следующей итерации
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusConflict {
		p.log.Warn("telegram API conflict - another bot instance or webhook is active",
			"error_code", apiErr.Code,
			"description", apiErr.Description,
		)
		return nil, errPollingConflict
	}
	if err != nil {
		return nil, err
	}

	return updates, nil
}
