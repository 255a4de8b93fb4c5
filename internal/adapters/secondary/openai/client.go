package openai

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/admin/tg-bots/gpt-bot/internal/domain"
	"github.com/admin/tg-bots/gpt-bot/internal/ports/service"
	goopenai "github.com/sashabaranov/go-openai"
)

var _ service.ICompletionService = (*Client)(nil)

// Client клиент chat-completion API (OpenAI-совместимого)
type Client struct {
	api         *goopenai.Client
	model       string
	temperature float32
	log         *slog.Logger
}

// NewClient bearer-токен задаётся один раз здесь
func NewClient(cfg *Config, log *slog.Logger) *Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.ShouldSkipSSL() {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true,
		}
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 90 * time.Second
	}

	apiCfg := goopenai.DefaultConfig(cfg.APIKey)
	if cfg.APIURL != "" {
		apiCfg.BaseURL = cfg.APIURL
	}
	apiCfg.HTTPClient = &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}

	temperature := cfg.Temperature
	if temperature <= 0 {
		temperature = 1.0
	}

	return &Client{
		api:         goopenai.NewClientWithConfig(apiCfg),
		model:       cfg.Model,
		temperature: temperature,
		log:         log,
	}
}

// Complete отправляет окно диалога и возвращает content первого choice
func (c *Client) Complete(ctx context.Context, messages []domain.ChatMessage) (string, error) {
	req := goopenai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    toAPIMessages(messages),
		N:           1,
		Temperature: c.temperature,
	}

	start := time.Now()
	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		c.log.Debug("completion request failed",
			"error", err,
			"model", c.model,
			"messages", len(messages),
			"latency", time.Since(start),
		)
		return "", fmt.Errorf("completion request failed [model=%s]: %w", c.model, err)
	}

	if len(resp.Choices) == 0 {
		return "", domain.ErrEmptyCompletion
	}

	c.log.Debug("completion received",
		"model", c.model,
		"choices", len(resp.Choices),
		"total_tokens", resp.Usage.TotalTokens,
		"latency", time.Since(start),
	)

	return resp.Choices[0].Message.Content, nil
}

func toAPIMessages(messages []domain.ChatMessage) []goopenai.ChatCompletionMessage {
	out := make([]goopenai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		out = append(out, goopenai.ChatCompletionMessage{
			Role:    string(m.Role),
			Content: m.Content,
		})
	}
	return out
}
