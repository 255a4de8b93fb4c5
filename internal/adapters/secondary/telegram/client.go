package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"log/slog"
)

const (
	telegramAPIBaseURL = "https://api.telegram.org"
	apiTimeout         = 30 * time.Second

	ParseModeMarkdownV2 = "MarkdownV2"
)

// Client клиент для работы с Telegram Bot API
type Client struct {
	httpClient *http.Client
	baseURL    string // <api>/bot<token>
	log        *slog.Logger
}

// NewClient создаёт новый клиент для Telegram Bot API
func NewClient(token string, log *slog.Logger) *Client {
	return NewClientWithBaseURL(telegramAPIBaseURL, token, log)
}

// NewClientWithBaseURL клиент для собственного Bot API сервера
func NewClientWithBaseURL(apiURL string, token string, log *slog.Logger) *Client {
	if apiURL == "" {
		apiURL = telegramAPIBaseURL
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: apiTimeout,
		},
		baseURL: strings.TrimRight(apiURL, "/") + "/bot" + token,
		log:     log,
	}
}

// SendMessageRequest запрос на отправку сообщения
type SendMessageRequest struct {
	ChatID          int64  `json:"chat_id"`
	Text            string `json:"text"`
	ParseMode       string `json:"parse_mode,omitempty"`        // "HTML", "Markdown", "MarkdownV2"
	MessageThreadID *int64 `json:"message_thread_id,omitempty"` // ID топика форума
}

// SendMessageResult результат отправки сообщения
type SendMessageResult struct {
	MessageID int64 `json:"message_id"`
	Chat      struct {
		ID int64 `json:"id"`
	} `json:"chat"`
	Date int64 `json:"date"`
}

// SendMessage отправляет текст без разметки
func (c *Client) SendMessage(ctx context.Context, chatID int64, text string) error {
	_, err := c.SendMessageWithRequest(ctx, SendMessageRequest{
		ChatID: chatID,
		Text:   text,
	})
	return err
}

// SendMessageWithMarkdown отправляет уже экранированный MarkdownV2 текст.
// Telegram отвечает 400, если разметка невалидна.
func (c *Client) SendMessageWithMarkdown(ctx context.Context, chatID int64, text string) error {
	_, err := c.SendMessageWithRequest(ctx, SendMessageRequest{
		ChatID:    chatID,
		Text:      text,
		ParseMode: ParseModeMarkdownV2,
	})
	return err
}

// SendMessageWithRequest отправляет сообщение и возвращает его message_id
func (c *Client) SendMessageWithRequest(ctx context.Context, req SendMessageRequest) (int64, error) {
	var result SendMessageResult
	if err := c.call(ctx, "sendMessage", req, &result); err != nil {
		c.log.Debug("telegram sendMessage failed",
			"error", err,
			"chat_id", req.ChatID,
			"parse_mode", req.ParseMode,
		)
		return 0, fmt.Errorf("telegram sendMessage failed [chat_id=%d]: %w", req.ChatID, err)
	}

	c.log.Debug("message sent successfully",
		"chat_id", req.ChatID,
		"message_id", result.MessageID,
	)
	return result.MessageID, nil
}

// BotCommand представляет команду бота
type BotCommand struct {
	Command     string `json:"command"`
	Description string `json:"description"`
}

// SetMyCommands регистрирует команды бота в меню
func (c *Client) SetMyCommands(ctx context.Context, commands []BotCommand) error {
	reqBody := struct {
		Commands []BotCommand `json:"commands"`
	}{
		Commands: commands,
	}

	if err := c.call(ctx, "setMyCommands", reqBody, nil); err != nil {
		return fmt.Errorf("failed to set bot commands: %w", err)
	}

	c.log.Info("bot commands registered successfully", "commands_count", len(commands))
	return nil
}

// SetWebhook устанавливает webhook; secret приходит обратно в X-Telegram-Bot-Api-Secret-Token
func (c *Client) SetWebhook(ctx context.Context, url string, secret string) error {
	reqBody := struct {
		URL            string   `json:"url"`
		SecretToken    string   `json:"secret_token,omitempty"`
		AllowedUpdates []string `json:"allowed_updates"`
	}{
		URL:            url,
		SecretToken:    secret,
		AllowedUpdates: []string{"message"},
	}

	if err := c.call(ctx, "setWebhook", reqBody, nil); err != nil {
		return fmt.Errorf("failed to set webhook: %w", err)
	}
	return nil
}

// DeleteWebhook удаляет webhook (нужно вызывать перед запуском polling)
func (c *Client) DeleteWebhook(ctx context.Context) error {
	reqBody := struct {
		DropPendingUpdates bool `json:"drop_pending_updates"`
	}{
		DropPendingUpdates: true,
	}

	if err := c.call(ctx, "deleteWebhook", reqBody, nil); err != nil {
		return fmt.Errorf("failed to delete webhook: %w", err)
	}
	return nil
}

// call выполняет POST к методу Bot API и раскладывает result в out (если out != nil)
func (c *Client) call(ctx context.Context, method string, reqBody any, out any) error {
	return c.callWith(ctx, c.httpClient, method, reqBody, out)
}

func (c *Client) callWith(ctx context.Context, httpClient *http.Client, method string, reqBody any, out any) error {
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+method, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	var apiResp struct {
		APIResponse
		Result json.RawMessage `json:"result"`
	}
	if err := json.Unmarshal(body, &apiResp); err != nil {
		c.log.Error("failed to unmarshal response",
			"error", err,
			"method", method,
			"status_code", resp.StatusCode,
			"body_preview", truncateString(string(body), 200),
		)
		return fmt.Errorf("failed to unmarshal response [status=%d]: %w", resp.StatusCode, err)
	}

	if !apiResp.OK {
		return &APIError{Code: apiResp.ErrorCode, Description: apiResp.Description}
	}

	if out != nil && len(apiResp.Result) > 0 {
		if err := json.Unmarshal(apiResp.Result, out); err != nil {
			return fmt.Errorf("failed to unmarshal result: %w", err)
		}
	}

	return nil
}

// truncateString обрезает строку до указанной длины
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
