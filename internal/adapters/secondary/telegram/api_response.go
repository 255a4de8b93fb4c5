package telegram

import "fmt"

// APIResponse базовая структура ответа от Telegram API
type APIResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description,omitempty"`
	ErrorCode   int    `json:"error_code,omitempty"`
}

// APIError ошибка, которую вернул сам Telegram (ok=false)
type APIError struct {
	Code        int
	Description string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("telegram API error: %s (code: %d)", e.Description, e.Code)
}
