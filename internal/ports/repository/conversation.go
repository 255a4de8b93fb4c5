package repository

import "github.com/admin/tg-bots/gpt-bot/internal/domain"

// IConversationStore окно последних сообщений по каждому чату
type IConversationStore interface {
	Append(chatID int64, message domain.ChatMessage)
	TrimIfExceeding(chatID int64)
	Window(chatID int64) []domain.ChatMessage
	Clear(chatID int64)
	ClearAll()
}
