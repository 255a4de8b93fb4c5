package inmemory

import (
	"sync"

	"github.com/admin/tg-bots/gpt-bot/internal/domain"
	"github.com/admin/tg-bots/gpt-bot/internal/ports/repository"
)

// ConversationStore in-memory окна диалогов по chat_id
type ConversationStore struct {
	mu      sync.RWMutex
	windows map[int64][]domain.ChatMessage // chat_id -> сообщения, старые первыми
}

// NewConversationStore создаёт пустое хранилище окон
func NewConversationStore() repository.IConversationStore {
	return &ConversationStore{
		windows: make(map[int64][]domain.ChatMessage),
	}
}

// Append добавляет сообщение в конец окна, окно создаётся при первом сообщении
func (s *ConversationStore) Append(chatID int64, message domain.ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.windows[chatID] = append(s.windows[chatID], message)
}

// TrimIfExceeding срезает WindowTrimBlock самых старых сообщений, если окно достигло WindowLimit
func (s *ConversationStore) TrimIfExceeding(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	window, ok := s.windows[chatID]
	if !ok || len(window) < domain.WindowLimit {
		return
	}

	// копия, чтобы не держать старый массив целиком
	trimmed := make([]domain.ChatMessage, len(window)-domain.WindowTrimBlock)
	copy(trimmed, window[domain.WindowTrimBlock:])
	s.windows[chatID] = trimmed
}

// Window возвращает копию окна
func (s *ConversationStore) Window(chatID int64) []domain.ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	window := s.windows[chatID]
	out := make([]domain.ChatMessage, len(window))
	copy(out, window)
	return out
}

// Clear очищает окно одного чата, сам чат остаётся известным
func (s *ConversationStore) Clear(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.windows[chatID]; ok {
		s.windows[chatID] = []domain.ChatMessage{}
	}
}

// ClearAll очищает окна всех чатов
func (s *ConversationStore) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for chatID := range s.windows {
		s.windows[chatID] = []domain.ChatMessage{}
	}
}
