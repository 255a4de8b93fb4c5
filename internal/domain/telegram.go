package domain

// дока - https://core.telegram.org/bots/api

// Update - входящее обновление от Telegram Bot API
type Update struct {
	UpdateID int64    `json:"update_id"`
	Message  *Message `json:"message,omitempty"`
	// Остальные типы обновлений боту не нужны
}

// Message - сообщение от Telegram Bot API
type Message struct {
	MessageID int64         `json:"message_id"`
	From      *TelegramUser `json:"from,omitempty"` // отправитель (Telegram User)
	Chat      *Chat         `json:"chat"`           // чат
	Date      int64         `json:"date"`           // Unix timestamp
	Text      *string       `json:"text,omitempty"` // текст сообщения
}

// TelegramUser - пользователь Telegram
type TelegramUser struct {
	ID           int64   `json:"id"`
	IsBot        bool    `json:"is_bot"`
	FirstName    string  `json:"first_name"`
	LastName     *string `json:"last_name,omitempty"`
	Username     *string `json:"username,omitempty"`
	LanguageCode *string `json:"language_code,omitempty"`
}

// Chat - чат в Telegram
type Chat struct {
	ID        int64   `json:"id"`
	Type      string  `json:"type"` // "private", "group", "supergroup", "channel"
	Title     *string `json:"title,omitempty"`
	Username  *string `json:"username,omitempty"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
}

// IncomingMessage - то, что use case получает из транспорта
type IncomingMessage struct {
	UpdateID  int64
	ChatID    int64
	Username  string
	FirstName string
	Text      string
	Command   string // имя команды без "/" и "@bot", пусто для обычного текста
}

// ToIncoming собирает IncomingMessage из сообщения Telegram.
// Имя берётся у отправителя, при его отсутствии - у чата.
func (m *Message) ToIncoming(updateID int64) IncomingMessage {
	in := IncomingMessage{UpdateID: updateID}
	if m.Chat != nil {
		in.ChatID = m.Chat.ID
		if m.Chat.Username != nil {
			in.Username = *m.Chat.Username
		}
		if m.Chat.FirstName != nil {
			in.FirstName = *m.Chat.FirstName
		}
	}
	if m.From != nil {
		if m.From.Username != nil {
			in.Username = *m.From.Username
		}
		if m.From.FirstName != "" {
			in.FirstName = m.From.FirstName
		}
	}
	if m.Text != nil {
		in.Text = *m.Text
	}
	return in
}
