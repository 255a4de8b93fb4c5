package alerter

type Config struct {
	BotToken        string `envconfig:"BOT_TOKEN"` // пусто - токен основного бота
	ChatID          int64  `envconfig:"CHAT_ID"`
	MessageThreadID *int64 `envconfig:"MESSAGE_THREAD_ID"`
}

// Enabled алерты шлются только если задан чат админа
func (c *Config) Enabled() bool {
	return c != nil && c.ChatID != 0
}
