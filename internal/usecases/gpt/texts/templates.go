package texts

// Команды бота, без "/"
const (
	CommandClear      = "clear"
	CommandStatistics = "get-user-statistics"
)

// ContextCleared уходит с MarkdownV2, поэтому "|" уже экранирован
const ContextCleared = "Context is cleared \\| Контекст очищен"

// ClearCommandDescription описание /clear в меню команд
const ClearCommandDescription = "Clear context | Очистить контекст"
