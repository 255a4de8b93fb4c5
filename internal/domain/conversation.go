package domain

// Role роль автора сообщения в окне диалога
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatMessage - одна реплика диалога, после создания не меняется
type ChatMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

func NewUserMessage(content string) ChatMessage {
	return ChatMessage{Role: RoleUser, Content: content}
}

func NewAssistantMessage(content string) ChatMessage {
	return ChatMessage{Role: RoleAssistant, Content: content}
}

const (
	// WindowLimit при достижении этой длины окно подрезается
	WindowLimit = 15
	// WindowTrimBlock сколько самых старых сообщений удаляется за раз
	WindowTrimBlock = 5
)
