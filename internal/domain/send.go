package domain

// SendOutcome чем закончилась отправка ответа модели
type SendOutcome string

const (
	SendOutcomeMarkdown SendOutcome = "markdown" // ушло с MarkdownV2
	SendOutcomeFallback SendOutcome = "fallback" // MarkdownV2 отклонён, ушло обычным текстом
	SendOutcomeFailed   SendOutcome = "failed"   // не ушло никак
)

// Delivered сообщение дошло до пользователя в каком-либо виде
func (o SendOutcome) Delivered() bool {
	return o == SendOutcomeMarkdown || o == SendOutcomeFallback
}
