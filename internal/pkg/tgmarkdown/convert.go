// Package tgmarkdown переводит Markdown из ответов модели в Telegram MarkdownV2.
package tgmarkdown

import (
	"regexp"
	"strings"
)

// заголовки от самого длинного к самому короткому, иначе "# " съест часть "## "
var headings = []*regexp.Regexp{
	regexp.MustCompile(`(?m)^#### ([^\r\n]+)`),
	regexp.MustCompile(`(?m)^### ([^\r\n]+)`),
	regexp.MustCompile(`(?m)^## ([^\r\n]+)`),
	regexp.MustCompile(`(?m)^# ([^\r\n]+)`),
}

// boldPlaceholder символ из Private Use Area, в тексте модели не встречается
const boldPlaceholder = "\uE000"

// escaped символы, которые MarkdownV2 требует экранировать. '*' и '_' не трогаем - это разметка
var escaped = []string{"[", "]", "(", ")", "`", ">", "~", "#", "+", "-", "=", "|", "{", "}", ".", "!"}

// Convert переводит текст в MarkdownV2. Порядок шагов важен.
func Convert(text string) string {
	result := text

	// заголовок становится жирным: "**...**" ниже превратится в "*...*"
	for _, re := range headings {
		result = re.ReplaceAllString(result, "**$1**")
	}

	// **bold** -> *bold*, *italic* -> _italic_
	result = strings.ReplaceAll(result, "**", boldPlaceholder)
	result = strings.ReplaceAll(result, "*", "_")
	result = strings.ReplaceAll(result, boldPlaceholder, "*")

	for _, ch := range escaped {
		result = strings.ReplaceAll(result, ch, `\`+ch)
	}

	return result
}
