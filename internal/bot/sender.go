// Package bot обрабатывает обновления Telegram и доставляет результаты в чат.
package bot

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf16"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// MaxMessageLength ограничивает длину текстового сообщения Telegram.
// Telegram считает длину в кодовых единицах UTF-16.
const MaxMessageLength = 4096

// Sender доставляет ответы в чат
//
//go:generate mockgen -source=sender.go -destination=mock_sender.go -package=bot
type Sender interface {
	SendText(ctx context.Context, chatID int64, text string) error
	SendDocument(ctx context.Context, chatID int64, filename string, data []byte) error
}

// API описывает часть tgbotapi.BotAPI, которую использует пакет
type API interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// TelegramSender отправляет сообщения через Bot API
type TelegramSender struct {
	api API
}

// NewTelegramSender создаёт отправителя поверх клиента Bot API
func NewTelegramSender(api API) *TelegramSender {
	return &TelegramSender{api: api}
}

// SendText отправляет текст, при необходимости разбивая его на несколько сообщений
func (s *TelegramSender) SendText(ctx context.Context, chatID int64, text string) error {
	for _, part := range SplitText(text, MaxMessageLength) {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := s.api.Send(tgbotapi.NewMessage(chatID, part)); err != nil {
			return fmt.Errorf("send message: %w", err)
		}
	}
	return nil
}

// SendDocument отправляет файл-вложение
func (s *TelegramSender) SendDocument(ctx context.Context, chatID int64, filename string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{Name: filename, Bytes: data})
	if _, err := s.api.Send(doc); err != nil {
		return fmt.Errorf("send document %s: %w", filename, err)
	}
	return nil
}

// SplitText режет текст на части не длиннее limit кодовых единиц UTF-16.
// Граница ищется по пустой строке между блоками, затем по переводу строки.
func SplitText(text string, limit int) []string {
	if limit <= 0 || TextLength(text) <= limit {
		return []string{text}
	}

	var parts []string
	var cur strings.Builder
	curLen := 0
	flush := func() {
		if s := strings.TrimRight(cur.String(), "\n"); s != "" {
			parts = append(parts, s)
		}
		cur.Reset()
		curLen = 0
	}

	for _, block := range strings.SplitAfter(text, "\n\n") {
		n := TextLength(block)
		if curLen+n <= limit {
			cur.WriteString(block)
			curLen += n
			continue
		}
		flush()
		if n <= limit {
			cur.WriteString(block)
			curLen = n
			continue
		}
		parts = append(parts, splitLong(block, limit)...)
	}
	flush()
	return parts
}

// TextLength возвращает длину текста так, как её считает Telegram
func TextLength(s string) int {
	n := 0
	for _, r := range s {
		n += runeLen(r)
	}
	return n
}

func runeLen(r rune) int {
	if n := utf16.RuneLen(r); n > 0 {
		return n
	}
	// невалидный UTF-8 кодируется как U+FFFD
	return 1
}

// splitLong режет один блок по строкам, а слишком длинные строки по символам
func splitLong(block string, limit int) []string {
	var parts []string
	var cur strings.Builder
	curLen := 0
	flush := func() {
		if s := strings.TrimRight(cur.String(), "\n"); s != "" {
			parts = append(parts, s)
		}
		cur.Reset()
		curLen = 0
	}

	for _, line := range strings.SplitAfter(block, "\n") {
		n := TextLength(line)
		if curLen+n > limit && curLen > 0 {
			flush()
		}
		if n <= limit {
			cur.WriteString(line)
			curLen += n
			continue
		}
		for _, r := range line {
			rl := runeLen(r)
			if curLen+rl > limit {
				flush()
			}
			cur.WriteRune(r)
			curLen += rl
		}
	}
	flush()
	return parts
}
