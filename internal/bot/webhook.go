package bot

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// WebhookPath задаёт путь, на который Telegram отправляет обновления
const WebhookPath = "/webhook"

// WebhookURL строит адрес вебхука из публичного адреса сервиса
func WebhookURL(base string) string {
	return strings.TrimRight(base, "/") + WebhookPath
}

// Register сообщает Telegram адрес вебхука
func Register(ctx context.Context, api API, baseURL string, logger *zap.Logger) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	link := WebhookURL(baseURL)
	wh, err := tgbotapi.NewWebhook(link)
	if err != nil {
		return fmt.Errorf("webhook config %s: %w", link, err)
	}
	resp, err := api.Request(wh)
	if err != nil {
		return fmt.Errorf("set webhook: %w", err)
	}
	if !resp.Ok {
		return fmt.Errorf("set webhook: %s", resp.Description)
	}
	logger.Info("Webhook registered", zap.String("url", link))
	return nil
}

// zapBotLogger направляет журнал библиотеки Telegram в zap
type zapBotLogger struct {
	sugar *zap.SugaredLogger
}

// NewBotLogger адаптирует zap к интерфейсу tgbotapi.BotLogger
func NewBotLogger(logger *zap.Logger) tgbotapi.BotLogger {
	return &zapBotLogger{sugar: logger.Named("telegram").Sugar()}
}

func (l *zapBotLogger) Println(v ...interface{}) {
	l.sugar.Debug(strings.TrimSuffix(fmt.Sprintln(v...), "\n"))
}

func (l *zapBotLogger) Printf(format string, v ...interface{}) {
	l.sugar.Debugf(format, v...)
}
