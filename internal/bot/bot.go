package bot

import (
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/tempizhere/fakebot/internal/command"
	"github.com/tempizhere/fakebot/internal/generator"
	"github.com/tempizhere/fakebot/internal/i18n"
	"github.com/tempizhere/fakebot/internal/models"
	"github.com/tempizhere/fakebot/internal/service"
)

// Generator создаёт пакет по разобранному запросу
type Generator interface {
	Generate(ctx context.Context, req models.Request, chatID int64, source string) (*service.Result, error)
}

// Translator отдаёт локализованные сообщения
type Translator interface {
	T(locale models.Locale, key string, data map[string]any) string
}

// Bot обрабатывает команды /start и /fake
type Bot struct {
	gen    Generator
	sender Sender
	tr     Translator
	logger *zap.Logger
}

// New создаёт обработчик команд
func New(gen Generator, sender Sender, tr Translator, logger *zap.Logger) *Bot {
	return &Bot{
		gen:    gen,
		sender: sender,
		tr:     tr,
		logger: logger,
	}
}

// HandleUpdate обрабатывает одно обновление. Все ошибки, включая панику,
// превращаются в сообщение пользователю и в запись лога.
func (b *Bot) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	msg := update.Message
	if msg == nil || msg.Chat == nil || !msg.IsCommand() {
		return
	}
	chatID := msg.Chat.ID
	locale := models.DefaultLocale

	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("Panic while handling update",
				zap.Int("update_id", update.UpdateID),
				zap.Int64("chat_id", chatID),
				zap.Any("panic", r))
			b.reply(ctx, chatID, b.tr.T(locale, i18n.MsgGenericError, nil))
		}
	}()

	switch msg.Command() {
	case command.Start:
		b.reply(ctx, chatID, b.tr.T(locale, i18n.MsgStartHelp, nil))
	case command.Fake:
		req, err := command.Parse(command.Fields(msg.CommandArguments()))
		locale = req.Locale
		if err != nil {
			b.logger.Info("Rejected /fake arguments",
				zap.Int64("chat_id", chatID),
				zap.String("args", msg.CommandArguments()),
				zap.Error(err))
			b.reply(ctx, chatID, b.tr.T(locale, parseErrorMessage(err), nil))
			return
		}
		b.fake(ctx, chatID, req)
	default:
		b.logger.Debug("Ignored command", zap.String("command", msg.Command()), zap.Int64("chat_id", chatID))
	}
}

func (b *Bot) fake(ctx context.Context, chatID int64, req models.Request) {
	if len(req.Ignored) > 0 {
		b.logger.Debug("Ignored /fake tokens", zap.Strings("tokens", req.Ignored), zap.Int64("chat_id", chatID))
	}
	if req.Clamped {
		b.reply(ctx, chatID, b.tr.T(req.Locale, i18n.MsgLimitExceeded, map[string]any{"Max": generator.MaxBatchSize}))
	}
	b.reply(ctx, chatID, b.tr.T(req.Locale, i18n.MsgProgress, map[string]any{"Count": req.Count}))

	res, err := b.gen.Generate(ctx, req, chatID, service.SourceTelegram)
	if err != nil {
		b.logger.Error("Failed to generate batch",
			zap.Int64("chat_id", chatID),
			zap.Int("count", req.Count),
			zap.String("format", req.Format.String()),
			zap.String("locale", req.Locale.String()),
			zap.Error(err))
		b.reply(ctx, chatID, b.tr.T(req.Locale, i18n.MsgGenericError, nil))
		return
	}

	if err := b.deliver(ctx, chatID, res); err != nil {
		b.logger.Error("Failed to deliver batch", zap.Int64("chat_id", chatID), zap.Error(err))
		return
	}
	b.logger.Info("Batch delivered",
		zap.Int64("chat_id", chatID),
		zap.Int("count", res.Batch.Count()),
		zap.String("format", res.Batch.Format.String()),
		zap.String("locale", res.Batch.Locale.String()))
}

func (b *Bot) deliver(ctx context.Context, chatID int64, res *service.Result) error {
	if res.Batch.Format.IsFile() {
		return b.sender.SendDocument(ctx, chatID, res.Payload.Filename, res.Payload.Data)
	}
	return b.sender.SendText(ctx, chatID, res.Payload.Text)
}

func (b *Bot) reply(ctx context.Context, chatID int64, text string) {
	if err := b.sender.SendText(ctx, chatID, text); err != nil {
		b.logger.Warn("Failed to send reply", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

func parseErrorMessage(err error) string {
	switch {
	case errors.Is(err, command.ErrMissingCount):
		return i18n.MsgMissingCount
	case errors.Is(err, command.ErrInvalidCount):
		return i18n.MsgInvalidCount
	default:
		return i18n.MsgGenericError
	}
}

