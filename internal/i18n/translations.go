// Package i18n отдаёт локализованные сообщения бота на основе go-i18n.
package i18n

import (
	"embed"
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/tempizhere/fakebot/internal/models"
)

//go:embed active.*.toml
var localeFS embed.FS

// Идентификаторы сообщений
const (
	MsgStartHelp     = "start_help"
	MsgMissingCount  = "missing_count"
	MsgInvalidCount  = "invalid_count"
	MsgLimitExceeded = "limit_exceeded"
	MsgProgress      = "progress"
	MsgGenericError  = "generic_error"
)

// Translator оборачивает i18n.Bundle
type Translator struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
	logger          *zap.Logger
}

// NewTranslator загружает встроенные файлы active.*.toml.
// Сообщения, не найденные в запрошенной локали, берутся из defaultLocale.
func NewTranslator(defaultLocale models.Locale, logger *zap.Logger) (*Translator, error) {
	tag, err := language.Parse(defaultLocale.String())
	if err != nil {
		return nil, fmt.Errorf("parse default locale %q: %w", defaultLocale, err)
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, l := range models.Locales {
		file := "active." + l.String() + ".toml"
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			return nil, fmt.Errorf("load %s: %w", file, err)
		}
	}

	return &Translator{
		bundle:          bundle,
		defaultLanguage: tag,
		logger:          logger,
	}, nil
}

// T возвращает сообщение key для локали. Если сообщение не найдено,
// возвращается сам ключ.
func (t *Translator) T(locale models.Locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}

	languages := []string{}
	if locale != "" {
		languages = append(languages, locale.String())
	}
	languages = append(languages, t.defaultLanguage.String())

	localizer := i18n.NewLocalizer(t.bundle, languages...)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		t.logger.Warn("Localize failed",
			zap.String("key", key),
			zap.Strings("languages", languages),
			zap.Error(err))
		return key
	}
	return msg
}
