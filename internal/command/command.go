// Package command разбирает аргументы команды /fake в типизированный запрос.
package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tempizhere/fakebot/internal/generator"
	"github.com/tempizhere/fakebot/internal/models"
)

// Имена команд бота
const (
	Start = "start"
	Fake  = "fake"
)

var (
	// ErrMissingCount возвращается, если количество не указано
	ErrMissingCount = fmt.Errorf("%w: missing count", models.ErrInvalidArgument)
	// ErrInvalidCount возвращается, если количество не является целым числом
	ErrInvalidCount = fmt.Errorf("%w: invalid count", models.ErrInvalidArgument)
)

// Fields разбивает текст аргументов команды на токены
func Fields(text string) []string {
	return strings.Fields(text)
}

// Parse разбирает аргументы "/fake <count> [format] [locale]".
// Формат и локаль могут идти в любом порядке; при повторе побеждает последний.
// Нераспознанные токены не считаются ошибкой и возвращаются в Request.Ignored.
func Parse(args []string) (models.Request, error) {
	req := models.Request{
		Format: models.DefaultFormat,
		Locale: models.DefaultLocale,
	}

	// локаль разбираем до количества, чтобы сообщить об ошибке на нужном языке
	rest := []string{}
	if len(args) > 1 {
		rest = args[1:]
	}
	for _, arg := range rest {
		if f, err := models.ParseFormat(arg); err == nil && f.IsFile() {
			req.Format = f
			continue
		}
		if l, err := models.ParseLocale(arg); err == nil {
			req.Locale = l
			continue
		}
		req.Ignored = append(req.Ignored, arg)
	}

	if len(args) == 0 {
		return req, ErrMissingCount
	}

	count, err := strconv.Atoi(args[0])
	if err != nil {
		var numErr *strconv.NumError
		if !errors.As(err, &numErr) || !errors.Is(numErr.Err, strconv.ErrRange) {
			return req, fmt.Errorf("%w: %q", ErrInvalidCount, args[0])
		}
		// число за пределами int всё равно выходит за границы [0, MaxBatchSize]
		count = generator.MaxBatchSize + 1
		if strings.HasPrefix(args[0], "-") {
			count = -1
		}
	}

	req.Count, req.Clamped = generator.Clamp(count)
	return req, nil
}
