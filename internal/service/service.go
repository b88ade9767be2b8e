// Package service связывает генератор, форматтер и хранилище статистики.
package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tempizhere/fakebot/internal/formatter"
	"github.com/tempizhere/fakebot/internal/generator"
	"github.com/tempizhere/fakebot/internal/models"
	"github.com/tempizhere/fakebot/internal/repository"
)

// Источники запросов для статистики
const (
	SourceTelegram = "telegram"
	SourceHTTP     = "http"
	SourceGRPC     = "grpc"
)

// Result содержит сгенерированный пакет и его представление
type Result struct {
	Batch   models.Batch
	Payload formatter.Payload
}

// Service реализует генерацию пакетов фиктивных людей
type Service struct {
	gen    *generator.Generator
	fmt    *formatter.Formatter
	repo   repository.UsageRepository
	logger *zap.Logger
	now    func() time.Time
}

// NewService создаёт новый экземпляр Service
func NewService(gen *generator.Generator, f *formatter.Formatter, repo repository.UsageRepository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		gen:    gen,
		fmt:    f,
		repo:   repo,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Generate создаёт пакет по запросу и форматирует его.
// Ошибка записи статистики только логируется.
func (s *Service) Generate(ctx context.Context, req models.Request, chatID int64, source string) (*Result, error) {
	if !req.Locale.Valid() {
		return nil, fmt.Errorf("%w: locale %q", models.ErrInvalidArgument, req.Locale)
	}

	people, err := s.gen.GenerateBatch(ctx, req.Count, req.Locale)
	if err != nil {
		return nil, err
	}

	batch := models.Batch{
		GeneratedAt: s.now(),
		Locale:      req.Locale,
		Format:      req.Format,
		People:      people,
	}

	payload, err := s.fmt.Format(batch)
	if err != nil {
		return nil, err
	}

	if s.repo != nil {
		u := models.Usage{
			ChatID:    chatID,
			Source:    source,
			Count:     batch.Count(),
			Format:    batch.Format,
			Locale:    batch.Locale,
			CreatedAt: batch.GeneratedAt,
		}
		if err := s.repo.Record(ctx, u); err != nil {
			s.logger.Warn("Failed to record usage", zap.String("source", source), zap.Error(err))
		}
	}

	return &Result{Batch: batch, Payload: payload}, nil
}

// Stats возвращает статистику использования
func (s *Service) Stats(ctx context.Context) (models.Stats, error) {
	if s.repo == nil {
		return models.Stats{ByFormat: map[string]int{}, ByLocale: map[string]int{}}, nil
	}
	return s.repo.Stats(ctx)
}
