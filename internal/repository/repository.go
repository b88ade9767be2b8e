// Package repository хранит статистику использования бота.
// Сгенерированные записи не сохраняются, только метаданные запросов.
package repository

import (
	"context"
	"database/sql"

	"github.com/tempizhere/fakebot/internal/models"
)

// UsageRepository определяет интерфейс хранилища статистики
//
//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository
type UsageRepository interface {
	// Record сохраняет сведения об одном выполненном запросе
	Record(ctx context.Context, u models.Usage) error
	// Stats возвращает агрегированную статистику
	Stats(ctx context.Context) (models.Stats, error)
}

// Database определяет интерфейс для работы с базой данных
type Database interface {
	// PingContext проверяет соединение с базой данных
	PingContext(ctx context.Context) error
	// Close закрывает соединение с базой данных
	Close() error
	// ExecContext выполняет SQL-команду без возврата результатов
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	// QueryContext выполняет SQL-запрос и возвращает результаты
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	// QueryRowContext выполняет SQL-запрос и возвращает одну строку результата
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func newStats() models.Stats {
	return models.Stats{
		ByFormat: make(map[string]int),
		ByLocale: make(map[string]int),
	}
}
