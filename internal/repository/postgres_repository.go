package repository

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/tempizhere/fakebot/internal/models"
)

// PostgresRepository хранит статистику в таблице usage_log
type PostgresRepository struct {
	db     Database
	logger *zap.Logger
}

// NewPostgresRepository создаёт новый экземпляр PostgresRepository
func NewPostgresRepository(db Database, logger *zap.Logger) (*PostgresRepository, error) {
	if db == nil {
		return nil, errors.New("postgres repository: nil database")
	}
	return &PostgresRepository{
		db:     db,
		logger: logger,
	}, nil
}

// Record добавляет строку в usage_log
func (r *PostgresRepository) Record(ctx context.Context, u models.Usage) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO usage_log (chat_id, source, count, format, locale, created_at) VALUES ($1, $2, $3, $4, $5, $6)",
		u.ChatID, u.Source, u.Count, u.Format.String(), u.Locale.String(), u.CreatedAt)
	if err != nil {
		r.logger.Error("Failed to record usage", zap.Int64("chat_id", u.ChatID), zap.Error(err))
		return fmt.Errorf("record usage: %w", err)
	}
	return nil
}

// Stats агрегирует usage_log
func (r *PostgresRepository) Stats(ctx context.Context) (models.Stats, error) {
	stats := newStats()

	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*), COALESCE(SUM(count), 0) FROM usage_log").
		Scan(&stats.Requests, &stats.People)
	if err != nil {
		r.logger.Error("Failed to get usage totals", zap.Error(err))
		return models.Stats{}, fmt.Errorf("usage totals: %w", err)
	}

	if err := r.groupBy(ctx, "format", stats.ByFormat); err != nil {
		return models.Stats{}, err
	}
	if err := r.groupBy(ctx, "locale", stats.ByLocale); err != nil {
		return models.Stats{}, err
	}
	return stats, nil
}

// groupBy считает строки по значениям колонки; column не приходит от пользователя
func (r *PostgresRepository) groupBy(ctx context.Context, column string, into map[string]int) error {
	rows, err := r.db.QueryContext(ctx, "SELECT "+column+", COUNT(*) FROM usage_log GROUP BY "+column)
	if err != nil {
		r.logger.Error("Failed to group usage", zap.String("column", column), zap.Error(err))
		return fmt.Errorf("usage by %s: %w", column, err)
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var n int
		if err := rows.Scan(&key, &n); err != nil {
			return fmt.Errorf("scan usage by %s: %w", column, err)
		}
		into[key] = n
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("usage by %s: %w", column, err)
	}
	return nil
}
