package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tempizhere/fakebot/internal/models"
)

func newMockRepo(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo, err := NewPostgresRepository(db, zap.NewNop())
	require.NoError(t, err)
	return repo, mock
}

func TestNewPostgresRepository_NilDB(t *testing.T) {
	repo, err := NewPostgresRepository(nil, zap.NewNop())
	assert.Error(t, err)
	assert.Nil(t, repo)
}

func TestPostgresRepository_Record(t *testing.T) {
	insert := regexp.QuoteMeta("INSERT INTO usage_log (chat_id, source, count, format, locale, created_at) VALUES ($1, $2, $3, $4, $5, $6)")
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	usage := models.Usage{
		ChatID:    42,
		Source:    "telegram",
		Count:     5,
		Format:    models.FormatCSV,
		Locale:    models.LocaleEnglish,
		CreatedAt: now,
	}

	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr bool
	}{
		{
			name: "Record success",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(insert).
					WithArgs(int64(42), "telegram", 5, "csv", "en", now).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
		},
		{
			name: "Record error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(insert).
					WithArgs(int64(42), "telegram", 5, "csv", "en", now).
					WillReturnError(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepo(t)
			tt.setup(mock)

			err := repo.Record(context.Background(), usage)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostgresRepository_Stats(t *testing.T) {
	totals := regexp.QuoteMeta("SELECT COUNT(*), COALESCE(SUM(count), 0) FROM usage_log")
	byFormat := regexp.QuoteMeta("SELECT format, COUNT(*) FROM usage_log GROUP BY format")
	byLocale := regexp.QuoteMeta("SELECT locale, COUNT(*) FROM usage_log GROUP BY locale")

	t.Run("Stats success", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery(totals).
			WillReturnRows(sqlmock.NewRows([]string{"count", "sum"}).AddRow(3, 25))
		mock.ExpectQuery(byFormat).
			WillReturnRows(sqlmock.NewRows([]string{"format", "count"}).AddRow("text", 2).AddRow("json", 1))
		mock.ExpectQuery(byLocale).
			WillReturnRows(sqlmock.NewRows([]string{"locale", "count"}).AddRow("ar", 3))

		stats, err := repo.Stats(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 3, stats.Requests)
		assert.Equal(t, 25, stats.People)
		assert.Equal(t, map[string]int{"text": 2, "json": 1}, stats.ByFormat)
		assert.Equal(t, map[string]int{"ar": 3}, stats.ByLocale)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Totals error", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery(totals).WillReturnError(errors.New("db error"))

		_, err := repo.Stats(context.Background())
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Group error", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery(totals).
			WillReturnRows(sqlmock.NewRows([]string{"count", "sum"}).AddRow(0, 0))
		mock.ExpectQuery(byFormat).WillReturnError(errors.New("db error"))

		_, err := repo.Stats(context.Background())
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty table", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery(totals).
			WillReturnRows(sqlmock.NewRows([]string{"count", "sum"}).AddRow(0, 0))
		mock.ExpectQuery(byFormat).
			WillReturnRows(sqlmock.NewRows([]string{"format", "count"}))
		mock.ExpectQuery(byLocale).
			WillReturnRows(sqlmock.NewRows([]string{"locale", "count"}))

		stats, err := repo.Stats(context.Background())
		require.NoError(t, err)
		assert.Zero(t, stats.Requests)
		assert.NotNil(t, stats.ByFormat)
		assert.Empty(t, stats.ByLocale)
	})
}
