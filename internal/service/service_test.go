package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tempizhere/fakebot/internal/formatter"
	"github.com/tempizhere/fakebot/internal/generator"
	"github.com/tempizhere/fakebot/internal/models"
	"github.com/tempizhere/fakebot/internal/repository"
)

type zeroSource struct{}

func (zeroSource) Intn(int) (int, error) { return 0, nil }

type brokenSource struct{}

func (brokenSource) Intn(int) (int, error) { return 0, errors.New("entropy exhausted") }

var fixedTime = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

func newTestService(t *testing.T, src generator.Source, repo repository.UsageRepository) *Service {
	t.Helper()
	s := NewService(generator.New(generator.WithSource(src)), formatter.New(), repo, zap.NewNop())
	s.now = func() time.Time { return fixedTime }
	return s
}

func TestService_Generate(t *testing.T) {
	tests := []struct {
		name      string
		req       models.Request
		wantCount int
		wantFile  bool
	}{
		{
			name:      "Text Arabic",
			req:       models.Request{Count: 3, Format: models.FormatText, Locale: models.LocaleArabic},
			wantCount: 3,
		},
		{
			name:      "JSON English",
			req:       models.Request{Count: 2, Format: models.FormatJSON, Locale: models.LocaleEnglish},
			wantCount: 2,
			wantFile:  true,
		},
		{
			name:      "CSV clamped",
			req:       models.Request{Count: 150, Format: models.FormatCSV, Locale: models.LocaleArabic},
			wantCount: 100,
			wantFile:  true,
		},
		{
			name:      "Zero count",
			req:       models.Request{Count: 0, Format: models.FormatJSON, Locale: models.LocaleEnglish},
			wantCount: 0,
			wantFile:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := repository.NewMockUsageRepository(ctrl)
			repo.EXPECT().Record(gomock.Any(), models.Usage{
				ChatID:    7,
				Source:    SourceTelegram,
				Count:     tt.wantCount,
				Format:    tt.req.Format,
				Locale:    tt.req.Locale,
				CreatedAt: fixedTime,
			}).Return(nil)

			s := newTestService(t, zeroSource{}, repo)
			res, err := s.Generate(context.Background(), tt.req, 7, SourceTelegram)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCount, res.Batch.Count())
			assert.Equal(t, fixedTime, res.Batch.GeneratedAt)
			if tt.wantFile {
				assert.NotEmpty(t, res.Payload.Data)
				assert.Equal(t, formatter.Filename(res.Batch), res.Payload.Filename)
			} else {
				assert.NotEmpty(t, res.Payload.Text)
				assert.Nil(t, res.Payload.Data)
			}
		})
	}
}

func TestService_Generate_RecordFailureIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repository.NewMockUsageRepository(ctrl)
	repo.EXPECT().Record(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	s := newTestService(t, zeroSource{}, repo)
	res, err := s.Generate(context.Background(), models.Request{Count: 1, Format: models.FormatText, Locale: models.LocaleEnglish}, 0, SourceHTTP)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Batch.Count())
}

func TestService_Generate_Errors(t *testing.T) {
	t.Run("Invalid locale", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := repository.NewMockUsageRepository(ctrl)
		s := newTestService(t, zeroSource{}, repo)

		_, err := s.Generate(context.Background(), models.Request{Count: 1, Format: models.FormatText, Locale: "fr"}, 0, SourceHTTP)
		assert.ErrorIs(t, err, models.ErrInvalidArgument)
	})

	t.Run("Invalid format", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := repository.NewMockUsageRepository(ctrl)
		s := newTestService(t, zeroSource{}, repo)

		_, err := s.Generate(context.Background(), models.Request{Count: 1, Format: "xml", Locale: models.LocaleArabic}, 0, SourceHTTP)
		assert.ErrorIs(t, err, models.ErrInvalidArgument)
	})

	t.Run("Source failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := repository.NewMockUsageRepository(ctrl)
		s := newTestService(t, brokenSource{}, repo)

		_, err := s.Generate(context.Background(), models.Request{Count: 2, Format: models.FormatText, Locale: models.LocaleArabic}, 0, SourceHTTP)
		assert.ErrorIs(t, err, models.ErrGeneration)
	})

	t.Run("Cancelled context", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := repository.NewMockUsageRepository(ctrl)
		s := newTestService(t, zeroSource{}, repo)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := s.Generate(ctx, models.Request{Count: 2, Format: models.FormatText, Locale: models.LocaleArabic}, 0, SourceHTTP)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestService_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repository.NewMockUsageRepository(ctrl)
	want := models.Stats{Requests: 2, People: 10, ByFormat: map[string]int{"csv": 2}, ByLocale: map[string]int{"en": 2}}
	repo.EXPECT().Stats(gomock.Any()).Return(want, nil)

	s := newTestService(t, zeroSource{}, repo)
	got, err := s.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestService_WithoutRepository(t *testing.T) {
	s := newTestService(t, zeroSource{}, nil)

	_, err := s.Generate(context.Background(), models.Request{Count: 1, Format: models.FormatText, Locale: models.LocaleArabic}, 0, SourceGRPC)
	require.NoError(t, err)

	stats, err := s.Stats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.Requests)
	assert.NotNil(t, stats.ByFormat)
}
