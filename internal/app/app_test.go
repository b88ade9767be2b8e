package app

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tempizhere/fakebot/internal/bot"
	"github.com/tempizhere/fakebot/internal/formatter"
	"github.com/tempizhere/fakebot/internal/generator"
	"github.com/tempizhere/fakebot/internal/middleware"
	"github.com/tempizhere/fakebot/internal/models"
	"github.com/tempizhere/fakebot/internal/repository"
	"github.com/tempizhere/fakebot/internal/service"
)

type fakeQueue struct {
	updates []tgbotapi.Update
	err     error
}

func (q *fakeQueue) Enqueue(u tgbotapi.Update) error {
	if q.err != nil {
		return q.err
	}
	q.updates = append(q.updates, u)
	return nil
}

type brokenSource struct{}

func (brokenSource) Intn(int) (int, error) { return 0, errors.New("no entropy") }

type testEnv struct {
	router http.Handler
	queue  *fakeQueue
	repo   *repository.MemoryRepository
}

func newTestEnv(t *testing.T, db Pinger, opts ...generator.Option) *testEnv {
	t.Helper()
	repo := repository.NewMemoryRepository()
	svc := service.NewService(generator.New(opts...), formatter.New(), repo, zap.NewNop())
	queue := &fakeQueue{}
	subnet, err := middleware.ParseTrustedSubnet("10.0.0.0/8")
	require.NoError(t, err)

	a := NewApp(svc, queue, db, zap.NewNop())
	return &testEnv{router: NewRouter(a, subnet, zap.NewNop()), queue: queue, repo: repo}
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func TestHandleWebhook(t *testing.T) {
	t.Run("Valid update", func(t *testing.T) {
		env := newTestEnv(t, nil)
		body := `{"update_id":10,"message":{"message_id":1,"date":0,"chat":{"id":42,"type":"private"},"text":"/fake 3","entities":[{"type":"bot_command","offset":0,"length":5}]}}`

		w := env.do(httptest.NewRequest(http.MethodPost, bot.WebhookPath, strings.NewReader(body)))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "OK", w.Body.String())
		require.Len(t, env.queue.updates, 1)
		u := env.queue.updates[0]
		assert.Equal(t, 10, u.UpdateID)
		require.NotNil(t, u.Message)
		assert.Equal(t, int64(42), u.Message.Chat.ID)
		assert.Equal(t, "fake", u.Message.Command())
		assert.Equal(t, "3", u.Message.CommandArguments())
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		env := newTestEnv(t, nil)
		w := env.do(httptest.NewRequest(http.MethodPost, bot.WebhookPath, strings.NewReader("{")))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, env.queue.updates)
	})

	t.Run("Queue full", func(t *testing.T) {
		env := newTestEnv(t, nil)
		env.queue.err = bot.ErrQueueFull
		w := env.do(httptest.NewRequest(http.MethodPost, bot.WebhookPath, strings.NewReader(`{"update_id":1}`)))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("Wrong method", func(t *testing.T) {
		env := newTestEnv(t, nil)
		w := env.do(httptest.NewRequest(http.MethodGet, bot.WebhookPath, nil))

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})
}

func TestHandleHealth(t *testing.T) {
	env := newTestEnv(t, nil)
	w := env.do(httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, HealthMessage, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestHandlePing(t *testing.T) {
	tests := []struct {
		name           string
		dbSetup        func(*gomock.Controller) Pinger
		expectedStatus int
	}{
		{
			name: "Ping success",
			dbSetup: func(ctrl *gomock.Controller) Pinger {
				mockDB := repository.NewMockDatabase(ctrl)
				mockDB.EXPECT().PingContext(gomock.Any()).Return(nil)
				return mockDB
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Ping failure",
			dbSetup: func(ctrl *gomock.Controller) Pinger {
				mockDB := repository.NewMockDatabase(ctrl)
				mockDB.EXPECT().PingContext(gomock.Any()).Return(errors.New("connection failed"))
				return mockDB
			},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "No database",
			dbSetup:        func(*gomock.Controller) Pinger { return nil },
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			env := newTestEnv(t, tt.dbSetup(ctrl))

			w := env.do(httptest.NewRequest(http.MethodGet, "/ping", nil))
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestHandlePeople(t *testing.T) {
	t.Run("Default text Arabic", func(t *testing.T) {
		env := newTestEnv(t, nil)
		w := env.do(httptest.NewRequest(http.MethodGet, "/api/people?count=2", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Empty(t, w.Header().Get("Content-Disposition"))
		assert.Contains(t, w.Body.String(), "1. ")
		assert.Contains(t, w.Body.String(), "2. ")
	})

	t.Run("JSON English attachment", func(t *testing.T) {
		env := newTestEnv(t, nil)
		w := env.do(httptest.NewRequest(http.MethodGet, "/api/people?count=3&format=JSON&locale=en", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, `attachment; filename="fake_people_3_en.json"`, w.Header().Get("Content-Disposition"))

		var doc formatter.Document
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
		assert.Equal(t, 3, doc.Count)
		assert.Equal(t, models.LocaleEnglish, doc.Language)
		assert.Len(t, doc.People, 3)
	})

	t.Run("CSV clamped", func(t *testing.T) {
		env := newTestEnv(t, nil)
		w := env.do(httptest.NewRequest(http.MethodGet, "/api/people?count=500&format=csv", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "true", w.Header().Get("X-Batch-Clamped"))
		assert.Equal(t, "100", w.Header().Get("X-Batch-Count"))

		rows, err := csv.NewReader(bytes.NewReader(w.Body.Bytes())).ReadAll()
		require.NoError(t, err)
		assert.Len(t, rows, 101)
	})

	t.Run("Negative count gives empty CSV", func(t *testing.T) {
		env := newTestEnv(t, nil)
		w := env.do(httptest.NewRequest(http.MethodGet, "/api/people?count=-1&format=csv", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "0", w.Header().Get("X-Batch-Count"))
		assert.Empty(t, w.Header().Get("X-Batch-Clamped"))
		assert.Equal(t, "id,full_name,gender,age,email,phone,job,city,address\n", w.Body.String())
	})

	t.Run("Gzip", func(t *testing.T) {
		env := newTestEnv(t, nil)
		req := httptest.NewRequest(http.MethodGet, "/api/people?count=10&format=json", nil)
		req.Header.Set("Accept-Encoding", "gzip")
		w := env.do(req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))
	})

	t.Run("Usage recorded", func(t *testing.T) {
		env := newTestEnv(t, nil)
		env.do(httptest.NewRequest(http.MethodGet, "/api/people?count=4&format=csv&locale=en", nil))

		stats, err := env.repo.Stats(t.Context())
		require.NoError(t, err)
		assert.Equal(t, 1, stats.Requests)
		assert.Equal(t, 4, stats.People)
		assert.Equal(t, 1, stats.ByFormat["csv"])
	})

	badRequests := []struct {
		name  string
		query string
	}{
		{"Missing count", "/api/people"},
		{"Invalid count", "/api/people?count=abc"},
		{"Unknown format", "/api/people?count=1&format=xml"},
		{"Unknown locale", "/api/people?count=1&locale=fr"},
	}
	for _, tt := range badRequests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, nil)
			w := env.do(httptest.NewRequest(http.MethodGet, tt.query, nil))
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}

	t.Run("Generation failure", func(t *testing.T) {
		env := newTestEnv(t, nil, generator.WithSource(brokenSource{}))
		w := env.do(httptest.NewRequest(http.MethodGet, "/api/people?count=1", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestHandleStats(t *testing.T) {
	env := newTestEnv(t, nil)
	env.do(httptest.NewRequest(http.MethodGet, "/api/people?count=2&format=json", nil))

	t.Run("Trusted", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/internal/stats", nil)
		req.Header.Set(middleware.RealIPHeader, "10.1.1.1")
		w := env.do(req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

		var stats models.Stats
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
		assert.Equal(t, 1, stats.Requests)
		assert.Equal(t, 2, stats.People)
		assert.Equal(t, map[string]int{"json": 1}, stats.ByFormat)
	})

	t.Run("Untrusted", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/internal/stats", nil)
		req.Header.Set(middleware.RealIPHeader, "192.168.1.1")
		w := env.do(req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
