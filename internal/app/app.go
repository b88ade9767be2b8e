// Package app содержит HTTP-обработчики: вебхук Telegram, проверки
// работоспособности, генерацию через HTTP и внутреннюю статистику.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/tempizhere/fakebot/internal/bot"
	"github.com/tempizhere/fakebot/internal/command"
	"github.com/tempizhere/fakebot/internal/middleware"
	"github.com/tempizhere/fakebot/internal/models"
	"github.com/tempizhere/fakebot/internal/service"
)

// HealthMessage возвращается на GET /
const HealthMessage = "🤖 بوت توليد البيانات يعمل!"

// maxUpdateSize ограничивает тело вебхука
const maxUpdateSize = 1 << 20

// Enqueuer принимает обновления на асинхронную обработку
type Enqueuer interface {
	Enqueue(update tgbotapi.Update) error
}

// Pinger проверяет соединение с базой данных
type Pinger interface {
	PingContext(ctx context.Context) error
}

// App содержит хендлеры и зависимости
type App struct {
	svc    *service.Service
	queue  Enqueuer
	db     Pinger
	logger *zap.Logger
}

// NewApp создаёт новое приложение. db может быть nil, если база не настроена.
func NewApp(svc *service.Service, queue Enqueuer, db Pinger, logger *zap.Logger) *App {
	return &App{svc: svc, queue: queue, db: db, logger: logger}
}

// HandleWebhook принимает обновление от Telegram и ставит его в очередь
func (a *App) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	var update tgbotapi.Update
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxUpdateSize)).Decode(&update); err != nil {
		a.logger.Warn("Invalid webhook payload", zap.Error(err))
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if err := a.queue.Enqueue(update); err != nil {
		a.logger.Error("Failed to enqueue update", zap.Int("update_id", update.UpdateID), zap.Error(err))
		// Telegram повторит доставку
		http.Error(w, "Service unavailable", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("OK"))
}

// HandleHealth обрабатывает GET-запросы на "/"
func (a *App) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(HealthMessage))
}

// HandlePing обрабатывает GET-запросы на "/ping"
func (a *App) HandlePing(w http.ResponseWriter, r *http.Request) {
	if a.db != nil {
		if err := a.db.PingContext(r.Context()); err != nil {
			a.logger.Error("Database ping failed", zap.Error(err))
			http.Error(w, "Database connection failed", http.StatusInternalServerError)
			return
		}
	}
	w.WriteHeader(http.StatusOK)
}

// HandlePeople обрабатывает GET /api/people?count=&format=&locale=
func (a *App) HandlePeople(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var args []string
	if v := q.Get("count"); v != "" {
		args = []string{v}
	}

	req, err := command.Parse(args)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if v := q.Get("format"); v != "" {
		if req.Format, err = models.ParseFormat(v); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}
	if v := q.Get("locale"); v != "" {
		if req.Locale, err = models.ParseLocale(v); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	res, err := a.svc.Generate(r.Context(), req, 0, service.SourceHTTP)
	if err != nil {
		a.writeError(w, err)
		return
	}

	w.Header().Set("X-Batch-Count", strconv.Itoa(res.Batch.Count()))
	if req.Clamped {
		w.Header().Set("X-Batch-Clamped", "true")
	}
	w.Header().Set("Content-Type", res.Payload.ContentType)
	if res.Batch.Format.IsFile() {
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", res.Payload.Filename))
	}
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(res.Payload.Bytes()); err != nil {
		a.logger.Warn("Failed to write response", zap.Error(err))
	}
}

// HandleStats обрабатывает GET-запросы на "/api/internal/stats"
func (a *App) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := a.svc.Stats(r.Context())
	if err != nil {
		a.logger.Error("Failed to get stats", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	a.writeJSONResponse(w, http.StatusOK, stats)
}

func (a *App) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidArgument):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		http.Error(w, "Request cancelled", http.StatusServiceUnavailable)
	default:
		a.logger.Error("Failed to generate batch", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// writeJSONResponse пишет JSON-ответ с проверкой ошибок
func (a *App) writeJSONResponse(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "Failed to encode JSON", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		a.logger.Warn("Failed to write response", zap.Error(err))
	}
}

// NewRouter собирает маршруты приложения
func NewRouter(a *App, subnet *middleware.TrustedSubnet, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.LoggingMiddleware(logger))

	r.Get("/", a.HandleHealth)
	r.Get("/ping", a.HandlePing)
	r.Post(bot.WebhookPath, a.HandleWebhook)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.GzipMiddleware)
		r.Get("/people", a.HandlePeople)
		r.With(middleware.TrustedSubnetMiddleware(subnet, logger)).Get("/internal/stats", a.HandleStats)
	})
	return r
}
