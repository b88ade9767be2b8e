package bot

import (
	"context"
	"errors"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// ErrQueueFull возвращается, когда очередь обновлений заполнена
var ErrQueueFull = errors.New("update queue is full")

// ErrStopped возвращается после остановки диспетчера
var ErrStopped = errors.New("dispatcher stopped")

// UpdateHandler обрабатывает одно обновление
type UpdateHandler interface {
	HandleUpdate(ctx context.Context, update tgbotapi.Update)
}

// Dispatcher раздаёт обновления ограниченному числу воркеров
type Dispatcher struct {
	handler UpdateHandler
	timeout time.Duration
	logger  *zap.Logger

	queue   chan tgbotapi.Update
	mu      sync.RWMutex
	stopped bool
	wg      sync.WaitGroup
}

// NewDispatcher запускает workers воркеров. Каждое обновление обрабатывается
// с таймаутом timeout, отсчитываемым от ctx.
func NewDispatcher(ctx context.Context, handler UpdateHandler, workers int, timeout time.Duration, logger *zap.Logger) *Dispatcher {
	if workers < 1 {
		workers = 1
	}
	d := &Dispatcher{
		handler: handler,
		timeout: timeout,
		logger:  logger,
		queue:   make(chan tgbotapi.Update, workers*16),
	}
	for i := 0; i < workers; i++ {
		d.wg.Add(1)
		go d.worker(ctx)
	}
	return d
}

// Enqueue ставит обновление в очередь без блокировки
func (d *Dispatcher) Enqueue(update tgbotapi.Update) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.stopped {
		return ErrStopped
	}
	select {
	case d.queue <- update:
		return nil
	default:
		return ErrQueueFull
	}
}

// Stop закрывает очередь и ждёт обработки оставшихся обновлений
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if !d.stopped {
		d.stopped = true
		close(d.queue)
	}
	d.mu.Unlock()

	d.wg.Wait()
}

func (d *Dispatcher) worker(ctx context.Context) {
	defer d.wg.Done()
	for update := range d.queue {
		d.handle(ctx, update)
	}
}

func (d *Dispatcher) handle(ctx context.Context, update tgbotapi.Update) {
	// контекст сервера мог уже завершиться, но принятые обновления всё равно обрабатываем
	reqCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.timeout)
	defer cancel()

	start := time.Now()
	d.handler.HandleUpdate(reqCtx, update)
	d.logger.Debug("Update handled",
		zap.Int("update_id", update.UpdateID),
		zap.Duration("duration", time.Since(start)))
}
