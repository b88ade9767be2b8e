package repository

import (
	"context"
	"sync"

	"github.com/tempizhere/fakebot/internal/models"
)

// MemoryRepository хранит статистику в памяти процесса
type MemoryRepository struct {
	mu    sync.RWMutex
	stats models.Stats
}

// NewMemoryRepository создаёт новый экземпляр MemoryRepository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{stats: newStats()}
}

// Record учитывает выполненный запрос
func (r *MemoryRepository) Record(_ context.Context, u models.Usage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stats.Requests++
	r.stats.People += u.Count
	r.stats.ByFormat[u.Format.String()]++
	r.stats.ByLocale[u.Locale.String()]++
	return nil
}

// Stats возвращает копию накопленной статистики
func (r *MemoryRepository) Stats(_ context.Context) (models.Stats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := newStats()
	out.Requests = r.stats.Requests
	out.People = r.stats.People
	for k, v := range r.stats.ByFormat {
		out.ByFormat[k] = v
	}
	for k, v := range r.stats.ByLocale {
		out.ByLocale[k] = v
	}
	return out, nil
}

// Clear сбрасывает статистику
func (r *MemoryRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stats = newStats()
}
