package repository

import (
	"sync"

	"freightdash/models"
)

// ColumnModeAll is the shared layout; each shipment mode can also carry its
// own column arrangement.
const ColumnModeAll = "All"

// ColumnConfigRepository stores per-mode column layouts.
type ColumnConfigRepository interface {
	Get(mode string) ([]models.TableColumn, error)
	Set(mode string, columns []models.TableColumn) error
	Reset() error
}

// MemoryColumnRepo keeps one layout per mode, falling back to the default
// layout for modes never customized.
type MemoryColumnRepo struct {
	mu      sync.RWMutex
	configs map[string][]models.TableColumn
}

func NewMemoryColumnRepo() *MemoryColumnRepo {
	return &MemoryColumnRepo{configs: make(map[string][]models.TableColumn)}
}

func (r *MemoryColumnRepo) Get(mode string) ([]models.TableColumn, error) {
	if mode == "" {
		mode = ColumnModeAll
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if cols, ok := r.configs[mode]; ok {
		out := make([]models.TableColumn, len(cols))
		copy(out, cols)
		return out, nil
	}
	return models.DefaultColumns(), nil
}

func (r *MemoryColumnRepo) Set(mode string, columns []models.TableColumn) error {
	if mode == "" {
		mode = ColumnModeAll
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.TableColumn, len(columns))
	copy(out, columns)
	r.configs[mode] = out
	return nil
}

func (r *MemoryColumnRepo) Reset() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.configs = make(map[string][]models.TableColumn)
	return nil
}
