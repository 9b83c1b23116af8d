package repository

import (
	"sync"

	"github.com/google/uuid"

	"freightdash/models"
)

// PresetRepository stores named filter snapshots. Presets are created once
// and never mutated.
type PresetRepository interface {
	Save(preset *models.FilterPreset) error
	List() ([]models.FilterPreset, error)
}

// MemoryPresetRepo holds presets for the life of the process, matching the
// session-scoped behavior of the dashboard.
type MemoryPresetRepo struct {
	mu      sync.RWMutex
	presets []models.FilterPreset
}

func NewMemoryPresetRepo() *MemoryPresetRepo {
	return &MemoryPresetRepo{}
}

func (r *MemoryPresetRepo) Save(preset *models.FilterPreset) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if preset.ID == "" {
		preset.ID = uuid.NewString()
	}
	r.presets = append(r.presets, *preset)
	return nil
}

func (r *MemoryPresetRepo) List() ([]models.FilterPreset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.FilterPreset, len(r.presets))
	copy(out, r.presets)
	return out, nil
}
