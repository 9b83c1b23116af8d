package repository

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"freightdash/filter"
	"freightdash/models"
)

var ErrShipmentNotFound = errors.New("shipment not found")

// MemoryShipmentRepo keeps shipments in process memory. It is the default
// store, seeded from the mock dataset, and the reference implementation the
// persistent stores are tested against.
type MemoryShipmentRepo struct {
	mu        sync.RWMutex
	shipments []models.Shipment
}

func NewMemoryShipmentRepo(seed []models.Shipment) *MemoryShipmentRepo {
	out := make([]models.Shipment, len(seed))
	copy(out, seed)
	return &MemoryShipmentRepo{shipments: out}
}

func (r *MemoryShipmentRepo) List(filters models.FilterOptions) ([]models.Shipment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return filter.Shipments(r.shipments, filters), nil
}

func (r *MemoryShipmentRepo) GetByID(id string) (*models.Shipment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.shipments {
		if r.shipments[i].ID == id {
			s := r.shipments[i]
			return &s, nil
		}
	}
	return nil, ErrShipmentNotFound
}

func (r *MemoryShipmentRepo) Create(s *models.Shipment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.LoadNumber == 0 {
		max := 2024000
		for _, existing := range r.shipments {
			if existing.LoadNumber > max {
				max = existing.LoadNumber
			}
		}
		s.LoadNumber = max + 1
	}
	r.shipments = append(r.shipments, *s)
	return nil
}

func (r *MemoryShipmentRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.shipments {
		if r.shipments[i].ID == id {
			r.shipments = append(r.shipments[:i], r.shipments[i+1:]...)
			return nil
		}
	}
	return ErrShipmentNotFound
}

func (r *MemoryShipmentRepo) BulkUpdateStatus(ids []string, status models.ShipmentStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	for i := range r.shipments {
		if want[r.shipments[i].ID] {
			r.shipments[i].Status = status
		}
	}
	return nil
}

func (r *MemoryShipmentRepo) UpdateDocuments(id string, docs models.Documents) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.shipments {
		if r.shipments[i].ID == id {
			r.shipments[i].Documents = docs
			return nil
		}
	}
	return ErrShipmentNotFound
}
