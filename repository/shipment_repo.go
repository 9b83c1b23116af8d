package repository

import "freightdash/models"

// ShipmentRepository is the storage seam for shipment records. List applies
// the given filters; implementations may narrow with store-native predicates
// but the filter engine remains the authority on what matches. GetByID
// returns ErrShipmentNotFound for a missing id.
type ShipmentRepository interface {
	List(filters models.FilterOptions) ([]models.Shipment, error)
	GetByID(id string) (*models.Shipment, error)
	Create(s *models.Shipment) error
	Delete(id string) error
	BulkUpdateStatus(ids []string, status models.ShipmentStatus) error
	UpdateDocuments(id string, docs models.Documents) error
}
