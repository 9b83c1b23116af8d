package handlers

import (
	"net/http"

	"freightdash/models"
	"freightdash/repository"
)

type TrackingHandler struct {
	Repo repository.ShipmentRepository

	// PublicBase prefixes the shareable tracking link, e.g. https://host.
	PublicBase string
}

// Milestone is one step of the tracking timeline.
type Milestone struct {
	Label     string `json:"label"`
	Completed bool   `json:"completed"`
	Current   bool   `json:"current"`
}

// milestoneIndex places a status on the four-step timeline. Statuses before
// pickup map to step 0, in-motion statuses to step 2, terminal delivery to
// step 3. Exception statuses stay at the last step reached.
func milestoneIndex(status models.ShipmentStatus) int {
	switch status {
	case models.StatusQuoted, models.StatusTendered, models.StatusBooked:
		return 0
	case models.StatusDispatched, models.StatusLoading:
		return 1
	case models.StatusInTransit, models.StatusOutForDelivery, models.StatusLoadingUnloading,
		models.StatusUnloading, models.StatusHold, models.StatusRefusedDelivery,
		models.StatusMissedDelivery, models.StatusInDisposition, models.StatusDispositioned:
		return 2
	case models.StatusDelivered, models.StatusDeliveredOSD, models.StatusCompleted:
		return 3
	default:
		return 0
	}
}

// Timeline builds the placeholder milestone view for a shipment.
func Timeline(s *models.Shipment) []Milestone {
	labels := []string{"Booked", "Dispatched", "In Transit", "Delivered"}
	idx := milestoneIndex(s.Status)
	out := make([]Milestone, len(labels))
	for i, label := range labels {
		out[i] = Milestone{
			Label:     label,
			Completed: i < idx,
			Current:   i == idx,
		}
	}
	return out
}

func (h *TrackingHandler) trackingPayload(s *models.Shipment) map[string]interface{} {
	return map[string]interface{}{
		"shipmentId":        s.ID,
		"loadNumber":        s.LoadNumber,
		"status":            s.Status,
		"milestones":        Timeline(s),
		"lastTrackingNote":  s.LastTrackingNote,
		"estimatedDelivery": s.EstimatedDelivery,
		"publicLink":        h.PublicBase + "/track/" + s.ID,
	}
}

// GetTracking handler returns the milestone timeline for operators.
func (h *TrackingHandler) GetTracking(w http.ResponseWriter, r *http.Request, shipmentID string) {
	s, err := h.Repo.GetByID(shipmentID)
	if err != nil {
		writeJSON(w, http.StatusNotFound, ApiResponse{
			Success: false,
			Message: "Shipment not found",
		})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: h.trackingPayload(s)})
}

// PublicTrack handler is the unauthenticated customer-facing view. It leaks
// no rates or internal notes, only the timeline.
func (h *TrackingHandler) PublicTrack(w http.ResponseWriter, r *http.Request, shipmentID string) {
	s, err := h.Repo.GetByID(shipmentID)
	if err != nil {
		writeJSON(w, http.StatusNotFound, ApiResponse{
			Success: false,
			Message: "Shipment not found",
		})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Data: map[string]interface{}{
			"loadNumber":        s.LoadNumber,
			"status":            s.Status,
			"milestones":        Timeline(s),
			"estimatedDelivery": s.EstimatedDelivery,
		},
	})
}
