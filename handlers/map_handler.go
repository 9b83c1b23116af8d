package handlers

import (
	"net/http"
	"strconv"

	"freightdash/geo"
	"freightdash/repository"
)

type MapHandler struct {
	Repo repository.ShipmentRepository
}

// MapShipments handler plots the filtered shipment set. The zoom query
// parameter controls clustering; past zoom 5 every location stands alone.
func (h *MapHandler) MapShipments(w http.ResponseWriter, r *http.Request) {
	zoom := 4
	if raw := r.URL.Query().Get("zoom"); raw != "" {
		z, err := strconv.Atoi(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ApiResponse{
				Success: false,
				Message: "invalid zoom",
			})
			return
		}
		zoom = z
	}

	shipments, err := h.Repo.List(filtersFromQuery(r))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to list shipments: " + err.Error(),
		})
		return
	}

	locations := geo.Locations(shipments)
	clusters := geo.Clusters(locations, zoom)

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Data: map[string]interface{}{
			"zoom":     zoom,
			"clusters": clusters,
		},
	})
}
