package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"freightdash/events"
	"freightdash/models"
	"freightdash/repository"
	"freightdash/tableview"
)

type ShipmentHandler struct {
	Repo     repository.ShipmentRepository
	Producer *events.Producer
}

// filtersFromQuery decodes FilterOptions from URL query parameters. List
// fields accept comma-separated values.
func filtersFromQuery(r *http.Request) models.FilterOptions {
	q := r.URL.Query()
	split := func(key string) []string {
		raw := q.Get(key)
		if raw == "" {
			return nil
		}
		parts := strings.Split(raw, ",")
		out := parts[:0]
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out
	}

	f := models.FilterOptions{
		LoadNumber:            q.Get("loadNumber"),
		ShipperZipStart:       q.Get("shipperZipStart"),
		ShipperZipEnd:         q.Get("shipperZipEnd"),
		ConsigneeZipStart:     q.Get("consigneeZipStart"),
		ConsigneeZipEnd:       q.Get("consigneeZipEnd"),
		ShipperCompany:        q.Get("shipperCompany"),
		ConsigneeCompany:      q.Get("consigneeCompany"),
		CarrierName:           q.Get("carrierName"),
		ProNumber:             q.Get("proNumber"),
		PickupNumber:          q.Get("pickupNumber"),
		PONumber:              q.Get("poNumber"),
		ShipperNumber:         q.Get("shipperNumber"),
		PickupDateFrom:        q.Get("pickupDateFrom"),
		PickupDateTo:          q.Get("pickupDateTo"),
		EstimatedDeliveryFrom: q.Get("estimatedDeliveryFrom"),
		EstimatedDeliveryTo:   q.Get("estimatedDeliveryTo"),
		GroupSelection:        split("groupSelection"),
		Regions:               split("regions"),
		CustomerSalesRep:      q.Get("customerSalesRep"),
		CarrierSalesRep:       q.Get("carrierSalesRep"),
		Equipment:             split("equipment"),
	}
	for _, v := range split("shipmentMode") {
		f.ShipmentMode = append(f.ShipmentMode, models.ShipmentMode(v))
	}
	for _, v := range split("shipmentStatus") {
		f.ShipmentStatus = append(f.ShipmentStatus, models.ShipmentStatus(v))
	}
	for _, v := range split("priority") {
		f.Priority = append(f.Priority, models.Priority(v))
	}
	for _, v := range split("appointmentStatus") {
		f.AppointmentStatus = append(f.AppointmentStatus, models.AppointmentStatus(v))
	}
	return f
}

// ListShipments handler. Filters arrive as query parameters.
func (h *ShipmentHandler) ListShipments(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.List(filtersFromQuery(r))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to list shipments: " + err.Error(),
		})
		return
	}
	if list == nil {
		list = []models.Shipment{}
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: list})
}

// GetShipmentByID handler
func (h *ShipmentHandler) GetShipmentByID(w http.ResponseWriter, r *http.Request, id string) {
	s, err := h.Repo.GetByID(id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, ApiResponse{
			Success: false,
			Message: "Shipment not found",
		})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: s})
}

// CreateShipment handler
func (h *ShipmentHandler) CreateShipment(w http.ResponseWriter, r *http.Request) {
	var s models.Shipment
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}

	if err := h.Repo.Create(&s); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to create shipment: " + err.Error(),
		})
		return
	}

	_ = h.Producer.Publish(r.Context(), s.ID, events.ShipmentCreatedEvent{
		ShipmentID: s.ID,
		LoadNumber: s.LoadNumber,
		Customer:   s.Customer,
	})

	writeJSON(w, http.StatusCreated, ApiResponse{
		Success: true,
		Message: "Shipment created",
		Data:    s,
	})
}

// DeleteShipment handler
func (h *ShipmentHandler) DeleteShipment(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "missing shipment id",
		})
		return
	}

	if err := h.Repo.Delete(id); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to delete shipment: " + err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Shipment deleted successfully",
	})
}

// BulkActionRequest asks for one action over a set of selected shipments.
// Status is the target status when the action is a status update.
type BulkActionRequest struct {
	Action      string                `json:"action"`
	ShipmentIDs []string              `json:"shipmentIds"`
	Status      models.ShipmentStatus `json:"status,omitempty"`
}

// BulkAction handler. The eligibility gate runs first: every selected
// shipment must share the same status or the whole request is rejected.
func (h *ShipmentHandler) BulkAction(w http.ResponseWriter, r *http.Request) {
	var req BulkActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}

	all, err := h.Repo.List(models.FilterOptions{})
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to load shipments: " + err.Error(),
		})
		return
	}

	check := tableview.CheckBulkAction(all, req.ShipmentIDs)
	if !check.OK {
		writeJSON(w, http.StatusUnprocessableEntity, ApiResponse{
			Success: false,
			Message: check.Message,
		})
		return
	}

	switch req.Action {
	case "update":
		if req.Status == "" {
			writeJSON(w, http.StatusBadRequest, ApiResponse{
				Success: false,
				Message: "status required for update action",
			})
			return
		}
		if err := h.Repo.BulkUpdateStatus(req.ShipmentIDs, req.Status); err != nil {
			writeJSON(w, http.StatusInternalServerError, ApiResponse{
				Success: false,
				Message: "Failed to update shipments: " + err.Error(),
			})
			return
		}
	case "":
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "action required",
		})
		return
	default:
		// Actions with no server-side effect (export, print) just pass the
		// gate and get acknowledged.
	}

	_ = h.Producer.Publish(r.Context(), req.ShipmentIDs[0], events.BulkActionEvent{
		Action:      req.Action,
		ShipmentIDs: req.ShipmentIDs,
		Status:      string(req.Status),
	})

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Bulk action applied",
		Data: map[string]interface{}{
			"action":   req.Action,
			"count":    len(req.ShipmentIDs),
			"status":   check.Status,
			"actions":  tableview.ActionsForStatus(check.Status),
			"eligible": true,
		},
	})
}
