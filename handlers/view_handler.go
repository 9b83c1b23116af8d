package handlers

import (
	"encoding/json"
	"net/http"

	"freightdash/models"
	"freightdash/repository"
	"freightdash/tableview"
)

type ViewHandler struct {
	Repo    repository.ShipmentRepository
	Columns repository.ColumnConfigRepository
}

// ViewRequest describes one composed table render: the filter set, the sort,
// the per-column free-text filters, and which mode's column layout to use.
type ViewRequest struct {
	Filters       models.FilterOptions    `json:"filters"`
	SortKey       string                  `json:"sortKey"`
	SortDirection tableview.SortDirection `json:"sortDirection"`
	ColumnFilters map[string]string       `json:"columnFilters"`
	Mode          string                  `json:"mode"`
}

// ViewResponse carries the composed rows plus everything the table needs to
// render its header: visible columns, their sticky offsets, and the action
// list per row status.
type ViewResponse struct {
	Rows           []models.Shipment    `json:"rows"`
	VisibleColumns []models.TableColumn `json:"visibleColumns"`
	StickyOffsets  []int                `json:"stickyOffsets"`
	RowActions     map[string][]string  `json:"rowActions"`
	TotalCount     int                  `json:"totalCount"`
}

// ComposeView handler. POST only: the filter payload is too rich for query
// parameters.
func (h *ViewHandler) ComposeView(w http.ResponseWriter, r *http.Request) {
	var req ViewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}

	if req.SortKey == "" {
		req.SortKey = tableview.DefaultSortKey
	}
	if req.SortDirection == "" {
		req.SortDirection = tableview.Ascending
	}

	shipments, err := h.Repo.List(req.Filters)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to list shipments: " + err.Error(),
		})
		return
	}

	columns, err := h.Columns.Get(req.Mode)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to load column config: " + err.Error(),
		})
		return
	}

	view := tableview.Compose(shipments, req.SortKey, req.SortDirection, req.ColumnFilters, columns)

	rowActions := make(map[string][]string)
	for _, row := range view.Rows {
		if _, ok := rowActions[string(row.Status)]; !ok {
			rowActions[string(row.Status)] = tableview.ActionsForStatus(row.Status)
		}
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Data: ViewResponse{
			Rows:           view.Rows,
			VisibleColumns: view.VisibleColumns,
			StickyOffsets:  tableview.StickyLeftOffsets(view.VisibleColumns),
			RowActions:     rowActions,
			TotalCount:     len(view.Rows),
		},
	})
}
