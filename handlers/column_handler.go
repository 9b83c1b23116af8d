package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"freightdash/models"
	"freightdash/repository"
	"freightdash/tableview"
)

type ColumnHandler struct {
	Repo repository.ColumnConfigRepository
}

func columnStatus(err error) int {
	switch {
	case errors.Is(err, tableview.ErrColumnNotFound):
		return http.StatusNotFound
	case errors.Is(err, tableview.ErrColumnPinned), errors.Is(err, tableview.ErrColumnLocked):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// GetColumns handler. The mode query parameter selects which layout; empty
// means the shared layout.
func (h *ColumnHandler) GetColumns(w http.ResponseWriter, r *http.Request) {
	mode := r.URL.Query().Get("mode")
	columns, err := h.Repo.Get(mode)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to load column config: " + err.Error(),
		})
		return
	}

	visible := make([]models.TableColumn, 0, len(columns))
	for _, c := range columns {
		if c.Visible {
			visible = append(visible, c)
		}
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Data: map[string]interface{}{
			"columns":       columns,
			"stickyOffsets": tableview.StickyLeftOffsets(visible),
		},
	})
}

// PutColumns handler replaces a mode's full layout after validation.
func (h *ColumnHandler) PutColumns(w http.ResponseWriter, r *http.Request) {
	mode := r.URL.Query().Get("mode")

	var columns []models.TableColumn
	if err := json.NewDecoder(r.Body).Decode(&columns); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}

	if err := tableview.ValidateColumns(columns); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, ApiResponse{
			Success: false,
			Message: "Invalid column layout: " + err.Error(),
		})
		return
	}

	if err := h.Repo.Set(mode, columns); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to save column config: " + err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Column layout saved", Data: columns})
}

// ColumnOpRequest mutates one column in a mode's layout.
type ColumnOpRequest struct {
	Mode     string `json:"mode"`
	ID       string `json:"id"`
	TargetID string `json:"targetId,omitempty"`
	Visible  *bool  `json:"visible,omitempty"`
	Sticky   *bool  `json:"sticky,omitempty"`
}

// MoveColumn handler reorders one column via drag-and-drop semantics.
func (h *ColumnHandler) MoveColumn(w http.ResponseWriter, r *http.Request) {
	var req ColumnOpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}

	columns, err := h.Repo.Get(req.Mode)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to load column config: " + err.Error(),
		})
		return
	}

	moved, err := tableview.MoveColumn(columns, req.ID, req.TargetID)
	if err != nil {
		writeJSON(w, columnStatus(err), ApiResponse{Success: false, Message: err.Error()})
		return
	}

	if err := h.Repo.Set(req.Mode, moved); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to save column config: " + err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: moved})
}

// UpdateColumn handler flips visibility or pinning for one column.
func (h *ColumnHandler) UpdateColumn(w http.ResponseWriter, r *http.Request) {
	var req ColumnOpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}

	columns, err := h.Repo.Get(req.Mode)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to load column config: " + err.Error(),
		})
		return
	}

	if req.Visible != nil {
		columns, err = tableview.SetVisible(columns, req.ID, *req.Visible)
		if err != nil {
			writeJSON(w, columnStatus(err), ApiResponse{Success: false, Message: err.Error()})
			return
		}
	}
	if req.Sticky != nil {
		columns, err = tableview.SetSticky(columns, req.ID, *req.Sticky)
		if err != nil {
			writeJSON(w, columnStatus(err), ApiResponse{Success: false, Message: err.Error()})
			return
		}
	}

	if err := h.Repo.Set(req.Mode, columns); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to save column config: " + err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: columns})
}

// ResetColumns handler restores the default layout for every mode.
func (h *ColumnHandler) ResetColumns(w http.ResponseWriter, r *http.Request) {
	if err := h.Repo.Reset(); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to reset column config: " + err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Column layout reset",
		Data:    models.DefaultColumns(),
	})
}
