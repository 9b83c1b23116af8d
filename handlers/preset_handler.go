package handlers

import (
	"encoding/json"
	"net/http"

	"freightdash/models"
	"freightdash/repository"
)

type PresetHandler struct {
	Repo repository.PresetRepository
}

// SavePreset handler
func (h *PresetHandler) SavePreset(w http.ResponseWriter, r *http.Request) {
	var preset models.FilterPreset
	if err := json.NewDecoder(r.Body).Decode(&preset); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}

	if preset.Name == "" {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Preset name is required",
		})
		return
	}

	if err := h.Repo.Save(&preset); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to save preset: " + err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusCreated, ApiResponse{
		Success: true,
		Message: "Preset saved",
		Data:    preset,
	})
}

// ListPresets handler
func (h *PresetHandler) ListPresets(w http.ResponseWriter, r *http.Request) {
	presets, err := h.Repo.List()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to list presets: " + err.Error(),
		})
		return
	}
	if presets == nil {
		presets = []models.FilterPreset{}
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: presets})
}
