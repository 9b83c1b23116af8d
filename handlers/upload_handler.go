package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"sync"

	"freightdash/upload"
)

// maxUploadBytes caps spreadsheet uploads at 10 MB.
const maxUploadBytes = 10 << 20

type UploadHandler struct {
	mu             sync.RWMutex
	mappingPresets map[string]upload.Mapping
}

func NewUploadHandler() *UploadHandler {
	return &UploadHandler{mappingPresets: make(map[string]upload.Mapping)}
}

// UploadShipments handler. Multipart form: "file" holds the CSV/XLSX,
// optional "mapping" holds a JSON header-to-field overlay, optional
// "mappingPreset" names a saved overlay. Parsed shipments come back for
// review; nothing is persisted here.
func (h *UploadHandler) UploadShipments(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid multipart form: " + err.Error(),
		})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "missing file",
		})
		return
	}
	defer file.Close()

	mapping := upload.DefaultMapping()
	if name := r.FormValue("mappingPreset"); name != "" {
		h.mu.RLock()
		preset, ok := h.mappingPresets[name]
		h.mu.RUnlock()
		if !ok {
			writeJSON(w, http.StatusNotFound, ApiResponse{
				Success: false,
				Message: "mapping preset not found",
			})
			return
		}
		mapping = mapping.Merge(preset)
	}
	if raw := r.FormValue("mapping"); raw != "" {
		var overlay upload.Mapping
		if err := json.Unmarshal([]byte(raw), &overlay); err != nil {
			writeJSON(w, http.StatusBadRequest, ApiResponse{
				Success: false,
				Message: "invalid mapping json: " + err.Error(),
			})
			return
		}
		mapping = mapping.Merge(overlay)
	}

	var result *upload.Result
	switch strings.ToLower(filepath.Ext(header.Filename)) {
	case ".csv":
		result, err = upload.ParseCSV(file, mapping)
	case ".xlsx":
		var data []byte
		data, err = io.ReadAll(io.LimitReader(file, maxUploadBytes))
		if err == nil {
			result, err = upload.ParseXLSX(data, mapping)
		}
	default:
		writeJSON(w, http.StatusUnsupportedMediaType, ApiResponse{
			Success: false,
			Message: "only .csv and .xlsx files are supported",
		})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, ApiResponse{
			Success: false,
			Message: "Failed to parse file: " + err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: result})
}

// SaveMappingPreset handler stores a named header-to-field overlay.
func (h *UploadHandler) SaveMappingPreset(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name    string         `json:"name"`
		Mapping upload.Mapping `json:"mapping"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}
	if req.Name == "" || len(req.Mapping) == 0 {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "name and mapping are required",
		})
		return
	}

	h.mu.Lock()
	h.mappingPresets[req.Name] = req.Mapping
	h.mu.Unlock()

	writeJSON(w, http.StatusCreated, ApiResponse{Success: true, Message: "Mapping preset saved"})
}

// ListMappingPresets handler
func (h *UploadHandler) ListMappingPresets(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	names := make([]string, 0, len(h.mappingPresets))
	for name := range h.mappingPresets {
		names = append(names, name)
	}
	h.mu.RUnlock()

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: names})
}
