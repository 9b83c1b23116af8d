package handlers

import (
	"io"
	"net/http"
	"strings"

	"freightdash/models"
	"freightdash/repository"
	"freightdash/utils"
)

type DocumentHandler struct {
	Repo repository.ShipmentRepository
}

func docSlot(docs *models.Documents, docType string) *string {
	switch strings.ToLower(docType) {
	case "bol":
		return &docs.BOL
	case "pod":
		return &docs.POD
	case "invoice":
		return &docs.Invoice
	default:
		return nil
	}
}

// UploadDocument handler. Multipart form: "file" plus "type" (bol, pod or
// invoice). The file lands in R2 and its URL is stored on the shipment.
func (h *DocumentHandler) UploadDocument(w http.ResponseWriter, r *http.Request, shipmentID string) {
	shipment, err := h.Repo.GetByID(shipmentID)
	if err != nil {
		writeJSON(w, http.StatusNotFound, ApiResponse{
			Success: false,
			Message: "Shipment not found",
		})
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid multipart form: " + err.Error(),
		})
		return
	}

	docs := shipment.Documents
	slot := docSlot(&docs, r.FormValue("type"))
	if slot == nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "type must be bol, pod or invoice",
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

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to read file: " + err.Error(),
		})
		return
	}

	fileURL, err := utils.UploadToR2(data, shipmentID, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to store document: " + err.Error(),
		})
		return
	}

	*slot = fileURL
	if err := h.Repo.UpdateDocuments(shipmentID, docs); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to update shipment: " + err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusCreated, ApiResponse{
		Success: true,
		Message: "Document uploaded",
		Data:    docs,
	})
}

// DeleteDocument handler removes one document type from a shipment and from
// R2.
func (h *DocumentHandler) DeleteDocument(w http.ResponseWriter, r *http.Request, shipmentID string) {
	shipment, err := h.Repo.GetByID(shipmentID)
	if err != nil {
		writeJSON(w, http.StatusNotFound, ApiResponse{
			Success: false,
			Message: "Shipment not found",
		})
		return
	}

	docs := shipment.Documents
	slot := docSlot(&docs, r.URL.Query().Get("type"))
	if slot == nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "type must be bol, pod or invoice",
		})
		return
	}
	if *slot == "" {
		writeJSON(w, http.StatusNotFound, ApiResponse{
			Success: false,
			Message: "no such document on this shipment",
		})
		return
	}

	if err := utils.DeleteFromR2(*slot); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to delete document: " + err.Error(),
		})
		return
	}

	*slot = ""
	if err := h.Repo.UpdateDocuments(shipmentID, docs); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to update shipment: " + err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Document deleted",
		Data:    docs,
	})
}

// GenerateBOL handler renders the shipment's bill of lading as a PDF, stores
// it in R2 and returns the bytes inline.
func (h *DocumentHandler) GenerateBOL(w http.ResponseWriter, r *http.Request, shipmentID string) {
	shipment, err := h.Repo.GetByID(shipmentID)
	if err != nil {
		writeJSON(w, http.StatusNotFound, ApiResponse{
			Success: false,
			Message: "Shipment not found",
		})
		return
	}

	pdfBytes, err := utils.GenerateBOLPDF(shipment)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to generate PDF: " + err.Error(),
		})
		return
	}

	// Best effort: keep serving the PDF even if R2 is unreachable.
	if fileURL, err := utils.UploadToR2(pdfBytes, shipmentID, "bol.pdf", "application/pdf"); err == nil {
		docs := shipment.Documents
		docs.BOL = fileURL
		_ = h.Repo.UpdateDocuments(shipmentID, docs)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `inline; filename="bol.pdf"`)
	_, _ = w.Write(pdfBytes)
}
