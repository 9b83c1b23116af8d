package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/xuri/excelize/v2"

	"freightdash/repository"
	"freightdash/tableview"
)

type ExportHandler struct {
	Repo    repository.ShipmentRepository
	Columns repository.ColumnConfigRepository
}

// ExportShipments handler writes the current composed view as an XLSX
// workbook. The same query parameters as GET /shipments select the rows;
// sortKey, sortDirection and mode shape the sheet like the on-screen table.
func (h *ExportHandler) ExportShipments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	sortKey := q.Get("sortKey")
	if sortKey == "" {
		sortKey = tableview.DefaultSortKey
	}
	dir := tableview.SortDirection(q.Get("sortDirection"))
	if dir == "" {
		dir = tableview.Ascending
	}

	shipments, err := h.Repo.List(filtersFromQuery(r))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to list shipments: " + err.Error(),
		})
		return
	}

	columns, err := h.Columns.Get(q.Get("mode"))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to load column config: " + err.Error(),
		})
		return
	}

	view := tableview.Compose(shipments, sortKey, dir, nil, columns)

	f := excelize.NewFile()
	defer f.Close()
	const sheet = "Shipments"
	f.SetSheetName("Sheet1", sheet)

	col := 0
	for _, c := range view.VisibleColumns {
		if c.ID == "select" {
			continue
		}
		col++
		cell, _ := excelize.CoordinatesToCellName(col, 1)
		_ = f.SetCellValue(sheet, cell, c.Label)
	}

	for i, row := range view.Rows {
		col = 0
		for _, c := range view.VisibleColumns {
			if c.ID == "select" {
				continue
			}
			col++
			cell, _ := excelize.CoordinatesToCellName(col, i+2)
			_ = f.SetCellValue(sheet, cell, tableview.CellValue(row, c.Key))
		}
	}

	filename := fmt.Sprintf("shipments_%s.xlsx", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	if err := f.Write(w); err != nil {
		http.Error(w, "failed to write workbook: "+err.Error(), http.StatusInternalServerError)
	}
}
