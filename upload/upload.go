// Package upload parses spreadsheet files of shipments. The first row is a
// header row; a Mapping connects header labels to shipment fields, so files
// exported from other TMS systems import without manual editing.
package upload

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"freightdash/models"
)

// Mapping maps a header label (lowercased) to a shipment field name.
type Mapping map[string]string

// ErrNoRows means the file had a header but no data rows.
var ErrNoRows = errors.New("no data rows in file")

// DefaultMapping covers the labels the dashboard itself exports plus common
// variants seen in customer files.
func DefaultMapping() Mapping {
	return Mapping{
		"load #":             "loadNumber",
		"load number":        "loadNumber",
		"loadnumber":         "loadNumber",
		"customer":           "customer",
		"shipper":            "shipperAddress",
		"shipper address":    "shipperAddress",
		"consignee":          "consigneeAddress",
		"consignee address":  "consigneeAddress",
		"carrier":            "carrier",
		"po/ref":             "poRef",
		"po ref":             "poRef",
		"po number":          "poRef",
		"status":             "status",
		"mode":               "mode",
		"equipment":          "equipment",
		"pickup date":        "pickupDate",
		"est. delivery":      "estimatedDelivery",
		"estimated delivery": "estimatedDelivery",
		"weight":             "weight",
		"miles":              "miles",
		"pieces":             "pieceCount",
		"piece count":        "pieceCount",
		"cost":               "cost",
		"billed":             "billed",
		"priority":           "priority",
		"region":             "regionGroup",
		"region group":       "regionGroup",
		"product":            "productDescription",
		"description":        "productDescription",
		"customer rep":       "customerSalesRep",
		"carrier rep":        "carrierSalesRep",
		"assigned to":        "assignedTo",
	}
}

// Merge overlays user-provided mappings on the defaults.
func (m Mapping) Merge(overlay Mapping) Mapping {
	out := make(Mapping, len(m)+len(overlay))
	for k, v := range m {
		out[strings.ToLower(strings.TrimSpace(k))] = v
	}
	for k, v := range overlay {
		out[strings.ToLower(strings.TrimSpace(k))] = v
	}
	return out
}

// RowError reports one rejected row. Rows fail individually; a bad row never
// aborts the rest of the file.
type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// Result is a parsed file: partial shipments ready for review, plus any
// per-row failures and the headers the mapping could not place.
type Result struct {
	Shipments      []models.Shipment `json:"shipments"`
	Errors         []RowError        `json:"errors,omitempty"`
	UnmappedHeader []string          `json:"unmappedHeaders,omitempty"`
}

// ParseCSV parses comma-separated shipment rows.
func ParseCSV(r io.Reader, mapping Mapping) (*Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("invalid csv: %w", err)
	}
	return parseRows(rows, mapping)
}

// ParseXLSX parses the first sheet of an Excel workbook.
func ParseXLSX(data []byte, mapping Mapping) (*Result, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("invalid xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	return parseRows(rows, mapping)
}

func parseRows(rows [][]string, mapping Mapping) (*Result, error) {
	if len(rows) < 2 {
		return nil, ErrNoRows
	}
	if mapping == nil {
		mapping = DefaultMapping()
	}

	header := rows[0]
	fields := make([]string, len(header))
	var unmapped []string
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		if field, ok := mapping[key]; ok {
			fields[i] = field
		} else if key != "" {
			unmapped = append(unmapped, h)
		}
	}

	res := &Result{UnmappedHeader: unmapped}
	for n, row := range rows[1:] {
		s, err := buildShipment(fields, row)
		if err != nil {
			res.Errors = append(res.Errors, RowError{Row: n + 2, Message: err.Error()})
			continue
		}
		res.Shipments = append(res.Shipments, *s)
	}
	return res, nil
}

func buildShipment(fields []string, row []string) (*models.Shipment, error) {
	var s models.Shipment
	set := 0
	for i, field := range fields {
		if field == "" || i >= len(row) {
			continue
		}
		value := strings.TrimSpace(row[i])
		if value == "" {
			continue
		}
		if err := setField(&s, field, value); err != nil {
			return nil, err
		}
		set++
	}
	if set == 0 {
		return nil, errors.New("row is empty after mapping")
	}
	return &s, nil
}

func setField(s *models.Shipment, field, value string) error {
	switch field {
	case "loadNumber":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid load number %q", value)
		}
		s.LoadNumber = n
	case "customer":
		s.Customer = value
	case "shipperAddress":
		s.ShipperAddress = value
	case "consigneeAddress":
		s.ConsigneeAddress = value
	case "carrier":
		s.Carrier = value
	case "poRef":
		s.PORef = value
	case "status":
		s.Status = models.ShipmentStatus(value)
	case "mode":
		s.Mode = models.ShipmentMode(value)
	case "equipment":
		s.Equipment = value
	case "pickupDate":
		s.PickupDate = value
	case "estimatedDelivery":
		s.EstimatedDelivery = value
	case "weight":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid weight %q", value)
		}
		s.Weight = n
	case "miles":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid miles %q", value)
		}
		s.Miles = n
	case "pieceCount":
		s.PieceCount = value
	case "cost":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid cost %q", value)
		}
		s.Cost = f
	case "billed":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid billed amount %q", value)
		}
		s.Billed = f
	case "priority":
		s.Priority = models.Priority(value)
	case "regionGroup":
		s.RegionGroup = value
	case "productDescription":
		s.ProductDescription = value
	case "customerSalesRep":
		s.CustomerSalesRep = value
	case "carrierSalesRep":
		s.CarrierSalesRep = value
	case "assignedTo":
		s.AssignedTo = value
	default:
		return fmt.Errorf("unknown field %q", field)
	}
	return nil
}
