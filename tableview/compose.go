// Package tableview turns a filtered shipment collection into the final
// render-ready table: stable sort, per-column free-text filters, column
// visibility/order/pinning, the status action table, and the selection and
// bulk-action rules.
package tableview

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"freightdash/models"
)

type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// DefaultSortKey is the initial sort: load number ascending.
const DefaultSortKey = "loadNumber"

// View is the composed, render-ready result.
type View struct {
	Rows           []models.Shipment    `json:"rows"`
	VisibleColumns []models.TableColumn `json:"visibleColumns"`
}

// accessor resolves one column key to its filter text and sort value.
// Resolving through this map instead of dynamic field access keeps unknown
// keys harmless: they project as empty cells and never panic.
type accessor struct {
	str  func(models.Shipment) string
	sort func(models.Shipment) sortValue
}

// sortValue is an ordered value: exactly one of num/str is meaningful.
type sortValue struct {
	num     float64
	str     string
	numeric bool
}

func numVal(f float64) sortValue  { return sortValue{num: f, numeric: true} }
func strVal(s string) sortValue   { return sortValue{str: s} }
func (v sortValue) less(o sortValue) bool {
	if v.numeric && o.numeric {
		return v.num < o.num
	}
	return v.key() < o.key()
}
func (v sortValue) key() string {
	if v.numeric {
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	}
	return v.str
}

var accessors = map[string]accessor{
	"id": {
		str:  func(s models.Shipment) string { return s.ID },
		sort: func(s models.Shipment) sortValue { return strVal(s.ID) },
	},
	"loadNumber": {
		str:  func(s models.Shipment) string { return strconv.Itoa(s.LoadNumber) },
		sort: func(s models.Shipment) sortValue { return numVal(float64(s.LoadNumber)) },
	},
	"customer": {
		str:  func(s models.Shipment) string { return s.Customer },
		sort: func(s models.Shipment) sortValue { return strVal(s.Customer) },
	},
	"shipperAddress": {
		str:  func(s models.Shipment) string { return s.ShipperAddress },
		sort: func(s models.Shipment) sortValue { return strVal(s.ShipperAddress) },
	},
	"consigneeAddress": {
		str:  func(s models.Shipment) string { return s.ConsigneeAddress },
		sort: func(s models.Shipment) sortValue { return strVal(s.ConsigneeAddress) },
	},
	"appointmentStatus": {
		str:  func(s models.Shipment) string { return string(s.AppointmentStatus) },
		sort: func(s models.Shipment) sortValue { return strVal(string(s.AppointmentStatus)) },
	},
	"priority": {
		str:  func(s models.Shipment) string { return string(s.Priority) },
		sort: func(s models.Shipment) sortValue { return strVal(string(s.Priority)) },
	},
	"pickupDate": {
		str:  func(s models.Shipment) string { return s.PickupDate },
		sort: func(s models.Shipment) sortValue { return strVal(s.PickupDate) },
	},
	"estimatedDelivery": {
		str:  func(s models.Shipment) string { return s.EstimatedDelivery },
		sort: func(s models.Shipment) sortValue { return strVal(s.EstimatedDelivery) },
	},
	"carrier": {
		str:  func(s models.Shipment) string { return s.Carrier },
		sort: func(s models.Shipment) sortValue { return strVal(s.Carrier) },
	},
	"poRef": {
		str:  func(s models.Shipment) string { return s.PORef },
		sort: func(s models.Shipment) sortValue { return strVal(s.PORef) },
	},
	"cost": {
		str:  func(s models.Shipment) string { return formatNumber(s.Cost) },
		sort: func(s models.Shipment) sortValue { return numVal(s.Cost) },
	},
	"maxBuy": {
		str:  func(s models.Shipment) string { return formatNumber(s.MaxBuy) },
		sort: func(s models.Shipment) sortValue { return numVal(s.MaxBuy) },
	},
	"targetRate": {
		str:  func(s models.Shipment) string { return formatNumber(s.TargetRate) },
		sort: func(s models.Shipment) sortValue { return numVal(s.TargetRate) },
	},
	"billed": {
		str:  func(s models.Shipment) string { return formatNumber(s.Billed) },
		sort: func(s models.Shipment) sortValue { return numVal(s.Billed) },
	},
	"margin": {
		str:  func(s models.Shipment) string { return formatNumber(s.Margin) },
		sort: func(s models.Shipment) sortValue { return numVal(s.Margin) },
	},
	"weight": {
		str:  func(s models.Shipment) string { return strconv.Itoa(s.Weight) },
		sort: func(s models.Shipment) sortValue { return numVal(float64(s.Weight)) },
	},
	"miles": {
		str:  func(s models.Shipment) string { return strconv.Itoa(s.Miles) },
		sort: func(s models.Shipment) sortValue { return numVal(float64(s.Miles)) },
	},
	"regionGroup": {
		str:  func(s models.Shipment) string { return s.RegionGroup },
		sort: func(s models.Shipment) sortValue { return strVal(s.RegionGroup) },
	},
	"productDescription": {
		str:  func(s models.Shipment) string { return s.ProductDescription },
		sort: func(s models.Shipment) sortValue { return strVal(s.ProductDescription) },
	},
	"mode": {
		str:  func(s models.Shipment) string { return string(s.Mode) },
		sort: func(s models.Shipment) sortValue { return strVal(string(s.Mode)) },
	},
	"equipment": {
		str:  func(s models.Shipment) string { return s.Equipment },
		sort: func(s models.Shipment) sortValue { return strVal(s.Equipment) },
	},
	"temperature": {
		str:  func(s models.Shipment) string { return formatTemperature(s.Temperature) },
		sort: func(s models.Shipment) sortValue { return numVal(float64(s.Temperature.Min)) },
	},
	"lastTrackingNote": {
		str:  func(s models.Shipment) string { return s.LastTrackingNote },
		sort: func(s models.Shipment) sortValue { return strVal(s.LastTrackingNote) },
	},
	"lastEdited": {
		str:  func(s models.Shipment) string { return s.LastEdited },
		sort: func(s models.Shipment) sortValue { return strVal(s.LastEdited) },
	},
	"customerSalesRep": {
		str:  func(s models.Shipment) string { return s.CustomerSalesRep },
		sort: func(s models.Shipment) sortValue { return strVal(s.CustomerSalesRep) },
	},
	"carrierSalesRep": {
		str:  func(s models.Shipment) string { return s.CarrierSalesRep },
		sort: func(s models.Shipment) sortValue { return strVal(s.CarrierSalesRep) },
	},
	"assignedTo": {
		str:  func(s models.Shipment) string { return s.AssignedTo },
		sort: func(s models.Shipment) sortValue { return strVal(s.AssignedTo) },
	},
	"pieceCount": {
		str:  func(s models.Shipment) string { return s.PieceCount },
		sort: func(s models.Shipment) sortValue { return strVal(s.PieceCount) },
	},
	"status": {
		str:  func(s models.Shipment) string { return string(s.Status) },
		sort: func(s models.Shipment) sortValue { return strVal(string(s.Status)) },
	},
	"documents": {
		str:  func(s models.Shipment) string { return documentSummary(s.Documents) },
		sort: func(s models.Shipment) sortValue { return strVal(documentSummary(s.Documents)) },
	},
}

// CellValue returns the textual value a column projects for one shipment.
// Unknown keys render as an empty cell.
func CellValue(s models.Shipment, key string) string {
	if a, ok := accessors[key]; ok {
		return a.str(s)
	}
	return ""
}

// Compose applies column filters, sorts, and projects visible columns.
// Column filters apply only to columns that are both visible and filterable;
// a hidden column's filter state is retained by the caller but has no effect
// here. Sorting is stable; an unknown sort key leaves input order untouched.
func Compose(shipments []models.Shipment, sortKey string, dir SortDirection, columnFilters map[string]string, columns []models.TableColumn) View {
	visible := make([]models.TableColumn, 0, len(columns))
	for _, c := range columns {
		if c.Visible {
			visible = append(visible, c)
		}
	}

	rows := make([]models.Shipment, len(shipments))
	copy(rows, shipments)

	for _, c := range visible {
		if !c.Filterable {
			continue
		}
		needle := strings.TrimSpace(columnFilters[c.Key])
		if needle == "" {
			continue
		}
		a, ok := accessors[c.Key]
		if !ok {
			continue
		}
		kept := rows[:0]
		for _, s := range rows {
			if strings.Contains(strings.ToLower(a.str(s)), strings.ToLower(needle)) {
				kept = append(kept, s)
			}
		}
		rows = kept
	}

	if a, ok := accessors[sortKey]; ok {
		desc := dir == Descending
		sort.SliceStable(rows, func(i, j int) bool {
			if desc {
				return a.sort(rows[j]).less(a.sort(rows[i]))
			}
			return a.sort(rows[i]).less(a.sort(rows[j]))
		})
	}

	return View{Rows: rows, VisibleColumns: visible}
}

// formatNumber renders currency amounts the way the table displays them,
// dropping a trailing .00 so whole-dollar values filter as plain integers.
func formatNumber(f float64) string {
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', 2, 64)
}

func formatTemperature(t models.TemperatureRange) string {
	return fmt.Sprintf("%d°F - %d°F", t.Min, t.Max)
}

func documentSummary(d models.Documents) string {
	var parts []string
	if d.BOL != "" {
		parts = append(parts, d.BOL)
	}
	if d.POD != "" {
		parts = append(parts, d.POD)
	}
	if d.Invoice != "" {
		parts = append(parts, d.Invoice)
	}
	return strings.Join(parts, " ")
}
