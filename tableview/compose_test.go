package tableview

import (
	"testing"

	"freightdash/models"
)

func testShipments() []models.Shipment {
	return []models.Shipment{
		{ID: "a", LoadNumber: 3, Customer: "Gamma", Carrier: "Zeta Lines", Cost: 100, Status: models.StatusQuoted},
		{ID: "b", LoadNumber: 1, Customer: "Alpha", Carrier: "Acme Freight", Cost: 300, Status: models.StatusBooked},
		{ID: "c", LoadNumber: 2, Customer: "Beta", Carrier: "Acme Freight", Cost: 200, Status: models.StatusQuoted},
	}
}

func rowIDs(v View) []string {
	out := make([]string, len(v.Rows))
	for i, s := range v.Rows {
		out[i] = s.ID
	}
	return out
}

func assertOrder(t *testing.T, v View, want ...string) {
	t.Helper()
	got := rowIDs(v)
	if len(got) != len(want) {
		t.Fatalf("got rows %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got rows %v, want %v", got, want)
		}
	}
}

func TestComposeDefaultSort(t *testing.T) {
	v := Compose(testShipments(), DefaultSortKey, Ascending, nil, models.DefaultColumns())
	assertOrder(t, v, "b", "c", "a")
}

func TestComposeDescendingInvertsAscending(t *testing.T) {
	cols := models.DefaultColumns()
	asc := Compose(testShipments(), "cost", Ascending, nil, cols)
	desc := Compose(testShipments(), "cost", Descending, nil, cols)

	ascIDs := rowIDs(asc)
	descIDs := rowIDs(desc)
	for i := range ascIDs {
		if ascIDs[i] != descIDs[len(descIDs)-1-i] {
			t.Fatalf("descending %v is not the reverse of ascending %v", descIDs, ascIDs)
		}
	}
}

func TestComposeNumericSortIsNumeric(t *testing.T) {
	list := []models.Shipment{
		{ID: "big", LoadNumber: 1, Cost: 900},
		{ID: "bigger", LoadNumber: 2, Cost: 1000},
	}
	v := Compose(list, "cost", Ascending, nil, models.DefaultColumns())
	// Lexicographic order would put "1000" before "900".
	assertOrder(t, v, "big", "bigger")
}

func TestComposeSortIsStable(t *testing.T) {
	list := []models.Shipment{
		{ID: "x", LoadNumber: 1, Carrier: "Same"},
		{ID: "y", LoadNumber: 2, Carrier: "Same"},
		{ID: "z", LoadNumber: 3, Carrier: "Same"},
	}
	v := Compose(list, "carrier", Ascending, nil, models.DefaultColumns())
	assertOrder(t, v, "x", "y", "z")
}

func TestComposeUnknownSortKeyKeepsInputOrder(t *testing.T) {
	v := Compose(testShipments(), "nonsense", Ascending, nil, models.DefaultColumns())
	assertOrder(t, v, "a", "b", "c")
}

func TestComposeColumnFilter(t *testing.T) {
	v := Compose(testShipments(), DefaultSortKey, Ascending,
		map[string]string{"carrier": "acme"}, models.DefaultColumns())
	assertOrder(t, v, "b", "c")
}

func TestComposeColumnFilterOnHiddenColumnIsInert(t *testing.T) {
	cols := models.DefaultColumns()
	for i := range cols {
		if cols[i].ID == "carrier" {
			cols[i].Visible = false
		}
	}
	v := Compose(testShipments(), DefaultSortKey, Ascending,
		map[string]string{"carrier": "acme"}, cols)
	assertOrder(t, v, "b", "c", "a")
}

func TestComposeVisibleColumnsExcludeHidden(t *testing.T) {
	cols := models.DefaultColumns()
	for i := range cols {
		if cols[i].ID == "margin" {
			cols[i].Visible = false
		}
	}
	v := Compose(testShipments(), DefaultSortKey, Ascending, nil, cols)
	for _, c := range v.VisibleColumns {
		if c.ID == "margin" {
			t.Fatal("hidden column leaked into VisibleColumns")
		}
	}
	if len(v.VisibleColumns) != len(cols)-1 {
		t.Fatalf("expected %d visible columns, got %d", len(cols)-1, len(v.VisibleColumns))
	}
}

func TestCellValueUnknownKeyIsEmpty(t *testing.T) {
	if got := CellValue(models.Shipment{ID: "a"}, "doesNotExist"); got != "" {
		t.Fatalf("unknown key must project an empty cell, got %q", got)
	}
}

func TestCellValueFormatting(t *testing.T) {
	s := models.Shipment{
		Cost:        1234.5,
		Billed:      3000,
		Temperature: models.TemperatureRange{Min: 68, Max: 78},
		Documents:   models.Documents{BOL: "BOL-1.pdf", POD: "POD-1.pdf"},
	}
	cases := []struct {
		key, want string
	}{
		{"cost", "1234.50"},
		{"billed", "3000"},
		{"temperature", "68°F - 78°F"},
	}
	for _, tc := range cases {
		if got := CellValue(s, tc.key); got != tc.want {
			t.Errorf("CellValue(%s) = %q, want %q", tc.key, got, tc.want)
		}
	}
}
