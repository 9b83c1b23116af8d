package tableview

import (
	"testing"

	"freightdash/models"
)

func TestSelectionToggle(t *testing.T) {
	sel := NewSelection()
	sel.Toggle("a")
	sel.Toggle("b")
	if !sel.Contains("a") || !sel.Contains("b") || sel.Len() != 2 {
		t.Fatalf("selection after two toggles: %v", sel.IDs())
	}
	sel.Toggle("a")
	if sel.Contains("a") || sel.Len() != 1 {
		t.Fatalf("toggling again must deselect, got %v", sel.IDs())
	}
}

func TestSelectAllUsesCurrentView(t *testing.T) {
	all := []models.Shipment{
		{ID: "1", LoadNumber: 1, Status: models.StatusQuoted},
		{ID: "2", LoadNumber: 2, Status: models.StatusBooked},
		{ID: "3", LoadNumber: 3, Status: models.StatusQuoted},
	}

	// A filtered view of 2 rows out of 3.
	filtered := []models.Shipment{all[0], all[2]}
	view := Compose(filtered, DefaultSortKey, Ascending, nil, models.DefaultColumns())

	sel := NewSelection()
	sel.Toggle("2")
	sel.SelectAll(view)

	got := sel.IDs()
	if len(got) != 2 || got[0] != "1" || got[1] != "3" {
		t.Fatalf("SelectAll must replace the selection with exactly the view rows, got %v", got)
	}
}

func TestSelectionSurvivesFilterChange(t *testing.T) {
	// Narrowing the view does not prune the selection; only Prune does.
	sel := NewSelection()
	sel.Toggle("1")
	sel.Toggle("2")

	remaining := []models.Shipment{{ID: "1"}}
	if sel.Len() != 2 {
		t.Fatal("selection must persist across view changes")
	}

	sel.Prune(remaining)
	if sel.Len() != 1 || !sel.Contains("1") {
		t.Fatalf("Prune must drop absent ids, got %v", sel.IDs())
	}
}

func TestSelectionIDsReturnsCopy(t *testing.T) {
	sel := NewSelection()
	sel.Toggle("a")
	ids := sel.IDs()
	ids[0] = "mutated"
	if !sel.Contains("a") {
		t.Fatal("IDs must return a copy")
	}
}

func TestClear(t *testing.T) {
	sel := NewSelection()
	sel.Toggle("a")
	sel.Clear()
	if sel.Len() != 0 {
		t.Fatal("Clear must empty the selection")
	}
}
