package tableview

import (
	"testing"

	"freightdash/models"
)

func TestActionsForStatusCoversEveryStatus(t *testing.T) {
	for _, status := range models.AllStatuses {
		actions := ActionsForStatus(status)
		if len(actions) == 0 {
			t.Errorf("status %q has no actions", status)
		}
	}
}

func TestActionsForStatusTable(t *testing.T) {
	cases := []struct {
		status models.ShipmentStatus
		want   []string
	}{
		{models.StatusQuoted, []string{"Book", "Quote", "Run Rates", "Source Capacity", "Duplicate", "Exact Duplicate", "Cancel Load", "Email Notifications"}},
		{models.StatusBooked, []string{"Quote", "Dispatch", "Run Rates", "Source Capacity", "Duplicate", "Exact Duplicate", "Cancel Load", "Email Notifications"}},
		{models.StatusCanceled, []string{"Reinstate", "Source Capacity", "Milestone Update", "Duplicate", "Exact Duplicate", "Email Notifications"}},
	}
	for _, tc := range cases {
		got := ActionsForStatus(tc.status)
		if len(got) != len(tc.want) {
			t.Errorf("%s: got %v, want %v", tc.status, got, tc.want)
			continue
		}
		for i := range tc.want {
			if got[i] != tc.want[i] {
				t.Errorf("%s: got %v, want %v", tc.status, got, tc.want)
				break
			}
		}
	}
}

func TestActionsForStatusUnknownFallsBack(t *testing.T) {
	got := ActionsForStatus("Something Else")
	if len(got) != 1 || got[0] != "View" {
		t.Fatalf("unknown status: got %v, want [View]", got)
	}
}

func TestActionsForStatusReturnsCopy(t *testing.T) {
	a := ActionsForStatus(models.StatusQuoted)
	a[0] = "Mutated"
	b := ActionsForStatus(models.StatusQuoted)
	if b[0] == "Mutated" {
		t.Fatal("callers must not be able to mutate the action table")
	}
}

func bulkShipments() []models.Shipment {
	return []models.Shipment{
		{ID: "1", Status: models.StatusInTransit},
		{ID: "2", Status: models.StatusBooked},
		{ID: "3", Status: models.StatusBooked},
	}
}

const mixedStatusMessage = "Bulk actions can only be performed on shipments with the same status. Please select shipments that all have the same status."

func TestCheckBulkAction(t *testing.T) {
	cases := []struct {
		name     string
		selected []string
		ok       bool
		status   models.ShipmentStatus
		message  string
	}{
		{"empty selection", nil, false, "", "No shipments selected."},
		{"single shipment", []string{"1"}, true, models.StatusInTransit, ""},
		{"same status pair", []string{"2", "3"}, true, models.StatusBooked, ""},
		{"mixed statuses", []string{"1", "2"}, false, "", mixedStatusMessage},
		{"stale ids ignored", []string{"2", "gone", "3"}, true, models.StatusBooked, ""},
		{"only stale ids", []string{"gone"}, false, "", "No shipments selected."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CheckBulkAction(bulkShipments(), tc.selected)
			if got.OK != tc.ok {
				t.Fatalf("OK = %v, want %v", got.OK, tc.ok)
			}
			if got.Status != tc.status {
				t.Errorf("Status = %q, want %q", got.Status, tc.status)
			}
			if got.Message != tc.message {
				t.Errorf("Message = %q, want %q", got.Message, tc.message)
			}
		})
	}
}
