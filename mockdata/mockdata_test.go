package mockdata

import (
	"testing"

	"freightdash/models"
)

func TestShipmentsFixedAnchors(t *testing.T) {
	list := Shipments(0)
	if len(list) != 7 {
		t.Fatalf("expected 7 fixed shipments, got %d", len(list))
	}

	first := list[0]
	if first.ID != "1" || first.LoadNumber != 2024001 {
		t.Fatalf("first anchor wrong: %+v", first)
	}
	if first.ShipperAddress != "Acme Corp - 123 Industrial Blvd, Detroit, MI 48201" {
		t.Fatalf("first shipper address wrong: %q", first.ShipperAddress)
	}
	if first.Status != models.StatusInTransit {
		t.Fatalf("first status = %q", first.Status)
	}

	// Load numbers are sequential across the fixed set.
	for i, s := range list {
		if s.LoadNumber != 2024001+i {
			t.Fatalf("load number %d at index %d", s.LoadNumber, i)
		}
	}
}

func TestShipmentsAppendsGenerated(t *testing.T) {
	list := Shipments(10)
	if len(list) != 17 {
		t.Fatalf("expected 7+10 shipments, got %d", len(list))
	}

	seen := make(map[string]bool, len(list))
	for _, s := range list {
		if s.ID == "" {
			t.Fatal("generated shipment missing id")
		}
		if seen[s.ID] {
			t.Fatalf("duplicate id %q", s.ID)
		}
		seen[s.ID] = true
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	a := Generate(5, 8, 42)
	b := Generate(5, 8, 42)
	for i := range a {
		if a[i].ID != b[i].ID || a[i].LoadNumber != b[i].LoadNumber || a[i].Customer != b[i].Customer {
			t.Fatalf("same seed must generate the same data; diverged at %d", i)
		}
	}
}

func TestGeneratedFieldsAreValid(t *testing.T) {
	statuses := make(map[models.ShipmentStatus]bool, len(models.AllStatuses))
	for _, s := range models.AllStatuses {
		statuses[s] = true
	}
	modes := make(map[models.ShipmentMode]bool, len(models.AllModes))
	for _, m := range models.AllModes {
		modes[m] = true
	}

	for _, s := range Generate(50, 8, 7) {
		if !statuses[s.Status] {
			t.Errorf("unknown status %q", s.Status)
		}
		if !modes[s.Mode] {
			t.Errorf("unknown mode %q", s.Mode)
		}
		if s.ShipperAddress == "" || s.ConsigneeAddress == "" {
			t.Error("generated shipment missing address")
		}
		if s.Temperature.Min > s.Temperature.Max {
			t.Errorf("inverted temperature range %+v", s.Temperature)
		}
	}
}
