package repository

import (
	"errors"
	"testing"

	"freightdash/models"
)

func memorySeed() []models.Shipment {
	return []models.Shipment{
		{ID: "1", LoadNumber: 2024001, Carrier: "Fast Lines", Status: models.StatusBooked},
		{ID: "2", LoadNumber: 2024002, Carrier: "Slow Lines", Status: models.StatusQuoted},
	}
}

func TestMemoryRepoListAppliesFilters(t *testing.T) {
	repo := NewMemoryShipmentRepo(memorySeed())

	all, err := repo.List(models.FilterOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2, got %d", len(all))
	}

	booked, err := repo.List(models.FilterOptions{
		ShipmentStatus: []models.ShipmentStatus{models.StatusBooked},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(booked) != 1 || booked[0].ID != "1" {
		t.Fatalf("filtered list wrong: %+v", booked)
	}
}

func TestMemoryRepoGetByID(t *testing.T) {
	repo := NewMemoryShipmentRepo(memorySeed())

	s, err := repo.GetByID("2")
	if err != nil {
		t.Fatal(err)
	}
	if s.LoadNumber != 2024002 {
		t.Fatalf("got %+v", s)
	}

	if _, err := repo.GetByID("nope"); !errors.Is(err, ErrShipmentNotFound) {
		t.Fatalf("got %v, want ErrShipmentNotFound", err)
	}
}

func TestMemoryRepoGetByIDReturnsCopy(t *testing.T) {
	repo := NewMemoryShipmentRepo(memorySeed())
	s, _ := repo.GetByID("1")
	s.Carrier = "mutated"
	again, _ := repo.GetByID("1")
	if again.Carrier != "Fast Lines" {
		t.Fatal("GetByID must not expose internal state")
	}
}

func TestMemoryRepoCreateAssignsIdentity(t *testing.T) {
	repo := NewMemoryShipmentRepo(memorySeed())
	s := &models.Shipment{Customer: "New"}
	if err := repo.Create(s); err != nil {
		t.Fatal(err)
	}
	if s.ID == "" {
		t.Fatal("id not assigned")
	}
	if s.LoadNumber != 2024003 {
		t.Fatalf("load number = %d, want max+1", s.LoadNumber)
	}

	explicit := &models.Shipment{ID: "custom", LoadNumber: 5}
	if err := repo.Create(explicit); err != nil {
		t.Fatal(err)
	}
	if explicit.ID != "custom" || explicit.LoadNumber != 5 {
		t.Fatal("explicit identity must be preserved")
	}
}

func TestMemoryRepoDelete(t *testing.T) {
	repo := NewMemoryShipmentRepo(memorySeed())
	if err := repo.Delete("1"); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.GetByID("1"); !errors.Is(err, ErrShipmentNotFound) {
		t.Fatal("shipment should be gone")
	}
	if err := repo.Delete("1"); !errors.Is(err, ErrShipmentNotFound) {
		t.Fatalf("double delete: got %v", err)
	}
}

func TestMemoryRepoBulkUpdateStatus(t *testing.T) {
	repo := NewMemoryShipmentRepo(memorySeed())
	if err := repo.BulkUpdateStatus([]string{"1", "2", "ghost"}, models.StatusDispatched); err != nil {
		t.Fatal(err)
	}
	for _, id := range []string{"1", "2"} {
		s, _ := repo.GetByID(id)
		if s.Status != models.StatusDispatched {
			t.Fatalf("shipment %s status = %q", id, s.Status)
		}
	}
}

func TestMemoryRepoUpdateDocuments(t *testing.T) {
	repo := NewMemoryShipmentRepo(memorySeed())
	docs := models.Documents{BOL: "https://docs/bol.pdf"}
	if err := repo.UpdateDocuments("1", docs); err != nil {
		t.Fatal(err)
	}
	s, _ := repo.GetByID("1")
	if s.Documents.BOL != docs.BOL {
		t.Fatalf("documents not updated: %+v", s.Documents)
	}

	if err := repo.UpdateDocuments("ghost", docs); !errors.Is(err, ErrShipmentNotFound) {
		t.Fatalf("got %v, want ErrShipmentNotFound", err)
	}
}
