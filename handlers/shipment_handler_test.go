package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"freightdash/models"
	"freightdash/repository"
)

func seedRepo() *repository.MemoryShipmentRepo {
	return repository.NewMemoryShipmentRepo([]models.Shipment{
		{ID: "1", LoadNumber: 2024001, Customer: "Acme", Carrier: "Fast Lines", Status: models.StatusBooked, Mode: models.ModeLTL},
		{ID: "2", LoadNumber: 2024002, Customer: "Beta", Carrier: "Slow Lines", Status: models.StatusBooked, Mode: models.ModeFTL},
		{ID: "3", LoadNumber: 2024003, Customer: "Gamma", Carrier: "Fast Lines", Status: models.StatusInTransit, Mode: models.ModeLTL},
	})
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) ApiResponse {
	t.Helper()
	var resp ApiResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	return resp
}

func TestListShipmentsAppliesQueryFilters(t *testing.T) {
	h := &ShipmentHandler{Repo: seedRepo()}

	req := httptest.NewRequest(http.MethodGet, "/shipments?shipmentStatus=Booked&carrierName=fast", nil)
	rec := httptest.NewRecorder()
	h.ListShipments(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	resp := decodeResponse(t, rec)
	rows, ok := resp.Data.([]interface{})
	if !ok {
		t.Fatalf("data is not a list: %T", resp.Data)
	}
	if len(rows) != 1 {
		t.Fatalf("expected exactly shipment 1, got %d rows", len(rows))
	}
}

func TestListShipmentsCommaSeparatedLists(t *testing.T) {
	h := &ShipmentHandler{Repo: seedRepo()}

	req := httptest.NewRequest(http.MethodGet, "/shipments?shipmentStatus=Booked,In%20Transit", nil)
	rec := httptest.NewRecorder()
	h.ListShipments(rec, req)

	resp := decodeResponse(t, rec)
	rows := resp.Data.([]interface{})
	if len(rows) != 3 {
		t.Fatalf("expected all three shipments, got %d", len(rows))
	}
}

func postBulk(t *testing.T, h *ShipmentHandler, body BulkActionRequest) *httptest.ResponseRecorder {
	t.Helper()
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/shipments/bulk", bytes.NewReader(b))
	rec := httptest.NewRecorder()
	h.BulkAction(rec, req)
	return rec
}

func TestBulkActionMixedStatusesBlocked(t *testing.T) {
	repo := seedRepo()
	h := &ShipmentHandler{Repo: repo}

	rec := postBulk(t, h, BulkActionRequest{
		Action:      "update",
		ShipmentIDs: []string{"1", "3"},
		Status:      models.StatusDispatched,
	})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	resp := decodeResponse(t, rec)
	want := "Bulk actions can only be performed on shipments with the same status. Please select shipments that all have the same status."
	if resp.Message != want {
		t.Fatalf("message = %q", resp.Message)
	}

	// Nothing changed.
	s, err := repo.GetByID("1")
	if err != nil {
		t.Fatal(err)
	}
	if s.Status != models.StatusBooked {
		t.Fatalf("shipment 1 status mutated to %q", s.Status)
	}
}

func TestBulkActionEmptySelectionBlocked(t *testing.T) {
	h := &ShipmentHandler{Repo: seedRepo()}
	rec := postBulk(t, h, BulkActionRequest{Action: "update", Status: models.StatusDispatched})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	if resp := decodeResponse(t, rec); resp.Message != "No shipments selected." {
		t.Fatalf("message = %q", resp.Message)
	}
}

func TestBulkActionUpdateSameStatus(t *testing.T) {
	repo := seedRepo()
	h := &ShipmentHandler{Repo: repo}

	rec := postBulk(t, h, BulkActionRequest{
		Action:      "update",
		ShipmentIDs: []string{"1", "2"},
		Status:      models.StatusDispatched,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	for _, id := range []string{"1", "2"} {
		s, err := repo.GetByID(id)
		if err != nil {
			t.Fatal(err)
		}
		if s.Status != models.StatusDispatched {
			t.Fatalf("shipment %s status = %q, want Dispatched", id, s.Status)
		}
	}
	s, _ := repo.GetByID("3")
	if s.Status != models.StatusInTransit {
		t.Fatal("unselected shipment must not change")
	}
}

func TestBulkActionMissingAction(t *testing.T) {
	h := &ShipmentHandler{Repo: seedRepo()}
	rec := postBulk(t, h, BulkActionRequest{ShipmentIDs: []string{"1"}})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestCreateShipmentAssignsIDAndLoadNumber(t *testing.T) {
	repo := seedRepo()
	h := &ShipmentHandler{Repo: repo}

	body, _ := json.Marshal(models.Shipment{Customer: "New Corp"})
	req := httptest.NewRequest(http.MethodPost, "/shipments", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.CreateShipment(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	all, err := repo.List(models.FilterOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 4 {
		t.Fatalf("expected 4 shipments, got %d", len(all))
	}
	created := all[3]
	if created.ID == "" {
		t.Fatal("created shipment missing id")
	}
	if created.LoadNumber != 2024004 {
		t.Fatalf("load number = %d, want 2024004", created.LoadNumber)
	}
}

func TestDeleteShipment(t *testing.T) {
	repo := seedRepo()
	h := &ShipmentHandler{Repo: repo}

	req := httptest.NewRequest(http.MethodDelete, "/shipments?id=2", nil)
	rec := httptest.NewRecorder()
	h.DeleteShipment(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if _, err := repo.GetByID("2"); err == nil {
		t.Fatal("shipment 2 should be gone")
	}
}
