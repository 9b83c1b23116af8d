package geo

import (
	"testing"

	"freightdash/models"
)

func TestExtractState(t *testing.T) {
	cases := []struct {
		address, want string
	}{
		{"Acme Corp - 123 Industrial Blvd, Detroit, MI 48201", "MI"},
		{"Tech Solutions - 789 Port Ave, Los Angeles, CA 90210", "CA"},
		{"Retail Plus - 999 Distribution Dr, Memphis, TN 38101", "TN"},
		{"No state here", ""},
		{"Lowercase, mi 48201", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := ExtractState(tc.address); got != tc.want {
			t.Errorf("ExtractState(%q) = %q, want %q", tc.address, got, tc.want)
		}
	}
}

func TestLocationsGroupByState(t *testing.T) {
	shipments := []models.Shipment{
		{ID: "1", ShipperAddress: "A - 1 Main St, Detroit, MI 48201"},
		{ID: "2", ShipperAddress: "B - 2 Main St, Grand Rapids, MI 49501"},
		{ID: "3", ShipperAddress: "C - 3 Main St, Austin, TX 73301"},
		{ID: "4", ShipperAddress: "no parseable state"},
	}
	locs := Locations(shipments)
	if len(locs) != 2 {
		t.Fatalf("expected MI and TX, got %d locations", len(locs))
	}
	if locs[0].State != "MI" || len(locs[0].Shipments) != 2 {
		t.Fatalf("MI location wrong: %+v", locs[0])
	}
	if locs[1].State != "TX" || len(locs[1].Shipments) != 1 {
		t.Fatalf("TX location wrong: %+v", locs[1])
	}
	if locs[0].Lat != stateCoordinates["MI"].Lat {
		t.Fatal("location must carry the state centroid")
	}
}

func TestClustersHighZoomNoMerging(t *testing.T) {
	locs := Locations([]models.Shipment{
		{ID: "1", ShipperAddress: "A - 1 Main St, Columbus, OH 43085"},
		{ID: "2", ShipperAddress: "B - 2 Main St, Indianapolis, IN 46201"},
	})
	clusters := Clusters(locs, 6)
	if len(clusters) != 2 {
		t.Fatalf("zoom > 5 must not merge, got %d clusters", len(clusters))
	}
	for _, c := range clusters {
		if c.Count != 1 || len(c.Locations) != 1 {
			t.Fatalf("cluster should hold one location: %+v", c)
		}
	}
}

func TestClustersLowZoomMergesNeighbors(t *testing.T) {
	// OH (40.39, -82.76) and MI (43.33, -84.54) fall in the same 10-degree
	// cell at zoom <= 3; CA does not.
	locs := Locations([]models.Shipment{
		{ID: "1", ShipperAddress: "A - 1 Main St, Columbus, OH 43085"},
		{ID: "2", ShipperAddress: "B - 2 Main St, Detroit, MI 48201"},
		{ID: "3", ShipperAddress: "C - 3 Main St, Fresno, CA 93650"},
	})
	clusters := Clusters(locs, 3)
	if len(clusters) != 2 {
		t.Fatalf("expected OH+MI merged separately from CA, got %d clusters", len(clusters))
	}

	var merged *Cluster
	for i := range clusters {
		if clusters[i].Count == 2 {
			merged = &clusters[i]
		}
	}
	if merged == nil {
		t.Fatal("no merged cluster found")
	}
	wantLat := (stateCoordinates["OH"].Lat + stateCoordinates["MI"].Lat) / 2
	if merged.Lat != wantLat {
		t.Fatalf("merged cluster lat = %f, want centroid %f", merged.Lat, wantLat)
	}
}

func TestClustersCountSumsShipments(t *testing.T) {
	locs := Locations([]models.Shipment{
		{ID: "1", ShipperAddress: "A - 1 Main St, Detroit, MI 48201"},
		{ID: "2", ShipperAddress: "B - 2 Main St, Grand Rapids, MI 49501"},
	})
	clusters := Clusters(locs, 4)
	if len(clusters) != 1 || clusters[0].Count != 2 {
		t.Fatalf("one MI location with two shipments expected, got %+v", clusters)
	}
}
