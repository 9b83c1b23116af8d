package filter

import (
	"testing"

	"freightdash/models"
)

func sampleShipments() []models.Shipment {
	return []models.Shipment{
		{
			ID: "1", LoadNumber: 2024001, Customer: "ABC Manufacturing",
			ShipperAddress:   "Acme Corp - 123 Industrial Blvd, Detroit, MI 48201",
			ConsigneeAddress: "Delta Industries - 456 Warehouse Dr, Chicago, IL 60601",
			Carrier:          "FastFreight Inc", PORef: "PO-2024-001",
			PickupDate: "2024-01-15", EstimatedDelivery: "2024-01-17",
			RegionGroup: "Midwest", Mode: models.ModeLTL,
			Priority: models.PriorityHot, AppointmentStatus: models.AppointmentConfirmed,
			Equipment: "Van", CustomerSalesRep: "John Smith", CarrierSalesRep: "Mike Johnson",
			Status: models.StatusInTransit,
		},
		{
			ID: "2", LoadNumber: 2024002, Customer: "XYZ Logistics",
			ShipperAddress:   "Tech Solutions - 789 Port Ave, Los Angeles, CA 90210",
			ConsigneeAddress: "Omega Solutions - 321 Distribution Center, Phoenix, AZ 85001",
			Carrier:          "WestCoast Transport", PORef: "PO-2024-002",
			PickupDate: "2024-01-16", EstimatedDelivery: "2024-01-18",
			RegionGroup: "West Coast", Mode: models.ModeFTL,
			Priority: models.PriorityStandard, AppointmentStatus: models.AppointmentPending,
			Equipment: "Reefer", CustomerSalesRep: "Sarah Wilson", CarrierSalesRep: "David Brown",
			Status: models.StatusBooked,
		},
		{
			ID: "3", LoadNumber: 2024004, Customer: "Tech Solutions",
			ShipperAddress:   "Tech Solutions - 888 Innovation Dr, Austin, TX 73301",
			ConsigneeAddress: "Elite Retail Corp - 999 Tech Park, Dallas, TX 75201",
			Carrier:          "Texas Transport", PORef: "PO-2024-004",
			PickupDate: "2024-01-18", EstimatedDelivery: "2024-01-19",
			RegionGroup: "Texas", Mode: models.ModeAir,
			Priority: models.PriorityStandard, AppointmentStatus: models.AppointmentRequested,
			Equipment: "Van", CustomerSalesRep: "Mark Johnson", CarrierSalesRep: "Amy Chen",
			Status: models.StatusQuoted,
		},
	}
}

func ids(list []models.Shipment) []string {
	out := make([]string, len(list))
	for i, s := range list {
		out[i] = s.ID
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestEmptyFiltersReturnEverything(t *testing.T) {
	list := sampleShipments()
	got := Shipments(list, models.FilterOptions{})
	if !equalIDs(ids(got), []string{"1", "2", "3"}) {
		t.Fatalf("expected all shipments in order, got %v", ids(got))
	}
}

func TestMatchesAND(t *testing.T) {
	cases := []struct {
		name string
		f    models.FilterOptions
		want []string
	}{
		{
			name: "load number substring",
			f:    models.FilterOptions{LoadNumber: "2024001"},
			want: []string{"1"},
		},
		{
			name: "load number partial",
			f:    models.FilterOptions{LoadNumber: "2024"},
			want: []string{"1", "2", "3"},
		},
		{
			name: "carrier case insensitive",
			f:    models.FilterOptions{CarrierName: "fastfreight"},
			want: []string{"1"},
		},
		{
			name: "status list",
			f:    models.FilterOptions{ShipmentStatus: []models.ShipmentStatus{models.StatusQuoted}},
			want: []string{"3"},
		},
		{
			name: "status list multiple",
			f: models.FilterOptions{ShipmentStatus: []models.ShipmentStatus{
				models.StatusQuoted, models.StatusBooked,
			}},
			want: []string{"2", "3"},
		},
		{
			name: "mode list",
			f:    models.FilterOptions{ShipmentMode: []models.ShipmentMode{models.ModeFTL}},
			want: []string{"2"},
		},
		{
			name: "two predicates AND",
			f: models.FilterOptions{
				CarrierName:    "transport",
				ShipmentStatus: []models.ShipmentStatus{models.StatusBooked},
			},
			want: []string{"2"},
		},
		{
			name: "shipper company searches shipper address",
			f:    models.FilterOptions{ShipperCompany: "acme"},
			want: []string{"1"},
		},
		{
			name: "consignee company searches consignee address",
			f:    models.FilterOptions{ConsigneeCompany: "omega"},
			want: []string{"2"},
		},
		{
			name: "sales reps",
			f:    models.FilterOptions{CustomerSalesRep: "john"},
			want: []string{"1", "3"},
		},
		{
			name: "group selection over region group",
			f:    models.FilterOptions{GroupSelection: []string{"Texas"}},
			want: []string{"3"},
		},
		{
			name: "regions over region group",
			f:    models.FilterOptions{Regions: []string{"Midwest", "West Coast"}},
			want: []string{"1", "2"},
		},
		{
			name: "group selection and regions must both pass",
			f:    models.FilterOptions{GroupSelection: []string{"Texas"}, Regions: []string{"Midwest"}},
			want: []string{},
		},
		{
			name: "priority",
			f:    models.FilterOptions{Priority: []models.Priority{models.PriorityHot}},
			want: []string{"1"},
		},
		{
			name: "appointment status",
			f:    models.FilterOptions{AppointmentStatus: []models.AppointmentStatus{models.AppointmentPending}},
			want: []string{"2"},
		},
		{
			name: "equipment",
			f:    models.FilterOptions{Equipment: []string{"Reefer"}},
			want: []string{"2"},
		},
		{
			name: "no match",
			f:    models.FilterOptions{CarrierName: "zzz"},
			want: []string{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ids(Shipments(sampleShipments(), tc.f))
			if !equalIDs(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestReferenceNumbersAllSearchPORef(t *testing.T) {
	for _, field := range []string{"pro", "pickup", "po", "shipper"} {
		var f models.FilterOptions
		switch field {
		case "pro":
			f.ProNumber = "2024-001"
		case "pickup":
			f.PickupNumber = "2024-001"
		case "po":
			f.PONumber = "2024-001"
		case "shipper":
			f.ShipperNumber = "2024-001"
		}
		got := ids(Shipments(sampleShipments(), f))
		if !equalIDs(got, []string{"1"}) {
			t.Errorf("%s number: got %v, want [1]", field, got)
		}
	}
}

func TestZipRange(t *testing.T) {
	cases := []struct {
		name string
		f    models.FilterOptions
		want []string
	}{
		{
			name: "shipper zip in range",
			f:    models.FilterOptions{ShipperZipStart: "48000", ShipperZipEnd: "49000"},
			want: []string{"1"},
		},
		{
			name: "shipper zip boundary inclusive",
			f:    models.FilterOptions{ShipperZipStart: "48201", ShipperZipEnd: "48201"},
			want: []string{"1"},
		},
		{
			name: "only start bound leaves filter inactive",
			f:    models.FilterOptions{ShipperZipStart: "48000"},
			want: []string{"1", "2", "3"},
		},
		{
			name: "only end bound leaves filter inactive",
			f:    models.FilterOptions{ShipperZipEnd: "49000"},
			want: []string{"1", "2", "3"},
		},
		{
			name: "non numeric bound leaves filter inactive",
			f:    models.FilterOptions{ShipperZipStart: "abcde", ShipperZipEnd: "49000"},
			want: []string{"1", "2", "3"},
		},
		{
			name: "consignee zip",
			f:    models.FilterOptions{ConsigneeZipStart: "60000", ConsigneeZipEnd: "61000"},
			want: []string{"1"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ids(Shipments(sampleShipments(), tc.f))
			if !equalIDs(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestZipRangeAddressWithoutZipPasses(t *testing.T) {
	list := []models.Shipment{
		{ID: "x", ShipperAddress: "Somewhere with no zip"},
	}
	f := models.FilterOptions{ShipperZipStart: "10000", ShipperZipEnd: "20000"}
	got := Shipments(list, f)
	if len(got) != 1 {
		t.Fatalf("address without a zip must not be rejected by a zip filter")
	}
}

func TestDateRange(t *testing.T) {
	cases := []struct {
		name string
		f    models.FilterOptions
		want []string
	}{
		{
			name: "pickup range",
			f:    models.FilterOptions{PickupDateFrom: "2024-01-15", PickupDateTo: "2024-01-16"},
			want: []string{"1", "2"},
		},
		{
			name: "pickup range inclusive bounds",
			f:    models.FilterOptions{PickupDateFrom: "2024-01-16", PickupDateTo: "2024-01-16"},
			want: []string{"2"},
		},
		{
			name: "single bound inactive",
			f:    models.FilterOptions{PickupDateFrom: "2024-01-16"},
			want: []string{"1", "2", "3"},
		},
		{
			name: "malformed bound inactive",
			f:    models.FilterOptions{PickupDateFrom: "01/16/2024", PickupDateTo: "2024-01-18"},
			want: []string{"1", "2", "3"},
		},
		{
			name: "delivery range",
			f:    models.FilterOptions{EstimatedDeliveryFrom: "2024-01-18", EstimatedDeliveryTo: "2024-01-19"},
			want: []string{"2", "3"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ids(Shipments(sampleShipments(), tc.f))
			if !equalIDs(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestDateRangeMalformedShipmentDateExcludes(t *testing.T) {
	list := []models.Shipment{
		{ID: "good", PickupDate: "2024-01-15"},
		{ID: "bad", PickupDate: "not a date"},
	}
	f := models.FilterOptions{PickupDateFrom: "2024-01-01", PickupDateTo: "2024-01-31"}
	got := ids(Shipments(list, f))
	if !equalIDs(got, []string{"good"}) {
		t.Fatalf("malformed shipment date inside an active range must exclude, got %v", got)
	}
}

func TestShipmentsPreservesOrder(t *testing.T) {
	list := sampleShipments()
	got := Shipments(list, models.FilterOptions{CustomerSalesRep: "o"})
	// "John Smith", "Sarah Wilson" (Wilson), "Mark Johnson" all contain "o"
	// somewhere in the rep name except where they don't; order must match
	// input regardless.
	prev := -1
	for _, s := range got {
		idx := -1
		for i, orig := range list {
			if orig.ID == s.ID {
				idx = i
			}
		}
		if idx <= prev {
			t.Fatalf("output order diverged from input order")
		}
		prev = idx
	}
}

func TestIsZero(t *testing.T) {
	if !(models.FilterOptions{}).IsZero() {
		t.Error("zero value must report IsZero")
	}
	if (models.FilterOptions{LoadNumber: "1"}).IsZero() {
		t.Error("non-empty filter must not report IsZero")
	}
	if (models.FilterOptions{Regions: []string{"Texas"}}).IsZero() {
		t.Error("non-empty slice filter must not report IsZero")
	}
}
