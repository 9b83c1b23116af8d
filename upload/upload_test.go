package upload

import (
	"errors"
	"strings"
	"testing"

	"freightdash/models"
)

const sampleCSV = `Load #,Customer,Shipper Address,Carrier,Status,Mode,Weight,Pieces
2024101,Acme Foods,Acme Foods - 1 Plant Rd. Toledo OH 43601,Fast Lines,Booked,LTL,4000,10 pallets
2024102,Beta Goods,Beta Goods - 2 Dock St. Erie PA 16501,Slow Lines,Quoted,FTL,6500,22 boxes
`

func TestParseCSV(t *testing.T) {
	res, err := ParseCSV(strings.NewReader(sampleCSV), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Shipments) != 2 {
		t.Fatalf("expected 2 shipments, got %d (errors: %v)", len(res.Shipments), res.Errors)
	}

	s := res.Shipments[0]
	if s.LoadNumber != 2024101 || s.Customer != "Acme Foods" {
		t.Fatalf("first row wrong: %+v", s)
	}
	if s.Status != models.StatusBooked || s.Mode != models.ModeLTL {
		t.Fatalf("typed fields wrong: status=%q mode=%q", s.Status, s.Mode)
	}
	if s.Weight != 4000 || s.PieceCount != "10 pallets" {
		t.Fatalf("weight/pieces wrong: %+v", s)
	}
	if len(res.UnmappedHeader) != 0 {
		t.Fatalf("all headers should map, unmapped: %v", res.UnmappedHeader)
	}
}

func TestParseCSVHeadersAreCaseInsensitive(t *testing.T) {
	csv := "LOAD NUMBER,CUSTOMER\n5,Acme\n"
	res, err := ParseCSV(strings.NewReader(csv), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Shipments) != 1 || res.Shipments[0].LoadNumber != 5 {
		t.Fatalf("got %+v", res)
	}
}

func TestParseCSVBadRowDoesNotAbortFile(t *testing.T) {
	csv := "Load #,Customer\nnot-a-number,Acme\n7,Beta\n"
	res, err := ParseCSV(strings.NewReader(csv), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Shipments) != 1 || res.Shipments[0].Customer != "Beta" {
		t.Fatalf("good row must survive a bad neighbor: %+v", res.Shipments)
	}
	if len(res.Errors) != 1 || res.Errors[0].Row != 2 {
		t.Fatalf("bad row must be reported with its row number: %+v", res.Errors)
	}
}

func TestParseCSVUnknownHeadersReported(t *testing.T) {
	csv := "Load #,Frobnication\n9,whatever\n"
	res, err := ParseCSV(strings.NewReader(csv), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.UnmappedHeader) != 1 || res.UnmappedHeader[0] != "Frobnication" {
		t.Fatalf("unmapped headers = %v", res.UnmappedHeader)
	}
	if len(res.Shipments) != 1 {
		t.Fatalf("mapped columns must still import, got %d rows", len(res.Shipments))
	}
}

func TestParseCSVHeaderOnly(t *testing.T) {
	_, err := ParseCSV(strings.NewReader("Load #,Customer\n"), nil)
	if !errors.Is(err, ErrNoRows) {
		t.Fatalf("got %v, want ErrNoRows", err)
	}
}

func TestMappingMerge(t *testing.T) {
	mapping := DefaultMapping().Merge(Mapping{"Ref": "poRef", "CUSTOMER": "customer"})
	if mapping["ref"] != "poRef" {
		t.Fatal("overlay keys must be lowercased")
	}
	if mapping["customer"] != "customer" {
		t.Fatal("overlay must not lose default entries it restates")
	}
	if mapping["carrier"] != "carrier" {
		t.Fatal("defaults must survive the merge")
	}
}

func TestMappingOverlayWins(t *testing.T) {
	mapping := DefaultMapping().Merge(Mapping{"customer": "carrier"})
	csv := "Customer\nOddball Lines\n"
	res, err := ParseCSV(strings.NewReader(csv), mapping)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Shipments) != 1 || res.Shipments[0].Carrier != "Oddball Lines" {
		t.Fatalf("overlay must override the default target field: %+v", res.Shipments)
	}
}

func TestRowWithOnlyEmptyCellsRejected(t *testing.T) {
	csv := "Load #,Customer\n,\n"
	res, err := ParseCSV(strings.NewReader(csv), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Shipments) != 0 || len(res.Errors) != 1 {
		t.Fatalf("empty row must be rejected: %+v", res)
	}
}
