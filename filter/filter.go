// Package filter evaluates FilterOptions against shipments. Every predicate
// is pure; active predicates combine with logical AND. Malformed zips and
// dates never raise an error: an unparseable bound deactivates its filter and
// an address without a zip is not rejected by a zip-range filter.
package filter

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"freightdash/models"
)

var zipRe = regexp.MustCompile(`\d{5}`)

const dateLayout = "2006-01-02"

// Shipments returns the members of list that match f, preserving input order.
func Shipments(list []models.Shipment, f models.FilterOptions) []models.Shipment {
	out := make([]models.Shipment, 0, len(list))
	for _, s := range list {
		if Matches(s, f) {
			out = append(out, s)
		}
	}
	return out
}

// Matches reports whether s passes every active predicate in f.
func Matches(s models.Shipment, f models.FilterOptions) bool {
	if f.LoadNumber != "" && !strings.Contains(strconv.Itoa(s.LoadNumber), f.LoadNumber) {
		return false
	}
	if !containsFold(s.Carrier, f.CarrierName) {
		return false
	}
	if len(f.ShipmentMode) > 0 && !containsMode(f.ShipmentMode, s.Mode) {
		return false
	}
	if len(f.ShipmentStatus) > 0 && !containsStatus(f.ShipmentStatus, s.Status) {
		return false
	}
	if !containsFold(s.CustomerSalesRep, f.CustomerSalesRep) {
		return false
	}
	if !containsFold(s.CarrierSalesRep, f.CarrierSalesRep) {
		return false
	}
	if !zipInRange(s.ShipperAddress, f.ShipperZipStart, f.ShipperZipEnd) {
		return false
	}
	if !zipInRange(s.ConsigneeAddress, f.ConsigneeZipStart, f.ConsigneeZipEnd) {
		return false
	}
	if !containsFold(s.ShipperAddress, f.ShipperCompany) {
		return false
	}
	if !containsFold(s.ConsigneeAddress, f.ConsigneeCompany) {
		return false
	}
	// Pro, pickup, PO and shipper numbers all search the poRef field; the
	// data model does not distinguish them.
	for _, ref := range []string{f.ProNumber, f.PickupNumber, f.PONumber, f.ShipperNumber} {
		if !containsFold(s.PORef, ref) {
			return false
		}
	}
	if !dateInRange(s.PickupDate, f.PickupDateFrom, f.PickupDateTo) {
		return false
	}
	if !dateInRange(s.EstimatedDelivery, f.EstimatedDeliveryFrom, f.EstimatedDeliveryTo) {
		return false
	}
	// groupSelection and regions are two independent filters over regionGroup.
	if len(f.GroupSelection) > 0 && !containsString(f.GroupSelection, s.RegionGroup) {
		return false
	}
	if len(f.Regions) > 0 && !containsString(f.Regions, s.RegionGroup) {
		return false
	}
	if len(f.Priority) > 0 && !containsPriority(f.Priority, s.Priority) {
		return false
	}
	if len(f.AppointmentStatus) > 0 && !containsAppointment(f.AppointmentStatus, s.AppointmentStatus) {
		return false
	}
	if len(f.Equipment) > 0 && !containsString(f.Equipment, s.Equipment) {
		return false
	}
	return true
}

// containsFold is the shared substring predicate: inactive when needle is
// empty, otherwise case-insensitive containment.
func containsFold(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// zipInRange extracts the first 5-digit run from address and tests it against
// [start, end]. The filter only activates when both bounds are present and
// numeric; an address without a zip passes.
func zipInRange(address, start, end string) bool {
	if start == "" || end == "" {
		return true
	}
	lo, err := strconv.Atoi(start)
	if err != nil {
		return true
	}
	hi, err := strconv.Atoi(end)
	if err != nil {
		return true
	}
	m := zipRe.FindString(address)
	if m == "" {
		return true
	}
	zip, err := strconv.Atoi(m)
	if err != nil {
		return true
	}
	return zip >= lo && zip <= hi
}

// dateInRange tests a YYYY-MM-DD value against an inclusive range. Both
// bounds are required; malformed bounds deactivate the filter, while a
// malformed shipment date inside an active range excludes the shipment so the
// outcome stays deterministic.
func dateInRange(value, from, to string) bool {
	if from == "" || to == "" {
		return true
	}
	lo, err := time.Parse(dateLayout, from)
	if err != nil {
		return true
	}
	hi, err := time.Parse(dateLayout, to)
	if err != nil {
		return true
	}
	d, err := time.Parse(dateLayout, value)
	if err != nil {
		return false
	}
	return !d.Before(lo) && !d.After(hi)
}

func containsString(list []string, v string) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func containsMode(list []models.ShipmentMode, v models.ShipmentMode) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func containsStatus(list []models.ShipmentStatus, v models.ShipmentStatus) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func containsPriority(list []models.Priority, v models.Priority) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func containsAppointment(list []models.AppointmentStatus, v models.AppointmentStatus) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
