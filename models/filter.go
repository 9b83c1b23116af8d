package models

// FilterOptions is a sparse set of filter criteria. A zero-value field
// (empty string or empty slice) means the predicate is inactive. The paired
// range fields (zip start/end, date from/to) only activate when both bounds
// of the pair are set.
type FilterOptions struct {
	LoadNumber            string              `json:"loadNumber,omitempty"`
	ShipperZipStart       string              `json:"shipperZipStart,omitempty"`
	ShipperZipEnd         string              `json:"shipperZipEnd,omitempty"`
	ConsigneeZipStart     string              `json:"consigneeZipStart,omitempty"`
	ConsigneeZipEnd       string              `json:"consigneeZipEnd,omitempty"`
	ShipperCompany        string              `json:"shipperCompany,omitempty"`
	ConsigneeCompany      string              `json:"consigneeCompany,omitempty"`
	CarrierName           string              `json:"carrierName,omitempty"`
	ProNumber             string              `json:"proNumber,omitempty"`
	PickupNumber          string              `json:"pickupNumber,omitempty"`
	PONumber              string              `json:"poNumber,omitempty"`
	ShipperNumber         string              `json:"shipperNumber,omitempty"`
	ShipmentMode          []ShipmentMode      `json:"shipmentMode,omitempty"`
	PickupDateFrom        string              `json:"pickupDateFrom,omitempty"`
	PickupDateTo          string              `json:"pickupDateTo,omitempty"`
	EstimatedDeliveryFrom string              `json:"estimatedDeliveryFrom,omitempty"`
	EstimatedDeliveryTo   string              `json:"estimatedDeliveryTo,omitempty"`
	GroupSelection        []string            `json:"groupSelection,omitempty"`
	Regions               []string            `json:"regions,omitempty"`
	CustomerSalesRep      string              `json:"customerSalesRep,omitempty"`
	CarrierSalesRep       string              `json:"carrierSalesRep,omitempty"`
	ShipmentStatus        []ShipmentStatus    `json:"shipmentStatus,omitempty"`
	Priority              []Priority          `json:"priority,omitempty"`
	AppointmentStatus     []AppointmentStatus `json:"appointmentStatus,omitempty"`
	Equipment             []string            `json:"equipment,omitempty"`
}

// IsZero reports whether no predicate is active.
func (f FilterOptions) IsZero() bool {
	return f.LoadNumber == "" && f.ShipperZipStart == "" && f.ShipperZipEnd == "" &&
		f.ConsigneeZipStart == "" && f.ConsigneeZipEnd == "" &&
		f.ShipperCompany == "" && f.ConsigneeCompany == "" && f.CarrierName == "" &&
		f.ProNumber == "" && f.PickupNumber == "" && f.PONumber == "" && f.ShipperNumber == "" &&
		len(f.ShipmentMode) == 0 &&
		f.PickupDateFrom == "" && f.PickupDateTo == "" &&
		f.EstimatedDeliveryFrom == "" && f.EstimatedDeliveryTo == "" &&
		len(f.GroupSelection) == 0 && len(f.Regions) == 0 &&
		f.CustomerSalesRep == "" && f.CarrierSalesRep == "" &&
		len(f.ShipmentStatus) == 0 && len(f.Priority) == 0 &&
		len(f.AppointmentStatus) == 0 && len(f.Equipment) == 0
}

// FilterPreset is a named, saved FilterOptions snapshot. Presets are
// read-only once created.
type FilterPreset struct {
	ID      string        `json:"id" bson:"_id"`
	Name    string        `json:"name" bson:"name"`
	Filters FilterOptions `json:"filters" bson:"filters"`
}
