package models

type ShipmentStatus string

const (
	StatusNotSpecified         ShipmentStatus = "Not Specified"
	StatusQuoted               ShipmentStatus = "Quoted"
	StatusTendered             ShipmentStatus = "Tendered"
	StatusBooked               ShipmentStatus = "Booked"
	StatusDispatched           ShipmentStatus = "Dispatched"
	StatusLoading              ShipmentStatus = "Loading"
	StatusInTransit            ShipmentStatus = "In Transit"
	StatusOutForDelivery       ShipmentStatus = "Out For Delivery"
	StatusRefusedDelivery      ShipmentStatus = "Refused Delivery"
	StatusInDisposition        ShipmentStatus = "In Disposition"
	StatusDispositioned        ShipmentStatus = "Dispositioned"
	StatusMissedDelivery       ShipmentStatus = "Missed Delivery"
	StatusLoadingUnloading     ShipmentStatus = "Loading/Unloading"
	StatusUnloading            ShipmentStatus = "Unloading"
	StatusDelivered            ShipmentStatus = "Delivered"
	StatusDeliveredOSD         ShipmentStatus = "Delivered OS&D"
	StatusCompleted            ShipmentStatus = "Completed"
	StatusHold                 ShipmentStatus = "Hold"
	StatusTransferred          ShipmentStatus = "Transferred"
	StatusCancelledWithCharges ShipmentStatus = "Cancelled With Charges"
	StatusCanceled             ShipmentStatus = "Canceled"
)

// AllStatuses lists every shipment lifecycle state, in lifecycle order.
var AllStatuses = []ShipmentStatus{
	StatusNotSpecified, StatusQuoted, StatusTendered, StatusBooked,
	StatusDispatched, StatusLoading, StatusInTransit, StatusOutForDelivery,
	StatusRefusedDelivery, StatusInDisposition, StatusDispositioned,
	StatusMissedDelivery, StatusLoadingUnloading, StatusUnloading,
	StatusDelivered, StatusDeliveredOSD, StatusCompleted, StatusHold,
	StatusTransferred, StatusCancelledWithCharges, StatusCanceled,
}

type ShipmentMode string

const (
	ModeLTL        ShipmentMode = "LTL"
	ModeFTL        ShipmentMode = "FTL"
	ModeIntermodal ShipmentMode = "Intermodal"
	ModeAir        ShipmentMode = "Air"
	ModeOcean      ShipmentMode = "Ocean"
	ModeDrayage    ShipmentMode = "Drayage"
)

var AllModes = []ShipmentMode{ModeLTL, ModeFTL, ModeIntermodal, ModeAir, ModeOcean, ModeDrayage}

type AppointmentStatus string

const (
	AppointmentConfirmed   AppointmentStatus = "Confirmed"
	AppointmentRequested   AppointmentStatus = "Requested"
	AppointmentNotRequired AppointmentStatus = "Not Required"
	AppointmentPending     AppointmentStatus = "Pending"
)

type Priority string

const (
	PriorityHot      Priority = "HOT"
	PriorityStandard Priority = "Standard"
	PriorityTrace    Priority = "Trace"
)

// TemperatureRange is the equipment temperature band in Fahrenheit.
type TemperatureRange struct {
	Min int `json:"min" bson:"min" db:"temp_min"`
	Max int `json:"max" bson:"max" db:"temp_max"`
}

// Documents maps a document kind to its stored filename. Every field is
// optional; absent means the document has not been received.
type Documents struct {
	BOL     string `json:"bol,omitempty" bson:"bol,omitempty" db:"doc_bol"`
	POD     string `json:"pod,omitempty" bson:"pod,omitempty" db:"doc_pod"`
	Invoice string `json:"invoice,omitempty" bson:"invoice,omitempty" db:"doc_invoice"`
}

// Shipment is one freight load record. Addresses are free text in the form
// "Company Name - Street, City, ST 12345"; the 5-digit zip embedded there is
// what the zip-range filters extract.
type Shipment struct {
	ID                 string            `json:"id" bson:"_id" db:"id"`
	LoadNumber         int               `json:"loadNumber" bson:"load_number" db:"load_number"`
	Customer           string            `json:"customer" bson:"customer" db:"customer"`
	ShipperAddress     string            `json:"shipperAddress" bson:"shipper_address" db:"shipper_address"`
	ConsigneeAddress   string            `json:"consigneeAddress" bson:"consignee_address" db:"consignee_address"`
	AppointmentStatus  AppointmentStatus `json:"appointmentStatus" bson:"appointment_status" db:"appointment_status"`
	Priority           Priority          `json:"priority" bson:"priority" db:"priority"`
	PickupDate         string            `json:"pickupDate" bson:"pickup_date" db:"pickup_date"`
	EstimatedDelivery  string            `json:"estimatedDelivery" bson:"estimated_delivery" db:"estimated_delivery"`
	Carrier            string            `json:"carrier" bson:"carrier" db:"carrier"`
	PORef              string            `json:"poRef" bson:"po_ref" db:"po_ref"`
	Cost               float64           `json:"cost" bson:"cost" db:"cost"`
	MaxBuy             float64           `json:"maxBuy" bson:"max_buy" db:"max_buy"`
	TargetRate         float64           `json:"targetRate" bson:"target_rate" db:"target_rate"`
	Billed             float64           `json:"billed" bson:"billed" db:"billed"`
	Margin             float64           `json:"margin" bson:"margin" db:"margin"`
	Weight             int               `json:"weight" bson:"weight" db:"weight"`
	Miles              int               `json:"miles" bson:"miles" db:"miles"`
	RegionGroup        string            `json:"regionGroup" bson:"region_group" db:"region_group"`
	ProductDescription string            `json:"productDescription" bson:"product_description" db:"product_description"`
	Mode               ShipmentMode      `json:"mode" bson:"mode" db:"mode"`
	Equipment          string            `json:"equipment" bson:"equipment" db:"equipment"`
	Temperature        TemperatureRange  `json:"temperature" bson:"temperature" db:"-"`
	LastTrackingNote   string            `json:"lastTrackingNote" bson:"last_tracking_note" db:"last_tracking_note"`
	LastEdited         string            `json:"lastEdited" bson:"last_edited" db:"last_edited"`
	CustomerSalesRep   string            `json:"customerSalesRep" bson:"customer_sales_rep" db:"customer_sales_rep"`
	CarrierSalesRep    string            `json:"carrierSalesRep" bson:"carrier_sales_rep" db:"carrier_sales_rep"`
	AssignedTo         string            `json:"assignedTo" bson:"assigned_to" db:"assigned_to"`
	PieceCount         string            `json:"pieceCount" bson:"piece_count" db:"piece_count"`
	Status             ShipmentStatus    `json:"status" bson:"status" db:"status"`
	Documents          Documents         `json:"documents,omitempty" bson:"documents,omitempty" db:"-"`
}
