package models

// TableColumn describes one dashboard column. Key names the Shipment
// attribute the column renders. Locked columns cannot be hidden or moved and
// always render pinned; Sticky is the user-toggleable pin. WidthPx feeds the
// cumulative left offset of pinned columns.
type TableColumn struct {
	ID         string `json:"id" bson:"id"`
	Label      string `json:"label" bson:"label"`
	Key        string `json:"key" bson:"key"`
	Visible    bool   `json:"visible" bson:"visible"`
	Sortable   bool   `json:"sortable" bson:"sortable"`
	Filterable bool   `json:"filterable" bson:"filterable"`
	WidthPx    int    `json:"width" bson:"width"`
	Sticky     bool   `json:"sticky" bson:"sticky"`
	Locked     bool   `json:"locked" bson:"locked"`
}

// Pinned reports whether the column renders stuck to the leading edge.
// Locked implies pinned regardless of the Sticky flag.
func (c TableColumn) Pinned() bool {
	return c.Sticky || c.Locked
}

// DefaultColumns returns the stock column layout. The select checkbox,
// status/actions and documents columns are locked to the leading edge;
// loadNumber starts sticky but can be unpinned.
func DefaultColumns() []TableColumn {
	return []TableColumn{
		{ID: "select", Label: "", Key: "id", Visible: true, WidthPx: 40, Sticky: true, Locked: true},
		{ID: "statusActions", Label: "Status & Actions", Key: "status", Visible: true, Sortable: true, WidthPx: 140, Sticky: true, Locked: true},
		{ID: "loadNumber", Label: "Load #", Key: "loadNumber", Visible: true, Sortable: true, Filterable: true, WidthPx: 80, Sticky: true},
		{ID: "documents", Label: "Documents", Key: "documents", Visible: true, WidthPx: 120, Sticky: true, Locked: true},
		{ID: "customer", Label: "Customer", Key: "customer", Visible: true, Sortable: true, Filterable: true, WidthPx: 100},
		{ID: "shipperAddress", Label: "Shipper Address", Key: "shipperAddress", Visible: true, Sortable: true, Filterable: true, WidthPx: 100},
		{ID: "consigneeAddress", Label: "Consignee Address", Key: "consigneeAddress", Visible: true, Sortable: true, Filterable: true, WidthPx: 100},
		{ID: "appointmentStatus", Label: "Appointment Status", Key: "appointmentStatus", Visible: true, Sortable: true, Filterable: true, WidthPx: 90},
		{ID: "priority", Label: "Priority", Key: "priority", Visible: true, Sortable: true, Filterable: true, WidthPx: 70},
		{ID: "pickupDate", Label: "Pickup Date", Key: "pickupDate", Visible: true, Sortable: true, Filterable: true, WidthPx: 80},
		{ID: "estimatedDelivery", Label: "Est. Delivery", Key: "estimatedDelivery", Visible: true, Sortable: true, Filterable: true, WidthPx: 80},
		{ID: "carrier", Label: "Carrier", Key: "carrier", Visible: true, Sortable: true, Filterable: true, WidthPx: 100},
		{ID: "poRef", Label: "PO Ref #", Key: "poRef", Visible: true, Sortable: true, Filterable: true, WidthPx: 70},
		{ID: "cost", Label: "Cost", Key: "cost", Visible: true, Sortable: true, Filterable: true, WidthPx: 60},
		{ID: "maxBuy", Label: "Max Buy", Key: "maxBuy", Visible: true, Sortable: true, Filterable: true, WidthPx: 70},
		{ID: "targetRate", Label: "Target Rate", Key: "targetRate", Visible: true, Sortable: true, Filterable: true, WidthPx: 80},
		{ID: "billed", Label: "Billed", Key: "billed", Visible: true, Sortable: true, Filterable: true, WidthPx: 60},
		{ID: "margin", Label: "Margin", Key: "margin", Visible: true, Sortable: true, Filterable: true, WidthPx: 60},
		{ID: "weight", Label: "Weight", Key: "weight", Visible: true, Sortable: true, Filterable: true, WidthPx: 60},
		{ID: "miles", Label: "Miles", Key: "miles", Visible: true, Sortable: true, Filterable: true, WidthPx: 50},
		{ID: "regionGroup", Label: "Region Group", Key: "regionGroup", Visible: true, Sortable: true, Filterable: true, WidthPx: 90},
		{ID: "productDescription", Label: "Product Description", Key: "productDescription", Visible: true, Sortable: true, Filterable: true, WidthPx: 100},
		{ID: "mode", Label: "Mode", Key: "mode", Visible: true, Sortable: true, Filterable: true, WidthPx: 70},
		{ID: "equipment", Label: "Equipment", Key: "equipment", Visible: true, Sortable: true, Filterable: true, WidthPx: 70},
		{ID: "temperature", Label: "Temperature", Key: "temperature", Visible: true, Sortable: true, Filterable: true, WidthPx: 90},
		{ID: "lastTrackingNote", Label: "Last Tracking Note", Key: "lastTrackingNote", Visible: true, Sortable: true, Filterable: true, WidthPx: 120},
		{ID: "lastEdited", Label: "Last Edited", Key: "lastEdited", Visible: true, Sortable: true, Filterable: true, WidthPx: 100},
		{ID: "customerSalesRep", Label: "Customer Sales Rep", Key: "customerSalesRep", Visible: true, Sortable: true, Filterable: true, WidthPx: 100},
		{ID: "carrierSalesRep", Label: "Carrier Sales Rep", Key: "carrierSalesRep", Visible: true, Sortable: true, Filterable: true, WidthPx: 100},
		{ID: "assignedTo", Label: "Assigned To", Key: "assignedTo", Visible: true, Sortable: true, Filterable: true, WidthPx: 90},
		{ID: "pieceCount", Label: "Piece Count", Key: "pieceCount", Visible: true, Sortable: true, Filterable: true, WidthPx: 70},
	}
}
