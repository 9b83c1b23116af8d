package tableview

import "freightdash/models"

// statusActions maps each lifecycle state to its ordered action list. The
// shape of this table encodes the shipment lifecycle; callers treat the
// actions as opaque named operations.
var statusActions = map[models.ShipmentStatus][]string{
	models.StatusNotSpecified:         {"Book", "Quote", "Run Rates", "Source Capacity", "Duplicate", "Exact Duplicate", "Cancel Load", "Email Notifications"},
	models.StatusQuoted:               {"Book", "Quote", "Run Rates", "Source Capacity", "Duplicate", "Exact Duplicate", "Cancel Load", "Email Notifications"},
	models.StatusTendered:             {"Run Rates", "Source Capacity", "Duplicate", "Exact Duplicate", "Cancel Load", "Email Notifications"},
	models.StatusBooked:               {"Quote", "Dispatch", "Run Rates", "Source Capacity", "Duplicate", "Exact Duplicate", "Cancel Load", "Email Notifications"},
	models.StatusDispatched:           {"Book", "Quote", "Pickup", "Run Rates", "Source Capacity", "Milestone Update", "Duplicate", "Exact Duplicate", "Cancel Load", "Email Notifications"},
	models.StatusLoading:              {"Out For Delivery", "In Disposition", "Deliver", "Not Picked Up", "Run Rates", "Source Capacity", "Milestone Update", "Duplicate", "Exact Duplicate", "Cancel Load", "Email Notifications"},
	models.StatusInTransit:            {"Out For Delivery", "In Disposition", "Deliver", "Not Picked Up", "Schedule Appointment", "Run Rates", "Source Capacity", "Milestone Update", "Create Invoice", "Duplicate", "Exact Duplicate", "Cancel Load", "Email Notifications"},
	models.StatusOutForDelivery:       {"In Disposition", "Deliver", "In-Transit", "Not Picked Up", "Run Rates", "Source Capacity", "Milestone Update", "Create Invoice", "Duplicate", "Exact Duplicate", "Cancel Load", "Email Notifications"},
	models.StatusRefusedDelivery:      {"Not Delivered", "In Disposition", "Deliver", "Run Rates", "Source Capacity", "Milestone Update", "Create Invoice", "Duplicate", "Exact Duplicate", "Cancel Load", "Email Notifications"},
	models.StatusInDisposition:        {"Dispositioned", "Deliver", "Run Rates", "Source Capacity", "Milestone Update", "Create Invoice", "Duplicate", "Exact Duplicate", "Cancel Load", "Email Notifications"},
	models.StatusDispositioned:        {"Deliver", "Run Rates", "Source Capacity", "Milestone Update", "Create Invoice", "Duplicate", "Exact Duplicate", "Cancel Load", "Email Notifications"},
	models.StatusMissedDelivery:       {"Not Delivered", "Out For Delivery", "In Disposition", "Deliver", "In-Transit", "Not Picked Up", "Run Rates", "Source Capacity", "Milestone Update", "Create Invoice", "Duplicate", "Exact Duplicate", "Cancel Load", "Email Notifications"},
	models.StatusLoadingUnloading:     {"Run Rates", "Source Capacity", "Milestone Update", "Create Invoice", "Duplicate", "Exact Duplicate", "Cancel Load", "Email Notifications"},
	models.StatusUnloading:            {"Run Rates", "Source Capacity", "Milestone Update", "Create Invoice", "Duplicate", "Exact Duplicate", "Cancel Load", "Email Notifications"},
	models.StatusDelivered:            {"Run Rates", "Source Capacity", "Milestone Update", "Create Invoice", "Duplicate", "Exact Duplicate", "Cancel Load", "Email Notifications"},
	models.StatusDeliveredOSD:         {"Run Rates", "Source Capacity", "Milestone Update", "Create Invoice", "Duplicate", "Exact Duplicate", "Cancel Load", "Email Notifications"},
	models.StatusCompleted:            {"Source Capacity", "Milestone Update", "Duplicate", "Exact Duplicate", "Cancel Load", "Email Notifications"},
	models.StatusHold:                 {"Not Delivered", "Source Capacity", "Milestone Update", "Duplicate", "Exact Duplicate", "Cancel Load", "Email Notifications"},
	models.StatusTransferred:          {"Book", "Source Capacity", "Milestone Update", "Duplicate", "Exact Duplicate", "Cancel Load", "Email Notifications"},
	models.StatusCancelledWithCharges: {"Reinstate", "Source Capacity", "Milestone Update", "Duplicate", "Exact Duplicate", "Email Notifications"},
	models.StatusCanceled:             {"Reinstate", "Source Capacity", "Milestone Update", "Duplicate", "Exact Duplicate", "Email Notifications"},
}

// ActionsForStatus returns the ordered allowed actions for a status. Unknown
// statuses fall back to a single View action.
func ActionsForStatus(status models.ShipmentStatus) []string {
	if actions, ok := statusActions[status]; ok {
		out := make([]string, len(actions))
		copy(out, actions)
		return out
	}
	return []string{"View"}
}

// BulkCheck is the outcome of the bulk-action eligibility gate.
type BulkCheck struct {
	OK      bool                  `json:"ok"`
	Status  models.ShipmentStatus `json:"status,omitempty"`
	Message string                `json:"message,omitempty"`
}

// CheckBulkAction enforces the two eligibility rules: at least one shipment
// selected, and all selected shipments sharing one status. Selected ids with
// no matching shipment are ignored, so a selection gone stale across filter
// changes cannot poison the check.
func CheckBulkAction(shipments []models.Shipment, selectedIDs []string) BulkCheck {
	if len(selectedIDs) == 0 {
		return BulkCheck{Message: "No shipments selected."}
	}

	byID := make(map[string]models.ShipmentStatus, len(shipments))
	for _, s := range shipments {
		byID[s.ID] = s.Status
	}

	var status models.ShipmentStatus
	found := false
	for _, id := range selectedIDs {
		st, ok := byID[id]
		if !ok {
			continue
		}
		if !found {
			status = st
			found = true
			continue
		}
		if st != status {
			return BulkCheck{Message: "Bulk actions can only be performed on shipments with the same status. Please select shipments that all have the same status."}
		}
	}
	if !found {
		return BulkCheck{Message: "No shipments selected."}
	}
	return BulkCheck{OK: true, Status: status}
}
