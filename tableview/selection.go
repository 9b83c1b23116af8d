package tableview

import "freightdash/models"

// Selection holds the checked shipment ids in check order. Filter changes do
// not prune stale ids; callers wanting that behavior call Prune explicitly.
type Selection struct {
	ids []string
}

func NewSelection() *Selection { return &Selection{} }

// Toggle adds the id if absent, removes it if present.
func (sel *Selection) Toggle(id string) {
	for i, v := range sel.ids {
		if v == id {
			sel.ids = append(sel.ids[:i], sel.ids[i+1:]...)
			return
		}
	}
	sel.ids = append(sel.ids, id)
}

// SelectAll replaces the selection with exactly the ids of the given view's
// rows, in view order. The view is the currently filtered and sorted set, not
// the full dataset.
func (sel *Selection) SelectAll(v View) {
	sel.ids = make([]string, len(v.Rows))
	for i, s := range v.Rows {
		sel.ids[i] = s.ID
	}
}

func (sel *Selection) Clear() { sel.ids = nil }

func (sel *Selection) Contains(id string) bool {
	for _, v := range sel.ids {
		if v == id {
			return true
		}
	}
	return false
}

func (sel *Selection) Len() int { return len(sel.ids) }

// IDs returns a copy of the selected ids in selection order.
func (sel *Selection) IDs() []string {
	out := make([]string, len(sel.ids))
	copy(out, sel.ids)
	return out
}

// Prune drops ids not present in the given shipments.
func (sel *Selection) Prune(shipments []models.Shipment) {
	present := make(map[string]bool, len(shipments))
	for _, s := range shipments {
		present[s.ID] = true
	}
	kept := sel.ids[:0]
	for _, id := range sel.ids {
		if present[id] {
			kept = append(kept, id)
		}
	}
	sel.ids = kept
}
