package tableview

import (
	"errors"

	"freightdash/models"
)

var (
	ErrColumnNotFound = errors.New("column not found")
	ErrColumnPinned   = errors.New("column cannot be moved")
	ErrColumnLocked   = errors.New("column cannot be hidden")
)

// StickyLeftOffsets returns, for each visible column, the pixel offset at
// which a pinned column sits: the cumulative widths of all earlier pinned
// columns. Non-pinned columns get 0.
func StickyLeftOffsets(visible []models.TableColumn) []int {
	offsets := make([]int, len(visible))
	left := 0
	for i, c := range visible {
		if c.Pinned() {
			offsets[i] = left
			left += c.WidthPx
		}
	}
	return offsets
}

// MoveColumn removes the column with id from its slot and reinserts it at the
// target column's index, returning a new slice. The select column and locked
// columns are not draggable, and nothing may be dropped onto them.
func MoveColumn(columns []models.TableColumn, id, targetID string) ([]models.TableColumn, error) {
	if id == targetID {
		return columns, nil
	}
	from, to := -1, -1
	for i, c := range columns {
		if c.ID == id {
			from = i
		}
		if c.ID == targetID {
			to = i
		}
	}
	if from < 0 || to < 0 {
		return nil, ErrColumnNotFound
	}
	if columns[from].Locked || columns[from].ID == "select" {
		return nil, ErrColumnPinned
	}
	if columns[to].Locked || columns[to].ID == "select" {
		return nil, ErrColumnPinned
	}

	out := make([]models.TableColumn, 0, len(columns))
	out = append(out, columns[:from]...)
	out = append(out, columns[from+1:]...)
	moved := columns[from]
	out = append(out[:to], append([]models.TableColumn{moved}, out[to:]...)...)
	return out, nil
}

// SetVisible toggles a column's visibility. Locked columns stay visible.
func SetVisible(columns []models.TableColumn, id string, visible bool) ([]models.TableColumn, error) {
	out := make([]models.TableColumn, len(columns))
	copy(out, columns)
	for i := range out {
		if out[i].ID != id {
			continue
		}
		if out[i].Locked && !visible {
			return nil, ErrColumnLocked
		}
		out[i].Visible = visible
		return out, nil
	}
	return nil, ErrColumnNotFound
}

// SetSticky toggles the user pin. The locked flag is untouched; a locked
// column renders pinned either way.
func SetSticky(columns []models.TableColumn, id string, sticky bool) ([]models.TableColumn, error) {
	out := make([]models.TableColumn, len(columns))
	copy(out, columns)
	for i := range out {
		if out[i].ID == id {
			out[i].Sticky = sticky
			return out, nil
		}
	}
	return nil, ErrColumnNotFound
}

// ValidateColumns rejects configurations that hide or unpin locked columns.
// Unknown keys are allowed; they render as empty cells.
func ValidateColumns(columns []models.TableColumn) error {
	for _, c := range columns {
		if c.Locked && !c.Visible {
			return ErrColumnLocked
		}
	}
	return nil
}
