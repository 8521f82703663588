package services

import (
	"strings"

	"github.com/automatamexico/Restaurante/internal/models"
)

// LineKey identifies a line for delta purposes. Two lines for the same menu
// item with different notes are distinct keys and tracked independently.
type LineKey struct {
	MenuItemID string
	Note       string
}

// LineSnapshot builds a quantity map keyed by (menu item, trimmed note) from a
// line set. Lines sharing a key accumulate.
func LineSnapshot(lines []models.OrderLine) map[LineKey]int {
	snapshot := make(map[LineKey]int, len(lines))
	for _, line := range lines {
		key := LineKey{MenuItemID: line.MenuItemID, Note: strings.TrimSpace(line.Notes)}
		snapshot[key] += line.Quantity
	}
	return snapshot
}

// AddedQuantities compares two snapshots and returns only the quantity added
// per key. Unchanged and decreased keys are excluded, and keys present only in
// the previous snapshot (removed lines) produce no output. The result decides
// what goes on a follow-up kitchen notice; it never touches the stored line
// set, which is always fully replaced on edit.
func AddedQuantities(prev, next map[LineKey]int) map[LineKey]int {
	added := make(map[LineKey]int)
	for key, newQty := range next {
		if delta := newQty - prev[key]; delta > 0 {
			added[key] = delta
		}
	}
	return added
}
