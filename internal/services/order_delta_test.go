package services_test

import (
	"testing"

	"github.com/automatamexico/Restaurante/internal/models"
	"github.com/automatamexico/Restaurante/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestLineSnapshot(t *testing.T) {
	lines := []models.OrderLine{
		{MenuItemID: "taco", Quantity: 2, Notes: ""},
		{MenuItemID: "taco", Quantity: 1, Notes: "  sin cebolla  "},
		{MenuItemID: "agua", Quantity: 3, Notes: ""},
	}

	snapshot := services.LineSnapshot(lines)

	assert.Len(t, snapshot, 3)
	assert.Equal(t, 2, snapshot[services.LineKey{MenuItemID: "taco", Note: ""}])
	// Notes are trimmed before keying
	assert.Equal(t, 1, snapshot[services.LineKey{MenuItemID: "taco", Note: "sin cebolla"}])
	assert.Equal(t, 3, snapshot[services.LineKey{MenuItemID: "agua", Note: ""}])
}

func TestLineSnapshot_AccumulatesDuplicateKeys(t *testing.T) {
	lines := []models.OrderLine{
		{MenuItemID: "taco", Quantity: 2, Notes: "extra salsa"},
		{MenuItemID: "taco", Quantity: 3, Notes: "extra salsa "},
	}

	snapshot := services.LineSnapshot(lines)
	assert.Len(t, snapshot, 1)
	assert.Equal(t, 5, snapshot[services.LineKey{MenuItemID: "taco", Note: "extra salsa"}])
}

func TestAddedQuantities(t *testing.T) {
	prev := map[services.LineKey]int{
		{MenuItemID: "A", Note: ""}: 2,
	}
	next := map[services.LineKey]int{
		{MenuItemID: "A", Note: ""}: 5,
		{MenuItemID: "B", Note: ""}: 1,
	}

	added := services.AddedQuantities(prev, next)

	assert.Equal(t, map[services.LineKey]int{
		{MenuItemID: "A", Note: ""}: 3,
		{MenuItemID: "B", Note: ""}: 1,
	}, added)
}

func TestAddedQuantities_ExcludesUnchangedAndDecreased(t *testing.T) {
	prev := map[services.LineKey]int{
		{MenuItemID: "A", Note: ""}: 2,
		{MenuItemID: "B", Note: ""}: 4,
		{MenuItemID: "C", Note: ""}: 1,
	}
	next := map[services.LineKey]int{
		{MenuItemID: "A", Note: ""}: 2, // unchanged
		{MenuItemID: "B", Note: ""}: 3, // decreased
		// C removed entirely: produces no output
	}

	added := services.AddedQuantities(prev, next)
	assert.Empty(t, added)
}

func TestAddedQuantities_DistinctNotesAreDistinctKeys(t *testing.T) {
	prev := map[services.LineKey]int{
		{MenuItemID: "A", Note: "rare"}: 1,
	}
	next := map[services.LineKey]int{
		{MenuItemID: "A", Note: "rare"}:      1,
		{MenuItemID: "A", Note: "well done"}: 2,
	}

	added := services.AddedQuantities(prev, next)
	assert.Equal(t, map[services.LineKey]int{
		{MenuItemID: "A", Note: "well done"}: 2,
	}, added)
}
