package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInventoryAdd(t *testing.T) {
	item := BloodInventory{Units: 5}
	item.Add(3)
	assert.Equal(t, 8, item.Units)
}

func TestInventoryRemove(t *testing.T) {
	item := BloodInventory{Units: 5}

	assert.NoError(t, item.Remove(3))
	assert.Equal(t, 2, item.Units)

	assert.NoError(t, item.Remove(2))
	assert.Equal(t, 0, item.Units)
}

func TestInventoryRemove_InsufficientLeavesUnitsUnchanged(t *testing.T) {
	item := BloodInventory{Units: 5}

	err := item.Remove(6)
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Equal(t, 5, item.Units)
}

func TestInventoryIsLowStock(t *testing.T) {
	cases := []struct {
		units int
		want  bool
	}{
		{0, true},
		{9, true},
		{10, false},
		{11, false},
	}
	for _, c := range cases {
		item := BloodInventory{Units: c.units}
		if got := item.IsLowStock(LowStockThreshold); got != c.want {
			t.Errorf("IsLowStock with %d units = %v, want %v", c.units, got, c.want)
		}
	}
}

func TestBloodGroupValid(t *testing.T) {
	for _, g := range AllBloodGroups {
		assert.True(t, g.Valid(), "expected %s to be valid", g)
	}

	for _, raw := range []string{"", "C+", "o+", "AB", "A +"} {
		assert.False(t, BloodGroup(raw).Valid(), "expected %q to be invalid", raw)
	}
}
