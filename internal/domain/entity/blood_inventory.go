package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// LowStockThreshold is the default unit count below which a blood group is
// reported as low stock.
const LowStockThreshold = 10

// ErrInsufficientStock is returned when a removal would drive a unit
// counter below zero. The row is left unchanged.
var ErrInsufficientStock = errors.New("not enough units in inventory")

// BloodInventory is a per-(blood bank, blood group) unit counter. The pair
// is unique; rows are created on demand when units are first added.
type BloodInventory struct {
	ID          int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	BloodBankID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:ux_inventory_bank_group" json:"blood_bank_id"`
	BloodGroup  BloodGroup `gorm:"type:varchar(3);not null;uniqueIndex:ux_inventory_bank_group" json:"blood_group"`
	Units       int        `gorm:"not null;default:0;check:units >= 0" json:"units"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	BloodBank BloodBank `gorm:"foreignKey:BloodBankID;references:UserID" json:"blood_bank,omitempty"`
}

func (BloodInventory) TableName() string {
	return "blood_inventories"
}

// Add increments the unit counter by n.
func (i *BloodInventory) Add(n int) {
	i.Units += n
}

// Remove decrements the unit counter by n. Units never go negative: if n
// exceeds the current count the counter is left unchanged and
// ErrInsufficientStock is returned.
func (i *BloodInventory) Remove(n int) error {
	if n > i.Units {
		return ErrInsufficientStock
	}
	i.Units -= n
	return nil
}

// IsLowStock reports whether units are strictly below the threshold.
func (i *BloodInventory) IsLowStock(threshold int) bool {
	return i.Units < threshold
}
