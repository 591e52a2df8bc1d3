package dto

import "time"

// Inventory actions
const (
	InventoryActionAdd    = "add"
	InventoryActionRemove = "remove"
	InventoryActionSet    = "set"
)

// Request DTOs

type InventoryActionRequest struct {
	Action     string `json:"action" validate:"required,oneof=add remove set"`
	BloodGroup string `json:"blood_group" validate:"required,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Units      int    `json:"units" validate:"gte=0"`
}

// Response DTOs

type InventoryResponse struct {
	BloodGroup string    `json:"blood_group"`
	Units      int       `json:"units"`
	LowStock   bool      `json:"low_stock"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type InventoryListResponse struct {
	Items      []InventoryResponse `json:"items"`
	TotalUnits int                 `json:"total_units"`
}
