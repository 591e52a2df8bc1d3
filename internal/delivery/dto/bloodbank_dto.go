package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type UpdateBloodBankProfileRequest struct {
	Name             string `json:"name" validate:"required,max=150"`
	ContactNumber    string `json:"contact_number,omitempty" validate:"omitempty,max=15"`
	Address          string `json:"address,omitempty"`
	LicenseNumber    string `json:"license_number,omitempty" validate:"omitempty,max=100"`
	OperatingHours   string `json:"operating_hours,omitempty" validate:"omitempty,max=100"`
	EmergencyContact string `json:"emergency_contact,omitempty" validate:"omitempty,max=15"`
	Description      string `json:"description,omitempty"`
	ImageURL         string `json:"image_url,omitempty" validate:"omitempty,max=255"`
}

// Response DTOs

type BloodBankResponse struct {
	UserID           uuid.UUID `json:"user_id"`
	Name             string    `json:"name"`
	ContactNumber    string    `json:"contact_number,omitempty"`
	Address          string    `json:"address,omitempty"`
	LicenseNumber    string    `json:"license_number,omitempty"`
	OperatingHours   string    `json:"operating_hours,omitempty"`
	EmergencyContact string    `json:"emergency_contact,omitempty"`
	Description      string    `json:"description,omitempty"`
	ImageURL         string    `json:"image_url,omitempty"`
	LocationName     string    `json:"location_name,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type BloodBankDashboardResponse struct {
	Profile           BloodBankResponse   `json:"profile"`
	TotalUnits        int                 `json:"total_units"`
	LowStockAlerts    []InventoryResponse `json:"low_stock_alerts"`
	TodayDonations    []ScheduleResponse  `json:"today_donations"`
	UpcomingDonations []ScheduleResponse  `json:"upcoming_donations"`
	Inventory         []InventoryResponse `json:"inventory"`
}
