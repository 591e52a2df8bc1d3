package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateScheduleRequest struct {
	BloodBankID uuid.UUID `json:"blood_bank_id" validate:"required"`
	// ScheduledAt uses the HTML datetime-local format: YYYY-MM-DDTHH:MM
	ScheduledAt string `json:"scheduled_at" validate:"required"`
	Notes       string `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

// Response DTOs

type ScheduleResponse struct {
	ID            uuid.UUID `json:"id"`
	DonorID       uuid.UUID `json:"donor_id"`
	BloodBankID   uuid.UUID `json:"blood_bank_id"`
	DonorUsername string    `json:"donor_username,omitempty"`
	BloodGroup    string    `json:"blood_group,omitempty"`
	BloodBankName string    `json:"blood_bank_name,omitempty"`
	ScheduledAt   time.Time `json:"scheduled_at"`
	Status        string    `json:"status"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ScheduleListResponse struct {
	Schedules []ScheduleResponse `json:"schedules"`
	Total     int                `json:"total"`
}

type ScheduledDonorsResponse struct {
	Scheduled []ScheduleResponse `json:"scheduled"`
	Completed []ScheduleResponse `json:"completed"`
}

type NearbyBloodBankResponse struct {
	BloodBank  BloodBankResponse `json:"blood_bank"`
	DistanceKm float64           `json:"distance_km"`
}

type NearbyBloodBankListResponse struct {
	BloodBanks []NearbyBloodBankResponse `json:"blood_banks"`
	Total      int                       `json:"total"`
}
