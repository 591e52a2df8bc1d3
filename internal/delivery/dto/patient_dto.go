package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type UpdatePatientProfileRequest struct {
	PhoneNumber      string `json:"phone_number,omitempty" validate:"omitempty,max=15"`
	Age              *int   `json:"age,omitempty" validate:"omitempty,gte=0,lte=120"`
	Gender           string `json:"gender,omitempty" validate:"omitempty,oneof=Male Female Other"`
	BloodGroup       string `json:"blood_group,omitempty" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Address          string `json:"address,omitempty"`
	EmergencyContact string `json:"emergency_contact,omitempty" validate:"omitempty,max=15"`
	Description      string `json:"description,omitempty"`
	ImageURL         string `json:"image_url,omitempty" validate:"omitempty,max=255"`
}

// Response DTOs

type PatientProfileResponse struct {
	UserID           uuid.UUID `json:"user_id"`
	Username         string    `json:"username,omitempty"`
	PhoneNumber      string    `json:"phone_number,omitempty"`
	Age              int       `json:"age"`
	Gender           string    `json:"gender,omitempty"`
	BloodGroup       string    `json:"blood_group,omitempty"`
	Address          string    `json:"address,omitempty"`
	EmergencyContact string    `json:"emergency_contact,omitempty"`
	Description      string    `json:"description,omitempty"`
	ImageURL         string    `json:"image_url,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
