package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type UpdateDonorProfileRequest struct {
	Age         *int   `json:"age,omitempty" validate:"omitempty,gte=1,lte=120"`
	BloodGroup  string `json:"blood_group,omitempty" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	PhoneNumber string `json:"phone_number,omitempty" validate:"omitempty,max=15"`
}

// Response DTOs

type DonorProfileResponse struct {
	UserID           uuid.UUID `json:"user_id"`
	Username         string    `json:"username,omitempty"`
	Age              *int      `json:"age,omitempty"`
	BloodGroup       string    `json:"blood_group"`
	Availability     bool      `json:"availability"`
	LastDonationDate *string   `json:"last_donation_date,omitempty"`
	TotalDonations   int       `json:"total_donations"`
	PhoneNumber      string    `json:"phone_number,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type DonorDashboardResponse struct {
	Profile           DonorProfileResponse `json:"profile"`
	Eligible          bool                 `json:"eligible"`
	EligibilityReason string               `json:"eligibility_reason"`
	UpcomingDonations []ScheduleResponse   `json:"upcoming_donations"`
	RecentDonations   []ScheduleResponse   `json:"recent_donations"`
}

type AvailabilityResponse struct {
	Availability bool `json:"availability"`
}
