package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Donation eligibility rules
const (
	MinDonorAge          = 18
	MaxDonorAge          = 65
	DonationCooldownDays = 90
)

// DonorProfile represents donor-specific profile data. It is created
// alongside the donor user with a placeholder blood group; age and phone
// are filled in later by the donor.
type DonorProfile struct {
	UserID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"user_id"`
	Age              *int       `json:"age,omitempty"`
	BloodGroup       BloodGroup `gorm:"type:varchar(3);not null;default:'O+';index" json:"blood_group"`
	Availability     *bool      `gorm:"not null;default:true" json:"availability"`
	LastDonationDate *time.Time `gorm:"type:date" json:"last_donation_date,omitempty"`
	TotalDonations   int        `gorm:"not null;default:0" json:"total_donations"`
	PhoneNumber      string     `gorm:"type:varchar(15)" json:"phone_number,omitempty"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User      User               `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Schedules []DonationSchedule `gorm:"foreignKey:DonorID" json:"schedules,omitempty"`
}

func (DonorProfile) TableName() string {
	return "donor_profiles"
}

// IsAvailable reports the availability toggle state.
func (p *DonorProfile) IsAvailable() bool {
	return p.Availability != nil && *p.Availability
}

// EligibleAt evaluates the donation eligibility rules against the given day
// and returns the verdict with a human-readable reason. Checks run in order
// and the first failing one is reported:
//  1. availability toggle must be ON
//  2. age must be set
//  3. age must be within [18, 65]
//  4. at least 90 days must have passed since the last donation, if any
func (p *DonorProfile) EligibleAt(today time.Time) (bool, string) {
	if !p.IsAvailable() {
		return false, "Availability is turned OFF"
	}

	if p.Age == nil {
		return false, "Please update your age in profile"
	}

	if *p.Age < MinDonorAge || *p.Age > MaxDonorAge {
		return false, fmt.Sprintf("Age must be between %d-%d years", MinDonorAge, MaxDonorAge)
	}

	if p.LastDonationDate != nil {
		if remaining := CooldownRemaining(*p.LastDonationDate, today); remaining > 0 {
			return false, fmt.Sprintf("Must wait %d more days before next donation", remaining)
		}
	}

	return true, "Eligible to donate"
}

// Eligible evaluates eligibility as of now.
func (p *DonorProfile) Eligible() (bool, string) {
	return p.EligibleAt(time.Now())
}

// CooldownRemaining returns how many days are left of the 90-day cooldown
// after a donation on lastDonation, as seen from today. Zero means the
// cooldown has fully elapsed. Both arguments are treated as calendar dates.
func CooldownRemaining(lastDonation, today time.Time) int {
	elapsed := daysBetween(lastDonation, today)
	if elapsed >= DonationCooldownDays {
		return 0
	}
	return DonationCooldownDays - elapsed
}

// daysBetween counts whole calendar days from one date to another,
// ignoring the time-of-day and zone components.
func daysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}
