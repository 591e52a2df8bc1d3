package entity

import (
	"time"

	"github.com/google/uuid"
)

// PatientProfile represents patient-specific profile data. It is created
// lazily with placeholder values on first profile access.
type PatientProfile struct {
	UserID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"user_id"`
	PhoneNumber      string     `gorm:"type:varchar(15)" json:"phone_number"`
	Age              int        `gorm:"not null;default:0" json:"age"`
	Gender           string     `gorm:"type:varchar(10)" json:"gender,omitempty"`
	BloodGroup       BloodGroup `gorm:"type:varchar(3)" json:"blood_group,omitempty"`
	Address          string     `gorm:"type:text" json:"address,omitempty"`
	EmergencyContact string     `gorm:"type:varchar(15)" json:"emergency_contact,omitempty"`
	Description      string     `gorm:"type:text" json:"description,omitempty"`
	ImageURL         string     `gorm:"type:varchar(255)" json:"image_url,omitempty"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (PatientProfile) TableName() string {
	return "patient_profiles"
}

// Gender constants
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)
