package entity

import (
	"time"

	"github.com/google/uuid"
)

// BloodBank represents bloodbank-specific profile data. A row is created
// with empty strings at registration, or lazily on first dashboard/profile
// access if missing.
type BloodBank struct {
	UserID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	Name             string    `gorm:"type:varchar(150);not null" json:"name"`
	ContactNumber    string    `gorm:"type:varchar(15)" json:"contact_number"`
	Address          string    `gorm:"type:text" json:"address"`
	LicenseNumber    string    `gorm:"type:varchar(100)" json:"license_number,omitempty"`
	OperatingHours   string    `gorm:"type:varchar(100)" json:"operating_hours,omitempty"`
	EmergencyContact string    `gorm:"type:varchar(15)" json:"emergency_contact,omitempty"`
	Description      string    `gorm:"type:text" json:"description,omitempty"`
	ImageURL         string    `gorm:"type:varchar(255)" json:"image_url,omitempty"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User      User               `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Inventory []BloodInventory   `gorm:"foreignKey:BloodBankID" json:"inventory,omitempty"`
	Schedules []DonationSchedule `gorm:"foreignKey:BloodBankID" json:"schedules,omitempty"`
}

func (BloodBank) TableName() string {
	return "blood_banks"
}
