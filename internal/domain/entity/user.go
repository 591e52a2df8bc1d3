package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents the centralized authentication table. Every user has
// exactly one role and optionally a geocoordinate used for proximity search.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RoleID       int       `gorm:"not null;index" json:"role_id"`
	Username     string    `gorm:"type:varchar(150);uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password     string    `gorm:"type:text;not null" json:"-"`
	Latitude     *float64  `gorm:"type:decimal(9,6)" json:"latitude,omitempty"`
	Longitude    *float64  `gorm:"type:decimal(9,6)" json:"longitude,omitempty"`
	LocationName string    `gorm:"type:varchar(255)" json:"location_name,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Role             Role            `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	DonorProfile     *DonorProfile   `gorm:"foreignKey:UserID" json:"donor_profile,omitempty"`
	BloodBankProfile *BloodBank      `gorm:"foreignKey:UserID" json:"blood_bank_profile,omitempty"`
	PatientProfile   *PatientProfile `gorm:"foreignKey:UserID" json:"patient_profile,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// HasLocation reports whether the user has a known coordinate. Users without
// a coordinate cannot search and are skipped as search candidates.
func (u *User) HasLocation() bool {
	return u.Latitude != nil && u.Longitude != nil
}

// IsDonor checks if user has the donor role
func (u *User) IsDonor() bool {
	return u.RoleID == RoleIDDonor
}

// IsBloodBank checks if user has the bloodbank role
func (u *User) IsBloodBank() bool {
	return u.RoleID == RoleIDBloodBank
}

// IsPatient checks if user has the patient role
func (u *User) IsPatient() bool {
	return u.RoleID == RoleIDPatient
}
