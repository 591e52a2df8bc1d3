package entity

import (
	"time"

	"github.com/google/uuid"
)

// ScheduleStatus represents the lifecycle state of a donation schedule.
type ScheduleStatus string

const (
	ScheduleStatusScheduled ScheduleStatus = "scheduled"
	ScheduleStatusCompleted ScheduleStatus = "completed"
	ScheduleStatusCancelled ScheduleStatus = "cancelled"
)

// DonationSchedule links a donor to a blood bank at a point in time.
// It starts as scheduled and transitions exactly once to completed or
// cancelled; rows are never deleted.
type DonationSchedule struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	DonorID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"donor_id"`
	BloodBankID uuid.UUID      `gorm:"type:uuid;not null;index" json:"blood_bank_id"`
	ScheduledAt time.Time      `gorm:"not null;index" json:"scheduled_at"`
	Status      ScheduleStatus `gorm:"type:varchar(20);not null;default:'scheduled';index" json:"status"`
	Notes       string         `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Donor     DonorProfile `gorm:"foreignKey:DonorID;references:UserID" json:"donor,omitempty"`
	BloodBank BloodBank    `gorm:"foreignKey:BloodBankID;references:UserID" json:"blood_bank,omitempty"`
}

func (DonationSchedule) TableName() string {
	return "donation_schedules"
}

// IsScheduled checks if the schedule is still active
func (s *DonationSchedule) IsScheduled() bool {
	return s.Status == ScheduleStatusScheduled
}

// IsCompleted checks if the schedule has been completed
func (s *DonationSchedule) IsCompleted() bool {
	return s.Status == ScheduleStatusCompleted
}

// IsCancelled checks if the schedule has been cancelled
func (s *DonationSchedule) IsCancelled() bool {
	return s.Status == ScheduleStatusCancelled
}

// IsTerminal reports whether the schedule is in a terminal state.
// Completed and cancelled schedules admit no further transitions.
func (s *DonationSchedule) IsTerminal() bool {
	return s.Status == ScheduleStatusCompleted || s.Status == ScheduleStatusCancelled
}
