package repository

import (
	"time"

	"lifelink/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DonationScheduleRepository interface {
	Create(db *gorm.DB, schedule *entity.DonationSchedule) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.DonationSchedule, error)
	FindActiveByDonor(db *gorm.DB, donorID uuid.UUID) (*entity.DonationSchedule, error)
	FindLastCompletedByDonor(db *gorm.DB, donorID uuid.UUID) (*entity.DonationSchedule, error)
	FindUpcomingByDonor(db *gorm.DB, donorID uuid.UUID, from time.Time, limit int) ([]entity.DonationSchedule, error)
	FindCompletedByDonor(db *gorm.DB, donorID uuid.UUID, limit int) ([]entity.DonationSchedule, error)
	FindScheduledByBank(db *gorm.DB, bankID uuid.UUID) ([]entity.DonationSchedule, error)
	FindCompletedByBank(db *gorm.DB, bankID uuid.UUID, limit int) ([]entity.DonationSchedule, error)
	FindScheduledByBankBetween(db *gorm.DB, bankID uuid.UUID, from, to time.Time, limit int) ([]entity.DonationSchedule, error)
	// MarkCompleted and MarkCancelled update the status only when the row
	// is still in the scheduled state. Affected rows: 1 = transitioned,
	// 0 = the row was already terminal.
	MarkCompleted(db *gorm.DB, id uuid.UUID) (int64, error)
	MarkCancelled(db *gorm.DB, id uuid.UUID) (int64, error)
}
