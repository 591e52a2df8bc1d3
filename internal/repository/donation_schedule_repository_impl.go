package repository

import (
	"errors"
	"time"

	"lifelink/internal/domain/entity"
	domainRepo "lifelink/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type donationScheduleRepository struct{}

func NewDonationScheduleRepository() domainRepo.DonationScheduleRepository {
	return &donationScheduleRepository{}
}

func (r *donationScheduleRepository) Create(db *gorm.DB, schedule *entity.DonationSchedule) error {
	return db.Create(schedule).Error
}

func (r *donationScheduleRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.DonationSchedule, error) {
	var schedule entity.DonationSchedule
	err := db.Preload("Donor.User").Preload("BloodBank.User").
		Where("id = ?", id).
		First(&schedule).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &schedule, nil
}

func (r *donationScheduleRepository) FindActiveByDonor(db *gorm.DB, donorID uuid.UUID) (*entity.DonationSchedule, error) {
	var schedule entity.DonationSchedule
	err := db.Where("donor_id = ? AND status = ?", donorID, entity.ScheduleStatusScheduled).
		First(&schedule).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &schedule, nil
}

func (r *donationScheduleRepository) FindLastCompletedByDonor(db *gorm.DB, donorID uuid.UUID) (*entity.DonationSchedule, error) {
	var schedule entity.DonationSchedule
	err := db.Where("donor_id = ? AND status = ?", donorID, entity.ScheduleStatusCompleted).
		Order("scheduled_at DESC").
		First(&schedule).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &schedule, nil
}

func (r *donationScheduleRepository) FindUpcomingByDonor(db *gorm.DB, donorID uuid.UUID, from time.Time, limit int) ([]entity.DonationSchedule, error) {
	var schedules []entity.DonationSchedule
	query := db.Preload("BloodBank.User").
		Where("donor_id = ? AND status = ? AND scheduled_at >= ?", donorID, entity.ScheduleStatusScheduled, from).
		Order("scheduled_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&schedules).Error; err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *donationScheduleRepository) FindCompletedByDonor(db *gorm.DB, donorID uuid.UUID, limit int) ([]entity.DonationSchedule, error) {
	var schedules []entity.DonationSchedule
	err := db.Preload("BloodBank.User").
		Where("donor_id = ? AND status = ?", donorID, entity.ScheduleStatusCompleted).
		Order("scheduled_at DESC").
		Limit(limit).
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *donationScheduleRepository) FindScheduledByBank(db *gorm.DB, bankID uuid.UUID) ([]entity.DonationSchedule, error) {
	var schedules []entity.DonationSchedule
	err := db.Preload("Donor.User").
		Where("blood_bank_id = ? AND status = ?", bankID, entity.ScheduleStatusScheduled).
		Order("scheduled_at ASC").
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *donationScheduleRepository) FindCompletedByBank(db *gorm.DB, bankID uuid.UUID, limit int) ([]entity.DonationSchedule, error) {
	var schedules []entity.DonationSchedule
	err := db.Preload("Donor.User").
		Where("blood_bank_id = ? AND status = ?", bankID, entity.ScheduleStatusCompleted).
		Order("scheduled_at DESC").
		Limit(limit).
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *donationScheduleRepository) FindScheduledByBankBetween(db *gorm.DB, bankID uuid.UUID, from, to time.Time, limit int) ([]entity.DonationSchedule, error) {
	var schedules []entity.DonationSchedule
	query := db.Preload("Donor.User").
		Where("blood_bank_id = ? AND status = ? AND scheduled_at >= ? AND scheduled_at <= ?",
			bankID, entity.ScheduleStatusScheduled, from, to).
		Order("scheduled_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var err = query.Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

// MarkCompleted transitions a schedule to completed only from the scheduled
// state. Affected rows: 1 = transitioned, 0 = row was already terminal.
func (r *donationScheduleRepository) MarkCompleted(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Model(&entity.DonationSchedule{}).
		Where("id = ? AND status = ?", id, entity.ScheduleStatusScheduled).
		Update("status", entity.ScheduleStatusCompleted)
	return result.RowsAffected, result.Error
}

// MarkCancelled transitions a schedule to cancelled only from the scheduled
// state.
func (r *donationScheduleRepository) MarkCancelled(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Model(&entity.DonationSchedule{}).
		Where("id = ? AND status = ?", id, entity.ScheduleStatusScheduled).
		Update("status", entity.ScheduleStatusCancelled)
	return result.RowsAffected, result.Error
}
