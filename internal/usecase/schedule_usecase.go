package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lifelink/internal/converter"
	"lifelink/internal/delivery/dto"
	"lifelink/internal/domain/entity"
	"lifelink/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrInvalidScheduleDate  = errors.New("invalid schedule date, use YYYY-MM-DDTHH:MM")
	ErrSchedulePast         = errors.New("schedule date must be in the future")
	ErrActiveScheduleExists = errors.New("an active schedule already exists")
	ErrScheduleNotFound     = errors.New("schedule not found")
	ErrScheduleNotOwned     = errors.New("schedule belongs to another account")
	ErrInvalidTransition    = errors.New("schedule is no longer active")
)

// IneligibleError carries the human-readable reason a donor cannot donate.
type IneligibleError struct {
	Reason string
}

func (e *IneligibleError) Error() string {
	return e.Reason
}

// scheduleDateLayout matches the HTML datetime-local input format.
const scheduleDateLayout = "2006-01-02T15:04"

// BankDiscoveryRadiusKm bounds the blood banks offered to a donor when
// scheduling a donation.
const BankDiscoveryRadiusKm = 100.0

type ScheduleUsecase interface {
	NearbyBloodBanks(ctx context.Context, donorID uuid.UUID) (*dto.NearbyBloodBankListResponse, error)
	Create(ctx context.Context, donorID uuid.UUID, req *dto.CreateScheduleRequest) (*dto.ScheduleResponse, error)
	Cancel(ctx context.Context, donorID, scheduleID uuid.UUID) error
	Complete(ctx context.Context, bankID, scheduleID uuid.UUID) (*dto.ScheduleResponse, error)
	ListByDonor(ctx context.Context, donorID uuid.UUID) (*dto.ScheduleListResponse, error)
	ScheduledDonors(ctx context.Context, bankID uuid.UUID) (*dto.ScheduledDonorsResponse, error)
}

type scheduleUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	userRepo      repository.UserRepository
	donorRepo     repository.DonorProfileRepository
	bloodBankRepo repository.BloodBankRepository
	scheduleRepo  repository.DonationScheduleRepository
	inventoryRepo repository.BloodInventoryRepository
}

func NewScheduleUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	donorRepo repository.DonorProfileRepository,
	bloodBankRepo repository.BloodBankRepository,
	scheduleRepo repository.DonationScheduleRepository,
	inventoryRepo repository.BloodInventoryRepository,
) ScheduleUsecase {
	return &scheduleUsecase{
		db:            db,
		log:           log,
		userRepo:      userRepo,
		donorRepo:     donorRepo,
		bloodBankRepo: bloodBankRepo,
		scheduleRepo:  scheduleRepo,
		inventoryRepo: inventoryRepo,
	}
}

// NearbyBloodBanks lists blood banks within the discovery radius of the
// donor, nearest first. The donor must have a location set.
func (u *scheduleUsecase) NearbyBloodBanks(ctx context.Context, donorID uuid.UUID) (*dto.NearbyBloodBankListResponse, error) {
	db := u.db.WithContext(ctx)

	donor, err := u.userRepo.FindByID(db, donorID)
	if err != nil {
		u.log.Warnf("Failed to find donor user: %+v", err)
		return nil, err
	}
	if donor == nil {
		return nil, ErrUserNotFound
	}
	if !donor.HasLocation() {
		return nil, ErrLocationNotSet
	}

	bankUsers, err := u.userRepo.FindByRoleID(db, entity.RoleIDBloodBank)
	if err != nil {
		u.log.Warnf("Failed to list blood bank users: %+v", err)
		return nil, err
	}

	banks := make([]dto.NearbyBloodBankResponse, 0)
	for _, candidate := range nearbyUsers(donor, bankUsers, BankDiscoveryRadiusKm) {
		bank, err := u.bloodBankRepo.FindByUserID(db, candidate.User.ID)
		if err != nil {
			u.log.Warnf("Failed to find blood bank profile: %+v", err)
			return nil, err
		}
		if bank == nil {
			// Registered account without a filled-in bank profile
			continue
		}
		banks = append(banks, dto.NearbyBloodBankResponse{
			BloodBank:  *converter.BloodBankToResponse(bank),
			DistanceKm: candidate.DistanceKm,
		})
	}

	return &dto.NearbyBloodBankListResponse{
		BloodBanks: banks,
		Total:      len(banks),
	}, nil
}

// Create books a donation slot. Preconditions run in order: the donor must
// be eligible, must not hold another active schedule, must be outside the
// cooldown window relative to the last completed donation, and the slot must
// be a valid future time at an existing blood bank.
func (u *scheduleUsecase) Create(ctx context.Context, donorID uuid.UUID, req *dto.CreateScheduleRequest) (*dto.ScheduleResponse, error) {
	scheduledAt, err := time.Parse(scheduleDateLayout, req.ScheduledAt)
	if err != nil {
		return nil, ErrInvalidScheduleDate
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.donorRepo.FindByUserID(tx, donorID)
	if err != nil {
		u.log.Warnf("Failed to find donor profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDonorProfileNotFound
	}

	if eligible, reason := profile.Eligible(); !eligible {
		return nil, &IneligibleError{Reason: reason}
	}

	active, err := u.scheduleRepo.FindActiveByDonor(tx, donorID)
	if err != nil {
		u.log.Warnf("Failed to check active schedule: %+v", err)
		return nil, err
	}
	if active != nil {
		return nil, ErrActiveScheduleExists
	}

	// The profile cooldown above is keyed off last_donation_date; also guard
	// against a completed schedule the profile has not caught up with.
	lastCompleted, err := u.scheduleRepo.FindLastCompletedByDonor(tx, donorID)
	if err != nil {
		u.log.Warnf("Failed to find last completed donation: %+v", err)
		return nil, err
	}
	if lastCompleted != nil {
		if remaining := entity.CooldownRemaining(lastCompleted.ScheduledAt, time.Now()); remaining > 0 {
			return nil, &IneligibleError{
				Reason: fmt.Sprintf("Must wait %d more days before next donation", remaining),
			}
		}
	}

	if !scheduledAt.After(time.Now()) {
		return nil, ErrSchedulePast
	}

	bank, err := u.bloodBankRepo.FindByUserID(tx, req.BloodBankID)
	if err != nil {
		u.log.Warnf("Failed to find blood bank: %+v", err)
		return nil, err
	}
	if bank == nil {
		return nil, ErrBloodBankNotFound
	}

	schedule := &entity.DonationSchedule{
		DonorID:     donorID,
		BloodBankID: req.BloodBankID,
		ScheduledAt: scheduledAt,
		Status:      entity.ScheduleStatusScheduled,
		Notes:       req.Notes,
	}

	if err := u.scheduleRepo.Create(tx, schedule); err != nil {
		// The partial unique index closes the check-then-create race
		// between concurrent bookings by the same donor.
		if isDuplicateKeyError(err, "ux_active_schedule_per_donor") {
			return nil, ErrActiveScheduleExists
		}
		u.log.Warnf("Failed to create schedule: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	schedule.Donor = *profile
	schedule.BloodBank = *bank
	return converter.ScheduleToResponse(schedule), nil
}

// Cancel moves the donor's schedule to cancelled. Only the owning donor can
// cancel, and only while the schedule is still active.
func (u *scheduleUsecase) Cancel(ctx context.Context, donorID, scheduleID uuid.UUID) error {
	db := u.db.WithContext(ctx)

	schedule, err := u.scheduleRepo.FindByID(db, scheduleID)
	if err != nil {
		u.log.Warnf("Failed to find schedule: %+v", err)
		return err
	}
	if schedule == nil {
		return ErrScheduleNotFound
	}
	if schedule.DonorID != donorID {
		return ErrScheduleNotOwned
	}

	affected, err := u.scheduleRepo.MarkCancelled(db, scheduleID)
	if err != nil {
		u.log.Warnf("Failed to cancel schedule: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrInvalidTransition
	}

	return nil
}

// Complete marks a schedule at the bank as completed. The status change,
// the donor's donation stats and the inventory increment commit together
// or not at all.
func (u *scheduleUsecase) Complete(ctx context.Context, bankID, scheduleID uuid.UUID) (*dto.ScheduleResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	schedule, err := u.scheduleRepo.FindByID(tx, scheduleID)
	if err != nil {
		u.log.Warnf("Failed to find schedule: %+v", err)
		return nil, err
	}
	if schedule == nil {
		return nil, ErrScheduleNotFound
	}
	if schedule.BloodBankID != bankID {
		return nil, ErrScheduleNotOwned
	}

	// Guarded update: zero affected rows means a concurrent completion or
	// cancellation won.
	affected, err := u.scheduleRepo.MarkCompleted(tx, scheduleID)
	if err != nil {
		u.log.Warnf("Failed to complete schedule: %+v", err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrInvalidTransition
	}

	profile, err := u.donorRepo.FindByUserID(tx, schedule.DonorID)
	if err != nil {
		u.log.Warnf("Failed to find donor profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDonorProfileNotFound
	}

	today := time.Now()
	profile.LastDonationDate = &today
	profile.TotalDonations++

	if err := u.donorRepo.Update(tx, profile); err != nil {
		u.log.Warnf("Failed to update donor stats: %+v", err)
		return nil, err
	}

	if err := u.inventoryRepo.AddUnits(tx, bankID, profile.BloodGroup, 1); err != nil {
		u.log.Warnf("Failed to increment inventory: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	schedule.Status = entity.ScheduleStatusCompleted
	schedule.Donor = *profile
	return converter.ScheduleToResponse(schedule), nil
}

func (u *scheduleUsecase) ListByDonor(ctx context.Context, donorID uuid.UUID) (*dto.ScheduleListResponse, error) {
	db := u.db.WithContext(ctx)

	upcoming, err := u.scheduleRepo.FindUpcomingByDonor(db, donorID, time.Time{}, 0)
	if err != nil {
		u.log.Warnf("Failed to list donor schedules: %+v", err)
		return nil, err
	}

	schedules := converter.SchedulesToResponses(upcoming)
	return &dto.ScheduleListResponse{
		Schedules: schedules,
		Total:     len(schedules),
	}, nil
}

// ScheduledDonors lists the bank's active bookings plus its recently
// completed donations.
func (u *scheduleUsecase) ScheduledDonors(ctx context.Context, bankID uuid.UUID) (*dto.ScheduledDonorsResponse, error) {
	db := u.db.WithContext(ctx)

	scheduled, err := u.scheduleRepo.FindScheduledByBank(db, bankID)
	if err != nil {
		u.log.Warnf("Failed to list scheduled donors: %+v", err)
		return nil, err
	}

	completed, err := u.scheduleRepo.FindCompletedByBank(db, bankID, 20)
	if err != nil {
		u.log.Warnf("Failed to list completed donations: %+v", err)
		return nil, err
	}

	return &dto.ScheduledDonorsResponse{
		Scheduled: converter.SchedulesToResponses(scheduled),
		Completed: converter.SchedulesToResponses(completed),
	}, nil
}
