package usecase

import (
	"context"
	"errors"
	"time"

	"lifelink/internal/converter"
	"lifelink/internal/delivery/dto"
	"lifelink/internal/domain/entity"
	"lifelink/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrDonorProfileNotFound = errors.New("donor profile not found")

const (
	donorUpcomingLimit = 5
	donorRecentLimit   = 5
)

type DonorUsecase interface {
	Dashboard(ctx context.Context, userID uuid.UUID) (*dto.DonorDashboardResponse, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*dto.DonorProfileResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateDonorProfileRequest) (*dto.DonorProfileResponse, error)
	ToggleAvailability(ctx context.Context, userID uuid.UUID) (*dto.AvailabilityResponse, error)
}

type donorUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	donorRepo    repository.DonorProfileRepository
	scheduleRepo repository.DonationScheduleRepository
}

func NewDonorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	donorRepo repository.DonorProfileRepository,
	scheduleRepo repository.DonationScheduleRepository,
) DonorUsecase {
	return &donorUsecase{
		db:           db,
		log:          log,
		donorRepo:    donorRepo,
		scheduleRepo: scheduleRepo,
	}
}

// getOrCreateProfile returns the donor profile, creating one with the
// default blood group if a pre-profile account reaches this path.
func (u *donorUsecase) getOrCreateProfile(db *gorm.DB, userID uuid.UUID) (*entity.DonorProfile, error) {
	profile, err := u.donorRepo.FindByUserID(db, userID)
	if err != nil {
		u.log.Warnf("Failed to find donor profile: %+v", err)
		return nil, err
	}
	if profile != nil {
		return profile, nil
	}

	profile = &entity.DonorProfile{
		UserID:     userID,
		BloodGroup: entity.BloodGroupOPositive,
	}
	if err := u.donorRepo.Create(db, profile); err != nil {
		u.log.Warnf("Failed to create donor profile: %+v", err)
		return nil, err
	}

	// Reload so the User relationship is populated
	return u.donorRepo.FindByUserID(db, userID)
}

func (u *donorUsecase) Dashboard(ctx context.Context, userID uuid.UUID) (*dto.DonorDashboardResponse, error) {
	db := u.db.WithContext(ctx)

	profile, err := u.getOrCreateProfile(db, userID)
	if err != nil {
		return nil, err
	}

	eligible, reason := profile.Eligible()

	upcoming, err := u.scheduleRepo.FindUpcomingByDonor(db, userID, time.Now(), donorUpcomingLimit)
	if err != nil {
		u.log.Warnf("Failed to find upcoming donations: %+v", err)
		return nil, err
	}

	recent, err := u.scheduleRepo.FindCompletedByDonor(db, userID, donorRecentLimit)
	if err != nil {
		u.log.Warnf("Failed to find recent donations: %+v", err)
		return nil, err
	}

	return &dto.DonorDashboardResponse{
		Profile:           *converter.DonorProfileToResponse(profile),
		Eligible:          eligible,
		EligibilityReason: reason,
		UpcomingDonations: converter.SchedulesToResponses(upcoming),
		RecentDonations:   converter.SchedulesToResponses(recent),
	}, nil
}

func (u *donorUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (*dto.DonorProfileResponse, error) {
	profile, err := u.getOrCreateProfile(u.db.WithContext(ctx), userID)
	if err != nil {
		return nil, err
	}
	return converter.DonorProfileToResponse(profile), nil
}

func (u *donorUsecase) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateDonorProfileRequest) (*dto.DonorProfileResponse, error) {
	db := u.db.WithContext(ctx)

	profile, err := u.getOrCreateProfile(db, userID)
	if err != nil {
		return nil, err
	}

	if req.Age != nil {
		profile.Age = req.Age
	}
	if req.BloodGroup != "" {
		profile.BloodGroup = entity.BloodGroup(req.BloodGroup)
	}
	if req.PhoneNumber != "" {
		profile.PhoneNumber = req.PhoneNumber
	}

	if err := u.donorRepo.Update(db, profile); err != nil {
		u.log.Warnf("Failed to update donor profile: %+v", err)
		return nil, err
	}

	return converter.DonorProfileToResponse(profile), nil
}

func (u *donorUsecase) ToggleAvailability(ctx context.Context, userID uuid.UUID) (*dto.AvailabilityResponse, error) {
	db := u.db.WithContext(ctx)

	profile, err := u.getOrCreateProfile(db, userID)
	if err != nil {
		return nil, err
	}

	toggled := !profile.IsAvailable()
	profile.Availability = &toggled

	if err := u.donorRepo.Update(db, profile); err != nil {
		u.log.Warnf("Failed to toggle availability: %+v", err)
		return nil, err
	}

	return &dto.AvailabilityResponse{Availability: toggled}, nil
}
