package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"lifelink/internal/converter"
	"lifelink/internal/delivery/dto"
	"lifelink/internal/domain/entity"
	"lifelink/internal/domain/repository"
	"lifelink/pkg/geo"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrLocationNotSet    = errors.New("location is not set")
	ErrInvalidBloodGroup = errors.New("invalid blood group")
)

type SearchUsecase interface {
	Search(ctx context.Context, userID uuid.UUID, bloodGroup string, maxKm float64, availabilityOnly bool) (*dto.SearchResponse, error)
}

type searchUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	userRepo      repository.UserRepository
	donorRepo     repository.DonorProfileRepository
	bloodBankRepo repository.BloodBankRepository
	inventoryRepo repository.BloodInventoryRepository
}

func NewSearchUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	donorRepo repository.DonorProfileRepository,
	bloodBankRepo repository.BloodBankRepository,
	inventoryRepo repository.BloodInventoryRepository,
) SearchUsecase {
	return &searchUsecase{
		db:            db,
		log:           log,
		userRepo:      userRepo,
		donorRepo:     donorRepo,
		bloodBankRepo: bloodBankRepo,
		inventoryRepo: inventoryRepo,
	}
}

// Search finds donors of the requested blood group and blood banks holding
// it within maxKm of the requester, both ordered nearest first. The
// requester must have a location set.
func (u *searchUsecase) Search(ctx context.Context, userID uuid.UUID, bloodGroup string, maxKm float64, availabilityOnly bool) (*dto.SearchResponse, error) {
	group := entity.BloodGroup(bloodGroup)
	if !group.Valid() {
		return nil, ErrInvalidBloodGroup
	}
	if maxKm <= 0 {
		maxKm = dto.DefaultSearchRadiusKm
	}

	db := u.db.WithContext(ctx)

	user, err := u.userRepo.FindByID(db, userID)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if !user.HasLocation() {
		return nil, ErrLocationNotSet
	}

	profiles, err := u.donorRepo.FindByBloodGroup(db, group, availabilityOnly)
	if err != nil {
		u.log.Warnf("Failed to find donors by blood group: %+v", err)
		return nil, err
	}
	donors := donorSearchResults(user, profiles, maxKm, time.Now())

	bankUsers, err := u.userRepo.FindByRoleID(db, entity.RoleIDBloodBank)
	if err != nil {
		u.log.Warnf("Failed to list blood bank users: %+v", err)
		return nil, err
	}

	banks := make([]dto.BloodBankSearchResult, 0)
	for _, candidate := range nearbyUsers(user, bankUsers, maxKm) {
		bank, err := u.bloodBankRepo.FindByUserID(db, candidate.User.ID)
		if err != nil {
			u.log.Warnf("Failed to find blood bank profile: %+v", err)
			return nil, err
		}
		if bank == nil {
			continue
		}

		units := 0
		item, err := u.inventoryRepo.FindByBankAndGroup(db, bank.UserID, group)
		if err != nil {
			u.log.Warnf("Failed to find inventory: %+v", err)
			return nil, err
		}
		if item != nil {
			units = item.Units
		}

		banks = append(banks, dto.BloodBankSearchResult{
			BloodBank:      *converter.BloodBankToResponse(bank),
			DistanceKm:     candidate.DistanceKm,
			AvailableUnits: units,
		})
	}

	return &dto.SearchResponse{
		BloodGroup:       bloodGroup,
		MaxDistanceKm:    maxKm,
		AvailabilityOnly: availabilityOnly,
		Donors:           donors,
		BloodBanks:       banks,
	}, nil
}

// userDistance is a search candidate paired with its rounded distance from
// the origin.
type userDistance struct {
	User       entity.User
	DistanceKm float64
}

// nearbyUsers filters candidates to those with a known location within
// maxKm of the origin user, sorted nearest first. The origin itself is
// excluded.
func nearbyUsers(origin *entity.User, candidates []entity.User, maxKm float64) []userDistance {
	matches := make([]userDistance, 0)
	for _, candidate := range candidates {
		if candidate.ID == origin.ID || !candidate.HasLocation() {
			continue
		}

		d := geo.DistanceKm(*origin.Latitude, *origin.Longitude, *candidate.Latitude, *candidate.Longitude)
		if d > maxKm {
			continue
		}

		matches = append(matches, userDistance{
			User:       candidate,
			DistanceKm: geo.RoundKm(d),
		})
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].DistanceKm < matches[j].DistanceKm
	})
	return matches
}

// donorSearchResults filters donor profiles to those within maxKm of the
// origin, sorted nearest first, annotating each with its eligibility
// verdict as of the given day.
func donorSearchResults(origin *entity.User, profiles []entity.DonorProfile, maxKm float64, today time.Time) []dto.DonorSearchResult {
	results := make([]dto.DonorSearchResult, 0)
	for i := range profiles {
		profile := &profiles[i]
		if profile.UserID == origin.ID || !profile.User.HasLocation() {
			continue
		}

		d := geo.DistanceKm(*origin.Latitude, *origin.Longitude, *profile.User.Latitude, *profile.User.Longitude)
		if d > maxKm {
			continue
		}

		eligible, reason := profile.EligibleAt(today)
		results = append(results, dto.DonorSearchResult{
			Donor:             *converter.DonorProfileToResponse(profile),
			DistanceKm:        geo.RoundKm(d),
			Eligible:          eligible,
			EligibilityReason: reason,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].DistanceKm < results[j].DistanceKm
	})
	return results
}
