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

var ErrBloodBankNotFound = errors.New("blood bank not found")

const (
	dashboardUpcomingDays  = 7
	dashboardUpcomingLimit = 10
)

type BloodBankUsecase interface {
	Dashboard(ctx context.Context, userID uuid.UUID) (*dto.BloodBankDashboardResponse, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*dto.BloodBankResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateBloodBankProfileRequest) (*dto.BloodBankResponse, error)
}

type bloodBankUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	userRepo      repository.UserRepository
	bloodBankRepo repository.BloodBankRepository
	inventoryRepo repository.BloodInventoryRepository
	scheduleRepo  repository.DonationScheduleRepository
}

func NewBloodBankUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	bloodBankRepo repository.BloodBankRepository,
	inventoryRepo repository.BloodInventoryRepository,
	scheduleRepo repository.DonationScheduleRepository,
) BloodBankUsecase {
	return &bloodBankUsecase{
		db:            db,
		log:           log,
		userRepo:      userRepo,
		bloodBankRepo: bloodBankRepo,
		inventoryRepo: inventoryRepo,
		scheduleRepo:  scheduleRepo,
	}
}

// getOrCreateBank returns the bank profile, creating a stub named after the
// account if a pre-profile account reaches this path.
func (u *bloodBankUsecase) getOrCreateBank(db *gorm.DB, userID uuid.UUID) (*entity.BloodBank, error) {
	bank, err := u.bloodBankRepo.FindByUserID(db, userID)
	if err != nil {
		u.log.Warnf("Failed to find blood bank profile: %+v", err)
		return nil, err
	}
	if bank != nil {
		return bank, nil
	}

	user, err := u.userRepo.FindByID(db, userID)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	bank = &entity.BloodBank{
		UserID: userID,
		Name:   user.Username,
	}
	if err := u.bloodBankRepo.Create(db, bank); err != nil {
		u.log.Warnf("Failed to create blood bank profile: %+v", err)
		return nil, err
	}

	return u.bloodBankRepo.FindByUserID(db, userID)
}

func (u *bloodBankUsecase) Dashboard(ctx context.Context, userID uuid.UUID) (*dto.BloodBankDashboardResponse, error) {
	db := u.db.WithContext(ctx)

	bank, err := u.getOrCreateBank(db, userID)
	if err != nil {
		return nil, err
	}

	inventory, err := u.inventoryRepo.FindByBank(db, userID)
	if err != nil {
		u.log.Warnf("Failed to list inventory: %+v", err)
		return nil, err
	}

	totalUnits, err := u.inventoryRepo.TotalUnits(db, userID)
	if err != nil {
		u.log.Warnf("Failed to total inventory: %+v", err)
		return nil, err
	}

	lowStock, err := u.inventoryRepo.FindLowStock(db, userID, entity.LowStockThreshold)
	if err != nil {
		u.log.Warnf("Failed to find low stock: %+v", err)
		return nil, err
	}

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1).Add(-time.Second)

	today, err := u.scheduleRepo.FindScheduledByBankBetween(db, userID, dayStart, dayEnd, 0)
	if err != nil {
		u.log.Warnf("Failed to find today's donations: %+v", err)
		return nil, err
	}

	upcoming, err := u.scheduleRepo.FindScheduledByBankBetween(db, userID, now, now.AddDate(0, 0, dashboardUpcomingDays), dashboardUpcomingLimit)
	if err != nil {
		u.log.Warnf("Failed to find upcoming donations: %+v", err)
		return nil, err
	}

	return &dto.BloodBankDashboardResponse{
		Profile:           *converter.BloodBankToResponse(bank),
		TotalUnits:        totalUnits,
		LowStockAlerts:    converter.InventoriesToResponses(lowStock),
		TodayDonations:    converter.SchedulesToResponses(today),
		UpcomingDonations: converter.SchedulesToResponses(upcoming),
		Inventory:         converter.InventoriesToResponses(inventory),
	}, nil
}

func (u *bloodBankUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (*dto.BloodBankResponse, error) {
	bank, err := u.getOrCreateBank(u.db.WithContext(ctx), userID)
	if err != nil {
		return nil, err
	}
	return converter.BloodBankToResponse(bank), nil
}

func (u *bloodBankUsecase) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateBloodBankProfileRequest) (*dto.BloodBankResponse, error) {
	db := u.db.WithContext(ctx)

	bank, err := u.getOrCreateBank(db, userID)
	if err != nil {
		return nil, err
	}

	bank.Name = req.Name
	bank.ContactNumber = req.ContactNumber
	bank.Address = req.Address
	bank.LicenseNumber = req.LicenseNumber
	bank.OperatingHours = req.OperatingHours
	bank.EmergencyContact = req.EmergencyContact
	bank.Description = req.Description
	bank.ImageURL = req.ImageURL

	if err := u.bloodBankRepo.Update(db, bank); err != nil {
		u.log.Warnf("Failed to update blood bank profile: %+v", err)
		return nil, err
	}

	return converter.BloodBankToResponse(bank), nil
}
