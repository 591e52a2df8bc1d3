package usecase

import (
	"context"
	"errors"

	"lifelink/internal/converter"
	"lifelink/internal/delivery/dto"
	"lifelink/internal/domain/entity"
	"lifelink/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrInventoryNotFound = errors.New("no inventory for that blood group")

type InventoryUsecase interface {
	List(ctx context.Context, bankID uuid.UUID) (*dto.InventoryListResponse, error)
	Apply(ctx context.Context, bankID uuid.UUID, req *dto.InventoryActionRequest) (*dto.InventoryListResponse, error)
}

type inventoryUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	bloodBankRepo repository.BloodBankRepository
	inventoryRepo repository.BloodInventoryRepository
}

func NewInventoryUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	bloodBankRepo repository.BloodBankRepository,
	inventoryRepo repository.BloodInventoryRepository,
) InventoryUsecase {
	return &inventoryUsecase{
		db:            db,
		log:           log,
		bloodBankRepo: bloodBankRepo,
		inventoryRepo: inventoryRepo,
	}
}

func (u *inventoryUsecase) List(ctx context.Context, bankID uuid.UUID) (*dto.InventoryListResponse, error) {
	return u.list(u.db.WithContext(ctx), bankID)
}

func (u *inventoryUsecase) list(db *gorm.DB, bankID uuid.UUID) (*dto.InventoryListResponse, error) {
	items, err := u.inventoryRepo.FindByBank(db, bankID)
	if err != nil {
		u.log.Warnf("Failed to list inventory: %+v", err)
		return nil, err
	}

	total, err := u.inventoryRepo.TotalUnits(db, bankID)
	if err != nil {
		u.log.Warnf("Failed to total inventory: %+v", err)
		return nil, err
	}

	return &dto.InventoryListResponse{
		Items:      converter.InventoriesToResponses(items),
		TotalUnits: total,
	}, nil
}

// Apply executes one inventory action for the bank's own stock. Add and set
// create the (bank, group) row on demand; remove fails without touching the
// counter when it would go negative.
func (u *inventoryUsecase) Apply(ctx context.Context, bankID uuid.UUID, req *dto.InventoryActionRequest) (*dto.InventoryListResponse, error) {
	group := entity.BloodGroup(req.BloodGroup)
	if !group.Valid() {
		return nil, ErrInvalidBloodGroup
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	bank, err := u.bloodBankRepo.FindByUserID(tx, bankID)
	if err != nil {
		u.log.Warnf("Failed to find blood bank: %+v", err)
		return nil, err
	}
	if bank == nil {
		return nil, ErrBloodBankNotFound
	}

	switch req.Action {
	case dto.InventoryActionAdd:
		if err := u.inventoryRepo.AddUnits(tx, bankID, group, req.Units); err != nil {
			u.log.Warnf("Failed to add units: %+v", err)
			return nil, err
		}

	case dto.InventoryActionRemove:
		item, err := u.inventoryRepo.FindByBankAndGroup(tx, bankID, group)
		if err != nil {
			u.log.Warnf("Failed to find inventory row: %+v", err)
			return nil, err
		}
		if item == nil {
			return nil, ErrInventoryNotFound
		}
		if err := item.Remove(req.Units); err != nil {
			return nil, err
		}
		if err := u.inventoryRepo.Update(tx, item); err != nil {
			u.log.Warnf("Failed to update inventory row: %+v", err)
			return nil, err
		}

	case dto.InventoryActionSet:
		if err := u.inventoryRepo.SetUnits(tx, bankID, group, req.Units); err != nil {
			u.log.Warnf("Failed to set units: %+v", err)
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return u.list(u.db.WithContext(ctx), bankID)
}
