package repository

import (
	"lifelink/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BloodInventoryRepository interface {
	FindByBank(db *gorm.DB, bankID uuid.UUID) ([]entity.BloodInventory, error)
	FindByBankAndGroup(db *gorm.DB, bankID uuid.UUID, group entity.BloodGroup) (*entity.BloodInventory, error)
	// AddUnits atomically increments the counter for (bank, group),
	// creating the row if absent.
	AddUnits(db *gorm.DB, bankID uuid.UUID, group entity.BloodGroup, units int) error
	// SetUnits overwrites the counter for (bank, group), creating the row
	// if absent.
	SetUnits(db *gorm.DB, bankID uuid.UUID, group entity.BloodGroup, units int) error
	Update(db *gorm.DB, inventory *entity.BloodInventory) error
	TotalUnits(db *gorm.DB, bankID uuid.UUID) (int, error)
	FindLowStock(db *gorm.DB, bankID uuid.UUID, threshold int) ([]entity.BloodInventory, error)
}
