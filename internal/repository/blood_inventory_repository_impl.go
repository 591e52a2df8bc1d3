package repository

import (
	"errors"

	"lifelink/internal/domain/entity"
	domainRepo "lifelink/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type bloodInventoryRepository struct{}

func NewBloodInventoryRepository() domainRepo.BloodInventoryRepository {
	return &bloodInventoryRepository{}
}

func (r *bloodInventoryRepository) FindByBank(db *gorm.DB, bankID uuid.UUID) ([]entity.BloodInventory, error) {
	var items []entity.BloodInventory
	err := db.Where("blood_bank_id = ?", bankID).Order("blood_group ASC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *bloodInventoryRepository) FindByBankAndGroup(db *gorm.DB, bankID uuid.UUID, group entity.BloodGroup) (*entity.BloodInventory, error) {
	var item entity.BloodInventory
	err := db.Where("blood_bank_id = ? AND blood_group = ?", bankID, group).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *bloodInventoryRepository) AddUnits(db *gorm.DB, bankID uuid.UUID, group entity.BloodGroup, units int) error {
	item := &entity.BloodInventory{
		BloodBankID: bankID,
		BloodGroup:  group,
		Units:       units,
	}
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "blood_bank_id"}, {Name: "blood_group"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"units":      gorm.Expr("blood_inventories.units + ?", units),
			"updated_at": gorm.Expr("now()"),
		}),
	}).Create(item).Error
}

func (r *bloodInventoryRepository) SetUnits(db *gorm.DB, bankID uuid.UUID, group entity.BloodGroup, units int) error {
	item := &entity.BloodInventory{
		BloodBankID: bankID,
		BloodGroup:  group,
		Units:       units,
	}
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "blood_bank_id"}, {Name: "blood_group"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"units":      units,
			"updated_at": gorm.Expr("now()"),
		}),
	}).Create(item).Error
}

func (r *bloodInventoryRepository) Update(db *gorm.DB, inventory *entity.BloodInventory) error {
	return db.Save(inventory).Error
}

func (r *bloodInventoryRepository) TotalUnits(db *gorm.DB, bankID uuid.UUID) (int, error) {
	var total *int
	err := db.Model(&entity.BloodInventory{}).
		Where("blood_bank_id = ?", bankID).
		Select("SUM(units)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}

func (r *bloodInventoryRepository) FindLowStock(db *gorm.DB, bankID uuid.UUID, threshold int) ([]entity.BloodInventory, error) {
	var items []entity.BloodInventory
	err := db.Where("blood_bank_id = ? AND units < ?", bankID, threshold).
		Order("blood_group ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
