package repository

import (
	"errors"

	"lifelink/internal/domain/entity"
	domainRepo "lifelink/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type bloodBankRepository struct{}

func NewBloodBankRepository() domainRepo.BloodBankRepository {
	return &bloodBankRepository{}
}

func (r *bloodBankRepository) Create(db *gorm.DB, bank *entity.BloodBank) error {
	return db.Create(bank).Error
}

func (r *bloodBankRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.BloodBank, error) {
	var bank entity.BloodBank
	err := db.Preload("User").Where("user_id = ?", userID).First(&bank).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &bank, nil
}

func (r *bloodBankRepository) Update(db *gorm.DB, bank *entity.BloodBank) error {
	return db.Save(bank).Error
}
