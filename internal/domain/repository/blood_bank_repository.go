package repository

import (
	"lifelink/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BloodBankRepository interface {
	Create(db *gorm.DB, bank *entity.BloodBank) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.BloodBank, error)
	Update(db *gorm.DB, bank *entity.BloodBank) error
}
