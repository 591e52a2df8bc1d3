package repository

import (
	"lifelink/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DonorProfileRepository interface {
	Create(db *gorm.DB, profile *entity.DonorProfile) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.DonorProfile, error)
	FindByBloodGroup(db *gorm.DB, group entity.BloodGroup, availableOnly bool) ([]entity.DonorProfile, error)
	Update(db *gorm.DB, profile *entity.DonorProfile) error
}
