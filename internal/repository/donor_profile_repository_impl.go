package repository

import (
	"errors"

	"lifelink/internal/domain/entity"
	domainRepo "lifelink/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type donorProfileRepository struct{}

func NewDonorProfileRepository() domainRepo.DonorProfileRepository {
	return &donorProfileRepository{}
}

func (r *donorProfileRepository) Create(db *gorm.DB, profile *entity.DonorProfile) error {
	return db.Create(profile).Error
}

func (r *donorProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.DonorProfile, error) {
	var profile entity.DonorProfile
	err := db.Preload("User").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *donorProfileRepository) FindByBloodGroup(db *gorm.DB, group entity.BloodGroup, availableOnly bool) ([]entity.DonorProfile, error) {
	query := db.Preload("User").Where("blood_group = ?", group)
	if availableOnly {
		query = query.Where("availability = ?", true)
	}

	var profiles []entity.DonorProfile
	if err := query.Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *donorProfileRepository) Update(db *gorm.DB, profile *entity.DonorProfile) error {
	return db.Save(profile).Error
}
