package usecase

import (
	"context"

	"lifelink/internal/converter"
	"lifelink/internal/delivery/dto"
	"lifelink/internal/domain/entity"
	"lifelink/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type PatientUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*dto.PatientProfileResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdatePatientProfileRequest) (*dto.PatientProfileResponse, error)
}

type patientUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	patientRepo repository.PatientProfileRepository
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientProfileRepository,
) PatientUsecase {
	return &patientUsecase{
		db:          db,
		log:         log,
		patientRepo: patientRepo,
	}
}

// getOrCreateProfile returns the patient profile, creating an empty one on
// first access. Patient accounts carry no profile until they need one.
func (u *patientUsecase) getOrCreateProfile(db *gorm.DB, userID uuid.UUID) (*entity.PatientProfile, error) {
	profile, err := u.patientRepo.FindByUserID(db, userID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile: %+v", err)
		return nil, err
	}
	if profile != nil {
		return profile, nil
	}

	profile = &entity.PatientProfile{UserID: userID}
	if err := u.patientRepo.Create(db, profile); err != nil {
		u.log.Warnf("Failed to create patient profile: %+v", err)
		return nil, err
	}

	return u.patientRepo.FindByUserID(db, userID)
}

func (u *patientUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (*dto.PatientProfileResponse, error) {
	profile, err := u.getOrCreateProfile(u.db.WithContext(ctx), userID)
	if err != nil {
		return nil, err
	}
	return converter.PatientProfileToResponse(profile), nil
}

func (u *patientUsecase) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdatePatientProfileRequest) (*dto.PatientProfileResponse, error) {
	db := u.db.WithContext(ctx)

	profile, err := u.getOrCreateProfile(db, userID)
	if err != nil {
		return nil, err
	}

	if req.PhoneNumber != "" {
		profile.PhoneNumber = req.PhoneNumber
	}
	if req.Age != nil {
		profile.Age = *req.Age
	}
	if req.Gender != "" {
		profile.Gender = req.Gender
	}
	if req.BloodGroup != "" {
		profile.BloodGroup = entity.BloodGroup(req.BloodGroup)
	}
	if req.Address != "" {
		profile.Address = req.Address
	}
	if req.EmergencyContact != "" {
		profile.EmergencyContact = req.EmergencyContact
	}
	if req.Description != "" {
		profile.Description = req.Description
	}
	if req.ImageURL != "" {
		profile.ImageURL = req.ImageURL
	}

	if err := u.patientRepo.Update(db, profile); err != nil {
		u.log.Warnf("Failed to update patient profile: %+v", err)
		return nil, err
	}

	return converter.PatientProfileToResponse(profile), nil
}
