package converter

import (
	"lifelink/internal/delivery/dto"
	"lifelink/internal/domain/entity"
)

// PatientProfileToResponse converts a PatientProfile entity to its DTO.
func PatientProfileToResponse(profile *entity.PatientProfile) *dto.PatientProfileResponse {
	if profile == nil {
		return nil
	}

	return &dto.PatientProfileResponse{
		UserID:           profile.UserID,
		Username:         profile.User.Username,
		PhoneNumber:      profile.PhoneNumber,
		Age:              profile.Age,
		Gender:           profile.Gender,
		BloodGroup:       string(profile.BloodGroup),
		Address:          profile.Address,
		EmergencyContact: profile.EmergencyContact,
		Description:      profile.Description,
		ImageURL:         profile.ImageURL,
		CreatedAt:        profile.CreatedAt,
		UpdatedAt:        profile.UpdatedAt,
	}
}
