package converter

import (
	"lifelink/internal/delivery/dto"
	"lifelink/internal/domain/entity"
)

// DonorProfileToResponse converts a DonorProfile entity to its DTO.
// The username is included when the User relationship is loaded.
func DonorProfileToResponse(profile *entity.DonorProfile) *dto.DonorProfileResponse {
	if profile == nil {
		return nil
	}

	response := &dto.DonorProfileResponse{
		UserID:         profile.UserID,
		Username:       profile.User.Username,
		Age:            profile.Age,
		BloodGroup:     string(profile.BloodGroup),
		Availability:   profile.IsAvailable(),
		TotalDonations: profile.TotalDonations,
		PhoneNumber:    profile.PhoneNumber,
		CreatedAt:      profile.CreatedAt,
		UpdatedAt:      profile.UpdatedAt,
	}

	if profile.LastDonationDate != nil {
		formatted := profile.LastDonationDate.Format("2006-01-02")
		response.LastDonationDate = &formatted
	}

	return response
}
