package converter

import (
	"lifelink/internal/delivery/dto"
	"lifelink/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO.
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:           user.ID,
		Username:     user.Username,
		Email:        user.Email,
		Role:         entity.RoleNameByID[user.RoleID],
		Latitude:     user.Latitude,
		Longitude:    user.Longitude,
		LocationName: user.LocationName,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}
