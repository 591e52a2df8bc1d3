package converter

import (
	"lifelink/internal/delivery/dto"
	"lifelink/internal/domain/entity"
)

// ScheduleToResponse converts a DonationSchedule entity to its DTO.
// Donor and blood bank details are included when the relationships are
// loaded.
func ScheduleToResponse(schedule *entity.DonationSchedule) *dto.ScheduleResponse {
	if schedule == nil {
		return nil
	}

	return &dto.ScheduleResponse{
		ID:            schedule.ID,
		DonorID:       schedule.DonorID,
		BloodBankID:   schedule.BloodBankID,
		DonorUsername: schedule.Donor.User.Username,
		BloodGroup:    string(schedule.Donor.BloodGroup),
		BloodBankName: schedule.BloodBank.Name,
		ScheduledAt:   schedule.ScheduledAt,
		Status:        string(schedule.Status),
		Notes:         schedule.Notes,
		CreatedAt:     schedule.CreatedAt,
		UpdatedAt:     schedule.UpdatedAt,
	}
}

// SchedulesToResponses converts a slice of schedules.
func SchedulesToResponses(schedules []entity.DonationSchedule) []dto.ScheduleResponse {
	responses := make([]dto.ScheduleResponse, len(schedules))
	for i, schedule := range schedules {
		responses[i] = *ScheduleToResponse(&schedule)
	}
	return responses
}
