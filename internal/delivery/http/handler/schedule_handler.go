package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"lifelink/internal/delivery/dto"
	"lifelink/internal/delivery/http/middleware"
	"lifelink/internal/usecase"
	"lifelink/pkg/response"
	"lifelink/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ScheduleHandler struct {
	scheduleUsecase usecase.ScheduleUsecase
	validator       *validator.CustomValidator
}

func NewScheduleHandler(scheduleUsecase usecase.ScheduleUsecase, validator *validator.CustomValidator) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleUsecase: scheduleUsecase,
		validator:       validator,
	}
}

// NearbyBloodBanks lists blood banks the donor can book at, nearest first
func (h *ScheduleHandler) NearbyBloodBanks(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	banks, err := h.scheduleUsecase.NearbyBloodBanks(r.Context(), userID)
	if err != nil {
		switch err {
		case usecase.ErrLocationNotSet:
			response.UnprocessableEntity(w, "Set your location to find nearby blood banks")
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		default:
			response.InternalServerError(w, "Failed to find nearby blood banks")
		}
		return
	}

	response.Success(w, http.StatusOK, "Nearby blood banks retrieved successfully", banks)
}

func (h *ScheduleHandler) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	schedule, err := h.scheduleUsecase.Create(r.Context(), userID, &req)
	if err != nil {
		var ineligible *usecase.IneligibleError
		if errors.As(err, &ineligible) {
			response.UnprocessableEntity(w, ineligible.Reason)
			return
		}

		switch err {
		case usecase.ErrInvalidScheduleDate:
			response.Error(w, http.StatusBadRequest, "Invalid schedule date, use YYYY-MM-DDTHH:MM", nil)
		case usecase.ErrSchedulePast:
			response.Error(w, http.StatusBadRequest, "Schedule date must be in the future", nil)
		case usecase.ErrActiveScheduleExists:
			response.Error(w, http.StatusConflict, "You already have an active schedule", nil)
		case usecase.ErrBloodBankNotFound:
			response.NotFound(w, "Blood bank not found")
		case usecase.ErrDonorProfileNotFound:
			response.NotFound(w, "Donor profile not found")
		default:
			response.InternalServerError(w, "Failed to create schedule")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Schedule created successfully", schedule)
}

func (h *ScheduleHandler) ListMySchedules(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	schedules, err := h.scheduleUsecase.ListByDonor(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to list schedules")
		return
	}

	response.Success(w, http.StatusOK, "Schedules retrieved successfully", schedules)
}

func (h *ScheduleHandler) CancelSchedule(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	scheduleID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid schedule ID", nil)
		return
	}

	if err := h.scheduleUsecase.Cancel(r.Context(), userID, scheduleID); err != nil {
		switch err {
		case usecase.ErrScheduleNotFound:
			response.NotFound(w, "Schedule not found")
		case usecase.ErrScheduleNotOwned:
			response.Forbidden(w, "Schedule belongs to another account")
		case usecase.ErrInvalidTransition:
			response.Error(w, http.StatusConflict, "Schedule is no longer active", nil)
		default:
			response.InternalServerError(w, "Failed to cancel schedule")
		}
		return
	}

	response.Success(w, http.StatusOK, "Schedule cancelled successfully", nil)
}

// CompleteSchedule records that the donation happened at this blood bank
func (h *ScheduleHandler) CompleteSchedule(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	scheduleID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid schedule ID", nil)
		return
	}

	schedule, err := h.scheduleUsecase.Complete(r.Context(), userID, scheduleID)
	if err != nil {
		switch err {
		case usecase.ErrScheduleNotFound:
			response.NotFound(w, "Schedule not found")
		case usecase.ErrScheduleNotOwned:
			response.Forbidden(w, "Schedule belongs to another blood bank")
		case usecase.ErrInvalidTransition:
			response.Error(w, http.StatusConflict, "Schedule is no longer active", nil)
		default:
			response.InternalServerError(w, "Failed to complete schedule")
		}
		return
	}

	response.Success(w, http.StatusOK, "Donation completed successfully", schedule)
}

// ScheduledDonors lists active and recently completed donations at the bank
func (h *ScheduleHandler) ScheduledDonors(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	donors, err := h.scheduleUsecase.ScheduledDonors(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to list scheduled donors")
		return
	}

	response.Success(w, http.StatusOK, "Scheduled donors retrieved successfully", donors)
}
