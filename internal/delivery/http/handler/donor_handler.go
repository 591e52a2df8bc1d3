package handler

import (
	"encoding/json"
	"net/http"

	"lifelink/internal/delivery/dto"
	"lifelink/internal/delivery/http/middleware"
	"lifelink/internal/usecase"
	"lifelink/pkg/response"
	"lifelink/pkg/validator"
)

type DonorHandler struct {
	donorUsecase usecase.DonorUsecase
	validator    *validator.CustomValidator
}

func NewDonorHandler(donorUsecase usecase.DonorUsecase, validator *validator.CustomValidator) *DonorHandler {
	return &DonorHandler{
		donorUsecase: donorUsecase,
		validator:    validator,
	}
}

func (h *DonorHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	dashboard, err := h.donorUsecase.Dashboard(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to load dashboard")
		return
	}

	response.Success(w, http.StatusOK, "Dashboard retrieved successfully", dashboard)
}

func (h *DonorHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	profile, err := h.donorUsecase.GetProfile(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to get profile")
		return
	}

	response.Success(w, http.StatusOK, "Profile retrieved successfully", profile)
}

func (h *DonorHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.UpdateDonorProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	profile, err := h.donorUsecase.UpdateProfile(r.Context(), userID, &req)
	if err != nil {
		response.InternalServerError(w, "Failed to update profile")
		return
	}

	response.Success(w, http.StatusOK, "Profile updated successfully", profile)
}

func (h *DonorHandler) ToggleAvailability(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	availability, err := h.donorUsecase.ToggleAvailability(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to toggle availability")
		return
	}

	response.Success(w, http.StatusOK, "Availability updated successfully", availability)
}
