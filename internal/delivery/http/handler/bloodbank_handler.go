package handler

import (
	"encoding/json"
	"net/http"

	"lifelink/internal/delivery/dto"
	"lifelink/internal/delivery/http/middleware"
	"lifelink/internal/domain/entity"
	"lifelink/internal/usecase"
	"lifelink/pkg/response"
	"lifelink/pkg/validator"
)

type BloodBankHandler struct {
	bloodBankUsecase usecase.BloodBankUsecase
	inventoryUsecase usecase.InventoryUsecase
	validator        *validator.CustomValidator
}

func NewBloodBankHandler(
	bloodBankUsecase usecase.BloodBankUsecase,
	inventoryUsecase usecase.InventoryUsecase,
	validator *validator.CustomValidator,
) *BloodBankHandler {
	return &BloodBankHandler{
		bloodBankUsecase: bloodBankUsecase,
		inventoryUsecase: inventoryUsecase,
		validator:        validator,
	}
}

func (h *BloodBankHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	dashboard, err := h.bloodBankUsecase.Dashboard(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to load dashboard")
		return
	}

	response.Success(w, http.StatusOK, "Dashboard retrieved successfully", dashboard)
}

func (h *BloodBankHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	profile, err := h.bloodBankUsecase.GetProfile(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to get profile")
		return
	}

	response.Success(w, http.StatusOK, "Profile retrieved successfully", profile)
}

func (h *BloodBankHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.UpdateBloodBankProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	profile, err := h.bloodBankUsecase.UpdateProfile(r.Context(), userID, &req)
	if err != nil {
		response.InternalServerError(w, "Failed to update profile")
		return
	}

	response.Success(w, http.StatusOK, "Profile updated successfully", profile)
}

func (h *BloodBankHandler) ListInventory(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	inventory, err := h.inventoryUsecase.List(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to list inventory")
		return
	}

	response.Success(w, http.StatusOK, "Inventory retrieved successfully", inventory)
}

// UpdateInventory applies one add, remove or set action to the bank's stock
func (h *BloodBankHandler) UpdateInventory(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.InventoryActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	inventory, err := h.inventoryUsecase.Apply(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidBloodGroup:
			response.Error(w, http.StatusBadRequest, "Invalid blood group", nil)
		case usecase.ErrBloodBankNotFound:
			response.NotFound(w, "Blood bank not found")
		case usecase.ErrInventoryNotFound:
			response.NotFound(w, "No inventory for that blood group")
		case entity.ErrInsufficientStock:
			response.Error(w, http.StatusConflict, "Not enough units in inventory", nil)
		default:
			response.InternalServerError(w, "Failed to update inventory")
		}
		return
	}

	response.Success(w, http.StatusOK, "Inventory updated successfully", inventory)
}
