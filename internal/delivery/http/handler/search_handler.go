package handler

import (
	"net/http"
	"strconv"

	"lifelink/internal/delivery/dto"
	"lifelink/internal/delivery/http/middleware"
	"lifelink/internal/usecase"
	"lifelink/pkg/response"
)

type SearchHandler struct {
	searchUsecase usecase.SearchUsecase
}

func NewSearchHandler(searchUsecase usecase.SearchUsecase) *SearchHandler {
	return &SearchHandler{searchUsecase: searchUsecase}
}

// Search finds donors and blood banks for a blood group near the requester.
// Query parameters: blood_group (required), max_distance_km (default 50),
// availability_only (default true).
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	bloodGroup := r.URL.Query().Get("blood_group")
	if bloodGroup == "" {
		response.Error(w, http.StatusBadRequest, "blood_group query parameter is required", nil)
		return
	}

	maxKm := dto.DefaultSearchRadiusKm
	if raw := r.URL.Query().Get("max_distance_km"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed <= 0 {
			response.Error(w, http.StatusBadRequest, "max_distance_km must be a positive number", nil)
			return
		}
		maxKm = parsed
	}

	availabilityOnly := true
	if raw := r.URL.Query().Get("availability_only"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "availability_only must be a boolean", nil)
			return
		}
		availabilityOnly = parsed
	}

	results, err := h.searchUsecase.Search(r.Context(), userID, bloodGroup, maxKm, availabilityOnly)
	if err != nil {
		switch err {
		case usecase.ErrInvalidBloodGroup:
			response.Error(w, http.StatusBadRequest, "Invalid blood group", nil)
		case usecase.ErrLocationNotSet:
			response.UnprocessableEntity(w, "Set your location to search for donors and blood banks")
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		default:
			response.InternalServerError(w, "Failed to search")
		}
		return
	}

	response.Success(w, http.StatusOK, "Search completed successfully", results)
}
