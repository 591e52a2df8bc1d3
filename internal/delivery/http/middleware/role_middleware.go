package middleware

import (
	"net/http"

	"lifelink/internal/delivery/dto"
	"lifelink/internal/domain/entity"
	"lifelink/pkg/response"
)

// RequireRole creates a middleware that checks if the user has any of the
// required roles. Role is read from context (set by AuthMiddleware from
// JWT claims). A mismatched role gets a 403 carrying the destination of
// the user's own dashboard, so clients can redirect there.
func RequireRole(allowedRoleIDs ...int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			roleID, ok := GetRoleIDFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			for _, allowedRoleID := range allowedRoleIDs {
				if roleID == allowedRoleID {
					next.ServeHTTP(w, r)
					return
				}
			}

			response.JSON(w, http.StatusForbidden, response.Response{
				Success: false,
				Message: "You don't have permission to access this resource",
				Data: dto.DashboardResponse{
					Role:        entity.RoleNameByID[roleID],
					Destination: entity.DashboardPathByRoleID[roleID],
				},
			})
		})
	}
}

// RequireDonor is a convenience middleware for donor-only endpoints
func RequireDonor(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDDonor)(next)
}

// RequireBloodBank is a convenience middleware for bloodbank-only endpoints
func RequireBloodBank(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDBloodBank)(next)
}

// RequirePatient is a convenience middleware for patient-only endpoints
func RequirePatient(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDPatient)(next)
}
