package middleware

import (
	"net/http"

	"health-monitoring-api/internal/domain/entity"
	"health-monitoring-api/internal/domain/policy"
	"health-monitoring-api/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// RequireRole creates a middleware that checks if the user has any of the
// required roles. Role is read from context (set by AuthMiddleware from JWT
// claims).
func RequireRole(allowedRoles ...entity.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetRoleFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			allowed := false
			for _, allowedRole := range allowedRoles {
				if role == allowedRole {
					allowed = true
					break
				}
			}

			if !allowed {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin is a convenience middleware for admin-only endpoints
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleAdmin)(next)
}

// RequireDoctor is a convenience middleware for doctor-only endpoints
func RequireDoctor(next http.Handler) http.Handler {
	return RequireRole(entity.RoleDoctor)(next)
}

// RequirePatient is a convenience middleware for patient-only endpoints
func RequirePatient(next http.Handler) http.Handler {
	return RequireRole(entity.RolePatient)(next)
}

// RequireDoctorAccess guards routes carrying a {doctorId} path variable: the
// actor must be an admin or the doctor whose user id matches the variable.
func RequireDoctorAccess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := GetActorFromContext(r.Context())
		if !ok {
			response.Unauthorized(w, "User information not found")
			return
		}

		doctorID, err := uuid.Parse(mux.Vars(r)["doctorId"])
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid doctor ID", err.Error())
			return
		}

		if !policy.CanAccessDoctorResource(actor, doctorID) {
			response.Forbidden(w, "You don't have permission to access this doctor's resources")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequirePatientAccess guards routes carrying a {patientId} path variable:
// admins and doctors pass, a patient only for their own user id.
func RequirePatientAccess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := GetActorFromContext(r.Context())
		if !ok {
			response.Unauthorized(w, "User information not found")
			return
		}

		patientID, err := uuid.Parse(mux.Vars(r)["patientId"])
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid patient ID", err.Error())
			return
		}

		if !policy.CanAccessPatientResource(actor, patientID) {
			response.Forbidden(w, "You don't have permission to access this patient's resources")
			return
		}

		next.ServeHTTP(w, r)
	})
}
