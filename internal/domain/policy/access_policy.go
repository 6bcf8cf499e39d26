// Package policy holds the pure access rules shared by the HTTP middleware
// and the usecases. No function here performs I/O; ownership is expressed as
// actor-id equality, with the caller responsible for resolving target ids.
package policy

import (
	"health-monitoring-api/internal/domain/entity"

	"github.com/google/uuid"
)

// CanAccessDoctorResource decides whether the actor may act on resources
// owned by the doctor user targetDoctorID. Admins may always; a doctor only
// on their own resources; everything else is denied.
func CanAccessDoctorResource(actor entity.Actor, targetDoctorID uuid.UUID) bool {
	switch actor.Role {
	case entity.RoleAdmin:
		return true
	case entity.RoleDoctor:
		return actor.ID == targetDoctorID
	default:
		return false
	}
}

// CanAccessPatientResource decides whether the actor may act on resources
// owned by the patient user targetPatientID. Admins and doctors may always;
// a patient only on their own resources.
func CanAccessPatientResource(actor entity.Actor, targetPatientID uuid.UUID) bool {
	switch actor.Role {
	case entity.RoleAdmin, entity.RoleDoctor:
		return true
	case entity.RolePatient:
		return actor.ID == targetPatientID
	default:
		return false
	}
}
