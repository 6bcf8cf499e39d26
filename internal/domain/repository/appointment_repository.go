package repository

import (
	"time"

	"health-monitoring-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	// FindOwnedByPatient returns the appointment only when it belongs to the
	// given patient profile; nil otherwise.
	FindOwnedByPatient(db *gorm.DB, id, patientProfileID uuid.UUID) (*entity.Appointment, error)
	Update(db *gorm.DB, appointment *entity.Appointment) error
	Delete(db *gorm.DB, id uuid.UUID) error
	// CountForDoctorBetween counts appointments assigned to a doctor user id
	// with a date inside [from, to).
	CountForDoctorBetween(db *gorm.DB, doctorUserID uuid.UUID, from, to time.Time) (int64, error)
	// FindForDoctorBetween returns the day's schedule ordered by time
	// ascending, with the patient preloaded for display names.
	FindForDoctorBetween(db *gorm.DB, doctorUserID uuid.UUID, from, to time.Time) ([]entity.Appointment, error)
	// FindUpcomingByPatient returns up to limit confirmed/pending appointments
	// with date >= now, ascending.
	FindUpcomingByPatient(db *gorm.DB, patientProfileID uuid.UUID, now time.Time, limit int) ([]entity.Appointment, error)
	FindByPatient(db *gorm.DB, patientProfileID uuid.UUID, filter entity.AppointmentFilter) ([]entity.Appointment, error)
	// FindHistory lists a patient's appointments with a specific doctor user
	// id, newest first.
	FindHistory(db *gorm.DB, doctorUserID, patientProfileID uuid.UUID, from, to *time.Time, limit int) ([]entity.Appointment, error)
}
