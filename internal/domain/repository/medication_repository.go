package repository

import (
	"time"

	"health-monitoring-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MedicationRepository interface {
	// FindByPatient lists medications with their next schedule preloaded.
	FindByPatient(db *gorm.DB, patientProfileID uuid.UUID) ([]entity.Medication, error)
	FindSchedules(db *gorm.DB, patientProfileID uuid.UUID) ([]entity.MedicationSchedule, error)
	// FindSchedulesDue returns schedules with next_dose inside [from, to] or
	// no scheduled next dose at all, capped at limit.
	FindSchedulesDue(db *gorm.DB, patientProfileID uuid.UUID, from, to time.Time, limit int) ([]entity.MedicationSchedule, error)
	FindScheduleByID(db *gorm.DB, scheduleID, patientProfileID uuid.UUID) (*entity.MedicationSchedule, error)
	// FindNextPendingSchedule returns the earliest untaken dose for a
	// medication, or nil.
	FindNextPendingSchedule(db *gorm.DB, patientProfileID, medicationID uuid.UUID) (*entity.MedicationSchedule, error)
	MarkTaken(db *gorm.DB, scheduleID uuid.UUID, taken bool) (*entity.MedicationSchedule, error)
}
