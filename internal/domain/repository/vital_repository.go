package repository

import (
	"health-monitoring-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VitalRepository interface {
	// FindLatestByType returns the newest reading of one type, or nil when the
	// patient has no readings of that type.
	FindLatestByType(db *gorm.DB, patientProfileID uuid.UUID, vitalType entity.VitalType) (*entity.PatientVital, error)
	// FindLatestPerType returns at most one newest reading for each type the
	// patient has.
	FindLatestPerType(db *gorm.DB, patientProfileID uuid.UUID) ([]entity.PatientVital, error)
	FindByPatient(db *gorm.DB, patientProfileID uuid.UUID, filter entity.VitalFilter) ([]entity.PatientVital, error)
}
