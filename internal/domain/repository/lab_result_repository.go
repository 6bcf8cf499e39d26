package repository

import (
	"health-monitoring-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LabResultRepository interface {
	FindByPatient(db *gorm.DB, patientProfileID uuid.UUID, filter entity.LabResultFilter) ([]entity.LabResult, error)
	// FindOwnedByPatient returns the result only when it belongs to the
	// patient profile; nil otherwise.
	FindOwnedByPatient(db *gorm.DB, id, patientProfileID uuid.UUID) (*entity.LabResult, error)
}
