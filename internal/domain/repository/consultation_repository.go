package repository

import (
	"time"

	"health-monitoring-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ConsultationRepository interface {
	// Create inserts the consultation together with its prescription children.
	Create(db *gorm.DB, consultation *entity.Consultation) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Consultation, error)
	// FindByIDWithDetail preloads prescriptions and the patient with its user.
	FindByIDWithDetail(db *gorm.DB, id uuid.UUID) (*entity.Consultation, error)
	// Update applies a partial update and returns the refreshed row with
	// prescriptions preloaded.
	Update(db *gorm.DB, id uuid.UUID, updates map[string]interface{}) (*entity.Consultation, error)
	CountCompletedBetween(db *gorm.DB, doctorProfileID uuid.UUID, from, to time.Time) (int64, error)
	// DistinctPatientIDsSince returns the distinct patients the doctor has
	// consulted since the given time.
	DistinctPatientIDsSince(db *gorm.DB, doctorProfileID uuid.UUID, since time.Time) ([]uuid.UUID, error)
	// FindHistory lists consultations for one patient under one doctor, newest
	// first, with prescriptions preloaded.
	FindHistory(db *gorm.DB, doctorProfileID, patientProfileID uuid.UUID, from, to *time.Time, limit int) ([]entity.Consultation, error)
	// FindLatestForPatient returns the doctor's most recent consultation with
	// the patient, or nil.
	FindLatestForPatient(db *gorm.DB, doctorProfileID, patientProfileID uuid.UUID) (*entity.Consultation, error)
}
