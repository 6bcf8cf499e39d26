package repository

import (
	"health-monitoring-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorProfileRepository interface {
	Create(db *gorm.DB, profile *entity.DoctorProfile) error
	// FindByUserID resolves the profile owned by a doctor user id, with the
	// owning user preloaded. Returns nil when no profile exists.
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.DoctorProfile, error)
}

type PatientProfileRepository interface {
	Create(db *gorm.DB, profile *entity.PatientProfile) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.PatientProfile, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.PatientProfile, error)
	// FindByDoctor lists patients having at least one consultation with the
	// doctor profile, applying search/gender/risk filters, sorting and
	// pagination. Returns the page plus the unpaginated total.
	FindByDoctor(db *gorm.DB, doctorProfileID uuid.UUID, filter entity.PatientFilter) ([]entity.PatientProfile, int64, error)
	// CountHighRiskByDoctor counts high-risk patients consulted by the doctor.
	CountHighRiskByDoctor(db *gorm.DB, doctorProfileID uuid.UUID) (int64, error)
}
