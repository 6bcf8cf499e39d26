package repository

import (
	"errors"

	"health-monitoring-api/internal/domain/entity"
	domainRepo "health-monitoring-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type patientProfileRepository struct{}

func NewPatientProfileRepository() domainRepo.PatientProfileRepository {
	return &patientProfileRepository{}
}

func (r *patientProfileRepository) Create(db *gorm.DB, profile *entity.PatientProfile) error {
	return db.Create(profile).Error
}

func (r *patientProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.PatientProfile, error) {
	var profile entity.PatientProfile
	err := db.Preload("User").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *patientProfileRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.PatientProfile, error) {
	var profile entity.PatientProfile
	err := db.Preload("User").Where("id = ?", id).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *patientProfileRepository) FindByDoctor(db *gorm.DB, doctorProfileID uuid.UUID, filter entity.PatientFilter) ([]entity.PatientProfile, int64, error) {
	query := db.Model(&entity.PatientProfile{}).
		Joins("JOIN users ON users.id = patient_profiles.user_id").
		Where("EXISTS (SELECT 1 FROM consultations WHERE consultations.patient_id = patient_profiles.id AND consultations.doctor_id = ?)", doctorProfileID)

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("patient_profiles.name ILIKE ? OR users.email ILIKE ?", pattern, pattern)
	}
	if filter.Gender != "" {
		query = query.Where("patient_profiles.gender = ?", filter.Gender)
	}
	if filter.RiskLevel != "" {
		query = query.Where("patient_profiles.risk_level = ?", filter.RiskLevel)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch filter.SortBy {
	case "age":
		query = query.Order("patient_profiles.age DESC")
	case "riskLevel":
		query = query.Order("patient_profiles.risk_level DESC")
	case "lastVisit":
		query = query.Order("patient_profiles.updated_at DESC")
	default:
		query = query.Order("patient_profiles.name ASC")
	}

	var patients []entity.PatientProfile
	err := query.Preload("User").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&patients).Error
	if err != nil {
		return nil, 0, err
	}
	return patients, total, nil
}

func (r *patientProfileRepository) CountHighRiskByDoctor(db *gorm.DB, doctorProfileID uuid.UUID) (int64, error) {
	var count int64
	err := db.Model(&entity.PatientProfile{}).
		Where("risk_level = ?", entity.RiskHigh).
		Where("EXISTS (SELECT 1 FROM consultations WHERE consultations.patient_id = patient_profiles.id AND consultations.doctor_id = ?)", doctorProfileID).
		Count(&count).Error
	return count, err
}
