package repository

import (
	"errors"

	"health-monitoring-api/internal/domain/entity"
	domainRepo "health-monitoring-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type vitalRepository struct{}

func NewVitalRepository() domainRepo.VitalRepository {
	return &vitalRepository{}
}

func (r *vitalRepository) FindLatestByType(db *gorm.DB, patientProfileID uuid.UUID, vitalType entity.VitalType) (*entity.PatientVital, error) {
	var vital entity.PatientVital
	err := db.Where("patient_id = ? AND type = ?", patientProfileID, vitalType).
		Order("timestamp DESC").
		First(&vital).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vital, nil
}

func (r *vitalRepository) FindLatestPerType(db *gorm.DB, patientProfileID uuid.UUID) ([]entity.PatientVital, error) {
	var vitals []entity.PatientVital
	err := db.Select("DISTINCT ON (type) *").
		Where("patient_id = ?", patientProfileID).
		Order("type, timestamp DESC").
		Find(&vitals).Error
	if err != nil {
		return nil, err
	}
	return vitals, nil
}

func (r *vitalRepository) FindByPatient(db *gorm.DB, patientProfileID uuid.UUID, filter entity.VitalFilter) ([]entity.PatientVital, error) {
	query := db.Where("patient_id = ?", patientProfileID)

	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.From != nil {
		query = query.Where("timestamp >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("timestamp <= ?", *filter.To)
	}

	var vitals []entity.PatientVital
	err := query.Order("timestamp DESC").Limit(filter.Limit).Find(&vitals).Error
	if err != nil {
		return nil, err
	}
	return vitals, nil
}
