package repository

import (
	"errors"

	"health-monitoring-api/internal/domain/entity"
	domainRepo "health-monitoring-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type labResultRepository struct{}

func NewLabResultRepository() domainRepo.LabResultRepository {
	return &labResultRepository{}
}

func (r *labResultRepository) FindByPatient(db *gorm.DB, patientProfileID uuid.UUID, filter entity.LabResultFilter) ([]entity.LabResult, error) {
	query := db.Where("patient_id = ?", patientProfileID)

	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.From != nil {
		query = query.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("created_at <= ?", *filter.To)
	}

	var results []entity.LabResult
	err := query.Order("created_at DESC").Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *labResultRepository) FindOwnedByPatient(db *gorm.DB, id, patientProfileID uuid.UUID) (*entity.LabResult, error) {
	var result entity.LabResult
	err := db.Where("id = ? AND patient_id = ?", id, patientProfileID).First(&result).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}
