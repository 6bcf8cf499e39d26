package repository

import (
	"time"

	"health-monitoring-api/internal/domain/entity"
	domainRepo "health-monitoring-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type alertRepository struct{}

func NewAlertRepository() domainRepo.AlertRepository {
	return &alertRepository{}
}

func (r *alertRepository) FindCriticalForDoctor(db *gorm.DB, doctorProfileID uuid.UUID, since time.Time, limit int) ([]entity.Alert, error) {
	var alerts []entity.Alert
	err := db.
		Joins("JOIN users ON users.id = alerts.user_id").
		Joins("JOIN patient_profiles ON patient_profiles.user_id = users.id").
		Where("alerts.type IN ?", entity.CriticalAlertTypes()).
		Where("alerts.created_at >= ?", since).
		Where("EXISTS (SELECT 1 FROM consultations WHERE consultations.patient_id = patient_profiles.id AND consultations.doctor_id = ?)", doctorProfileID).
		Order("alerts.created_at DESC").
		Limit(limit).
		Preload("User").
		Preload("User.PatientProfile").
		Find(&alerts).Error
	if err != nil {
		return nil, err
	}
	return alerts, nil
}
