package repository

import (
	"errors"
	"time"

	"health-monitoring-api/internal/domain/entity"
	domainRepo "health-monitoring-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type consultationRepository struct{}

func NewConsultationRepository() domainRepo.ConsultationRepository {
	return &consultationRepository{}
}

func (r *consultationRepository) Create(db *gorm.DB, consultation *entity.Consultation) error {
	// Prescriptions attached to the struct are inserted in the same call.
	return db.Create(consultation).Error
}

func (r *consultationRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Consultation, error) {
	var consultation entity.Consultation
	err := db.Where("id = ?", id).First(&consultation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &consultation, nil
}

func (r *consultationRepository) FindByIDWithDetail(db *gorm.DB, id uuid.UUID) (*entity.Consultation, error) {
	var consultation entity.Consultation
	err := db.Preload("Prescriptions").
		Preload("Patient").
		Preload("Patient.User").
		Where("id = ?", id).
		First(&consultation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &consultation, nil
}

func (r *consultationRepository) Update(db *gorm.DB, id uuid.UUID, updates map[string]interface{}) (*entity.Consultation, error) {
	if err := db.Model(&entity.Consultation{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}

	var consultation entity.Consultation
	if err := db.Preload("Prescriptions").Where("id = ?", id).First(&consultation).Error; err != nil {
		return nil, err
	}
	return &consultation, nil
}

func (r *consultationRepository) CountCompletedBetween(db *gorm.DB, doctorProfileID uuid.UUID, from, to time.Time) (int64, error) {
	var count int64
	err := db.Model(&entity.Consultation{}).
		Where("doctor_id = ? AND status = ? AND updated_at >= ? AND updated_at < ?",
			doctorProfileID, entity.ConsultationStatusCompleted, from, to).
		Count(&count).Error
	return count, err
}

func (r *consultationRepository) DistinctPatientIDsSince(db *gorm.DB, doctorProfileID uuid.UUID, since time.Time) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := db.Model(&entity.Consultation{}).
		Where("doctor_id = ? AND created_at >= ?", doctorProfileID, since).
		Distinct("patient_id").
		Pluck("patient_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *consultationRepository) FindHistory(db *gorm.DB, doctorProfileID, patientProfileID uuid.UUID, from, to *time.Time, limit int) ([]entity.Consultation, error) {
	query := db.Preload("Prescriptions").
		Where("doctor_id = ? AND patient_id = ?", doctorProfileID, patientProfileID)
	if from != nil {
		query = query.Where("created_at >= ?", *from)
	}
	if to != nil {
		query = query.Where("created_at <= ?", *to)
	}

	var consultations []entity.Consultation
	err := query.Order("created_at DESC").Limit(limit).Find(&consultations).Error
	if err != nil {
		return nil, err
	}
	return consultations, nil
}

func (r *consultationRepository) FindLatestForPatient(db *gorm.DB, doctorProfileID, patientProfileID uuid.UUID) (*entity.Consultation, error) {
	var consultation entity.Consultation
	err := db.Where("doctor_id = ? AND patient_id = ?", doctorProfileID, patientProfileID).
		Order("created_at DESC").
		First(&consultation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &consultation, nil
}
