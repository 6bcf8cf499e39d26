package repository

import (
	"errors"
	"time"

	"health-monitoring-api/internal/domain/entity"
	domainRepo "health-monitoring-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type medicationRepository struct{}

func NewMedicationRepository() domainRepo.MedicationRepository {
	return &medicationRepository{}
}

func (r *medicationRepository) FindByPatient(db *gorm.DB, patientProfileID uuid.UUID) ([]entity.Medication, error) {
	var medications []entity.Medication
	err := db.Preload("Schedules", func(db *gorm.DB) *gorm.DB {
		return db.Order("medication_schedules.next_dose ASC")
	}).
		Where("patient_id = ?", patientProfileID).
		Find(&medications).Error
	if err != nil {
		return nil, err
	}
	return medications, nil
}

func (r *medicationRepository) FindSchedules(db *gorm.DB, patientProfileID uuid.UUID) ([]entity.MedicationSchedule, error) {
	var schedules []entity.MedicationSchedule
	err := db.Preload("Medication").
		Where("patient_id = ?", patientProfileID).
		Order("next_dose ASC").
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *medicationRepository) FindSchedulesDue(db *gorm.DB, patientProfileID uuid.UUID, from, to time.Time, limit int) ([]entity.MedicationSchedule, error) {
	var schedules []entity.MedicationSchedule
	err := db.Preload("Medication").
		Where("patient_id = ?", patientProfileID).
		Where("(next_dose >= ? AND next_dose <= ?) OR next_dose IS NULL", from, to).
		Limit(limit).
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *medicationRepository) FindScheduleByID(db *gorm.DB, scheduleID, patientProfileID uuid.UUID) (*entity.MedicationSchedule, error) {
	var schedule entity.MedicationSchedule
	err := db.Where("id = ? AND patient_id = ?", scheduleID, patientProfileID).
		First(&schedule).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &schedule, nil
}

func (r *medicationRepository) FindNextPendingSchedule(db *gorm.DB, patientProfileID, medicationID uuid.UUID) (*entity.MedicationSchedule, error) {
	var schedule entity.MedicationSchedule
	err := db.Where("patient_id = ? AND medication_id = ? AND taken = ?", patientProfileID, medicationID, false).
		Order("next_dose ASC").
		First(&schedule).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &schedule, nil
}

func (r *medicationRepository) MarkTaken(db *gorm.DB, scheduleID uuid.UUID, taken bool) (*entity.MedicationSchedule, error) {
	if err := db.Model(&entity.MedicationSchedule{}).
		Where("id = ?", scheduleID).
		Update("taken", taken).Error; err != nil {
		return nil, err
	}

	var schedule entity.MedicationSchedule
	if err := db.Where("id = ?", scheduleID).First(&schedule).Error; err != nil {
		return nil, err
	}
	return &schedule, nil
}
