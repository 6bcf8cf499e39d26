package repository

import (
	"errors"
	"time"

	"health-monitoring-api/internal/domain/entity"
	domainRepo "health-monitoring-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindOwnedByPatient(db *gorm.DB, id, patientProfileID uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Where("id = ? AND patient_id = ?", id, patientProfileID).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Save(appointment).Error
}

func (r *appointmentRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Where("id = ?", id).Delete(&entity.Appointment{}).Error
}

func (r *appointmentRepository) CountForDoctorBetween(db *gorm.DB, doctorUserID uuid.UUID, from, to time.Time) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).
		Where("doctor_id = ? AND date >= ? AND date < ?", doctorUserID, from, to).
		Count(&count).Error
	return count, err
}

func (r *appointmentRepository) FindForDoctorBetween(db *gorm.DB, doctorUserID uuid.UUID, from, to time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Patient").
		Where("doctor_id = ? AND date >= ? AND date < ?", doctorUserID, from, to).
		Order("time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindUpcomingByPatient(db *gorm.DB, patientProfileID uuid.UUID, now time.Time, limit int) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Where("patient_id = ? AND date >= ? AND status IN ?",
		patientProfileID, now, entity.UpcomingAppointmentStatuses()).
		Order("date ASC").
		Limit(limit).
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByPatient(db *gorm.DB, patientProfileID uuid.UUID, filter entity.AppointmentFilter) ([]entity.Appointment, error) {
	query := db.Where("patient_id = ?", patientProfileID)

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	order := "date DESC"
	if filter.Upcoming {
		query = query.Where("date >= ?", time.Now())
		order = "date ASC"
	} else {
		if filter.From != nil {
			query = query.Where("date >= ?", *filter.From)
		}
		if filter.To != nil {
			query = query.Where("date <= ?", *filter.To)
		}
	}

	var appointments []entity.Appointment
	err := query.Order(order).Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindHistory(db *gorm.DB, doctorUserID, patientProfileID uuid.UUID, from, to *time.Time, limit int) ([]entity.Appointment, error) {
	query := db.Where("doctor_id = ? AND patient_id = ?", doctorUserID, patientProfileID)
	if from != nil {
		query = query.Where("date >= ?", *from)
	}
	if to != nil {
		query = query.Where("date <= ?", *to)
	}

	var appointments []entity.Appointment
	err := query.Order("date DESC").Limit(limit).Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}
