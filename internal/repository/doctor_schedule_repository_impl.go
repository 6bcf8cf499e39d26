package repository

import (
	"health-monitoring-api/internal/domain/entity"
	domainRepo "health-monitoring-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type doctorScheduleRepository struct{}

func NewDoctorScheduleRepository() domainRepo.DoctorScheduleRepository {
	return &doctorScheduleRepository{}
}

func (r *doctorScheduleRepository) FindActiveByDoctor(db *gorm.DB, doctorProfileID uuid.UUID, rng entity.ScheduleRange) ([]entity.DoctorSchedule, error) {
	query := db.Where("doctor_id = ? AND is_active = ?", doctorProfileID, true)

	if rng.From != nil {
		query = query.Where("to_date IS NULL OR to_date >= ?", *rng.From)
	}
	if rng.To != nil {
		query = query.Where("from_date <= ?", *rng.To)
	}

	var schedules []entity.DoctorSchedule
	err := query.Order("day_of_week ASC").Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *doctorScheduleRepository) DeleteByDoctor(db *gorm.DB, doctorProfileID uuid.UUID) error {
	return db.Where("doctor_id = ?", doctorProfileID).Delete(&entity.DoctorSchedule{}).Error
}

func (r *doctorScheduleRepository) CreateBatch(db *gorm.DB, schedules []entity.DoctorSchedule) error {
	if len(schedules) == 0 {
		return nil
	}
	return db.Create(&schedules).Error
}
