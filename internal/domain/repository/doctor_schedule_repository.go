package repository

import (
	"health-monitoring-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorScheduleRepository interface {
	// FindActiveByDoctor lists active schedule rows overlapping the range,
	// ordered by day_of_week ascending.
	FindActiveByDoctor(db *gorm.DB, doctorProfileID uuid.UUID, rng entity.ScheduleRange) ([]entity.DoctorSchedule, error)
	// DeleteByDoctor removes all schedule rows for the doctor. Callers wrap
	// this together with CreateBatch in one transaction so readers never see
	// an empty schedule.
	DeleteByDoctor(db *gorm.DB, doctorProfileID uuid.UUID) error
	CreateBatch(db *gorm.DB, schedules []entity.DoctorSchedule) error
}
