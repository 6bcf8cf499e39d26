package usecase

import (
	"context"
	"errors"
	"time"

	"health-monitoring-api/internal/converter"
	"health-monitoring-api/internal/delivery/dto"
	"health-monitoring-api/internal/domain/entity"
	"health-monitoring-api/internal/domain/repository"
	"health-monitoring-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrEmptySchedule = errors.New("schedule must contain at least one entry")

type DoctorScheduleUsecase interface {
	GetSchedule(ctx context.Context, doctorUserID uuid.UUID, rng entity.ScheduleRange) ([]dto.ScheduleResponse, error)
	// ReplaceSchedule swaps the doctor's whole weekly schedule in one
	// transaction; readers never observe a partially applied set.
	ReplaceSchedule(ctx context.Context, doctorUserID uuid.UUID, req *dto.UpdateScheduleRequest) ([]dto.ScheduleResponse, error)
}

type doctorScheduleUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	doctorRepo   repository.DoctorProfileRepository
	scheduleRepo repository.DoctorScheduleRepository
	auditService service.AuditService
}

func NewDoctorScheduleUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorProfileRepository,
	scheduleRepo repository.DoctorScheduleRepository,
	auditService service.AuditService,
) DoctorScheduleUsecase {
	return &doctorScheduleUsecase{
		db:           db,
		log:          log,
		doctorRepo:   doctorRepo,
		scheduleRepo: scheduleRepo,
		auditService: auditService,
	}
}

func (u *doctorScheduleUsecase) GetSchedule(ctx context.Context, doctorUserID uuid.UUID, rng entity.ScheduleRange) ([]dto.ScheduleResponse, error) {
	profile, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), doctorUserID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}

	schedules, err := u.scheduleRepo.FindActiveByDoctor(u.db.WithContext(ctx), profile.ID, rng)
	if err != nil {
		u.log.Warnf("Failed to list schedule for doctor %s: %+v", doctorUserID, err)
		return nil, err
	}

	return converter.DoctorSchedulesToResponses(schedules), nil
}

func (u *doctorScheduleUsecase) ReplaceSchedule(ctx context.Context, doctorUserID uuid.UUID, req *dto.UpdateScheduleRequest) ([]dto.ScheduleResponse, error) {
	if len(req.Entries) == 0 {
		return nil, ErrEmptySchedule
	}

	rows := make([]entity.DoctorSchedule, len(req.Entries))
	for i, e := range req.Entries {
		fromDate, err := time.Parse("2006-01-02", e.FromDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}

		var toDate *time.Time
		if e.ToDate != "" {
			parsed, err := time.Parse("2006-01-02", e.ToDate)
			if err != nil {
				return nil, ErrInvalidDateFormat
			}
			toDate = &parsed
		}

		rows[i] = entity.DoctorSchedule{
			DayOfWeek: e.DayOfWeek,
			TimeSlots: entity.TimeSlotList(e.TimeSlots),
			FromDate:  fromDate,
			ToDate:    toDate,
			IsActive:  true,
		}
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.doctorRepo.FindByUserID(tx, doctorUserID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}

	for i := range rows {
		rows[i].DoctorID = profile.ID
	}

	// Delete-then-insert inside the transaction keeps the swap atomic
	if err := u.scheduleRepo.DeleteByDoctor(tx, profile.ID); err != nil {
		u.log.Warnf("Failed to clear schedule for doctor %s: %+v", doctorUserID, err)
		return nil, err
	}

	if err := u.scheduleRepo.CreateBatch(tx, rows); err != nil {
		u.log.Warnf("Failed to insert schedule for doctor %s: %+v", doctorUserID, err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &doctorUserID, entity.AuditActionScheduleReplace, "doctor_schedule", profile.ID.String(), nil, map[string]interface{}{
		"entries": len(rows),
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DoctorSchedulesToResponses(rows), nil
}
