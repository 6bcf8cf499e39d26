package usecase

import (
	"context"
	"errors"

	"health-monitoring-api/internal/converter"
	"health-monitoring-api/internal/delivery/dto"
	"health-monitoring-api/internal/domain/entity"
	"health-monitoring-api/internal/domain/repository"
	"health-monitoring-api/internal/service"
	"health-monitoring-api/pkg/pagination"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrMedicationScheduleNotFound = errors.New("medication schedule not found")
	ErrLabResultNotFound          = errors.New("lab result not found")
)

type PatientHealthUsecase interface {
	// GetVitals returns a vitals history window, capped so charting queries
	// cannot drag the whole table.
	GetVitals(ctx context.Context, patientUserID uuid.UUID, filter entity.VitalFilter) ([]dto.VitalReading, error)
	GetMedications(ctx context.Context, patientUserID uuid.UUID) ([]dto.MedicationResponse, error)
	// TakeMedication marks a dose taken. Marking an already-taken dose again
	// is a no-op that still succeeds.
	TakeMedication(ctx context.Context, patientUserID, scheduleID uuid.UUID) (*dto.MedicationScheduleResponse, error)
	GetLabResults(ctx context.Context, patientUserID uuid.UUID, filter entity.LabResultFilter) ([]dto.LabResultResponse, error)
	GetLabResult(ctx context.Context, patientUserID, resultID uuid.UUID) (*dto.LabResultResponse, error)
}

type patientHealthUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	patientRepo    repository.PatientProfileRepository
	vitalRepo      repository.VitalRepository
	medicationRepo repository.MedicationRepository
	labResultRepo  repository.LabResultRepository
	auditService   service.AuditService
}

func NewPatientHealthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientProfileRepository,
	vitalRepo repository.VitalRepository,
	medicationRepo repository.MedicationRepository,
	labResultRepo repository.LabResultRepository,
	auditService service.AuditService,
) PatientHealthUsecase {
	return &patientHealthUsecase{
		db:             db,
		log:            log,
		patientRepo:    patientRepo,
		vitalRepo:      vitalRepo,
		medicationRepo: medicationRepo,
		labResultRepo:  labResultRepo,
		auditService:   auditService,
	}
}

func (u *patientHealthUsecase) resolvePatientProfile(ctx context.Context, patientUserID uuid.UUID) (*entity.PatientProfile, error) {
	profile, err := u.patientRepo.FindByUserID(u.db.WithContext(ctx), patientUserID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile for user %s: %+v", patientUserID, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrPatientNotFound
	}
	return profile, nil
}

func (u *patientHealthUsecase) GetVitals(ctx context.Context, patientUserID uuid.UUID, filter entity.VitalFilter) ([]dto.VitalReading, error) {
	profile, err := u.resolvePatientProfile(ctx, patientUserID)
	if err != nil {
		return nil, err
	}

	if filter.Limit <= 0 {
		filter.Limit = pagination.DefaultVitalLimit
	}
	if filter.Limit > pagination.MaxVitalsLimit {
		filter.Limit = pagination.MaxVitalsLimit
	}

	vitals, err := u.vitalRepo.FindByPatient(u.db.WithContext(ctx), profile.ID, filter)
	if err != nil {
		u.log.Warnf("Failed to list vitals for patient %s: %+v", patientUserID, err)
		return nil, err
	}

	return converter.VitalsToReadings(vitals), nil
}

func (u *patientHealthUsecase) GetMedications(ctx context.Context, patientUserID uuid.UUID) ([]dto.MedicationResponse, error) {
	profile, err := u.resolvePatientProfile(ctx, patientUserID)
	if err != nil {
		return nil, err
	}

	medications, err := u.medicationRepo.FindByPatient(u.db.WithContext(ctx), profile.ID)
	if err != nil {
		u.log.Warnf("Failed to list medications for patient %s: %+v", patientUserID, err)
		return nil, err
	}

	return converter.MedicationsToResponses(medications), nil
}

func (u *patientHealthUsecase) TakeMedication(ctx context.Context, patientUserID, scheduleID uuid.UUID) (*dto.MedicationScheduleResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.patientRepo.FindByUserID(tx, patientUserID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrPatientNotFound
	}

	schedule, err := u.medicationRepo.FindScheduleByID(tx, scheduleID, profile.ID)
	if err != nil {
		u.log.Warnf("Failed to find medication schedule %s: %+v", scheduleID, err)
		return nil, err
	}
	if schedule == nil {
		return nil, ErrMedicationScheduleNotFound
	}

	if !schedule.Taken {
		schedule, err = u.medicationRepo.MarkTaken(tx, scheduleID, true)
		if err != nil {
			u.log.Warnf("Failed to mark medication schedule %s taken: %+v", scheduleID, err)
			return nil, err
		}

		if err := u.auditService.LogUpdate(ctx, tx, &patientUserID, entity.AuditActionMedicationTaken, "medication_schedule", scheduleID.String(), map[string]interface{}{
			"taken": false,
		}, map[string]interface{}{
			"taken": true,
		}); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return &dto.MedicationScheduleResponse{
		ID:       schedule.ID,
		Dosage:   schedule.Dosage,
		Time:     schedule.Time,
		Taken:    schedule.Taken,
		NextDose: schedule.NextDose,
	}, nil
}

func (u *patientHealthUsecase) GetLabResults(ctx context.Context, patientUserID uuid.UUID, filter entity.LabResultFilter) ([]dto.LabResultResponse, error) {
	profile, err := u.resolvePatientProfile(ctx, patientUserID)
	if err != nil {
		return nil, err
	}

	results, err := u.labResultRepo.FindByPatient(u.db.WithContext(ctx), profile.ID, filter)
	if err != nil {
		u.log.Warnf("Failed to list lab results for patient %s: %+v", patientUserID, err)
		return nil, err
	}

	return converter.LabResultsToResponses(results), nil
}

func (u *patientHealthUsecase) GetLabResult(ctx context.Context, patientUserID, resultID uuid.UUID) (*dto.LabResultResponse, error) {
	profile, err := u.resolvePatientProfile(ctx, patientUserID)
	if err != nil {
		return nil, err
	}

	result, err := u.labResultRepo.FindOwnedByPatient(u.db.WithContext(ctx), resultID, profile.ID)
	if err != nil {
		u.log.Warnf("Failed to find lab result %s: %+v", resultID, err)
		return nil, err
	}
	if result == nil {
		return nil, ErrLabResultNotFound
	}

	return converter.LabResultToResponse(result), nil
}
