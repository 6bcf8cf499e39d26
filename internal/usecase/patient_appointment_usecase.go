package usecase

import (
	"context"
	"errors"

	"health-monitoring-api/internal/converter"
	"health-monitoring-api/internal/delivery/dto"
	"health-monitoring-api/internal/domain/entity"
	"health-monitoring-api/internal/domain/repository"
	"health-monitoring-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrAppointmentNotFound = errors.New("appointment not found")

type PatientAppointmentUsecase interface {
	GetAppointments(ctx context.Context, patientUserID uuid.UUID, filter entity.AppointmentFilter) ([]dto.AppointmentResponse, error)
	CreateAppointment(ctx context.Context, patientUserID uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	UpdateAppointment(ctx context.Context, patientUserID, appointmentID uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	// DeleteAppointment hard-deletes; appointments are the only records this
	// service removes.
	DeleteAppointment(ctx context.Context, patientUserID, appointmentID uuid.UUID) error
}

type patientAppointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	patientRepo     repository.PatientProfileRepository
	appointmentRepo repository.AppointmentRepository
	auditService    service.AuditService
}

func NewPatientAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientProfileRepository,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
) PatientAppointmentUsecase {
	return &patientAppointmentUsecase{
		db:              db,
		log:             log,
		patientRepo:     patientRepo,
		appointmentRepo: appointmentRepo,
		auditService:    auditService,
	}
}

func (u *patientAppointmentUsecase) resolvePatientProfile(ctx context.Context, patientUserID uuid.UUID) (*entity.PatientProfile, error) {
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

func (u *patientAppointmentUsecase) GetAppointments(ctx context.Context, patientUserID uuid.UUID, filter entity.AppointmentFilter) ([]dto.AppointmentResponse, error) {
	profile, err := u.resolvePatientProfile(ctx, patientUserID)
	if err != nil {
		return nil, err
	}

	appointments, err := u.appointmentRepo.FindByPatient(u.db.WithContext(ctx), profile.ID, filter)
	if err != nil {
		u.log.Warnf("Failed to list appointments for patient %s: %+v", patientUserID, err)
		return nil, err
	}

	return converter.AppointmentsToResponses(appointments), nil
}

func (u *patientAppointmentUsecase) CreateAppointment(ctx context.Context, patientUserID uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	date, err := parseFlexibleTime(req.Date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	var doctorID *uuid.UUID
	if req.DoctorID != "" {
		parsed, err := uuid.Parse(req.DoctorID)
		if err != nil {
			return nil, ErrDoctorNotFound
		}
		doctorID = &parsed
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.patientRepo.FindByUserID(tx, patientUserID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrPatientNotFound
	}

	appointmentType := req.Type
	if appointmentType == "" {
		appointmentType = entity.AppointmentTypeCheckup
	}

	appointment := &entity.Appointment{
		PatientID:  profile.ID,
		DoctorID:   doctorID,
		DoctorName: req.DoctorName,
		Specialty:  req.Specialty,
		Date:       date,
		Time:       req.Time,
		Status:     entity.AppointmentStatusPending,
		Type:       appointmentType,
		Reason:     req.Reason,
		Notes:      req.Notes,
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		if isForeignKeyError(err, "doctor") {
			return nil, ErrDoctorNotFound
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &patientUserID, entity.AuditActionAppointmentCreate, "appointment", appointment.ID.String(), map[string]interface{}{
		"date": req.Date,
		"time": req.Time,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *patientAppointmentUsecase) UpdateAppointment(ctx context.Context, patientUserID, appointmentID uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.patientRepo.FindByUserID(tx, patientUserID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrPatientNotFound
	}

	// FindOwnedByPatient covers both absence and foreign ownership
	appointment, err := u.appointmentRepo.FindOwnedByPatient(tx, appointmentID, profile.ID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	oldStatus := appointment.Status

	if req.Date != nil {
		date, err := parseFlexibleTime(*req.Date)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		appointment.Date = date
	}
	if req.Time != nil {
		appointment.Time = *req.Time
	}
	if req.Status != nil {
		appointment.Status = entity.AppointmentStatus(*req.Status)
	}
	if req.Reason != nil {
		appointment.Reason = *req.Reason
	}
	if req.Notes != nil {
		appointment.Notes = *req.Notes
	}

	if err := u.appointmentRepo.Update(tx, appointment); err != nil {
		u.log.Warnf("Failed to update appointment %s: %+v", appointmentID, err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &patientUserID, entity.AuditActionAppointmentUpdate, "appointment", appointmentID.String(), map[string]interface{}{
		"status": oldStatus,
	}, map[string]interface{}{
		"status": appointment.Status,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *patientAppointmentUsecase) DeleteAppointment(ctx context.Context, patientUserID, appointmentID uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.patientRepo.FindByUserID(tx, patientUserID)
	if err != nil {
		return err
	}
	if profile == nil {
		return ErrPatientNotFound
	}

	appointment, err := u.appointmentRepo.FindOwnedByPatient(tx, appointmentID, profile.ID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	if err := u.appointmentRepo.Delete(tx, appointmentID); err != nil {
		u.log.Warnf("Failed to delete appointment %s: %+v", appointmentID, err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, &patientUserID, entity.AuditActionAppointmentDelete, "appointment", appointmentID.String(), map[string]interface{}{
		"date":   appointment.Date,
		"status": appointment.Status,
	}); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
