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

var (
	ErrConsultationNotFound = errors.New("consultation not found")
	ErrConsultationNotOwned = errors.New("consultation does not belong to you")
	ErrLabOrderNotFound     = errors.New("lab order not found")
	ErrLabOrderNotOwned     = errors.New("lab order does not belong to you")
	ErrLabOrderNotPending   = errors.New("lab order is no longer pending")
	ErrInvalidStatus        = errors.New("invalid status value")
	ErrInvalidDateFormat    = errors.New("invalid date format")
)

type ConsultationUsecase interface {
	CreateConsultation(ctx context.Context, doctorUserID uuid.UUID, req *dto.CreateConsultationRequest) (*dto.ConsultationResponse, error)
	GetConsultation(ctx context.Context, doctorUserID, consultationID uuid.UUID) (*dto.ConsultationResponse, error)
	UpdateConsultation(ctx context.Context, doctorUserID, consultationID uuid.UUID, req *dto.UpdateConsultationRequest) (*dto.ConsultationResponse, error)
	GetLabOrders(ctx context.Context, doctorUserID uuid.UUID, filter entity.LabOrderFilter) ([]dto.LabOrderResponse, int64, error)
	ApproveLabOrder(ctx context.Context, doctorUserID, orderID uuid.UUID) (*dto.ApproveLabOrderResponse, error)
	GetLabOrderResults(ctx context.Context, doctorUserID, orderID uuid.UUID) ([]dto.LabResultResponse, error)
}

type consultationUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	doctorRepo       repository.DoctorProfileRepository
	patientRepo      repository.PatientProfileRepository
	consultationRepo repository.ConsultationRepository
	labOrderRepo     repository.LabOrderRepository
	labResultRepo    repository.LabResultRepository
	appointmentRepo  repository.AppointmentRepository
	auditService     service.AuditService
}

func NewConsultationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorProfileRepository,
	patientRepo repository.PatientProfileRepository,
	consultationRepo repository.ConsultationRepository,
	labOrderRepo repository.LabOrderRepository,
	labResultRepo repository.LabResultRepository,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
) ConsultationUsecase {
	return &consultationUsecase{
		db:               db,
		log:              log,
		doctorRepo:       doctorRepo,
		patientRepo:      patientRepo,
		consultationRepo: consultationRepo,
		labOrderRepo:     labOrderRepo,
		labResultRepo:    labResultRepo,
		appointmentRepo:  appointmentRepo,
		auditService:     auditService,
	}
}

// CreateConsultation records an encounter together with its prescriptions,
// lab orders and optional follow-up appointment in one transaction.
func (u *consultationUsecase) CreateConsultation(ctx context.Context, doctorUserID uuid.UUID, req *dto.CreateConsultationRequest) (*dto.ConsultationResponse, error) {
	patientID, err := uuid.Parse(req.PatientID)
	if err != nil {
		return nil, ErrPatientNotFound
	}

	var nextAppointment *time.Time
	if req.NextAppointment != "" {
		parsed, err := parseFlexibleTime(req.NextAppointment)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		nextAppointment = &parsed
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.doctorRepo.FindByUserID(tx, doctorUserID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile for user %s: %+v", doctorUserID, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}

	patient, err := u.patientRepo.FindByID(tx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", patientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	consultation := &entity.Consultation{
		DoctorID:        profile.ID,
		PatientID:       patient.ID,
		Symptoms:        entity.JSON(req.Symptoms),
		Diagnosis:       req.Diagnosis,
		Notes:           req.Notes,
		Status:          entity.ConsultationStatusCompleted,
		NextAppointment: nextAppointment,
	}

	for _, p := range req.Prescriptions {
		consultation.Prescriptions = append(consultation.Prescriptions, entity.Prescription{
			Medication:   p.Medication,
			Dosage:       p.Dosage,
			Frequency:    p.Frequency,
			Duration:     p.Duration,
			Instructions: p.Instructions,
		})
	}

	if err := u.consultationRepo.Create(tx, consultation); err != nil {
		if isForeignKeyError(err, "patient") {
			return nil, ErrPatientNotFound
		}
		u.log.Warnf("Failed to create consultation: %+v", err)
		return nil, err
	}

	if len(req.LabOrders) > 0 {
		orders := make([]entity.LabOrder, len(req.LabOrders))
		for i, o := range req.LabOrders {
			orders[i] = entity.LabOrder{
				DoctorID:  profile.ID,
				PatientID: patient.ID,
				TestType:  o.TestType,
				Priority:  entity.LabOrderPriority(o.Priority),
				Status:    entity.LabOrderStatusPending,
				Notes:     o.Notes,
			}
		}
		if err := u.labOrderRepo.CreateBatch(tx, orders); err != nil {
			u.log.Warnf("Failed to create lab orders: %+v", err)
			return nil, err
		}
	}

	// A next-appointment date books a confirmed follow-up for the patient
	if nextAppointment != nil {
		appointment := &entity.Appointment{
			PatientID:  patient.ID,
			DoctorID:   &doctorUserID,
			DoctorName: profile.User.FullName,
			Specialty:  profile.Specialty,
			Date:       *nextAppointment,
			Time:       nextAppointment.Format("15:04"),
			Status:     entity.AppointmentStatusConfirmed,
			Type:       entity.AppointmentTypeFollowUp,
			Reason:     "Follow-up consultation",
		}
		if err := u.appointmentRepo.Create(tx, appointment); err != nil {
			u.log.Warnf("Failed to create follow-up appointment: %+v", err)
			return nil, err
		}
	}

	if err := u.auditService.LogCreate(ctx, tx, &doctorUserID, entity.AuditActionConsultationCreate, "consultation", consultation.ID.String(), map[string]interface{}{
		"patient_id": patient.ID.String(),
		"diagnosis":  req.Diagnosis,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ConsultationToResponse(consultation), nil
}

func (u *consultationUsecase) GetConsultation(ctx context.Context, doctorUserID, consultationID uuid.UUID) (*dto.ConsultationResponse, error) {
	consultation, err := u.findOwnedConsultation(ctx, doctorUserID, consultationID)
	if err != nil {
		return nil, err
	}

	return converter.ConsultationToResponse(consultation), nil
}

// UpdateConsultation applies a partial update. Only the owning doctor may
// update; status values are validated but transitions between them are not.
func (u *consultationUsecase) UpdateConsultation(ctx context.Context, doctorUserID, consultationID uuid.UUID, req *dto.UpdateConsultationRequest) (*dto.ConsultationResponse, error) {
	updates := map[string]interface{}{}
	if req.Symptoms != nil {
		updates["symptoms"] = entity.JSON(req.Symptoms)
	}
	if req.Diagnosis != nil {
		updates["diagnosis"] = *req.Diagnosis
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if req.Status != nil {
		status := entity.ConsultationStatus(*req.Status)
		if !status.Valid() {
			return nil, ErrInvalidStatus
		}
		updates["status"] = status
	}
	if req.NextAppointment != nil {
		if *req.NextAppointment == "" {
			updates["next_appointment"] = nil
		} else {
			parsed, err := parseFlexibleTime(*req.NextAppointment)
			if err != nil {
				return nil, ErrInvalidDateFormat
			}
			updates["next_appointment"] = parsed
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

	consultation, err := u.consultationRepo.FindByID(tx, consultationID)
	if err != nil {
		u.log.Warnf("Failed to find consultation %s: %+v", consultationID, err)
		return nil, err
	}
	if consultation == nil {
		return nil, ErrConsultationNotFound
	}
	if !consultation.OwnedBy(profile.ID) {
		return nil, ErrConsultationNotOwned
	}

	updated, err := u.consultationRepo.Update(tx, consultationID, updates)
	if err != nil {
		u.log.Warnf("Failed to update consultation %s: %+v", consultationID, err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &doctorUserID, entity.AuditActionConsultationUpdate, "consultation", consultationID.String(), map[string]interface{}{
		"status": consultation.Status,
	}, map[string]interface{}{
		"status": updated.Status,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ConsultationToResponse(updated), nil
}

func (u *consultationUsecase) GetLabOrders(ctx context.Context, doctorUserID uuid.UUID, filter entity.LabOrderFilter) ([]dto.LabOrderResponse, int64, error) {
	profile, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), doctorUserID)
	if err != nil {
		return nil, 0, err
	}
	if profile == nil {
		return nil, 0, ErrDoctorNotFound
	}

	orders, total, err := u.labOrderRepo.FindByDoctor(u.db.WithContext(ctx), profile.ID, filter)
	if err != nil {
		u.log.Warnf("Failed to list lab orders for doctor %s: %+v", doctorUserID, err)
		return nil, 0, err
	}

	return converter.LabOrdersToResponses(orders), total, nil
}

// ApproveLabOrder moves a pending order to approved with a single
// compare-and-swap update. When two approvals race, exactly one sees an
// affected row; the loser gets ErrLabOrderNotPending.
func (u *consultationUsecase) ApproveLabOrder(ctx context.Context, doctorUserID, orderID uuid.UUID) (*dto.ApproveLabOrderResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.doctorRepo.FindByUserID(tx, doctorUserID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}

	order, err := u.labOrderRepo.FindByID(tx, orderID)
	if err != nil {
		u.log.Warnf("Failed to find lab order %s: %+v", orderID, err)
		return nil, err
	}
	if order == nil {
		return nil, ErrLabOrderNotFound
	}
	if !order.OwnedBy(profile.ID) {
		return nil, ErrLabOrderNotOwned
	}

	rows, err := u.labOrderRepo.Approve(tx, orderID, doctorUserID, time.Now())
	if err != nil {
		u.log.Warnf("Failed to approve lab order %s: %+v", orderID, err)
		return nil, err
	}
	if rows == 0 {
		// Lost the race or the order already left pending
		return nil, ErrLabOrderNotPending
	}

	if err := u.auditService.LogUpdate(ctx, tx, &doctorUserID, entity.AuditActionLabOrderApprove, "lab_order", orderID.String(), map[string]interface{}{
		"status": entity.LabOrderStatusPending,
	}, map[string]interface{}{
		"status": entity.LabOrderStatusApproved,
	}); err != nil {
		return nil, err
	}

	updated, err := u.labOrderRepo.FindByID(tx, orderID)
	if err != nil || updated == nil {
		u.log.Warnf("Failed to reload lab order %s: %+v", orderID, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return &dto.ApproveLabOrderResponse{
		Order:    *converter.LabOrderToResponse(updated),
		Approved: true,
	}, nil
}

func (u *consultationUsecase) GetLabOrderResults(ctx context.Context, doctorUserID, orderID uuid.UUID) ([]dto.LabResultResponse, error) {
	profile, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), doctorUserID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}

	order, err := u.labOrderRepo.FindByIDWithPatient(u.db.WithContext(ctx), orderID)
	if err != nil {
		u.log.Warnf("Failed to find lab order %s: %+v", orderID, err)
		return nil, err
	}
	if order == nil {
		return nil, ErrLabOrderNotFound
	}
	if !order.OwnedBy(profile.ID) {
		return nil, ErrLabOrderNotOwned
	}

	results, err := u.labResultRepo.FindByPatient(u.db.WithContext(ctx), order.PatientID, entity.LabResultFilter{Type: order.TestType})
	if err != nil {
		u.log.Warnf("Failed to list results for lab order %s: %+v", orderID, err)
		return nil, err
	}

	return converter.LabResultsToResponses(results), nil
}

func (u *consultationUsecase) findOwnedConsultation(ctx context.Context, doctorUserID, consultationID uuid.UUID) (*entity.Consultation, error) {
	profile, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), doctorUserID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}

	consultation, err := u.consultationRepo.FindByIDWithDetail(u.db.WithContext(ctx), consultationID)
	if err != nil {
		u.log.Warnf("Failed to find consultation %s: %+v", consultationID, err)
		return nil, err
	}
	if consultation == nil {
		return nil, ErrConsultationNotFound
	}
	if !consultation.OwnedBy(profile.ID) {
		return nil, ErrConsultationNotOwned
	}

	return consultation, nil
}

// parseFlexibleTime accepts RFC3339 timestamps or bare dates.
func parseFlexibleTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
