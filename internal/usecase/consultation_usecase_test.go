package usecase

import (
	"context"
	"testing"

	"health-monitoring-api/internal/delivery/dto"
	"health-monitoring-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type consultationFixture struct {
	doctorRepo       *MockDoctorProfileRepository
	patientRepo      *MockPatientProfileRepository
	consultationRepo *MockConsultationRepository
	labOrderRepo     *MockLabOrderRepository
	labResultRepo    *MockLabResultRepository
	appointmentRepo  *MockAppointmentRepository
	auditService     *MockAuditService
	usecase          ConsultationUsecase
}

func newConsultationFixture() *consultationFixture {
	f := &consultationFixture{
		doctorRepo:       new(MockDoctorProfileRepository),
		patientRepo:      new(MockPatientProfileRepository),
		consultationRepo: new(MockConsultationRepository),
		labOrderRepo:     new(MockLabOrderRepository),
		labResultRepo:    new(MockLabResultRepository),
		appointmentRepo:  new(MockAppointmentRepository),
		auditService:     new(MockAuditService),
	}
	f.usecase = NewConsultationUsecase(
		newTestDB(), newTestLogger(),
		f.doctorRepo, f.patientRepo, f.consultationRepo,
		f.labOrderRepo, f.labResultRepo, f.appointmentRepo,
		f.auditService,
	)
	return f
}

func TestCreateConsultation(t *testing.T) {
	doctorUserID := uuid.New()
	profile := &entity.DoctorProfile{
		ID:        uuid.New(),
		UserID:    doctorUserID,
		Specialty: "Cardiology",
		User:      entity.User{FullName: "Dr. Chen"},
	}
	patient := &entity.PatientProfile{ID: uuid.New(), Name: "Alice"}

	t.Run("creates consultation with lab orders and follow-up", func(t *testing.T) {
		f := newConsultationFixture()
		f.doctorRepo.On("FindByUserID", mock.Anything, doctorUserID).Return(profile, nil)
		f.patientRepo.On("FindByID", mock.Anything, patient.ID).Return(patient, nil)
		f.consultationRepo.On("Create", mock.Anything, mock.MatchedBy(func(c *entity.Consultation) bool {
			return c.DoctorID == profile.ID &&
				c.PatientID == patient.ID &&
				c.Status == entity.ConsultationStatusCompleted &&
				len(c.Prescriptions) == 1
		})).Return(nil)
		f.labOrderRepo.On("CreateBatch", mock.Anything, mock.MatchedBy(func(orders []entity.LabOrder) bool {
			return len(orders) == 1 && orders[0].Status == entity.LabOrderStatusPending
		})).Return(nil)
		f.appointmentRepo.On("Create", mock.Anything, mock.MatchedBy(func(a *entity.Appointment) bool {
			return a.PatientID == patient.ID &&
				a.Status == entity.AppointmentStatusConfirmed &&
				a.Type == entity.AppointmentTypeFollowUp
		})).Return(nil)
		f.auditService.On("LogCreate", mock.Anything, mock.Anything, &doctorUserID, entity.AuditActionConsultationCreate, "consultation", mock.Anything, mock.Anything).Return(nil)

		resp, err := f.usecase.CreateConsultation(context.Background(), doctorUserID, &dto.CreateConsultationRequest{
			PatientID:       patient.ID.String(),
			Diagnosis:       "Hypertension",
			NextAppointment: "2026-09-15",
			Prescriptions: []dto.PrescriptionRequest{
				{Medication: "Lisinopril", Dosage: "10mg", Frequency: "daily", Duration: "30 days"},
			},
			LabOrders: []dto.CreateLabOrderRequest{
				{TestType: "lipid-panel", Priority: "normal"},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, "Hypertension", resp.Diagnosis)
		f.consultationRepo.AssertExpectations(t)
		f.labOrderRepo.AssertExpectations(t)
		f.appointmentRepo.AssertExpectations(t)
	})

	t.Run("skips follow-up when no next appointment given", func(t *testing.T) {
		f := newConsultationFixture()
		f.doctorRepo.On("FindByUserID", mock.Anything, doctorUserID).Return(profile, nil)
		f.patientRepo.On("FindByID", mock.Anything, patient.ID).Return(patient, nil)
		f.consultationRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
		f.auditService.On("LogCreate", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		_, err := f.usecase.CreateConsultation(context.Background(), doctorUserID, &dto.CreateConsultationRequest{
			PatientID: patient.ID.String(),
		})

		require.NoError(t, err)
		f.appointmentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("rejects unparseable next appointment", func(t *testing.T) {
		f := newConsultationFixture()

		_, err := f.usecase.CreateConsultation(context.Background(), doctorUserID, &dto.CreateConsultationRequest{
			PatientID:       patient.ID.String(),
			NextAppointment: "tomorrow",
		})

		assert.ErrorIs(t, err, ErrInvalidDateFormat)
	})

	t.Run("unknown patient", func(t *testing.T) {
		f := newConsultationFixture()
		f.doctorRepo.On("FindByUserID", mock.Anything, doctorUserID).Return(profile, nil)
		f.patientRepo.On("FindByID", mock.Anything, patient.ID).Return(nil, nil)

		_, err := f.usecase.CreateConsultation(context.Background(), doctorUserID, &dto.CreateConsultationRequest{
			PatientID: patient.ID.String(),
		})

		assert.ErrorIs(t, err, ErrPatientNotFound)
	})
}

func TestUpdateConsultation(t *testing.T) {
	doctorUserID := uuid.New()
	profile := &entity.DoctorProfile{ID: uuid.New(), UserID: doctorUserID}
	consultationID := uuid.New()

	t.Run("rejects unknown status value", func(t *testing.T) {
		f := newConsultationFixture()
		status := "archived"

		_, err := f.usecase.UpdateConsultation(context.Background(), doctorUserID, consultationID, &dto.UpdateConsultationRequest{
			Status: &status,
		})

		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("rejects update on another doctor's consultation", func(t *testing.T) {
		f := newConsultationFixture()
		f.doctorRepo.On("FindByUserID", mock.Anything, doctorUserID).Return(profile, nil)
		f.consultationRepo.On("FindByID", mock.Anything, consultationID).Return(&entity.Consultation{
			ID:       consultationID,
			DoctorID: uuid.New(),
		}, nil)

		_, err := f.usecase.UpdateConsultation(context.Background(), doctorUserID, consultationID, &dto.UpdateConsultationRequest{})

		assert.ErrorIs(t, err, ErrConsultationNotOwned)
	})

	t.Run("applies partial update", func(t *testing.T) {
		f := newConsultationFixture()
		diagnosis := "Migraine"
		status := "inProgress"

		existing := &entity.Consultation{ID: consultationID, DoctorID: profile.ID, Status: entity.ConsultationStatusCompleted}
		updated := &entity.Consultation{ID: consultationID, DoctorID: profile.ID, Diagnosis: diagnosis, Status: entity.ConsultationStatusInProgress}

		f.doctorRepo.On("FindByUserID", mock.Anything, doctorUserID).Return(profile, nil)
		f.consultationRepo.On("FindByID", mock.Anything, consultationID).Return(existing, nil)
		f.consultationRepo.On("Update", mock.Anything, consultationID, mock.MatchedBy(func(updates map[string]interface{}) bool {
			return updates["diagnosis"] == diagnosis && updates["status"] == entity.ConsultationStatusInProgress
		})).Return(updated, nil)
		f.auditService.On("LogUpdate", mock.Anything, mock.Anything, mock.Anything, entity.AuditActionConsultationUpdate, "consultation", mock.Anything, mock.Anything, mock.Anything).Return(nil)

		resp, err := f.usecase.UpdateConsultation(context.Background(), doctorUserID, consultationID, &dto.UpdateConsultationRequest{
			Diagnosis: &diagnosis,
			Status:    &status,
		})

		require.NoError(t, err)
		assert.Equal(t, entity.ConsultationStatusInProgress, resp.Status)
	})
}

func TestGetConsultation(t *testing.T) {
	doctorUserID := uuid.New()
	profile := &entity.DoctorProfile{ID: uuid.New(), UserID: doctorUserID}

	t.Run("missing consultation", func(t *testing.T) {
		f := newConsultationFixture()
		id := uuid.New()
		f.doctorRepo.On("FindByUserID", mock.Anything, doctorUserID).Return(profile, nil)
		f.consultationRepo.On("FindByIDWithDetail", mock.Anything, id).Return(nil, nil)

		_, err := f.usecase.GetConsultation(context.Background(), doctorUserID, id)

		assert.ErrorIs(t, err, ErrConsultationNotFound)
	})

	t.Run("owned consultation is returned with patient name", func(t *testing.T) {
		f := newConsultationFixture()
		id := uuid.New()
		f.doctorRepo.On("FindByUserID", mock.Anything, doctorUserID).Return(profile, nil)
		f.consultationRepo.On("FindByIDWithDetail", mock.Anything, id).Return(&entity.Consultation{
			ID:       id,
			DoctorID: profile.ID,
			Patient:  entity.PatientProfile{ID: uuid.New(), Name: "Alice"},
		}, nil)

		resp, err := f.usecase.GetConsultation(context.Background(), doctorUserID, id)

		require.NoError(t, err)
		assert.Equal(t, "Alice", resp.PatientName)
	})
}

func TestApproveLabOrder(t *testing.T) {
	doctorUserID := uuid.New()
	profile := &entity.DoctorProfile{ID: uuid.New(), UserID: doctorUserID}
	orderID := uuid.New()

	t.Run("approves a pending order", func(t *testing.T) {
		f := newConsultationFixture()
		pending := &entity.LabOrder{ID: orderID, DoctorID: profile.ID, Status: entity.LabOrderStatusPending}
		approved := &entity.LabOrder{ID: orderID, DoctorID: profile.ID, Status: entity.LabOrderStatusApproved, ApprovedBy: &doctorUserID}

		f.doctorRepo.On("FindByUserID", mock.Anything, doctorUserID).Return(profile, nil)
		f.labOrderRepo.On("FindByID", mock.Anything, orderID).Return(pending, nil).Once()
		f.labOrderRepo.On("Approve", mock.Anything, orderID, doctorUserID, mock.Anything).Return(int64(1), nil)
		f.auditService.On("LogUpdate", mock.Anything, mock.Anything, &doctorUserID, entity.AuditActionLabOrderApprove, "lab_order", orderID.String(), mock.Anything, mock.Anything).Return(nil)
		f.labOrderRepo.On("FindByID", mock.Anything, orderID).Return(approved, nil).Once()

		resp, err := f.usecase.ApproveLabOrder(context.Background(), doctorUserID, orderID)

		require.NoError(t, err)
		assert.True(t, resp.Approved)
		assert.Equal(t, entity.LabOrderStatusApproved, resp.Order.Status)
	})

	t.Run("no affected row means the order already left pending", func(t *testing.T) {
		f := newConsultationFixture()
		pending := &entity.LabOrder{ID: orderID, DoctorID: profile.ID, Status: entity.LabOrderStatusPending}

		f.doctorRepo.On("FindByUserID", mock.Anything, doctorUserID).Return(profile, nil)
		f.labOrderRepo.On("FindByID", mock.Anything, orderID).Return(pending, nil)
		f.labOrderRepo.On("Approve", mock.Anything, orderID, doctorUserID, mock.Anything).Return(int64(0), nil)

		_, err := f.usecase.ApproveLabOrder(context.Background(), doctorUserID, orderID)

		assert.ErrorIs(t, err, ErrLabOrderNotPending)
		f.auditService.AssertNotCalled(t, "LogUpdate", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rejects another doctor's order", func(t *testing.T) {
		f := newConsultationFixture()
		foreign := &entity.LabOrder{ID: orderID, DoctorID: uuid.New(), Status: entity.LabOrderStatusPending}

		f.doctorRepo.On("FindByUserID", mock.Anything, doctorUserID).Return(profile, nil)
		f.labOrderRepo.On("FindByID", mock.Anything, orderID).Return(foreign, nil)

		_, err := f.usecase.ApproveLabOrder(context.Background(), doctorUserID, orderID)

		assert.ErrorIs(t, err, ErrLabOrderNotOwned)
		f.labOrderRepo.AssertNotCalled(t, "Approve", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing order", func(t *testing.T) {
		f := newConsultationFixture()
		f.doctorRepo.On("FindByUserID", mock.Anything, doctorUserID).Return(profile, nil)
		f.labOrderRepo.On("FindByID", mock.Anything, orderID).Return(nil, nil)

		_, err := f.usecase.ApproveLabOrder(context.Background(), doctorUserID, orderID)

		assert.ErrorIs(t, err, ErrLabOrderNotFound)
	})
}

func TestGetLabOrderResults(t *testing.T) {
	doctorUserID := uuid.New()
	profile := &entity.DoctorProfile{ID: uuid.New(), UserID: doctorUserID}
	orderID := uuid.New()
	patientID := uuid.New()

	t.Run("filters results by the order's test type", func(t *testing.T) {
		f := newConsultationFixture()
		order := &entity.LabOrder{ID: orderID, DoctorID: profile.ID, PatientID: patientID, TestType: "cbc"}

		f.doctorRepo.On("FindByUserID", mock.Anything, doctorUserID).Return(profile, nil)
		f.labOrderRepo.On("FindByIDWithPatient", mock.Anything, orderID).Return(order, nil)
		f.labResultRepo.On("FindByPatient", mock.Anything, patientID, entity.LabResultFilter{Type: "cbc"}).Return([]entity.LabResult{
			{ID: uuid.New(), PatientID: patientID, Type: "cbc"},
		}, nil)

		results, err := f.usecase.GetLabOrderResults(context.Background(), doctorUserID, orderID)

		require.NoError(t, err)
		assert.Len(t, results, 1)
	})
}
