package usecase

import (
	"context"
	"testing"

	"health-monitoring-api/internal/domain/entity"
	"health-monitoring-api/pkg/pagination"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type patientHealthFixture struct {
	patientRepo    *MockPatientProfileRepository
	vitalRepo      *MockVitalRepository
	medicationRepo *MockMedicationRepository
	labResultRepo  *MockLabResultRepository
	auditService   *MockAuditService
	usecase        PatientHealthUsecase
}

func newPatientHealthFixture() *patientHealthFixture {
	f := &patientHealthFixture{
		patientRepo:    new(MockPatientProfileRepository),
		vitalRepo:      new(MockVitalRepository),
		medicationRepo: new(MockMedicationRepository),
		labResultRepo:  new(MockLabResultRepository),
		auditService:   new(MockAuditService),
	}
	f.usecase = NewPatientHealthUsecase(
		newTestDB(), newTestLogger(),
		f.patientRepo, f.vitalRepo, f.medicationRepo, f.labResultRepo,
		f.auditService,
	)
	return f
}

func TestGetVitals(t *testing.T) {
	patientUserID := uuid.New()
	profile := &entity.PatientProfile{ID: uuid.New(), UserID: patientUserID}

	t.Run("defaults and caps the window", func(t *testing.T) {
		f := newPatientHealthFixture()
		f.patientRepo.On("FindByUserID", mock.Anything, patientUserID).Return(profile, nil)
		f.vitalRepo.On("FindByPatient", mock.Anything, profile.ID, mock.MatchedBy(func(filter entity.VitalFilter) bool {
			return filter.Limit == pagination.DefaultVitalLimit
		})).Return([]entity.PatientVital{}, nil)

		_, err := f.usecase.GetVitals(context.Background(), patientUserID, entity.VitalFilter{})

		require.NoError(t, err)

		f.vitalRepo.ExpectedCalls = nil
		f.vitalRepo.On("FindByPatient", mock.Anything, profile.ID, mock.MatchedBy(func(filter entity.VitalFilter) bool {
			return filter.Limit == pagination.MaxVitalsLimit
		})).Return([]entity.PatientVital{}, nil)

		_, err = f.usecase.GetVitals(context.Background(), patientUserID, entity.VitalFilter{Limit: 50000})

		require.NoError(t, err)
	})

	t.Run("unknown patient", func(t *testing.T) {
		f := newPatientHealthFixture()
		f.patientRepo.On("FindByUserID", mock.Anything, patientUserID).Return(nil, nil)

		_, err := f.usecase.GetVitals(context.Background(), patientUserID, entity.VitalFilter{})

		assert.ErrorIs(t, err, ErrPatientNotFound)
	})
}

func TestTakeMedication(t *testing.T) {
	patientUserID := uuid.New()
	profile := &entity.PatientProfile{ID: uuid.New(), UserID: patientUserID}
	scheduleID := uuid.New()

	t.Run("marks an untaken dose", func(t *testing.T) {
		f := newPatientHealthFixture()
		pending := &entity.MedicationSchedule{ID: scheduleID, PatientID: profile.ID, Taken: false}
		taken := &entity.MedicationSchedule{ID: scheduleID, PatientID: profile.ID, Taken: true}

		f.patientRepo.On("FindByUserID", mock.Anything, patientUserID).Return(profile, nil)
		f.medicationRepo.On("FindScheduleByID", mock.Anything, scheduleID, profile.ID).Return(pending, nil)
		f.medicationRepo.On("MarkTaken", mock.Anything, scheduleID, true).Return(taken, nil)
		f.auditService.On("LogUpdate", mock.Anything, mock.Anything, &patientUserID, entity.AuditActionMedicationTaken, "medication_schedule", scheduleID.String(), mock.Anything, mock.Anything).Return(nil)

		resp, err := f.usecase.TakeMedication(context.Background(), patientUserID, scheduleID)

		require.NoError(t, err)
		assert.True(t, resp.Taken)
	})

	t.Run("marking an already-taken dose is a no-op success", func(t *testing.T) {
		f := newPatientHealthFixture()
		taken := &entity.MedicationSchedule{ID: scheduleID, PatientID: profile.ID, Taken: true}

		f.patientRepo.On("FindByUserID", mock.Anything, patientUserID).Return(profile, nil)
		f.medicationRepo.On("FindScheduleByID", mock.Anything, scheduleID, profile.ID).Return(taken, nil)

		resp, err := f.usecase.TakeMedication(context.Background(), patientUserID, scheduleID)

		require.NoError(t, err)
		assert.True(t, resp.Taken)
		f.medicationRepo.AssertNotCalled(t, "MarkTaken", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing schedule", func(t *testing.T) {
		f := newPatientHealthFixture()
		f.patientRepo.On("FindByUserID", mock.Anything, patientUserID).Return(profile, nil)
		f.medicationRepo.On("FindScheduleByID", mock.Anything, scheduleID, profile.ID).Return(nil, nil)

		_, err := f.usecase.TakeMedication(context.Background(), patientUserID, scheduleID)

		assert.ErrorIs(t, err, ErrMedicationScheduleNotFound)
	})
}

func TestGetLabResult(t *testing.T) {
	patientUserID := uuid.New()
	profile := &entity.PatientProfile{ID: uuid.New(), UserID: patientUserID}
	resultID := uuid.New()

	t.Run("owned result", func(t *testing.T) {
		f := newPatientHealthFixture()
		f.patientRepo.On("FindByUserID", mock.Anything, patientUserID).Return(profile, nil)
		f.labResultRepo.On("FindOwnedByPatient", mock.Anything, resultID, profile.ID).
			Return(&entity.LabResult{ID: resultID, PatientID: profile.ID, Type: "cbc", Status: "final"}, nil)

		resp, err := f.usecase.GetLabResult(context.Background(), patientUserID, resultID)

		require.NoError(t, err)
		assert.Equal(t, "cbc", resp.Type)
	})

	t.Run("foreign or missing result", func(t *testing.T) {
		f := newPatientHealthFixture()
		f.patientRepo.On("FindByUserID", mock.Anything, patientUserID).Return(profile, nil)
		f.labResultRepo.On("FindOwnedByPatient", mock.Anything, resultID, profile.ID).Return(nil, nil)

		_, err := f.usecase.GetLabResult(context.Background(), patientUserID, resultID)

		assert.ErrorIs(t, err, ErrLabResultNotFound)
	})
}
