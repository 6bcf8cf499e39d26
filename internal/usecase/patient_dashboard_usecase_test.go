package usecase

import (
	"context"
	"testing"

	"health-monitoring-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type patientDashboardFixture struct {
	patientRepo     *MockPatientProfileRepository
	vitalRepo       *MockVitalRepository
	appointmentRepo *MockAppointmentRepository
	medicationRepo  *MockMedicationRepository
	usecase         PatientDashboardUsecase
}

func newPatientDashboardFixture() *patientDashboardFixture {
	f := &patientDashboardFixture{
		patientRepo:     new(MockPatientProfileRepository),
		vitalRepo:       new(MockVitalRepository),
		appointmentRepo: new(MockAppointmentRepository),
		medicationRepo:  new(MockMedicationRepository),
	}
	f.usecase = NewPatientDashboardUsecase(
		newTestDB(), newTestLogger(),
		f.patientRepo, f.vitalRepo, f.appointmentRepo, f.medicationRepo,
	)
	return f
}

func TestPatientDashboard(t *testing.T) {
	patientUserID := uuid.New()

	t.Run("assembles vitals, appointments and due medications", func(t *testing.T) {
		f := newPatientDashboardFixture()
		profile := &entity.PatientProfile{ID: uuid.New(), UserID: patientUserID, Name: "Alice", HealthScore: 88}

		f.patientRepo.On("FindByUserID", mock.Anything, patientUserID).Return(profile, nil)
		f.vitalRepo.On("FindLatestPerType", mock.Anything, profile.ID).Return([]entity.PatientVital{
			{Type: entity.VitalHeartRate, Value: decimal.NewFromInt(68), Unit: "bpm"},
		}, nil)
		f.appointmentRepo.On("FindUpcomingByPatient", mock.Anything, profile.ID, mock.Anything, 5).Return([]entity.Appointment{
			{ID: uuid.New(), PatientID: profile.ID, Status: entity.AppointmentStatusConfirmed},
		}, nil)
		f.medicationRepo.On("FindSchedulesDue", mock.Anything, profile.ID, mock.Anything, mock.Anything, 10).Return([]entity.MedicationSchedule{
			{ID: uuid.New(), PatientID: profile.ID, Dosage: "500mg"},
		}, nil)

		dashboard, err := f.usecase.GetDashboard(context.Background(), patientUserID)

		require.NoError(t, err)
		assert.Equal(t, "Alice", dashboard.Profile.Name)
		assert.Equal(t, 88, dashboard.HealthScore)
		assert.Len(t, dashboard.LatestVitals, 1)
		assert.Len(t, dashboard.UpcomingAppointments, 1)
		assert.Len(t, dashboard.Medications, 1)
		assert.NotNil(t, dashboard.Notifications)
	})

	t.Run("unknown patient", func(t *testing.T) {
		f := newPatientDashboardFixture()
		f.patientRepo.On("FindByUserID", mock.Anything, patientUserID).Return(nil, nil)

		_, err := f.usecase.GetDashboard(context.Background(), patientUserID)

		assert.ErrorIs(t, err, ErrPatientNotFound)
	})
}
