package usecase

import (
	"context"
	"testing"
	"time"

	"health-monitoring-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type doctorPatientFixture struct {
	doctorRepo       *MockDoctorProfileRepository
	patientRepo      *MockPatientProfileRepository
	consultationRepo *MockConsultationRepository
	labOrderRepo     *MockLabOrderRepository
	appointmentRepo  *MockAppointmentRepository
	medicationRepo   *MockMedicationRepository
	vitalRepo        *MockVitalRepository
	usecase          DoctorPatientUsecase
}

func newDoctorPatientFixture() *doctorPatientFixture {
	f := &doctorPatientFixture{
		doctorRepo:       new(MockDoctorProfileRepository),
		patientRepo:      new(MockPatientProfileRepository),
		consultationRepo: new(MockConsultationRepository),
		labOrderRepo:     new(MockLabOrderRepository),
		appointmentRepo:  new(MockAppointmentRepository),
		medicationRepo:   new(MockMedicationRepository),
		vitalRepo:        new(MockVitalRepository),
	}
	f.usecase = NewDoctorPatientUsecase(
		newTestDB(), newTestLogger(),
		f.doctorRepo, f.patientRepo, f.consultationRepo,
		f.labOrderRepo, f.appointmentRepo, f.medicationRepo, f.vitalRepo,
	)
	return f
}

func TestGetPatients(t *testing.T) {
	doctorUserID := uuid.New()
	profile := &entity.DoctorProfile{ID: uuid.New(), UserID: doctorUserID}

	t.Run("enriches each row with vitals and last visit", func(t *testing.T) {
		f := newDoctorPatientFixture()
		patient := entity.PatientProfile{ID: uuid.New(), Name: "Alice", RiskLevel: entity.RiskHigh}
		lastSeen := time.Now().Add(-48 * time.Hour)
		filter := entity.PatientFilter{Limit: 20}

		f.doctorRepo.On("FindByUserID", mock.Anything, doctorUserID).Return(profile, nil)
		f.patientRepo.On("FindByDoctor", mock.Anything, profile.ID, filter).Return([]entity.PatientProfile{patient}, int64(37), nil)
		f.vitalRepo.On("FindLatestPerType", mock.Anything, patient.ID).Return([]entity.PatientVital{
			{Type: entity.VitalHeartRate, Value: decimal.NewFromInt(72), Unit: "bpm"},
		}, nil)
		f.consultationRepo.On("FindLatestForPatient", mock.Anything, profile.ID, patient.ID).Return(&entity.Consultation{
			ID:        uuid.New(),
			CreatedAt: lastSeen,
		}, nil)

		items, total, err := f.usecase.GetPatients(context.Background(), doctorUserID, filter)

		require.NoError(t, err)
		assert.Equal(t, int64(37), total)
		require.Len(t, items, 1)
		assert.Equal(t, "Alice", items[0].Name)
		require.NotNil(t, items[0].LastVisit)
		assert.True(t, items[0].LastVisit.Equal(lastSeen))
	})

	t.Run("patient without consultations has no last visit", func(t *testing.T) {
		f := newDoctorPatientFixture()
		patient := entity.PatientProfile{ID: uuid.New(), Name: "Bob"}

		f.doctorRepo.On("FindByUserID", mock.Anything, doctorUserID).Return(profile, nil)
		f.patientRepo.On("FindByDoctor", mock.Anything, profile.ID, mock.Anything).Return([]entity.PatientProfile{patient}, int64(1), nil)
		f.vitalRepo.On("FindLatestPerType", mock.Anything, patient.ID).Return([]entity.PatientVital{}, nil)
		f.consultationRepo.On("FindLatestForPatient", mock.Anything, profile.ID, patient.ID).Return(nil, nil)

		items, _, err := f.usecase.GetPatients(context.Background(), doctorUserID, entity.PatientFilter{})

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Nil(t, items[0].LastVisit)
	})

	t.Run("unknown doctor", func(t *testing.T) {
		f := newDoctorPatientFixture()
		f.doctorRepo.On("FindByUserID", mock.Anything, doctorUserID).Return(nil, nil)

		_, _, err := f.usecase.GetPatients(context.Background(), doctorUserID, entity.PatientFilter{})

		assert.ErrorIs(t, err, ErrDoctorNotFound)
	})
}

func TestGetPatientDetail(t *testing.T) {
	doctorUserID := uuid.New()
	profile := &entity.DoctorProfile{ID: uuid.New(), UserID: doctorUserID}

	t.Run("missing patient", func(t *testing.T) {
		f := newDoctorPatientFixture()
		patientID := uuid.New()
		f.doctorRepo.On("FindByUserID", mock.Anything, doctorUserID).Return(profile, nil)
		f.patientRepo.On("FindByID", mock.Anything, patientID).Return(nil, nil)

		_, err := f.usecase.GetPatientDetail(context.Background(), doctorUserID, patientID)

		assert.ErrorIs(t, err, ErrPatientNotFound)
	})

	t.Run("assembles medications and upcoming appointments", func(t *testing.T) {
		f := newDoctorPatientFixture()
		patient := &entity.PatientProfile{ID: uuid.New(), Name: "Alice", HealthScore: 82}

		f.doctorRepo.On("FindByUserID", mock.Anything, doctorUserID).Return(profile, nil)
		f.patientRepo.On("FindByID", mock.Anything, patient.ID).Return(patient, nil)
		f.medicationRepo.On("FindByPatient", mock.Anything, patient.ID).Return([]entity.Medication{
			{ID: uuid.New(), Name: "Metformin", Dosage: "500mg"},
		}, nil)
		f.appointmentRepo.On("FindByPatient", mock.Anything, patient.ID, entity.AppointmentFilter{Upcoming: true}).Return([]entity.Appointment{}, nil)
		f.consultationRepo.On("FindLatestForPatient", mock.Anything, profile.ID, patient.ID).Return(nil, nil)

		detail, err := f.usecase.GetPatientDetail(context.Background(), doctorUserID, patient.ID)

		require.NoError(t, err)
		assert.Equal(t, "Alice", detail.Name)
		assert.Equal(t, 82, detail.HealthScore)
		require.Len(t, detail.Medications, 1)
	})
}

func TestGetPatientHistory(t *testing.T) {
	doctorUserID := uuid.New()
	profile := &entity.DoctorProfile{ID: uuid.New(), UserID: doctorUserID}

	t.Run("type filter fetches only that section", func(t *testing.T) {
		f := newDoctorPatientFixture()
		patient := &entity.PatientProfile{ID: uuid.New()}

		f.doctorRepo.On("FindByUserID", mock.Anything, doctorUserID).Return(profile, nil)
		f.patientRepo.On("FindByID", mock.Anything, patient.ID).Return(patient, nil)
		f.consultationRepo.On("FindHistory", mock.Anything, profile.ID, patient.ID, (*time.Time)(nil), (*time.Time)(nil), 0).Return([]entity.Consultation{
			{ID: uuid.New(), DoctorID: profile.ID, PatientID: patient.ID},
		}, nil)

		history, err := f.usecase.GetPatientHistory(context.Background(), doctorUserID, patient.ID, entity.HistoryFilter{Type: "consultations"})

		require.NoError(t, err)
		assert.Len(t, history.Consultations, 1)
		f.labOrderRepo.AssertNotCalled(t, "FindHistory", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		f.appointmentRepo.AssertNotCalled(t, "FindHistory", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
