package usecase

import (
	"context"
	"time"

	"health-monitoring-api/internal/converter"
	"health-monitoring-api/internal/delivery/dto"
	"health-monitoring-api/internal/domain/entity"
	"health-monitoring-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	upcomingAppointmentLimit = 5
	medicationsDueLimit      = 10
)

type PatientDashboardUsecase interface {
	GetDashboard(ctx context.Context, patientUserID uuid.UUID) (*dto.PatientDashboardResponse, error)
}

type patientDashboardUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	patientRepo     repository.PatientProfileRepository
	vitalRepo       repository.VitalRepository
	appointmentRepo repository.AppointmentRepository
	medicationRepo  repository.MedicationRepository
}

func NewPatientDashboardUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientProfileRepository,
	vitalRepo repository.VitalRepository,
	appointmentRepo repository.AppointmentRepository,
	medicationRepo repository.MedicationRepository,
) PatientDashboardUsecase {
	return &patientDashboardUsecase{
		db:              db,
		log:             log,
		patientRepo:     patientRepo,
		vitalRepo:       vitalRepo,
		appointmentRepo: appointmentRepo,
		medicationRepo:  medicationRepo,
	}
}

// GetDashboard assembles the patient portal landing view from independent
// concurrent reads.
func (u *patientDashboardUsecase) GetDashboard(ctx context.Context, patientUserID uuid.UUID) (*dto.PatientDashboardResponse, error) {
	profile, err := u.patientRepo.FindByUserID(u.db.WithContext(ctx), patientUserID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile for user %s: %+v", patientUserID, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrPatientNotFound
	}

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	var (
		vitals       []entity.PatientVital
		appointments []entity.Appointment
		due          []entity.MedicationSchedule
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rows, err := u.vitalRepo.FindLatestPerType(u.db.WithContext(gctx), profile.ID)
		vitals = rows
		return err
	})

	g.Go(func() error {
		rows, err := u.appointmentRepo.FindUpcomingByPatient(u.db.WithContext(gctx), profile.ID, now, upcomingAppointmentLimit)
		appointments = rows
		return err
	})

	g.Go(func() error {
		rows, err := u.medicationRepo.FindSchedulesDue(u.db.WithContext(gctx), profile.ID, dayStart, dayEnd, medicationsDueLimit)
		due = rows
		return err
	})

	if err := g.Wait(); err != nil {
		u.log.Warnf("Failed to assemble dashboard for patient %s: %+v", patientUserID, err)
		return nil, err
	}

	return &dto.PatientDashboardResponse{
		Profile:              converter.PatientProfileToSummary(profile),
		LatestVitals:         converter.VitalsToReadings(vitals),
		UpcomingAppointments: converter.AppointmentsToResponses(appointments),
		Medications:          converter.MedicationSchedulesToDue(due),
		Notifications:        []dto.Notification{},
		HealthScore:          profile.EffectiveHealthScore(),
	}, nil
}
