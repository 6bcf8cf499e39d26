package usecase

import (
	"context"
	"errors"
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

var ErrPatientNotFound = errors.New("patient not found")

type DoctorPatientUsecase interface {
	// GetPatients lists the doctor's roster with the latest vital per type
	// and the last visit date per row. Returns the page plus the total.
	GetPatients(ctx context.Context, doctorUserID uuid.UUID, filter entity.PatientFilter) ([]dto.PatientListItem, int64, error)
	GetPatientDetail(ctx context.Context, doctorUserID, patientProfileID uuid.UUID) (*dto.PatientDetailResponse, error)
	GetPatientHistory(ctx context.Context, doctorUserID, patientProfileID uuid.UUID, filter entity.HistoryFilter) (*dto.PatientHistoryResponse, error)
	GetPatientVitals(ctx context.Context, patientProfileID uuid.UUID, filter entity.VitalFilter) ([]dto.VitalReading, error)
}

type doctorPatientUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	doctorRepo       repository.DoctorProfileRepository
	patientRepo      repository.PatientProfileRepository
	consultationRepo repository.ConsultationRepository
	labOrderRepo     repository.LabOrderRepository
	appointmentRepo  repository.AppointmentRepository
	medicationRepo   repository.MedicationRepository
	vitalRepo        repository.VitalRepository
}

func NewDoctorPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorProfileRepository,
	patientRepo repository.PatientProfileRepository,
	consultationRepo repository.ConsultationRepository,
	labOrderRepo repository.LabOrderRepository,
	appointmentRepo repository.AppointmentRepository,
	medicationRepo repository.MedicationRepository,
	vitalRepo repository.VitalRepository,
) DoctorPatientUsecase {
	return &doctorPatientUsecase{
		db:               db,
		log:              log,
		doctorRepo:       doctorRepo,
		patientRepo:      patientRepo,
		consultationRepo: consultationRepo,
		labOrderRepo:     labOrderRepo,
		appointmentRepo:  appointmentRepo,
		medicationRepo:   medicationRepo,
		vitalRepo:        vitalRepo,
	}
}

// resolveDoctorProfile maps a doctor user id onto its profile.
func (u *doctorPatientUsecase) resolveDoctorProfile(ctx context.Context, doctorUserID uuid.UUID) (*entity.DoctorProfile, error) {
	profile, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), doctorUserID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile for user %s: %+v", doctorUserID, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}
	return profile, nil
}

func (u *doctorPatientUsecase) GetPatients(ctx context.Context, doctorUserID uuid.UUID, filter entity.PatientFilter) ([]dto.PatientListItem, int64, error) {
	profile, err := u.resolveDoctorProfile(ctx, doctorUserID)
	if err != nil {
		return nil, 0, err
	}

	patients, total, err := u.patientRepo.FindByDoctor(u.db.WithContext(ctx), profile.ID, filter)
	if err != nil {
		u.log.Warnf("Failed to list patients for doctor %s: %+v", doctorUserID, err)
		return nil, 0, err
	}

	// Each row needs its latest vitals and last visit; fan out per patient.
	items := make([]dto.PatientListItem, len(patients))
	g, gctx := errgroup.WithContext(ctx)
	for i := range patients {
		g.Go(func() error {
			patient := &patients[i]

			vitals, err := u.vitalRepo.FindLatestPerType(u.db.WithContext(gctx), patient.ID)
			if err != nil {
				return err
			}

			last, err := u.consultationRepo.FindLatestForPatient(u.db.WithContext(gctx), profile.ID, patient.ID)
			if err != nil {
				return err
			}

			var lastVisit *time.Time
			if last != nil {
				lastVisit = &last.CreatedAt
			}

			items[i] = converter.PatientProfileToListItem(patient, vitals, lastVisit)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		u.log.Warnf("Failed to enrich patient list for doctor %s: %+v", doctorUserID, err)
		return nil, 0, err
	}

	return items, total, nil
}

func (u *doctorPatientUsecase) GetPatientDetail(ctx context.Context, doctorUserID, patientProfileID uuid.UUID) (*dto.PatientDetailResponse, error) {
	profile, err := u.resolveDoctorProfile(ctx, doctorUserID)
	if err != nil {
		return nil, err
	}

	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), patientProfileID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", patientProfileID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	var (
		medications  []entity.Medication
		appointments []entity.Appointment
		last         *entity.Consultation
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rows, err := u.medicationRepo.FindByPatient(u.db.WithContext(gctx), patient.ID)
		medications = rows
		return err
	})

	g.Go(func() error {
		rows, err := u.appointmentRepo.FindByPatient(u.db.WithContext(gctx), patient.ID, entity.AppointmentFilter{Upcoming: true})
		appointments = rows
		return err
	})

	g.Go(func() error {
		row, err := u.consultationRepo.FindLatestForPatient(u.db.WithContext(gctx), profile.ID, patient.ID)
		last = row
		return err
	})

	if err := g.Wait(); err != nil {
		u.log.Warnf("Failed to assemble detail for patient %s: %+v", patientProfileID, err)
		return nil, err
	}

	return converter.PatientProfileToDetail(patient, medications, appointments, last), nil
}

func (u *doctorPatientUsecase) GetPatientHistory(ctx context.Context, doctorUserID, patientProfileID uuid.UUID, filter entity.HistoryFilter) (*dto.PatientHistoryResponse, error) {
	profile, err := u.resolveDoctorProfile(ctx, doctorUserID)
	if err != nil {
		return nil, err
	}

	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), patientProfileID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", patientProfileID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	history := &dto.PatientHistoryResponse{}
	wantAll := filter.Type == "" || filter.Type == "all"

	g, gctx := errgroup.WithContext(ctx)

	if wantAll || filter.Type == "consultations" {
		g.Go(func() error {
			rows, err := u.consultationRepo.FindHistory(u.db.WithContext(gctx), profile.ID, patient.ID, filter.From, filter.To, filter.Limit)
			history.Consultations = converter.ConsultationsToResponses(rows)
			return err
		})
	}

	if wantAll || filter.Type == "labOrders" {
		g.Go(func() error {
			rows, err := u.labOrderRepo.FindHistory(u.db.WithContext(gctx), profile.ID, patient.ID, filter.From, filter.To, filter.Limit)
			history.LabOrders = converter.LabOrdersToResponses(rows)
			return err
		})
	}

	if wantAll || filter.Type == "appointments" {
		g.Go(func() error {
			rows, err := u.appointmentRepo.FindHistory(u.db.WithContext(gctx), doctorUserID, patient.ID, filter.From, filter.To, filter.Limit)
			history.Appointments = converter.AppointmentsToResponses(rows)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		u.log.Warnf("Failed to assemble history for patient %s: %+v", patientProfileID, err)
		return nil, err
	}

	return history, nil
}

func (u *doctorPatientUsecase) GetPatientVitals(ctx context.Context, patientProfileID uuid.UUID, filter entity.VitalFilter) ([]dto.VitalReading, error) {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), patientProfileID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", patientProfileID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	vitals, err := u.vitalRepo.FindByPatient(u.db.WithContext(ctx), patient.ID, filter)
	if err != nil {
		u.log.Warnf("Failed to list vitals for patient %s: %+v", patientProfileID, err)
		return nil, err
	}

	return converter.VitalsToReadings(vitals), nil
}
