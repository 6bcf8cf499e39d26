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

var ErrDoctorNotFound = errors.New("doctor not found")

const (
	// patientsUnderCareWindow bounds the "active patients" stat to recent
	// consultations.
	patientsUnderCareWindow = 30 * 24 * time.Hour
	// highPriorityWindow bounds the unread-message stat treated as high
	// priority on the dashboard.
	highPriorityWindow = 24 * time.Hour
	// criticalAlertWindow and criticalAlertLimit bound the dashboard alert
	// feed.
	criticalAlertWindow = 7 * 24 * time.Hour
	criticalAlertLimit  = 10
)

type DoctorDashboardUsecase interface {
	GetDashboard(ctx context.Context, doctorUserID uuid.UUID) (*dto.DoctorDashboardResponse, error)
}

type doctorDashboardUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	doctorRepo       repository.DoctorProfileRepository
	patientRepo      repository.PatientProfileRepository
	consultationRepo repository.ConsultationRepository
	labOrderRepo     repository.LabOrderRepository
	appointmentRepo  repository.AppointmentRepository
	conversationRepo repository.ConversationRepository
	messageRepo      repository.MessageRepository
	alertRepo        repository.AlertRepository
}

func NewDoctorDashboardUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorProfileRepository,
	patientRepo repository.PatientProfileRepository,
	consultationRepo repository.ConsultationRepository,
	labOrderRepo repository.LabOrderRepository,
	appointmentRepo repository.AppointmentRepository,
	conversationRepo repository.ConversationRepository,
	messageRepo repository.MessageRepository,
	alertRepo repository.AlertRepository,
) DoctorDashboardUsecase {
	return &doctorDashboardUsecase{
		db:               db,
		log:              log,
		doctorRepo:       doctorRepo,
		patientRepo:      patientRepo,
		consultationRepo: consultationRepo,
		labOrderRepo:     labOrderRepo,
		appointmentRepo:  appointmentRepo,
		conversationRepo: conversationRepo,
		messageRepo:      messageRepo,
		alertRepo:        alertRepo,
	}
}

// GetDashboard assembles the doctor landing view. The sub-queries are
// independent reads and run concurrently; the first failure cancels the rest.
func (u *doctorDashboardUsecase) GetDashboard(ctx context.Context, doctorUserID uuid.UUID) (*dto.DoctorDashboardResponse, error) {
	profile, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), doctorUserID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile for user %s: %+v", doctorUserID, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	var (
		stats    dto.DoctorDashboardStats
		schedule []entity.Appointment
		alerts   []entity.Alert
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := u.appointmentRepo.CountForDoctorBetween(u.db.WithContext(gctx), doctorUserID, dayStart, dayEnd)
		stats.TodayAppointments = count
		return err
	})

	g.Go(func() error {
		count, err := u.consultationRepo.CountCompletedBetween(u.db.WithContext(gctx), profile.ID, dayStart, dayEnd)
		stats.CompletedToday = count
		return err
	})

	g.Go(func() error {
		ids, err := u.consultationRepo.DistinctPatientIDsSince(u.db.WithContext(gctx), profile.ID, now.Add(-patientsUnderCareWindow))
		stats.PatientsUnderCare = int64(len(ids))
		return err
	})

	g.Go(func() error {
		count, err := u.patientRepo.CountHighRiskByDoctor(u.db.WithContext(gctx), profile.ID)
		stats.HighRiskPatients = count
		return err
	})

	g.Go(func() error {
		count, err := u.labOrderRepo.CountByStatus(u.db.WithContext(gctx), profile.ID, entity.LabOrderStatusPending)
		stats.PendingLabOrders = count
		return err
	})

	g.Go(func() error {
		count, err := u.labOrderRepo.CountUrgentOpen(u.db.WithContext(gctx), profile.ID)
		stats.UrgentLabOrders = count
		return err
	})

	g.Go(func() error {
		ids, err := u.conversationRepo.FindIDsByDoctor(u.db.WithContext(gctx), profile.ID)
		if err != nil {
			return err
		}

		unread, err := u.messageRepo.CountUnread(u.db.WithContext(gctx), ids, nil)
		if err != nil {
			return err
		}
		stats.UnreadMessages = unread

		since := now.Add(-highPriorityWindow)
		recent, err := u.messageRepo.CountUnread(u.db.WithContext(gctx), ids, &since)
		if err != nil {
			return err
		}
		stats.HighPriorityMessages = recent
		return nil
	})

	g.Go(func() error {
		rows, err := u.appointmentRepo.FindForDoctorBetween(u.db.WithContext(gctx), doctorUserID, dayStart, dayEnd)
		schedule = rows
		return err
	})

	g.Go(func() error {
		rows, err := u.alertRepo.FindCriticalForDoctor(u.db.WithContext(gctx), profile.ID, now.Add(-criticalAlertWindow), criticalAlertLimit)
		alerts = rows
		return err
	})

	if err := g.Wait(); err != nil {
		u.log.Warnf("Failed to assemble dashboard for doctor %s: %+v", doctorUserID, err)
		return nil, err
	}

	return &dto.DoctorDashboardResponse{
		Stats:          stats,
		TodaySchedule:  converter.AppointmentsToScheduleEntries(schedule),
		CriticalAlerts: converter.AlertsToCriticalAlerts(alerts),
	}, nil
}
