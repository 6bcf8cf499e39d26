package repository

import (
	"time"

	"health-monitoring-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LabOrderRepository interface {
	CreateBatch(db *gorm.DB, orders []entity.LabOrder) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.LabOrder, error)
	// FindByIDWithPatient preloads the patient profile for result views.
	FindByIDWithPatient(db *gorm.DB, id uuid.UUID) (*entity.LabOrder, error)
	CountByStatus(db *gorm.DB, doctorProfileID uuid.UUID, status entity.LabOrderStatus) (int64, error)
	// CountUrgentOpen counts urgent orders still in an open status.
	CountUrgentOpen(db *gorm.DB, doctorProfileID uuid.UUID) (int64, error)
	FindByDoctor(db *gorm.DB, doctorProfileID uuid.UUID, filter entity.LabOrderFilter) ([]entity.LabOrder, int64, error)
	// FindHistory lists orders for one patient under one doctor, newest first.
	FindHistory(db *gorm.DB, doctorProfileID, patientProfileID uuid.UUID, from, to *time.Time, limit int) ([]entity.LabOrder, error)
	// Approve performs the compare-and-swap pending -> approved transition,
	// recording the approver. Returns affected rows: 1 = approved now,
	// 0 = the order already left pending (concurrent approval or later state).
	Approve(db *gorm.DB, orderID uuid.UUID, approvedBy uuid.UUID, approvedAt time.Time) (int64, error)
}
