package repository

import (
	"errors"
	"time"

	"health-monitoring-api/internal/domain/entity"
	domainRepo "health-monitoring-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type labOrderRepository struct{}

func NewLabOrderRepository() domainRepo.LabOrderRepository {
	return &labOrderRepository{}
}

func (r *labOrderRepository) CreateBatch(db *gorm.DB, orders []entity.LabOrder) error {
	if len(orders) == 0 {
		return nil
	}
	return db.Create(&orders).Error
}

func (r *labOrderRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.LabOrder, error) {
	var order entity.LabOrder
	err := db.Where("id = ?", id).First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *labOrderRepository) FindByIDWithPatient(db *gorm.DB, id uuid.UUID) (*entity.LabOrder, error) {
	var order entity.LabOrder
	err := db.Preload("Patient").Where("id = ?", id).First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *labOrderRepository) CountByStatus(db *gorm.DB, doctorProfileID uuid.UUID, status entity.LabOrderStatus) (int64, error) {
	var count int64
	err := db.Model(&entity.LabOrder{}).
		Where("doctor_id = ? AND status = ?", doctorProfileID, status).
		Count(&count).Error
	return count, err
}

func (r *labOrderRepository) CountUrgentOpen(db *gorm.DB, doctorProfileID uuid.UUID) (int64, error) {
	var count int64
	err := db.Model(&entity.LabOrder{}).
		Where("doctor_id = ? AND priority = ? AND status IN ?",
			doctorProfileID, entity.LabOrderPriorityUrgent, entity.OpenLabOrderStatuses()).
		Count(&count).Error
	return count, err
}

func (r *labOrderRepository) FindByDoctor(db *gorm.DB, doctorProfileID uuid.UUID, filter entity.LabOrderFilter) ([]entity.LabOrder, int64, error) {
	query := db.Model(&entity.LabOrder{}).Where("doctor_id = ?", doctorProfileID)

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" {
		query = query.Where("priority = ?", filter.Priority)
	}
	if filter.PatientID != nil {
		query = query.Where("patient_id = ?", *filter.PatientID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []entity.LabOrder
	err := query.Preload("Patient").
		Order("created_at DESC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *labOrderRepository) FindHistory(db *gorm.DB, doctorProfileID, patientProfileID uuid.UUID, from, to *time.Time, limit int) ([]entity.LabOrder, error) {
	query := db.Where("doctor_id = ? AND patient_id = ?", doctorProfileID, patientProfileID)
	if from != nil {
		query = query.Where("created_at >= ?", *from)
	}
	if to != nil {
		query = query.Where("created_at <= ?", *to)
	}

	var orders []entity.LabOrder
	err := query.Order("created_at DESC").Limit(limit).Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// Approve transitions pending -> approved atomically. The status predicate is
// part of the UPDATE so two concurrent approvals can never both succeed.
func (r *labOrderRepository) Approve(db *gorm.DB, orderID uuid.UUID, approvedBy uuid.UUID, approvedAt time.Time) (int64, error) {
	result := db.Model(&entity.LabOrder{}).
		Where("id = ? AND status = ?", orderID, entity.LabOrderStatusPending).
		Updates(map[string]interface{}{
			"status":      entity.LabOrderStatusApproved,
			"approved_by": approvedBy,
			"approved_at": approvedAt,
		})
	return result.RowsAffected, result.Error
}
