package entity

import (
	"time"

	"github.com/google/uuid"
)

// LabOrderStatus represents the status of a lab order
type LabOrderStatus string

const (
	LabOrderStatusPending    LabOrderStatus = "pending"
	LabOrderStatusApproved   LabOrderStatus = "approved"
	LabOrderStatusInProgress LabOrderStatus = "inProgress"
	LabOrderStatusCompleted  LabOrderStatus = "completed"
	LabOrderStatusCancelled  LabOrderStatus = "cancelled"
)

// LabOrderPriority represents the priority of a lab order
type LabOrderPriority string

const (
	LabOrderPriorityNormal LabOrderPriority = "normal"
	LabOrderPriorityUrgent LabOrderPriority = "urgent"
)

// LabOrder is a test order raised during a consultation. ApprovedBy and
// ApprovedAt are set exactly once, only by the owning doctor, only while the
// order is still pending.
type LabOrder struct {
	ID         uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	DoctorID   uuid.UUID        `gorm:"type:uuid;not null;index" json:"doctor_id"`
	PatientID  uuid.UUID        `gorm:"type:uuid;not null;index" json:"patient_id"`
	TestType   string           `gorm:"type:varchar(100);not null" json:"test_type"`
	Priority   LabOrderPriority `gorm:"type:varchar(10);not null;default:'normal';index" json:"priority"`
	Status     LabOrderStatus   `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Notes      string           `gorm:"type:text" json:"notes,omitempty"`
	ApprovedBy *uuid.UUID       `gorm:"type:uuid" json:"approved_by,omitempty"`
	ApprovedAt *time.Time       `gorm:"" json:"approved_at,omitempty"`
	CreatedAt  time.Time        `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt  time.Time        `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor  DoctorProfile  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Patient PatientProfile `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (LabOrder) TableName() string {
	return "lab_orders"
}

// IsPending checks if the order is still awaiting approval
func (o *LabOrder) IsPending() bool {
	return o.Status == LabOrderStatusPending
}

// IsTerminal checks if the order has reached a final state
func (o *LabOrder) IsTerminal() bool {
	return o.Status == LabOrderStatusCompleted || o.Status == LabOrderStatusCancelled
}

// OwnedBy reports whether the order belongs to the given doctor profile.
func (o *LabOrder) OwnedBy(doctorProfileID uuid.UUID) bool {
	return o.DoctorID == doctorProfileID
}

// OpenStatuses are the statuses an urgent order counts toward on the
// doctor dashboard.
func OpenLabOrderStatuses() []LabOrderStatus {
	return []LabOrderStatus{LabOrderStatusPending, LabOrderStatusApproved, LabOrderStatusInProgress}
}
