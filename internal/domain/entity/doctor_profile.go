package entity

import (
	"time"

	"github.com/google/uuid"
)

// DoctorStatus represents the provisioning state of a doctor profile
type DoctorStatus string

const (
	DoctorStatusActive    DoctorStatus = "active"
	DoctorStatusSuspended DoctorStatus = "suspended"
)

// DoctorProfile represents doctor-specific profile data. Its primary key is
// the profile id, distinct from the owning user id; clinical records
// (consultations, lab orders, conversations, schedules) reference the profile
// id while appointments and access checks reference the user id.
type DoctorProfile struct {
	ID        uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID    `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Specialty string       `gorm:"type:varchar(100);not null;index" json:"specialty"`
	Status    DoctorStatus `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	CreatedAt time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time    `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User          User             `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Consultations []Consultation   `gorm:"foreignKey:DoctorID" json:"consultations,omitempty"`
	LabOrders     []LabOrder       `gorm:"foreignKey:DoctorID" json:"lab_orders,omitempty"`
	Conversations []Conversation   `gorm:"foreignKey:DoctorID" json:"conversations,omitempty"`
	Schedules     []DoctorSchedule `gorm:"foreignKey:DoctorID" json:"schedules,omitempty"`
}

func (DoctorProfile) TableName() string {
	return "doctor_profiles"
}
