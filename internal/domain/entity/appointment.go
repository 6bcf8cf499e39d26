package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
)

// Appointment types
const (
	AppointmentTypeFollowUp = "follow-up"
	AppointmentTypeCheckup  = "checkup"
)

// Appointment links a patient profile to a doctor. DoctorID is the doctor's
// user id, not the profile id; doctor name and specialty are denormalized for
// display. Appointments are the only records this layer hard-deletes, and
// only by their owning patient.
type Appointment struct {
	ID         uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID  uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID   *uuid.UUID        `gorm:"type:uuid;index" json:"doctor_id,omitempty"`
	DoctorName string            `gorm:"type:varchar(255)" json:"doctor_name,omitempty"`
	Specialty  string            `gorm:"type:varchar(100)" json:"specialty,omitempty"`
	Date       time.Time         `gorm:"not null;index" json:"date"`
	Time       string            `gorm:"type:varchar(5);not null" json:"time"`
	Status     AppointmentStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Type       string            `gorm:"type:varchar(50)" json:"type,omitempty"`
	Reason     string            `gorm:"type:text" json:"reason,omitempty"`
	Notes      string            `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt  time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient PatientProfile `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// UpcomingAppointmentStatuses are the statuses shown on the patient dashboard.
func UpcomingAppointmentStatuses() []AppointmentStatus {
	return []AppointmentStatus{AppointmentStatusConfirmed, AppointmentStatusPending}
}
