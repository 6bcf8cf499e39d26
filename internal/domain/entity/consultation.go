package entity

import (
	"time"

	"github.com/google/uuid"
)

// ConsultationStatus represents the status of a consultation
type ConsultationStatus string

const (
	ConsultationStatusScheduled  ConsultationStatus = "scheduled"
	ConsultationStatusInProgress ConsultationStatus = "inProgress"
	ConsultationStatusCompleted  ConsultationStatus = "completed"
	ConsultationStatusCancelled  ConsultationStatus = "cancelled"
)

// Valid reports whether the status is one of the known values. Transitions
// between values are not validated anywhere; updates accept any valid status.
func (s ConsultationStatus) Valid() bool {
	switch s {
	case ConsultationStatusScheduled, ConsultationStatusInProgress,
		ConsultationStatusCompleted, ConsultationStatusCancelled:
		return true
	}
	return false
}

// Consultation records a clinical encounter. It is owned by exactly one
// doctor profile; DoctorID never changes after creation.
type Consultation struct {
	ID              uuid.UUID          `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	DoctorID        uuid.UUID          `gorm:"type:uuid;not null;index" json:"doctor_id"`
	PatientID       uuid.UUID          `gorm:"type:uuid;not null;index" json:"patient_id"`
	Symptoms        JSON               `gorm:"type:jsonb" json:"symptoms,omitempty"`
	Diagnosis       string             `gorm:"type:text" json:"diagnosis,omitempty"`
	Notes           string             `gorm:"type:text" json:"notes,omitempty"`
	Status          ConsultationStatus `gorm:"type:varchar(20);not null;default:'completed';index" json:"status"`
	NextAppointment *time.Time         `gorm:"" json:"next_appointment,omitempty"`
	CreatedAt       time.Time          `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt       time.Time          `gorm:"autoUpdateTime;index" json:"updated_at"`

	// Relationships
	Doctor        DoctorProfile  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Patient       PatientProfile `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Prescriptions []Prescription `gorm:"foreignKey:ConsultationID" json:"prescriptions,omitempty"`
}

func (Consultation) TableName() string {
	return "consultations"
}

// OwnedBy reports whether the consultation belongs to the given doctor
// profile. Ownership is a profile-id comparison, not a user-id comparison.
func (c *Consultation) OwnedBy(doctorProfileID uuid.UUID) bool {
	return c.DoctorID == doctorProfileID
}

// Prescription is a child row created together with its consultation.
type Prescription struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ConsultationID uuid.UUID `gorm:"type:uuid;not null;index" json:"consultation_id"`
	Medication     string    `gorm:"type:varchar(255);not null" json:"medication"`
	Dosage         string    `gorm:"type:varchar(100);not null" json:"dosage"`
	Frequency      string    `gorm:"type:varchar(100);not null" json:"frequency"`
	Duration       string    `gorm:"type:varchar(100);not null" json:"duration"`
	Instructions   string    `gorm:"type:text" json:"instructions,omitempty"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}
