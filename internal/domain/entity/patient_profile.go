package entity

import (
	"time"

	"github.com/google/uuid"
)

// RiskLevel classifies a patient's monitoring risk
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// DefaultHealthScore is reported when no score has been computed yet
const DefaultHealthScore = 75

// PatientProfile represents patient-specific profile data. Same id/user_id
// indirection as DoctorProfile.
type PatientProfile struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID           uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Name             string    `gorm:"type:varchar(255);not null;index" json:"name"`
	Age              *int      `gorm:"" json:"age,omitempty"`
	Gender           string    `gorm:"type:varchar(10);index" json:"gender,omitempty"`
	BloodType        string    `gorm:"type:varchar(5)" json:"blood_type,omitempty"`
	RiskLevel        RiskLevel `gorm:"type:varchar(10);not null;default:'low';index" json:"risk_level"`
	HealthScore      int       `gorm:"not null;default:0" json:"health_score"`
	EmergencyContact string    `gorm:"type:varchar(255)" json:"emergency_contact,omitempty"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User          User                 `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Consultations []Consultation       `gorm:"foreignKey:PatientID" json:"consultations,omitempty"`
	Vitals        []PatientVital       `gorm:"foreignKey:PatientID" json:"vitals,omitempty"`
	Appointments  []Appointment        `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
	Medications   []Medication         `gorm:"foreignKey:PatientID" json:"medications,omitempty"`
	MedSchedules  []MedicationSchedule `gorm:"foreignKey:PatientID" json:"med_schedules,omitempty"`
	LabResults    []LabResult          `gorm:"foreignKey:PatientID" json:"lab_results,omitempty"`
}

func (PatientProfile) TableName() string {
	return "patient_profiles"
}

// EffectiveHealthScore returns the stored score, or the default when unset.
func (p *PatientProfile) EffectiveHealthScore() int {
	if p.HealthScore <= 0 {
		return DefaultHealthScore
	}
	return p.HealthScore
}
