package entity

import (
	"time"

	"github.com/google/uuid"
)

// Medication is a drug prescribed to a patient, tracked for adherence.
type Medication struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Dosage    string    `gorm:"type:varchar(100);not null" json:"dosage"`
	Frequency string    `gorm:"type:varchar(100)" json:"frequency,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Schedules []MedicationSchedule `gorm:"foreignKey:MedicationID" json:"schedules,omitempty"`
}

func (Medication) TableName() string {
	return "medications"
}

// MedicationSchedule is a dose slot. A nil NextDose means the medication is
// taken as needed; such rows still appear in the "due today" dashboard list.
type MedicationSchedule struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"patient_id"`
	MedicationID uuid.UUID  `gorm:"type:uuid;not null;index" json:"medication_id"`
	Dosage       string     `gorm:"type:varchar(100);not null" json:"dosage"`
	Time         string     `gorm:"type:varchar(20)" json:"time,omitempty"`
	Taken        bool       `gorm:"not null;default:false" json:"taken"`
	NextDose     *time.Time `gorm:"index" json:"next_dose,omitempty"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Medication Medication `gorm:"foreignKey:MedicationID" json:"medication,omitempty"`
}

func (MedicationSchedule) TableName() string {
	return "medication_schedules"
}
