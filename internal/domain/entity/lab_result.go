package entity

import (
	"time"

	"github.com/google/uuid"
)

// LabResult is a finalized result visible to the owning patient.
type LabResult struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`
	Type      string    `gorm:"type:varchar(100);not null;index" json:"type"`
	Status    string    `gorm:"type:varchar(20);index" json:"status,omitempty"`
	Results   JSON      `gorm:"type:jsonb" json:"results,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (LabResult) TableName() string {
	return "lab_results"
}
