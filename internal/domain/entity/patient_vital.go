package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VitalType identifies a vital sign stream
type VitalType string

const (
	VitalBloodPressure VitalType = "bloodPressure"
	VitalHeartRate     VitalType = "heartRate"
	VitalGlucose       VitalType = "glucose"
	VitalSpO2          VitalType = "spo2"
	VitalTemperature   VitalType = "temperature"
	VitalWeight        VitalType = "weight"
)

// AllVitalTypes lists the fixed set of streams the patient dashboard reads,
// one latest sample per type.
func AllVitalTypes() []VitalType {
	return []VitalType{
		VitalBloodPressure, VitalHeartRate, VitalGlucose,
		VitalSpO2, VitalTemperature, VitalWeight,
	}
}

// PatientVital is one reading from a monitoring device. SecondaryValue holds
// the diastolic reading for blood pressure and is nil for every other type.
type PatientVital struct {
	ID             uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID      uuid.UUID        `gorm:"type:uuid;not null;index" json:"patient_id"`
	Type           VitalType        `gorm:"type:varchar(20);not null;index" json:"type"`
	Value          decimal.Decimal  `gorm:"type:decimal(10,2);not null" json:"value"`
	SecondaryValue *decimal.Decimal `gorm:"type:decimal(10,2)" json:"secondary_value,omitempty"`
	Unit           string           `gorm:"type:varchar(20)" json:"unit,omitempty"`
	Status         string           `gorm:"type:varchar(20)" json:"status,omitempty"`
	Timestamp      time.Time        `gorm:"not null;index" json:"timestamp"`

	// Relationships
	Patient PatientProfile `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (PatientVital) TableName() string {
	return "patient_vitals"
}
