package dto

import (
	"time"

	"health-monitoring-api/internal/domain/entity"

	"github.com/google/uuid"
)

type CreateConsultationRequest struct {
	PatientID       string                   `json:"patient_id" validate:"required,uuid"`
	Symptoms        map[string]interface{}   `json:"symptoms,omitempty"`
	Diagnosis       string                   `json:"diagnosis,omitempty"`
	Notes           string                   `json:"notes,omitempty"`
	NextAppointment string                   `json:"next_appointment,omitempty"`
	Prescriptions   []PrescriptionRequest    `json:"prescriptions,omitempty" validate:"dive"`
	LabOrders       []CreateLabOrderRequest  `json:"lab_orders,omitempty" validate:"dive"`
}

type PrescriptionRequest struct {
	Medication   string `json:"medication" validate:"required"`
	Dosage       string `json:"dosage" validate:"required"`
	Frequency    string `json:"frequency" validate:"required"`
	Duration     string `json:"duration" validate:"required"`
	Instructions string `json:"instructions,omitempty"`
}

type CreateLabOrderRequest struct {
	TestType string `json:"test_type" validate:"required"`
	Priority string `json:"priority" validate:"required,oneof=normal urgent"`
	Notes    string `json:"notes,omitempty"`
}

type UpdateConsultationRequest struct {
	Symptoms        map[string]interface{} `json:"symptoms,omitempty"`
	Diagnosis       *string                `json:"diagnosis,omitempty"`
	Notes           *string                `json:"notes,omitempty"`
	Status          *string                `json:"status,omitempty" validate:"omitempty,oneof=scheduled inProgress completed cancelled"`
	NextAppointment *string                `json:"next_appointment,omitempty"`
}

type ConsultationResponse struct {
	ID              uuid.UUID                 `json:"id"`
	DoctorID        uuid.UUID                 `json:"doctor_id"`
	PatientID       uuid.UUID                 `json:"patient_id"`
	PatientName     string                    `json:"patient_name,omitempty"`
	Symptoms        map[string]interface{}    `json:"symptoms,omitempty"`
	Diagnosis       string                    `json:"diagnosis,omitempty"`
	Notes           string                    `json:"notes,omitempty"`
	Status          entity.ConsultationStatus `json:"status"`
	NextAppointment *time.Time                `json:"next_appointment,omitempty"`
	Prescriptions   []PrescriptionResponse    `json:"prescriptions"`
	CreatedAt       time.Time                 `json:"created_at"`
	UpdatedAt       time.Time                 `json:"updated_at"`
}

type PrescriptionResponse struct {
	ID           uuid.UUID `json:"id"`
	Medication   string    `json:"medication"`
	Dosage       string    `json:"dosage"`
	Frequency    string    `json:"frequency"`
	Duration     string    `json:"duration"`
	Instructions string    `json:"instructions,omitempty"`
}
