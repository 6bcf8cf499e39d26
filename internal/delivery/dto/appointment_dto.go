package dto

import (
	"time"

	"health-monitoring-api/internal/domain/entity"

	"github.com/google/uuid"
)

type CreateAppointmentRequest struct {
	DoctorID   string `json:"doctor_id,omitempty" validate:"omitempty,uuid"`
	DoctorName string `json:"doctor_name" validate:"required"`
	Specialty  string `json:"specialty,omitempty"`
	Date       string `json:"date" validate:"required"`
	Time       string `json:"time" validate:"required"`
	Type       string `json:"type,omitempty"`
	Reason     string `json:"reason,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

type UpdateAppointmentRequest struct {
	Date   *string `json:"date,omitempty"`
	Time   *string `json:"time,omitempty"`
	Status *string `json:"status,omitempty" validate:"omitempty,oneof=confirmed pending completed cancelled"`
	Reason *string `json:"reason,omitempty"`
	Notes  *string `json:"notes,omitempty"`
}

type AppointmentResponse struct {
	ID         uuid.UUID                `json:"id"`
	PatientID  uuid.UUID                `json:"patient_id"`
	DoctorID   *uuid.UUID               `json:"doctor_id,omitempty"`
	DoctorName string                   `json:"doctor_name"`
	Specialty  string                   `json:"specialty,omitempty"`
	Date       time.Time                `json:"date"`
	Time       string                   `json:"time"`
	Status     entity.AppointmentStatus `json:"status"`
	Type       string                   `json:"type,omitempty"`
	Reason     string                   `json:"reason,omitempty"`
	Notes      string                   `json:"notes,omitempty"`
	CreatedAt  time.Time                `json:"created_at"`
	UpdatedAt  time.Time                `json:"updated_at"`
}
