package dto

import (
	"time"

	"health-monitoring-api/internal/domain/entity"

	"github.com/google/uuid"
)

type LabOrderResponse struct {
	ID          uuid.UUID               `json:"id"`
	DoctorID    uuid.UUID               `json:"doctor_id"`
	PatientID   uuid.UUID               `json:"patient_id"`
	PatientName string                  `json:"patient_name,omitempty"`
	TestType    string                  `json:"test_type"`
	Priority    entity.LabOrderPriority `json:"priority"`
	Status      entity.LabOrderStatus   `json:"status"`
	Notes       string                  `json:"notes,omitempty"`
	ApprovedBy  *uuid.UUID              `json:"approved_by,omitempty"`
	ApprovedAt  *time.Time              `json:"approved_at,omitempty"`
	CreatedAt   time.Time               `json:"created_at"`
	UpdatedAt   time.Time               `json:"updated_at"`
}

type ApproveLabOrderResponse struct {
	Order    LabOrderResponse `json:"order"`
	Approved bool             `json:"approved"`
}
