package dto

import (
	"time"

	"github.com/google/uuid"
)

type LabResultResponse struct {
	ID        uuid.UUID              `json:"id"`
	PatientID uuid.UUID              `json:"patient_id"`
	Type      string                 `json:"type"`
	Status    string                 `json:"status"`
	Results   map[string]interface{} `json:"results,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}
