package dto

import (
	"time"

	"github.com/google/uuid"
)

type MedicationResponse struct {
	ID        uuid.UUID                    `json:"id"`
	Name      string                       `json:"name"`
	Dosage    string                       `json:"dosage,omitempty"`
	Frequency string                       `json:"frequency,omitempty"`
	Schedules []MedicationScheduleResponse `json:"schedules,omitempty"`
}

type MedicationScheduleResponse struct {
	ID       uuid.UUID  `json:"id"`
	Dosage   string     `json:"dosage,omitempty"`
	Time     string     `json:"time"`
	Taken    bool       `json:"taken"`
	NextDose *time.Time `json:"next_dose,omitempty"`
}

type TakeMedicationRequest struct {
	ScheduleID string `json:"schedule_id" validate:"required,uuid"`
}
