package dto

import (
	"time"

	"health-monitoring-api/internal/domain/entity"

	"github.com/google/uuid"
)

// PatientListItem is one row of a doctor's patient roster, enriched with the
// latest vital per type and the date of the last consultation.
type PatientListItem struct {
	ID          uuid.UUID               `json:"id"`
	Name        string                  `json:"name"`
	Age         *int                    `json:"age,omitempty"`
	Gender      string                  `json:"gender,omitempty"`
	BloodType   string                  `json:"blood_type,omitempty"`
	RiskLevel   entity.RiskLevel        `json:"risk_level"`
	HealthScore int                     `json:"health_score"`
	Email       string                  `json:"email,omitempty"`
	Phone       string                  `json:"phone,omitempty"`
	LastVisit   *time.Time              `json:"last_visit,omitempty"`
	Vitals      map[string]VitalReading `json:"vitals"`
}

// PatientDetailResponse is the full chart header for one patient.
type PatientDetailResponse struct {
	ID               uuid.UUID             `json:"id"`
	Name             string                `json:"name"`
	Age              *int                  `json:"age,omitempty"`
	Gender           string                `json:"gender,omitempty"`
	BloodType        string                `json:"blood_type,omitempty"`
	RiskLevel        entity.RiskLevel      `json:"risk_level"`
	HealthScore      int                   `json:"health_score"`
	EmergencyContact string                `json:"emergency_contact,omitempty"`
	Email            string                `json:"email,omitempty"`
	Phone            string                `json:"phone,omitempty"`
	Avatar           string                `json:"avatar,omitempty"`
	Medications      []MedicationResponse  `json:"medications"`
	Appointments     []AppointmentResponse `json:"appointments"`
	LastConsultation *ConsultationResponse `json:"last_consultation,omitempty"`
}

// PatientHistoryResponse groups a patient's records under one doctor.
type PatientHistoryResponse struct {
	Consultations []ConsultationResponse `json:"consultations,omitempty"`
	LabOrders     []LabOrderResponse     `json:"lab_orders,omitempty"`
	Appointments  []AppointmentResponse  `json:"appointments,omitempty"`
}
