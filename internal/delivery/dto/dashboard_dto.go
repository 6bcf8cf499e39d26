package dto

import (
	"time"

	"health-monitoring-api/internal/domain/entity"

	"github.com/google/uuid"
)

// DoctorDashboardResponse is the composite view assembled from the
// independent dashboard sub-queries.
type DoctorDashboardResponse struct {
	Stats          DoctorDashboardStats `json:"stats"`
	TodaySchedule  []ScheduleEntry      `json:"today_schedule"`
	CriticalAlerts []CriticalAlert      `json:"critical_alerts"`
}

type DoctorDashboardStats struct {
	TodayAppointments    int64 `json:"today_appointments"`
	CompletedToday       int64 `json:"completed_today"`
	PatientsUnderCare    int64 `json:"patients_under_care"`
	HighRiskPatients     int64 `json:"high_risk_patients"`
	PendingLabOrders     int64 `json:"pending_lab_orders"`
	UrgentLabOrders      int64 `json:"urgent_lab_orders"`
	UnreadMessages       int64 `json:"unread_messages"`
	HighPriorityMessages int64 `json:"high_priority_messages"`
}

type ScheduleEntry struct {
	ID          uuid.UUID                `json:"id"`
	Time        string                   `json:"time"`
	PatientName string                   `json:"patient_name,omitempty"`
	PatientID   uuid.UUID                `json:"patient_id"`
	Reason      string                   `json:"reason,omitempty"`
	Status      entity.AppointmentStatus `json:"status"`
}

type CriticalAlert struct {
	ID          uuid.UUID        `json:"id"`
	PatientName string           `json:"patient_name,omitempty"`
	PatientID   *uuid.UUID       `json:"patient_id,omitempty"`
	Type        entity.AlertType `json:"type"`
	Message     string           `json:"message"`
	Severity    entity.AlertType `json:"severity"`
	CreatedAt   time.Time        `json:"created_at"`
}

// PatientDashboardResponse is the patient portal landing view.
type PatientDashboardResponse struct {
	Profile              PatientProfileSummary `json:"profile"`
	LatestVitals         []VitalReading        `json:"latest_vitals"`
	UpcomingAppointments []AppointmentResponse `json:"upcoming_appointments"`
	Medications          []MedicationDue       `json:"medications"`
	Notifications        []Notification        `json:"notifications"`
	HealthScore          int                   `json:"health_score"`
}

type PatientProfileSummary struct {
	ID               uuid.UUID        `json:"id"`
	Name             string           `json:"name"`
	Email            string           `json:"email"`
	Age              *int             `json:"age,omitempty"`
	Gender           string           `json:"gender,omitempty"`
	BloodType        string           `json:"blood_type,omitempty"`
	HealthScore      int              `json:"health_score"`
	RiskLevel        entity.RiskLevel `json:"risk_level"`
	EmergencyContact string           `json:"emergency_contact,omitempty"`
}

type MedicationDue struct {
	ID       uuid.UUID  `json:"id"`
	Name     string     `json:"name"`
	Dosage   string     `json:"dosage"`
	Time     string     `json:"time,omitempty"`
	Taken    bool       `json:"taken"`
	NextDose *time.Time `json:"next_dose,omitempty"`
}

// Notification is a placeholder until the notification pipeline lands.
type Notification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
