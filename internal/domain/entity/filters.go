package entity

import (
	"time"

	"github.com/google/uuid"
)

// PatientFilter is a domain-level filter for a doctor's patient list.
// Used by repository layer to avoid coupling with delivery DTOs.
type PatientFilter struct {
	Search    string    // ILIKE on patient name OR owning user email
	Gender    string
	RiskLevel RiskLevel
	SortBy    string // name | age | riskLevel | lastVisit
	Offset    int
	Limit     int
}

// LabOrderFilter narrows a doctor's lab order listing.
type LabOrderFilter struct {
	Status    LabOrderStatus
	Priority  LabOrderPriority
	PatientID *uuid.UUID
	Offset    int
	Limit     int
}

// VitalFilter narrows a vitals history query.
type VitalFilter struct {
	Type  VitalType
	From  *time.Time
	To    *time.Time
	Limit int
}

// AppointmentFilter narrows a patient's appointment listing.
type AppointmentFilter struct {
	Status   AppointmentStatus
	From     *time.Time
	To       *time.Time
	Upcoming bool
}

// HistoryFilter narrows a patient medical history query.
type HistoryFilter struct {
	Type  string // all | consultations | labOrders | appointments
	From  *time.Time
	To    *time.Time
	Limit int
}

// LabResultFilter narrows a patient's lab result listing.
type LabResultFilter struct {
	Type   string
	Status string
	From   *time.Time
	To     *time.Time
}

// ScheduleRange bounds a schedule lookup to rows overlapping [From, To].
type ScheduleRange struct {
	From *time.Time
	To   *time.Time
}
