package dto

import "time"

type ScheduleEntryRequest struct {
	DayOfWeek int      `json:"day_of_week" validate:"min=0,max=6"`
	TimeSlots []string `json:"time_slots" validate:"required,min=1"`
	FromDate  string   `json:"from_date" validate:"required"`
	ToDate    string   `json:"to_date,omitempty"`
}

type UpdateScheduleRequest struct {
	Entries []ScheduleEntryRequest `json:"entries" validate:"required,dive"`
}

type ScheduleResponse struct {
	ID        int        `json:"id"`
	DayOfWeek int        `json:"day_of_week"`
	TimeSlots []string   `json:"time_slots"`
	FromDate  time.Time  `json:"from_date"`
	ToDate    *time.Time `json:"to_date,omitempty"`
	IsActive  bool       `json:"is_active"`
}
