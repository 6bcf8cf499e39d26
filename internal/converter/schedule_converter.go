package converter

import (
	"health-monitoring-api/internal/delivery/dto"
	"health-monitoring-api/internal/domain/entity"
)

// DoctorScheduleToResponse converts a DoctorSchedule entity to ScheduleResponse DTO
func DoctorScheduleToResponse(schedule *entity.DoctorSchedule) dto.ScheduleResponse {
	return dto.ScheduleResponse{
		ID:        schedule.ID,
		DayOfWeek: schedule.DayOfWeek,
		TimeSlots: schedule.TimeSlots,
		FromDate:  schedule.FromDate,
		ToDate:    schedule.ToDate,
		IsActive:  schedule.IsActive,
	}
}

// DoctorSchedulesToResponses converts a slice of DoctorSchedule entities to DTOs
func DoctorSchedulesToResponses(schedules []entity.DoctorSchedule) []dto.ScheduleResponse {
	responses := make([]dto.ScheduleResponse, len(schedules))
	for i, schedule := range schedules {
		responses[i] = DoctorScheduleToResponse(&schedule)
	}
	return responses
}
