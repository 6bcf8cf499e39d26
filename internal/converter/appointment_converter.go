package converter

import (
	"health-monitoring-api/internal/delivery/dto"
	"health-monitoring-api/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:         appointment.ID,
		PatientID:  appointment.PatientID,
		DoctorID:   appointment.DoctorID,
		DoctorName: appointment.DoctorName,
		Specialty:  appointment.Specialty,
		Date:       appointment.Date,
		Time:       appointment.Time,
		Status:     appointment.Status,
		Type:       appointment.Type,
		Reason:     appointment.Reason,
		Notes:      appointment.Notes,
		CreatedAt:  appointment.CreatedAt,
		UpdatedAt:  appointment.UpdatedAt,
	}
}

// AppointmentsToResponses converts a slice of Appointment entities to slice of AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		resp := AppointmentToResponse(&appointment)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// AppointmentToScheduleEntry converts an Appointment into a doctor dashboard
// schedule row. Patient must be preloaded for the name to resolve.
func AppointmentToScheduleEntry(appointment *entity.Appointment) dto.ScheduleEntry {
	return dto.ScheduleEntry{
		ID:          appointment.ID,
		Time:        appointment.Time,
		PatientName: appointment.Patient.Name,
		PatientID:   appointment.PatientID,
		Reason:      appointment.Reason,
		Status:      appointment.Status,
	}
}

// AppointmentsToScheduleEntries converts appointments into dashboard schedule rows
func AppointmentsToScheduleEntries(appointments []entity.Appointment) []dto.ScheduleEntry {
	entries := make([]dto.ScheduleEntry, len(appointments))
	for i, appointment := range appointments {
		entries[i] = AppointmentToScheduleEntry(&appointment)
	}
	return entries
}
