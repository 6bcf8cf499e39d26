package converter

import (
	"health-monitoring-api/internal/delivery/dto"
	"health-monitoring-api/internal/domain/entity"
)

// MedicationToResponse converts a Medication entity to MedicationResponse DTO
func MedicationToResponse(medication *entity.Medication) *dto.MedicationResponse {
	if medication == nil {
		return nil
	}

	return &dto.MedicationResponse{
		ID:        medication.ID,
		Name:      medication.Name,
		Dosage:    medication.Dosage,
		Frequency: medication.Frequency,
		Schedules: MedicationSchedulesToResponses(medication.Schedules),
	}
}

// MedicationsToResponses converts a slice of Medication entities to slice of MedicationResponse DTOs
func MedicationsToResponses(medications []entity.Medication) []dto.MedicationResponse {
	responses := make([]dto.MedicationResponse, len(medications))
	for i, medication := range medications {
		resp := MedicationToResponse(&medication)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// MedicationSchedulesToResponses converts schedule entities to DTOs
func MedicationSchedulesToResponses(schedules []entity.MedicationSchedule) []dto.MedicationScheduleResponse {
	responses := make([]dto.MedicationScheduleResponse, len(schedules))
	for i, schedule := range schedules {
		responses[i] = dto.MedicationScheduleResponse{
			ID:       schedule.ID,
			Dosage:   schedule.Dosage,
			Time:     schedule.Time,
			Taken:    schedule.Taken,
			NextDose: schedule.NextDose,
		}
	}
	return responses
}

// MedicationScheduleToDue builds a patient dashboard medication row. The
// Medication relation must be preloaded for the name to resolve.
func MedicationScheduleToDue(schedule *entity.MedicationSchedule) dto.MedicationDue {
	return dto.MedicationDue{
		ID:       schedule.ID,
		Name:     schedule.Medication.Name,
		Dosage:   schedule.Dosage,
		Time:     schedule.Time,
		Taken:    schedule.Taken,
		NextDose: schedule.NextDose,
	}
}

// MedicationSchedulesToDue converts due schedules into dashboard rows
func MedicationSchedulesToDue(schedules []entity.MedicationSchedule) []dto.MedicationDue {
	due := make([]dto.MedicationDue, len(schedules))
	for i := range schedules {
		due[i] = MedicationScheduleToDue(&schedules[i])
	}
	return due
}
