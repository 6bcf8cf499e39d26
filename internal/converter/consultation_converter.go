package converter

import (
	"health-monitoring-api/internal/delivery/dto"
	"health-monitoring-api/internal/domain/entity"

	"github.com/google/uuid"
)

// ConsultationToResponse converts a Consultation entity to ConsultationResponse DTO
func ConsultationToResponse(consultation *entity.Consultation) *dto.ConsultationResponse {
	if consultation == nil {
		return nil
	}

	response := &dto.ConsultationResponse{
		ID:              consultation.ID,
		DoctorID:        consultation.DoctorID,
		PatientID:       consultation.PatientID,
		Symptoms:        consultation.Symptoms,
		Diagnosis:       consultation.Diagnosis,
		Notes:           consultation.Notes,
		Status:          consultation.Status,
		NextAppointment: consultation.NextAppointment,
		Prescriptions:   PrescriptionsToResponses(consultation.Prescriptions),
		CreatedAt:       consultation.CreatedAt,
		UpdatedAt:       consultation.UpdatedAt,
	}

	// Include patient name if the relation was preloaded
	if consultation.Patient.ID != uuid.Nil {
		response.PatientName = consultation.Patient.Name
	}

	return response
}

// ConsultationsToResponses converts a slice of Consultation entities to slice of ConsultationResponse DTOs
func ConsultationsToResponses(consultations []entity.Consultation) []dto.ConsultationResponse {
	responses := make([]dto.ConsultationResponse, len(consultations))
	for i, consultation := range consultations {
		resp := ConsultationToResponse(&consultation)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// PrescriptionsToResponses converts a slice of Prescription entities to slice of PrescriptionResponse DTOs
func PrescriptionsToResponses(prescriptions []entity.Prescription) []dto.PrescriptionResponse {
	responses := make([]dto.PrescriptionResponse, len(prescriptions))
	for i, p := range prescriptions {
		responses[i] = dto.PrescriptionResponse{
			ID:           p.ID,
			Medication:   p.Medication,
			Dosage:       p.Dosage,
			Frequency:    p.Frequency,
			Duration:     p.Duration,
			Instructions: p.Instructions,
		}
	}
	return responses
}
