package converter

import (
	"health-monitoring-api/internal/delivery/dto"
	"health-monitoring-api/internal/domain/entity"

	"github.com/google/uuid"
)

// LabOrderToResponse converts a LabOrder entity to LabOrderResponse DTO
func LabOrderToResponse(order *entity.LabOrder) *dto.LabOrderResponse {
	if order == nil {
		return nil
	}

	response := &dto.LabOrderResponse{
		ID:         order.ID,
		DoctorID:   order.DoctorID,
		PatientID:  order.PatientID,
		TestType:   order.TestType,
		Priority:   order.Priority,
		Status:     order.Status,
		Notes:      order.Notes,
		ApprovedBy: order.ApprovedBy,
		ApprovedAt: order.ApprovedAt,
		CreatedAt:  order.CreatedAt,
		UpdatedAt:  order.UpdatedAt,
	}

	if order.Patient.ID != uuid.Nil {
		response.PatientName = order.Patient.Name
	}

	return response
}

// LabOrdersToResponses converts a slice of LabOrder entities to slice of LabOrderResponse DTOs
func LabOrdersToResponses(orders []entity.LabOrder) []dto.LabOrderResponse {
	responses := make([]dto.LabOrderResponse, len(orders))
	for i, order := range orders {
		resp := LabOrderToResponse(&order)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
