package converter

import (
	"health-monitoring-api/internal/delivery/dto"
	"health-monitoring-api/internal/domain/entity"
)

// LabResultToResponse converts a LabResult entity to LabResultResponse DTO
func LabResultToResponse(result *entity.LabResult) *dto.LabResultResponse {
	if result == nil {
		return nil
	}

	return &dto.LabResultResponse{
		ID:        result.ID,
		PatientID: result.PatientID,
		Type:      result.Type,
		Status:    result.Status,
		Results:   result.Results,
		CreatedAt: result.CreatedAt,
	}
}

// LabResultsToResponses converts a slice of LabResult entities to DTOs
func LabResultsToResponses(results []entity.LabResult) []dto.LabResultResponse {
	responses := make([]dto.LabResultResponse, len(results))
	for i, result := range results {
		resp := LabResultToResponse(&result)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
