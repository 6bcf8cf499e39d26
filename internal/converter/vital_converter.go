package converter

import (
	"health-monitoring-api/internal/delivery/dto"
	"health-monitoring-api/internal/domain/entity"
)

// VitalToReading converts a PatientVital entity to VitalReading DTO
func VitalToReading(vital *entity.PatientVital) dto.VitalReading {
	return dto.VitalReading{
		ID:             vital.ID,
		Type:           vital.Type,
		Value:          vital.Value,
		SecondaryValue: vital.SecondaryValue,
		Unit:           vital.Unit,
		Status:         vital.Status,
		Timestamp:      vital.Timestamp,
	}
}

// VitalsToReadings converts a slice of PatientVital entities to slice of VitalReading DTOs
func VitalsToReadings(vitals []entity.PatientVital) []dto.VitalReading {
	readings := make([]dto.VitalReading, len(vitals))
	for i, vital := range vitals {
		readings[i] = VitalToReading(&vital)
	}
	return readings
}

// VitalsToReadingMap keys the latest reading per stream by its type, for the
// patient roster rows.
func VitalsToReadingMap(vitals []entity.PatientVital) map[string]dto.VitalReading {
	m := make(map[string]dto.VitalReading, len(vitals))
	for i := range vitals {
		m[string(vitals[i].Type)] = VitalToReading(&vitals[i])
	}
	return m
}
