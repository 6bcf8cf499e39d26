package converter

import (
	"health-monitoring-api/internal/delivery/dto"
	"health-monitoring-api/internal/domain/entity"

	"github.com/google/uuid"
)

// AlertToCriticalAlert builds a doctor dashboard alert row. The alert's user
// and its patient profile must be preloaded to resolve the patient fields.
func AlertToCriticalAlert(alert *entity.Alert) dto.CriticalAlert {
	row := dto.CriticalAlert{
		ID:        alert.ID,
		Type:      alert.Type,
		Message:   alert.Message,
		Severity:  alert.Type,
		CreatedAt: alert.CreatedAt,
	}

	if alert.User.ID != uuid.Nil {
		row.PatientName = alert.User.FullName
		if alert.User.PatientProfile != nil {
			id := alert.User.PatientProfile.ID
			row.PatientID = &id
		}
	}

	return row
}

// AlertsToCriticalAlerts converts alerts into dashboard rows
func AlertsToCriticalAlerts(alerts []entity.Alert) []dto.CriticalAlert {
	rows := make([]dto.CriticalAlert, len(alerts))
	for i := range alerts {
		rows[i] = AlertToCriticalAlert(&alerts[i])
	}
	return rows
}
