package repository

import (
	"time"

	"health-monitoring-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AlertRepository interface {
	// FindCriticalForDoctor returns the newest critical/urgent/high alerts
	// since the given time, restricted to users whose patient profile has at
	// least one consultation with the doctor profile. The alert user and its
	// patient profile are preloaded.
	FindCriticalForDoctor(db *gorm.DB, doctorProfileID uuid.UUID, since time.Time, limit int) ([]entity.Alert, error)
}
