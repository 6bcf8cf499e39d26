package entity

import (
	"time"

	"github.com/google/uuid"
)

// AlertType classifies the severity of a monitoring alert
type AlertType string

const (
	AlertTypeCritical AlertType = "critical"
	AlertTypeUrgent   AlertType = "urgent"
	AlertTypeHigh     AlertType = "high"
	AlertTypeMedium   AlertType = "medium"
	AlertTypeLow      AlertType = "low"
	AlertTypeInfo     AlertType = "info"
)

// Alert is a monitoring alert raised for a user. Read-only input to the
// dashboard aggregation; alerts are produced by the monitoring pipeline, not
// by this layer.
type Alert struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Type      AlertType `gorm:"type:varchar(20);not null;index" json:"type"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Alert) TableName() string {
	return "alerts"
}

// CriticalAlertTypes are the severities surfaced on the doctor dashboard.
func CriticalAlertTypes() []AlertType {
	return []AlertType{AlertTypeCritical, AlertTypeUrgent, AlertTypeHigh}
}
