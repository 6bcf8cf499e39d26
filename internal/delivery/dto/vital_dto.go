package dto

import (
	"time"

	"health-monitoring-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type VitalReading struct {
	ID             uuid.UUID        `json:"id,omitempty"`
	Type           entity.VitalType `json:"type"`
	Value          decimal.Decimal  `json:"value"`
	SecondaryValue *decimal.Decimal `json:"secondary_value,omitempty"`
	Unit           string           `json:"unit,omitempty"`
	Status         string           `json:"status,omitempty"`
	Timestamp      time.Time        `json:"timestamp"`
}

type VitalListResponse struct {
	Vitals []VitalReading `json:"vitals"`
	Total  int            `json:"total"`
}
