package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TimeSlotList stores the slot strings ("09:00-09:30", ...) as a JSONB array.
type TimeSlotList []string

func (t TimeSlotList) Value() (driver.Value, error) {
	return json.Marshal(t)
}

func (t *TimeSlotList) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}
	return json.Unmarshal(bytes, t)
}

// DoctorSchedule is one weekly availability row. UpdateSchedule replaces the
// whole set for a doctor atomically; readers never observe a transient empty
// schedule.
type DoctorSchedule struct {
	ID        int        `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"doctor_id"`
	DayOfWeek int        `gorm:"not null" json:"day_of_week"`
	TimeSlots TimeSlotList `gorm:"type:jsonb;not null" json:"time_slots"`
	FromDate  time.Time  `gorm:"type:date;not null" json:"from_date"`
	ToDate    *time.Time `gorm:"type:date" json:"to_date,omitempty"`
	IsActive  bool       `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor DoctorProfile `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (DoctorSchedule) TableName() string {
	return "doctor_schedules"
}
