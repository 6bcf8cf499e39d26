package dto

import (
	"time"

	"health-monitoring-api/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterPatientRequest creates a user and its patient profile in one unit
type RegisterPatientRequest struct {
	Email            string `json:"email" validate:"required,email"`
	Password         string `json:"password" validate:"required,min=8"`
	FullName         string `json:"full_name" validate:"required,min=2,max=255"`
	Age              *int   `json:"age,omitempty" validate:"omitempty,gte=0,lte=150"`
	Gender           string `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	BloodType        string `json:"blood_type,omitempty"`
	Phone            string `json:"phone,omitempty"`
	EmergencyContact string `json:"emergency_contact,omitempty"`
}

// ProvisionDoctorRequest creates a doctor account; admin only
type ProvisionDoctorRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FullName  string `json:"full_name" validate:"required,min=2,max=255"`
	Specialty string `json:"specialty" validate:"required,min=2,max=100"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type TokenResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int64        `json:"expires_in"`
	User         UserResponse `json:"user"`
}

type UserResponse struct {
	ID        uuid.UUID   `json:"id"`
	Email     string      `json:"email"`
	FullName  string      `json:"full_name"`
	Role      entity.Role `json:"role"`
	Avatar    string      `json:"avatar,omitempty"`
	IsActive  *bool       `json:"is_active,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
