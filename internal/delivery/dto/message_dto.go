package dto

import (
	"time"

	"health-monitoring-api/internal/domain/entity"

	"github.com/google/uuid"
)

type SendMessageRequest struct {
	PatientID string `json:"patient_id" validate:"required,uuid"`
	Content   string `json:"content" validate:"required,max=5000"`
}

type MessageResponse struct {
	ID             uuid.UUID         `json:"id"`
	ConversationID uuid.UUID         `json:"conversation_id"`
	SenderID       uuid.UUID         `json:"sender_id"`
	SenderRole     entity.SenderRole `json:"sender_role"`
	Content        string            `json:"content"`
	ReadAt         *time.Time        `json:"read_at,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
}

type ConversationSummary struct {
	ID            uuid.UUID        `json:"id"`
	PatientID     uuid.UUID        `json:"patient_id"`
	PatientName   string           `json:"patient_name"`
	PatientAvatar string           `json:"patient_avatar,omitempty"`
	LastMessage   *MessageResponse `json:"last_message,omitempty"`
	UnreadCount   int64            `json:"unread_count"`
	LastMessageAt time.Time        `json:"last_message_at"`
}

type ConversationMessagesResponse struct {
	ConversationID uuid.UUID         `json:"conversation_id"`
	Messages       []MessageResponse `json:"messages"`
}
