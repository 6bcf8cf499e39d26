package converter

import (
	"health-monitoring-api/internal/delivery/dto"
	"health-monitoring-api/internal/domain/entity"

	"github.com/google/uuid"
)

// MessageToResponse converts a Message entity to MessageResponse DTO
func MessageToResponse(message *entity.Message) *dto.MessageResponse {
	if message == nil {
		return nil
	}

	return &dto.MessageResponse{
		ID:             message.ID,
		ConversationID: message.ConversationID,
		SenderID:       message.SenderID,
		SenderRole:     message.SenderRole,
		Content:        message.Content,
		ReadAt:         message.ReadAt,
		CreatedAt:      message.CreatedAt,
	}
}

// MessagesToResponses converts a slice of Message entities to slice of MessageResponse DTOs
func MessagesToResponses(messages []entity.Message) []dto.MessageResponse {
	responses := make([]dto.MessageResponse, len(messages))
	for i, message := range messages {
		resp := MessageToResponse(&message)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// ConversationToSummary builds a doctor inbox row from a conversation, its
// latest message and the unread count for the doctor side.
func ConversationToSummary(conversation *entity.Conversation, lastMessage *entity.Message, unreadCount int64) dto.ConversationSummary {
	summary := dto.ConversationSummary{
		ID:            conversation.ID,
		PatientID:     conversation.PatientID,
		LastMessage:   MessageToResponse(lastMessage),
		UnreadCount:   unreadCount,
		LastMessageAt: conversation.LastMessageAt,
	}

	if conversation.Patient.ID != uuid.Nil {
		summary.PatientName = conversation.Patient.Name
		summary.PatientAvatar = conversation.Patient.User.Avatar
	}

	return summary
}
