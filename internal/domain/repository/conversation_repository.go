package repository

import (
	"time"

	"health-monitoring-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ConversationRepository interface {
	// Create inserts a new conversation. A unique-violation error surfaces
	// unchanged so the caller can resolve the find-or-create race by
	// re-reading.
	Create(db *gorm.DB, conversation *entity.Conversation) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Conversation, error)
	// FindByPair resolves the unique (patient, doctor) conversation, or nil.
	FindByPair(db *gorm.DB, patientProfileID, doctorProfileID uuid.UUID) (*entity.Conversation, error)
	TouchLastMessage(db *gorm.DB, id uuid.UUID, at time.Time) error
	// FindIDsByDoctor returns all conversation ids owned by the doctor profile.
	FindIDsByDoctor(db *gorm.DB, doctorProfileID uuid.UUID) ([]uuid.UUID, error)
	// FindByDoctor pages conversations newest-activity first with the patient
	// and its user preloaded; unreadOnly keeps only conversations holding
	// unread patient messages.
	FindByDoctor(db *gorm.DB, doctorProfileID uuid.UUID, unreadOnly bool, offset, limit int) ([]entity.Conversation, int64, error)
}

type MessageRepository interface {
	Create(db *gorm.DB, message *entity.Message) error
	// FindPage returns one page of messages newest first, plus the total.
	FindPage(db *gorm.DB, conversationID uuid.UUID, offset, limit int) ([]entity.Message, int64, error)
	FindLatest(db *gorm.DB, conversationID uuid.UUID) (*entity.Message, error)
	// MarkPatientMessagesRead stamps read_at on unread patient-authored
	// messages in the conversation. Idempotent; returns affected rows.
	MarkPatientMessagesRead(db *gorm.DB, conversationID uuid.UUID, at time.Time) (int64, error)
	// CountUnread counts unread patient-authored messages across the given
	// conversations; when since is non-nil only messages created after it.
	CountUnread(db *gorm.DB, conversationIDs []uuid.UUID, since *time.Time) (int64, error)
	CountUnreadByConversation(db *gorm.DB, conversationID uuid.UUID) (int64, error)
}
