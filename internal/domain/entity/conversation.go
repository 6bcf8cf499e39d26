package entity

import (
	"time"

	"github.com/google/uuid"
)

// SenderRole identifies which side of a conversation authored a message
type SenderRole string

const (
	SenderRoleDoctor  SenderRole = "doctor"
	SenderRolePatient SenderRole = "patient"
)

// Conversation is the single message thread between a patient profile and a
// doctor profile. The (patient_id, doctor_id) pair is unique at the store
// level; concurrent first messages rely on that constraint and re-read on
// conflict.
type Conversation struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_conversations_pair" json:"patient_id"`
	DoctorID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_conversations_pair" json:"doctor_id"`
	LastMessageAt time.Time `gorm:"not null;index" json:"last_message_at"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Patient  PatientProfile `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor   DoctorProfile  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Messages []Message      `gorm:"foreignKey:ConversationID" json:"messages,omitempty"`
}

func (Conversation) TableName() string {
	return "conversations"
}

// OwnedBy reports whether the conversation belongs to the given doctor
// profile.
func (c *Conversation) OwnedBy(doctorProfileID uuid.UUID) bool {
	return c.DoctorID == doctorProfileID
}

// Message is one entry in a conversation. ReadAt is set when the counterpart
// reads the thread; marking an already-read message again is a no-op.
type Message struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ConversationID uuid.UUID  `gorm:"type:uuid;not null;index" json:"conversation_id"`
	SenderID       uuid.UUID  `gorm:"type:uuid;not null" json:"sender_id"`
	SenderRole     SenderRole `gorm:"type:varchar(10);not null" json:"sender_role"`
	Content        string     `gorm:"type:text;not null" json:"content"`
	ReadAt         *time.Time `gorm:"" json:"read_at,omitempty"`
	CreatedAt      time.Time  `gorm:"autoCreateTime;index" json:"created_at"`
}

func (Message) TableName() string {
	return "messages"
}

// IsUnread checks if the message has not been read yet
func (m *Message) IsUnread() bool {
	return m.ReadAt == nil
}
