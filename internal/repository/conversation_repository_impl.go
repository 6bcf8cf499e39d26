package repository

import (
	"errors"
	"time"

	"health-monitoring-api/internal/domain/entity"
	domainRepo "health-monitoring-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type conversationRepository struct{}

func NewConversationRepository() domainRepo.ConversationRepository {
	return &conversationRepository{}
}

func (r *conversationRepository) Create(db *gorm.DB, conversation *entity.Conversation) error {
	return db.Create(conversation).Error
}

func (r *conversationRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Conversation, error) {
	var conversation entity.Conversation
	err := db.Where("id = ?", id).First(&conversation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &conversation, nil
}

func (r *conversationRepository) FindByPair(db *gorm.DB, patientProfileID, doctorProfileID uuid.UUID) (*entity.Conversation, error) {
	var conversation entity.Conversation
	err := db.Where("patient_id = ? AND doctor_id = ?", patientProfileID, doctorProfileID).
		First(&conversation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &conversation, nil
}

func (r *conversationRepository) TouchLastMessage(db *gorm.DB, id uuid.UUID, at time.Time) error {
	return db.Model(&entity.Conversation{}).
		Where("id = ?", id).
		Update("last_message_at", at).Error
}

func (r *conversationRepository) FindIDsByDoctor(db *gorm.DB, doctorProfileID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := db.Model(&entity.Conversation{}).
		Where("doctor_id = ?", doctorProfileID).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *conversationRepository) FindByDoctor(db *gorm.DB, doctorProfileID uuid.UUID, unreadOnly bool, offset, limit int) ([]entity.Conversation, int64, error) {
	query := db.Model(&entity.Conversation{}).Where("doctor_id = ?", doctorProfileID)

	if unreadOnly {
		query = query.Where("EXISTS (SELECT 1 FROM messages WHERE messages.conversation_id = conversations.id AND messages.sender_role = ? AND messages.read_at IS NULL)",
			entity.SenderRolePatient)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var conversations []entity.Conversation
	err := query.Preload("Patient").
		Preload("Patient.User").
		Order("last_message_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&conversations).Error
	if err != nil {
		return nil, 0, err
	}
	return conversations, total, nil
}
