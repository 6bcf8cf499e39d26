package repository

import (
	"errors"
	"time"

	"health-monitoring-api/internal/domain/entity"
	domainRepo "health-monitoring-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type messageRepository struct{}

func NewMessageRepository() domainRepo.MessageRepository {
	return &messageRepository{}
}

func (r *messageRepository) Create(db *gorm.DB, message *entity.Message) error {
	return db.Create(message).Error
}

func (r *messageRepository) FindPage(db *gorm.DB, conversationID uuid.UUID, offset, limit int) ([]entity.Message, int64, error) {
	var total int64
	if err := db.Model(&entity.Message{}).
		Where("conversation_id = ?", conversationID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var messages []entity.Message
	err := db.Where("conversation_id = ?", conversationID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, 0, err
	}
	return messages, total, nil
}

func (r *messageRepository) FindLatest(db *gorm.DB, conversationID uuid.UUID) (*entity.Message, error) {
	var message entity.Message
	err := db.Where("conversation_id = ?", conversationID).
		Order("created_at DESC").
		First(&message).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &message, nil
}

// MarkPatientMessagesRead only touches rows where read_at is still null, so
// repeated calls are no-ops.
func (r *messageRepository) MarkPatientMessagesRead(db *gorm.DB, conversationID uuid.UUID, at time.Time) (int64, error) {
	result := db.Model(&entity.Message{}).
		Where("conversation_id = ? AND sender_role = ? AND read_at IS NULL",
			conversationID, entity.SenderRolePatient).
		Update("read_at", at)
	return result.RowsAffected, result.Error
}

func (r *messageRepository) CountUnread(db *gorm.DB, conversationIDs []uuid.UUID, since *time.Time) (int64, error) {
	if len(conversationIDs) == 0 {
		return 0, nil
	}

	query := db.Model(&entity.Message{}).
		Where("conversation_id IN ? AND sender_role = ? AND read_at IS NULL",
			conversationIDs, entity.SenderRolePatient)
	if since != nil {
		query = query.Where("created_at >= ?", *since)
	}

	var count int64
	err := query.Count(&count).Error
	return count, err
}

func (r *messageRepository) CountUnreadByConversation(db *gorm.DB, conversationID uuid.UUID) (int64, error) {
	var count int64
	err := db.Model(&entity.Message{}).
		Where("conversation_id = ? AND sender_role = ? AND read_at IS NULL",
			conversationID, entity.SenderRolePatient).
		Count(&count).Error
	return count, err
}
