package usecase

import (
	"context"
	"errors"
	"time"

	"health-monitoring-api/internal/converter"
	"health-monitoring-api/internal/delivery/dto"
	"health-monitoring-api/internal/domain/entity"
	"health-monitoring-api/internal/domain/repository"
	"health-monitoring-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrConversationNotOwned = errors.New("conversation does not belong to you")
)

type MessagingUsecase interface {
	// SendMessage delivers a doctor message to a patient, creating the
	// conversation on first contact. Concurrent first messages resolve
	// through the unique pair constraint.
	SendMessage(ctx context.Context, doctorUserID uuid.UUID, req *dto.SendMessageRequest) (*dto.MessageResponse, error)
	// GetMessages lists the doctor's conversations, newest activity first.
	GetMessages(ctx context.Context, doctorUserID uuid.UUID, unreadOnly bool, offset, limit int) ([]dto.ConversationSummary, int64, error)
	// GetConversationMessages pages one conversation in chronological order
	// and marks the patient's messages read as a side effect.
	GetConversationMessages(ctx context.Context, doctorUserID, conversationID uuid.UUID, offset, limit int) (*dto.ConversationMessagesResponse, int64, error)
}

type messagingUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	doctorRepo       repository.DoctorProfileRepository
	patientRepo      repository.PatientProfileRepository
	conversationRepo repository.ConversationRepository
	messageRepo      repository.MessageRepository
	auditService     service.AuditService
}

func NewMessagingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorProfileRepository,
	patientRepo repository.PatientProfileRepository,
	conversationRepo repository.ConversationRepository,
	messageRepo repository.MessageRepository,
	auditService service.AuditService,
) MessagingUsecase {
	return &messagingUsecase{
		db:               db,
		log:              log,
		doctorRepo:       doctorRepo,
		patientRepo:      patientRepo,
		conversationRepo: conversationRepo,
		messageRepo:      messageRepo,
		auditService:     auditService,
	}
}

func (u *messagingUsecase) SendMessage(ctx context.Context, doctorUserID uuid.UUID, req *dto.SendMessageRequest) (*dto.MessageResponse, error) {
	patientID, err := uuid.Parse(req.PatientID)
	if err != nil {
		return nil, ErrPatientNotFound
	}

	profile, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), doctorUserID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}

	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", patientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	conversation, err := u.findOrCreateConversation(ctx, patient.ID, profile.ID)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	message := &entity.Message{
		ConversationID: conversation.ID,
		SenderID:       doctorUserID,
		SenderRole:     entity.SenderRoleDoctor,
		Content:        req.Content,
	}

	if err := u.messageRepo.Create(tx, message); err != nil {
		u.log.Warnf("Failed to create message: %+v", err)
		return nil, err
	}

	if err := u.conversationRepo.TouchLastMessage(tx, conversation.ID, now); err != nil {
		u.log.Warnf("Failed to touch conversation %s: %+v", conversation.ID, err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &doctorUserID, entity.AuditActionMessageSend, "message", message.ID.String(), map[string]interface{}{
		"conversation_id": conversation.ID.String(),
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.MessageToResponse(message), nil
}

// findOrCreateConversation resolves the unique (patient, doctor) thread. Two
// racing creators both reach Create; the loser hits the pair constraint and
// re-reads the winner's row.
func (u *messagingUsecase) findOrCreateConversation(ctx context.Context, patientProfileID, doctorProfileID uuid.UUID) (*entity.Conversation, error) {
	db := u.db.WithContext(ctx)

	conversation, err := u.conversationRepo.FindByPair(db, patientProfileID, doctorProfileID)
	if err != nil {
		u.log.Warnf("Failed to find conversation: %+v", err)
		return nil, err
	}
	if conversation != nil {
		return conversation, nil
	}

	conversation = &entity.Conversation{
		PatientID:     patientProfileID,
		DoctorID:      doctorProfileID,
		LastMessageAt: time.Now(),
	}

	if err := u.conversationRepo.Create(db, conversation); err != nil {
		if isDuplicateKeyError(err, "idx_conversations_pair") {
			existing, ferr := u.conversationRepo.FindByPair(db, patientProfileID, doctorProfileID)
			if ferr != nil {
				return nil, ferr
			}
			if existing == nil {
				return nil, err
			}
			return existing, nil
		}
		u.log.Warnf("Failed to create conversation: %+v", err)
		return nil, err
	}

	return conversation, nil
}

func (u *messagingUsecase) GetMessages(ctx context.Context, doctorUserID uuid.UUID, unreadOnly bool, offset, limit int) ([]dto.ConversationSummary, int64, error) {
	profile, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), doctorUserID)
	if err != nil {
		return nil, 0, err
	}
	if profile == nil {
		return nil, 0, ErrDoctorNotFound
	}

	conversations, total, err := u.conversationRepo.FindByDoctor(u.db.WithContext(ctx), profile.ID, unreadOnly, offset, limit)
	if err != nil {
		u.log.Warnf("Failed to list conversations for doctor %s: %+v", doctorUserID, err)
		return nil, 0, err
	}

	summaries := make([]dto.ConversationSummary, len(conversations))
	g, gctx := errgroup.WithContext(ctx)
	for i := range conversations {
		g.Go(func() error {
			conversation := &conversations[i]

			latest, err := u.messageRepo.FindLatest(u.db.WithContext(gctx), conversation.ID)
			if err != nil {
				return err
			}

			unread, err := u.messageRepo.CountUnreadByConversation(u.db.WithContext(gctx), conversation.ID)
			if err != nil {
				return err
			}

			summaries[i] = converter.ConversationToSummary(conversation, latest, unread)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		u.log.Warnf("Failed to enrich conversations for doctor %s: %+v", doctorUserID, err)
		return nil, 0, err
	}

	return summaries, total, nil
}

func (u *messagingUsecase) GetConversationMessages(ctx context.Context, doctorUserID, conversationID uuid.UUID, offset, limit int) (*dto.ConversationMessagesResponse, int64, error) {
	profile, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), doctorUserID)
	if err != nil {
		return nil, 0, err
	}
	if profile == nil {
		return nil, 0, ErrDoctorNotFound
	}

	conversation, err := u.conversationRepo.FindByID(u.db.WithContext(ctx), conversationID)
	if err != nil {
		u.log.Warnf("Failed to find conversation %s: %+v", conversationID, err)
		return nil, 0, err
	}
	if conversation == nil {
		return nil, 0, ErrConversationNotFound
	}
	if !conversation.OwnedBy(profile.ID) {
		return nil, 0, ErrConversationNotOwned
	}

	messages, total, err := u.messageRepo.FindPage(u.db.WithContext(ctx), conversationID, offset, limit)
	if err != nil {
		u.log.Warnf("Failed to page messages for conversation %s: %+v", conversationID, err)
		return nil, 0, err
	}

	// Page is fetched newest first; present it chronologically
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	// Reading the thread marks the patient's messages read. Re-reading an
	// already-read thread affects zero rows.
	if _, err := u.messageRepo.MarkPatientMessagesRead(u.db.WithContext(ctx), conversationID, time.Now()); err != nil {
		u.log.Warnf("Failed to mark messages read for conversation %s: %+v", conversationID, err)
		return nil, 0, err
	}

	return &dto.ConversationMessagesResponse{
		ConversationID: conversationID,
		Messages:       converter.MessagesToResponses(messages),
	}, total, nil
}
