package usecase

import (
	"context"
	"testing"
	"time"

	"health-monitoring-api/internal/delivery/dto"
	"health-monitoring-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type messagingFixture struct {
	doctorRepo       *MockDoctorProfileRepository
	patientRepo      *MockPatientProfileRepository
	conversationRepo *MockConversationRepository
	messageRepo      *MockMessageRepository
	auditService     *MockAuditService
	usecase          MessagingUsecase
}

func newMessagingFixture() *messagingFixture {
	f := &messagingFixture{
		doctorRepo:       new(MockDoctorProfileRepository),
		patientRepo:      new(MockPatientProfileRepository),
		conversationRepo: new(MockConversationRepository),
		messageRepo:      new(MockMessageRepository),
		auditService:     new(MockAuditService),
	}
	f.usecase = NewMessagingUsecase(
		newTestDB(), newTestLogger(),
		f.doctorRepo, f.patientRepo, f.conversationRepo, f.messageRepo,
		f.auditService,
	)
	return f
}

func TestSendMessage(t *testing.T) {
	doctorUserID := uuid.New()
	profile := &entity.DoctorProfile{ID: uuid.New(), UserID: doctorUserID}
	patient := &entity.PatientProfile{ID: uuid.New(), Name: "Alice"}

	req := &dto.SendMessageRequest{
		PatientID: patient.ID.String(),
		Content:   "Your results are in.",
	}

	t.Run("reuses an existing conversation", func(t *testing.T) {
		f := newMessagingFixture()
		conversation := &entity.Conversation{ID: uuid.New(), PatientID: patient.ID, DoctorID: profile.ID}

		f.doctorRepo.On("FindByUserID", mock.Anything, doctorUserID).Return(profile, nil)
		f.patientRepo.On("FindByID", mock.Anything, patient.ID).Return(patient, nil)
		f.conversationRepo.On("FindByPair", mock.Anything, patient.ID, profile.ID).Return(conversation, nil)
		f.messageRepo.On("Create", mock.Anything, mock.MatchedBy(func(m *entity.Message) bool {
			return m.ConversationID == conversation.ID &&
				m.SenderID == doctorUserID &&
				m.SenderRole == entity.SenderRoleDoctor
		})).Return(nil)
		f.conversationRepo.On("TouchLastMessage", mock.Anything, conversation.ID, mock.Anything).Return(nil)
		f.auditService.On("LogCreate", mock.Anything, mock.Anything, &doctorUserID, entity.AuditActionMessageSend, "message", mock.Anything, mock.Anything).Return(nil)

		resp, err := f.usecase.SendMessage(context.Background(), doctorUserID, req)

		require.NoError(t, err)
		assert.Equal(t, conversation.ID, resp.ConversationID)
		f.conversationRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("creates the conversation on first contact", func(t *testing.T) {
		f := newMessagingFixture()

		f.doctorRepo.On("FindByUserID", mock.Anything, doctorUserID).Return(profile, nil)
		f.patientRepo.On("FindByID", mock.Anything, patient.ID).Return(patient, nil)
		f.conversationRepo.On("FindByPair", mock.Anything, patient.ID, profile.ID).Return(nil, nil)
		f.conversationRepo.On("Create", mock.Anything, mock.MatchedBy(func(c *entity.Conversation) bool {
			return c.PatientID == patient.ID && c.DoctorID == profile.ID
		})).Return(nil)
		f.messageRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
		f.conversationRepo.On("TouchLastMessage", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		f.auditService.On("LogCreate", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		_, err := f.usecase.SendMessage(context.Background(), doctorUserID, req)

		require.NoError(t, err)
		f.conversationRepo.AssertExpectations(t)
	})

	t.Run("losing the create race falls back to the winner's row", func(t *testing.T) {
		f := newMessagingFixture()
		winner := &entity.Conversation{ID: uuid.New(), PatientID: patient.ID, DoctorID: profile.ID}

		f.doctorRepo.On("FindByUserID", mock.Anything, doctorUserID).Return(profile, nil)
		f.patientRepo.On("FindByID", mock.Anything, patient.ID).Return(patient, nil)
		f.conversationRepo.On("FindByPair", mock.Anything, patient.ID, profile.ID).Return(nil, nil).Once()
		f.conversationRepo.On("Create", mock.Anything, mock.Anything).Return(&pgconn.PgError{
			Code:           "23505",
			ConstraintName: "idx_conversations_pair",
		})
		f.conversationRepo.On("FindByPair", mock.Anything, patient.ID, profile.ID).Return(winner, nil).Once()
		f.messageRepo.On("Create", mock.Anything, mock.MatchedBy(func(m *entity.Message) bool {
			return m.ConversationID == winner.ID
		})).Return(nil)
		f.conversationRepo.On("TouchLastMessage", mock.Anything, winner.ID, mock.Anything).Return(nil)
		f.auditService.On("LogCreate", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		resp, err := f.usecase.SendMessage(context.Background(), doctorUserID, req)

		require.NoError(t, err)
		assert.Equal(t, winner.ID, resp.ConversationID)
	})

	t.Run("unknown patient", func(t *testing.T) {
		f := newMessagingFixture()
		f.doctorRepo.On("FindByUserID", mock.Anything, doctorUserID).Return(profile, nil)
		f.patientRepo.On("FindByID", mock.Anything, patient.ID).Return(nil, nil)

		_, err := f.usecase.SendMessage(context.Background(), doctorUserID, req)

		assert.ErrorIs(t, err, ErrPatientNotFound)
	})
}

func TestGetMessages(t *testing.T) {
	doctorUserID := uuid.New()
	profile := &entity.DoctorProfile{ID: uuid.New(), UserID: doctorUserID}

	t.Run("summarizes conversations with unread counts", func(t *testing.T) {
		f := newMessagingFixture()
		conversation := entity.Conversation{
			ID:        uuid.New(),
			DoctorID:  profile.ID,
			PatientID: uuid.New(),
			Patient:   entity.PatientProfile{Name: "Alice", User: entity.User{Avatar: "a.png"}},
		}
		latest := &entity.Message{ID: uuid.New(), ConversationID: conversation.ID, Content: "hello"}

		f.doctorRepo.On("FindByUserID", mock.Anything, doctorUserID).Return(profile, nil)
		f.conversationRepo.On("FindByDoctor", mock.Anything, profile.ID, false, 0, 20).Return([]entity.Conversation{conversation}, int64(1), nil)
		f.messageRepo.On("FindLatest", mock.Anything, conversation.ID).Return(latest, nil)
		f.messageRepo.On("CountUnreadByConversation", mock.Anything, conversation.ID).Return(int64(3), nil)

		summaries, total, err := f.usecase.GetMessages(context.Background(), doctorUserID, false, 0, 20)

		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, summaries, 1)
		assert.Equal(t, "Alice", summaries[0].PatientName)
		assert.Equal(t, int64(3), summaries[0].UnreadCount)
	})
}

func TestGetConversationMessages(t *testing.T) {
	doctorUserID := uuid.New()
	profile := &entity.DoctorProfile{ID: uuid.New(), UserID: doctorUserID}
	conversationID := uuid.New()

	t.Run("returns chronological page and marks patient messages read", func(t *testing.T) {
		f := newMessagingFixture()
		now := time.Now()
		newer := entity.Message{ID: uuid.New(), ConversationID: conversationID, Content: "second", CreatedAt: now}
		older := entity.Message{ID: uuid.New(), ConversationID: conversationID, Content: "first", CreatedAt: now.Add(-time.Minute)}

		f.doctorRepo.On("FindByUserID", mock.Anything, doctorUserID).Return(profile, nil)
		f.conversationRepo.On("FindByID", mock.Anything, conversationID).Return(&entity.Conversation{
			ID:       conversationID,
			DoctorID: profile.ID,
		}, nil)
		f.messageRepo.On("FindPage", mock.Anything, conversationID, 0, 20).Return([]entity.Message{newer, older}, int64(2), nil)
		f.messageRepo.On("MarkPatientMessagesRead", mock.Anything, conversationID, mock.Anything).Return(int64(1), nil)

		resp, total, err := f.usecase.GetConversationMessages(context.Background(), doctorUserID, conversationID, 0, 20)

		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		require.Len(t, resp.Messages, 2)
		assert.Equal(t, "first", resp.Messages[0].Content)
		assert.Equal(t, "second", resp.Messages[1].Content)
		f.messageRepo.AssertCalled(t, "MarkPatientMessagesRead", mock.Anything, conversationID, mock.Anything)
	})

	t.Run("rejects another doctor's conversation", func(t *testing.T) {
		f := newMessagingFixture()
		f.doctorRepo.On("FindByUserID", mock.Anything, doctorUserID).Return(profile, nil)
		f.conversationRepo.On("FindByID", mock.Anything, conversationID).Return(&entity.Conversation{
			ID:       conversationID,
			DoctorID: uuid.New(),
		}, nil)

		_, _, err := f.usecase.GetConversationMessages(context.Background(), doctorUserID, conversationID, 0, 20)

		assert.ErrorIs(t, err, ErrConversationNotOwned)
		f.messageRepo.AssertNotCalled(t, "MarkPatientMessagesRead", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing conversation", func(t *testing.T) {
		f := newMessagingFixture()
		f.doctorRepo.On("FindByUserID", mock.Anything, doctorUserID).Return(profile, nil)
		f.conversationRepo.On("FindByID", mock.Anything, conversationID).Return(nil, nil)

		_, _, err := f.usecase.GetConversationMessages(context.Background(), doctorUserID, conversationID, 0, 20)

		assert.ErrorIs(t, err, ErrConversationNotFound)
	})
}
