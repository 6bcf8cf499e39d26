package handler

import (
	"encoding/json"
	"net/http"

	"health-monitoring-api/internal/delivery/dto"
	"health-monitoring-api/internal/usecase"
	"health-monitoring-api/pkg/pagination"
	"health-monitoring-api/pkg/response"
	"health-monitoring-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type MessageHandler struct {
	messagingUsecase usecase.MessagingUsecase
	validator        *validator.CustomValidator
}

func NewMessageHandler(messagingUsecase usecase.MessagingUsecase, validator *validator.CustomValidator) *MessageHandler {
	return &MessageHandler{
		messagingUsecase: messagingUsecase,
		validator:        validator,
	}
}

func (h *MessageHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	doctorID, err := uuid.Parse(mux.Vars(r)["doctorId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	var req dto.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	message, err := h.messagingUsecase.SendMessage(r.Context(), doctorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to send message")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Message sent successfully", message)
}

func (h *MessageHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	doctorID, err := uuid.Parse(mux.Vars(r)["doctorId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	page := pageQuery(r, pagination.MaxLimit)
	unreadOnly := r.URL.Query().Get("unread") == "true"

	conversations, total, err := h.messagingUsecase.GetMessages(r.Context(), doctorID, unreadOnly, page.Offset(), page.Limit)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to get conversations")
		}
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Conversations retrieved successfully", conversations, response.NewMeta(page, total))
}

func (h *MessageHandler) GetConversationMessages(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	doctorID, err := uuid.Parse(vars["doctorId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	conversationID, err := uuid.Parse(vars["conversationId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid conversation ID", nil)
		return
	}

	page := pageQuery(r, pagination.MaxLimit)

	messages, total, err := h.messagingUsecase.GetConversationMessages(r.Context(), doctorID, conversationID, page.Offset(), page.Limit)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrConversationNotFound:
			response.NotFound(w, "Conversation not found")
		case usecase.ErrConversationNotOwned:
			response.Forbidden(w, "Conversation does not belong to you")
		default:
			response.InternalServerError(w, "Failed to get messages")
		}
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Messages retrieved successfully", messages, response.NewMeta(page, total))
}
