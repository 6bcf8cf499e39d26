package handler

import (
	"encoding/json"
	"net/http"

	"health-monitoring-api/internal/delivery/dto"
	"health-monitoring-api/internal/domain/entity"
	"health-monitoring-api/internal/usecase"
	"health-monitoring-api/pkg/pagination"
	"health-monitoring-api/pkg/response"
	"health-monitoring-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ConsultationHandler struct {
	consultationUsecase usecase.ConsultationUsecase
	validator           *validator.CustomValidator
}

func NewConsultationHandler(consultationUsecase usecase.ConsultationUsecase, validator *validator.CustomValidator) *ConsultationHandler {
	return &ConsultationHandler{
		consultationUsecase: consultationUsecase,
		validator:           validator,
	}
}

func (h *ConsultationHandler) CreateConsultation(w http.ResponseWriter, r *http.Request) {
	doctorID, err := uuid.Parse(mux.Vars(r)["doctorId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	var req dto.CreateConsultationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	consultation, err := h.consultationUsecase.CreateConsultation(r.Context(), doctorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid next appointment date", nil)
		default:
			response.InternalServerError(w, "Failed to create consultation")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Consultation created successfully", consultation)
}

func (h *ConsultationHandler) GetConsultation(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	doctorID, err := uuid.Parse(vars["doctorId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	consultationID, err := uuid.Parse(vars["consultationId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid consultation ID", nil)
		return
	}

	consultation, err := h.consultationUsecase.GetConsultation(r.Context(), doctorID, consultationID)
	if err != nil {
		h.respondConsultationError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Consultation retrieved successfully", consultation)
}

func (h *ConsultationHandler) UpdateConsultation(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	doctorID, err := uuid.Parse(vars["doctorId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	consultationID, err := uuid.Parse(vars["consultationId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid consultation ID", nil)
		return
	}

	var req dto.UpdateConsultationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	consultation, err := h.consultationUsecase.UpdateConsultation(r.Context(), doctorID, consultationID, &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidStatus:
			response.Error(w, http.StatusBadRequest, "Invalid status value", nil)
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid next appointment date", nil)
		default:
			h.respondConsultationError(w, err)
		}
		return
	}

	response.Success(w, http.StatusOK, "Consultation updated successfully", consultation)
}

func (h *ConsultationHandler) GetLabOrders(w http.ResponseWriter, r *http.Request) {
	doctorID, err := uuid.Parse(mux.Vars(r)["doctorId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	page := pageQuery(r, pagination.MaxLimit)
	query := r.URL.Query()
	filter := entity.LabOrderFilter{
		Status:   entity.LabOrderStatus(query.Get("status")),
		Priority: entity.LabOrderPriority(query.Get("priority")),
		Offset:   page.Offset(),
		Limit:    page.Limit,
	}
	if raw := query.Get("patientId"); raw != "" {
		patientID, err := uuid.Parse(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
			return
		}
		filter.PatientID = &patientID
	}

	orders, total, err := h.consultationUsecase.GetLabOrders(r.Context(), doctorID, filter)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to get lab orders")
		}
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Lab orders retrieved successfully", orders, response.NewMeta(page, total))
}

func (h *ConsultationHandler) ApproveLabOrder(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	doctorID, err := uuid.Parse(vars["doctorId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	orderID, err := uuid.Parse(vars["orderId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid lab order ID", nil)
		return
	}

	result, err := h.consultationUsecase.ApproveLabOrder(r.Context(), doctorID, orderID)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrLabOrderNotFound:
			response.NotFound(w, "Lab order not found")
		case usecase.ErrLabOrderNotOwned:
			response.Forbidden(w, "Lab order does not belong to you")
		case usecase.ErrLabOrderNotPending:
			response.Error(w, http.StatusConflict, "Lab order is no longer pending", nil)
		default:
			response.InternalServerError(w, "Failed to approve lab order")
		}
		return
	}

	response.Success(w, http.StatusOK, "Lab order approved successfully", result)
}

func (h *ConsultationHandler) GetLabOrderResults(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	doctorID, err := uuid.Parse(vars["doctorId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	orderID, err := uuid.Parse(vars["orderId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid lab order ID", nil)
		return
	}

	results, err := h.consultationUsecase.GetLabOrderResults(r.Context(), doctorID, orderID)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrLabOrderNotFound:
			response.NotFound(w, "Lab order not found")
		case usecase.ErrLabOrderNotOwned:
			response.Forbidden(w, "Lab order does not belong to you")
		default:
			response.InternalServerError(w, "Failed to get lab order results")
		}
		return
	}

	response.Success(w, http.StatusOK, "Lab order results retrieved successfully", results)
}

func (h *ConsultationHandler) respondConsultationError(w http.ResponseWriter, err error) {
	switch err {
	case usecase.ErrDoctorNotFound:
		response.NotFound(w, "Doctor not found")
	case usecase.ErrConsultationNotFound:
		response.NotFound(w, "Consultation not found")
	case usecase.ErrConsultationNotOwned:
		response.Forbidden(w, "Consultation does not belong to you")
	default:
		response.InternalServerError(w, "Failed to process consultation")
	}
}
