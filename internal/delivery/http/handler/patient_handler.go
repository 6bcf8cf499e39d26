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

type PatientHandler struct {
	dashboardUsecase   usecase.PatientDashboardUsecase
	appointmentUsecase usecase.PatientAppointmentUsecase
	healthUsecase      usecase.PatientHealthUsecase
	validator          *validator.CustomValidator
}

func NewPatientHandler(
	dashboardUsecase usecase.PatientDashboardUsecase,
	appointmentUsecase usecase.PatientAppointmentUsecase,
	healthUsecase usecase.PatientHealthUsecase,
	validator *validator.CustomValidator,
) *PatientHandler {
	return &PatientHandler{
		dashboardUsecase:   dashboardUsecase,
		appointmentUsecase: appointmentUsecase,
		healthUsecase:      healthUsecase,
		validator:          validator,
	}
}

func patientIDFromRequest(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	patientID, err := uuid.Parse(mux.Vars(r)["patientId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return uuid.Nil, false
	}
	return patientID, true
}

func (h *PatientHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	patientID, ok := patientIDFromRequest(w, r)
	if !ok {
		return
	}

	dashboard, err := h.dashboardUsecase.GetDashboard(r.Context(), patientID)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to get dashboard")
		}
		return
	}

	response.Success(w, http.StatusOK, "Dashboard retrieved successfully", dashboard)
}

func (h *PatientHandler) GetVitals(w http.ResponseWriter, r *http.Request) {
	patientID, ok := patientIDFromRequest(w, r)
	if !ok {
		return
	}

	filter := entity.VitalFilter{
		Type:  entity.VitalType(r.URL.Query().Get("type")),
		From:  timeQuery(r, "from"),
		To:    timeQuery(r, "to"),
		Limit: intQuery(r, "limit", pagination.DefaultVitalLimit),
	}

	vitals, err := h.healthUsecase.GetVitals(r.Context(), patientID, filter)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to get vitals")
		}
		return
	}

	response.Success(w, http.StatusOK, "Vitals retrieved successfully", dto.VitalListResponse{
		Vitals: vitals,
		Total:  len(vitals),
	})
}

func (h *PatientHandler) GetAppointments(w http.ResponseWriter, r *http.Request) {
	patientID, ok := patientIDFromRequest(w, r)
	if !ok {
		return
	}

	filter := entity.AppointmentFilter{
		Status:   entity.AppointmentStatus(r.URL.Query().Get("status")),
		From:     timeQuery(r, "from"),
		To:       timeQuery(r, "to"),
		Upcoming: r.URL.Query().Get("upcoming") == "true",
	}

	appointments, err := h.appointmentUsecase.GetAppointments(r.Context(), patientID, filter)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to get appointments")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *PatientHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	patientID, ok := patientIDFromRequest(w, r)
	if !ok {
		return
	}

	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.CreateAppointment(r.Context(), patientID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid appointment date", nil)
		default:
			response.InternalServerError(w, "Failed to create appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment created successfully", appointment)
}

func (h *PatientHandler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	patientID, ok := patientIDFromRequest(w, r)
	if !ok {
		return
	}

	appointmentID, err := uuid.Parse(mux.Vars(r)["appointmentId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	var req dto.UpdateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.UpdateAppointment(r.Context(), patientID, appointmentID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid appointment date", nil)
		default:
			response.InternalServerError(w, "Failed to update appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment updated successfully", appointment)
}

func (h *PatientHandler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	patientID, ok := patientIDFromRequest(w, r)
	if !ok {
		return
	}

	appointmentID, err := uuid.Parse(mux.Vars(r)["appointmentId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	if err := h.appointmentUsecase.DeleteAppointment(r.Context(), patientID, appointmentID); err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		default:
			response.InternalServerError(w, "Failed to delete appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment deleted successfully", nil)
}

func (h *PatientHandler) GetMedications(w http.ResponseWriter, r *http.Request) {
	patientID, ok := patientIDFromRequest(w, r)
	if !ok {
		return
	}

	medications, err := h.healthUsecase.GetMedications(r.Context(), patientID)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to get medications")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medications retrieved successfully", medications)
}

func (h *PatientHandler) TakeMedication(w http.ResponseWriter, r *http.Request) {
	patientID, ok := patientIDFromRequest(w, r)
	if !ok {
		return
	}

	var req dto.TakeMedicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	scheduleID, err := uuid.Parse(req.ScheduleID)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid schedule ID", nil)
		return
	}

	schedule, err := h.healthUsecase.TakeMedication(r.Context(), patientID, scheduleID)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrMedicationScheduleNotFound:
			response.NotFound(w, "Medication schedule not found")
		default:
			response.InternalServerError(w, "Failed to mark medication taken")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medication marked as taken", schedule)
}

func (h *PatientHandler) GetLabResults(w http.ResponseWriter, r *http.Request) {
	patientID, ok := patientIDFromRequest(w, r)
	if !ok {
		return
	}

	filter := entity.LabResultFilter{
		Type:   r.URL.Query().Get("type"),
		Status: r.URL.Query().Get("status"),
		From:   timeQuery(r, "from"),
		To:     timeQuery(r, "to"),
	}

	results, err := h.healthUsecase.GetLabResults(r.Context(), patientID, filter)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to get lab results")
		}
		return
	}

	response.Success(w, http.StatusOK, "Lab results retrieved successfully", results)
}

func (h *PatientHandler) GetLabResult(w http.ResponseWriter, r *http.Request) {
	patientID, ok := patientIDFromRequest(w, r)
	if !ok {
		return
	}

	resultID, err := uuid.Parse(mux.Vars(r)["resultId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid lab result ID", nil)
		return
	}

	result, err := h.healthUsecase.GetLabResult(r.Context(), patientID, resultID)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrLabResultNotFound:
			response.NotFound(w, "Lab result not found")
		default:
			response.InternalServerError(w, "Failed to get lab result")
		}
		return
	}

	response.Success(w, http.StatusOK, "Lab result retrieved successfully", result)
}
