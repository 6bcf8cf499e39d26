package handler

import (
	"net/http"

	"health-monitoring-api/internal/domain/entity"
	"health-monitoring-api/internal/usecase"
	"health-monitoring-api/pkg/pagination"
	"health-monitoring-api/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type DoctorHandler struct {
	dashboardUsecase usecase.DoctorDashboardUsecase
	patientUsecase   usecase.DoctorPatientUsecase
}

func NewDoctorHandler(dashboardUsecase usecase.DoctorDashboardUsecase, patientUsecase usecase.DoctorPatientUsecase) *DoctorHandler {
	return &DoctorHandler{
		dashboardUsecase: dashboardUsecase,
		patientUsecase:   patientUsecase,
	}
}

func (h *DoctorHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	doctorID, err := uuid.Parse(mux.Vars(r)["doctorId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	dashboard, err := h.dashboardUsecase.GetDashboard(r.Context(), doctorID)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to get dashboard")
		}
		return
	}

	response.Success(w, http.StatusOK, "Dashboard retrieved successfully", dashboard)
}

func (h *DoctorHandler) GetPatients(w http.ResponseWriter, r *http.Request) {
	doctorID, err := uuid.Parse(mux.Vars(r)["doctorId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	page := pageQuery(r, pagination.MaxLimit)
	query := r.URL.Query()
	filter := entity.PatientFilter{
		Search:    query.Get("search"),
		Gender:    query.Get("gender"),
		RiskLevel: entity.RiskLevel(query.Get("riskLevel")),
		SortBy:    query.Get("sortBy"),
		Offset:    page.Offset(),
		Limit:     page.Limit,
	}

	patients, total, err := h.patientUsecase.GetPatients(r.Context(), doctorID, filter)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to get patients")
		}
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Patients retrieved successfully", patients, response.NewMeta(page, total))
}

func (h *DoctorHandler) GetPatientDetail(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	doctorID, err := uuid.Parse(vars["doctorId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	patientID, err := uuid.Parse(vars["patientId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	patient, err := h.patientUsecase.GetPatientDetail(r.Context(), doctorID, patientID)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to get patient")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient retrieved successfully", patient)
}

func (h *DoctorHandler) GetPatientHistory(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	doctorID, err := uuid.Parse(vars["doctorId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	patientID, err := uuid.Parse(vars["patientId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	filter := entity.HistoryFilter{
		Type:  r.URL.Query().Get("type"),
		From:  timeQuery(r, "from"),
		To:    timeQuery(r, "to"),
		Limit: intQuery(r, "limit", pagination.DefaultLimit),
	}

	history, err := h.patientUsecase.GetPatientHistory(r.Context(), doctorID, patientID, filter)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to get patient history")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient history retrieved successfully", history)
}

func (h *DoctorHandler) GetPatientVitals(w http.ResponseWriter, r *http.Request) {
	patientID, err := uuid.Parse(mux.Vars(r)["patientId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	filter := entity.VitalFilter{
		Type:  entity.VitalType(r.URL.Query().Get("type")),
		From:  timeQuery(r, "from"),
		To:    timeQuery(r, "to"),
		Limit: intQuery(r, "limit", pagination.DefaultVitalLimit),
	}
	if filter.Limit > pagination.MaxVitalsLimit {
		filter.Limit = pagination.MaxVitalsLimit
	}

	vitals, err := h.patientUsecase.GetPatientVitals(r.Context(), patientID, filter)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to get vitals")
		}
		return
	}

	response.Success(w, http.StatusOK, "Vitals retrieved successfully", vitals)
}
