package http

import (
	"net/http"

	"health-monitoring-api/internal/delivery/http/handler"
	"health-monitoring-api/internal/delivery/http/middleware"
	"health-monitoring-api/internal/domain/entity"

	"github.com/gorilla/mux"
)

type Router struct {
	router                *mux.Router
	authHandler           *handler.AuthHandler
	doctorHandler         *handler.DoctorHandler
	consultationHandler   *handler.ConsultationHandler
	messageHandler        *handler.MessageHandler
	doctorScheduleHandler *handler.DoctorScheduleHandler
	patientHandler        *handler.PatientHandler
	auditLogHandler       *handler.AuditLogHandler
	authMiddleware        *middleware.AuthMiddleware
	corsMiddleware        *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	doctorHandler *handler.DoctorHandler,
	consultationHandler *handler.ConsultationHandler,
	messageHandler *handler.MessageHandler,
	doctorScheduleHandler *handler.DoctorScheduleHandler,
	patientHandler *handler.PatientHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:                mux.NewRouter(),
		authHandler:           authHandler,
		doctorHandler:         doctorHandler,
		consultationHandler:   consultationHandler,
		messageHandler:        messageHandler,
		doctorScheduleHandler: doctorScheduleHandler,
		patientHandler:        patientHandler,
		auditLogHandler:       auditLogHandler,
		authMiddleware:        authMiddleware,
		corsMiddleware:        corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.RegisterPatient).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Admin routes
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/doctors", r.authHandler.ProvisionDoctor).Methods(http.MethodPost)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	// Doctor routes; the path variable is the doctor's user id and access is
	// enforced per request
	doctors := api.PathPrefix("/doctors/{doctorId}").Subrouter()
	doctors.Use(r.authMiddleware.Authenticate)
	doctors.Use(middleware.RequireRole(entity.RoleAdmin, entity.RoleDoctor))
	doctors.Use(middleware.RequireDoctorAccess)
	doctors.HandleFunc("/dashboard", r.doctorHandler.GetDashboard).Methods(http.MethodGet)
	doctors.HandleFunc("/patients", r.doctorHandler.GetPatients).Methods(http.MethodGet)
	doctors.HandleFunc("/patients/{patientId}", r.doctorHandler.GetPatientDetail).Methods(http.MethodGet)
	doctors.HandleFunc("/patients/{patientId}/history", r.doctorHandler.GetPatientHistory).Methods(http.MethodGet)
	doctors.HandleFunc("/patients/{patientId}/vitals", r.doctorHandler.GetPatientVitals).Methods(http.MethodGet)
	doctors.HandleFunc("/consultations", r.consultationHandler.CreateConsultation).Methods(http.MethodPost)
	doctors.HandleFunc("/consultations/{consultationId}", r.consultationHandler.GetConsultation).Methods(http.MethodGet)
	doctors.HandleFunc("/consultations/{consultationId}", r.consultationHandler.UpdateConsultation).Methods(http.MethodPut)
	doctors.HandleFunc("/lab-orders", r.consultationHandler.GetLabOrders).Methods(http.MethodGet)
	doctors.HandleFunc("/lab-orders/{orderId}/approve", r.consultationHandler.ApproveLabOrder).Methods(http.MethodPost)
	doctors.HandleFunc("/lab-orders/{orderId}/results", r.consultationHandler.GetLabOrderResults).Methods(http.MethodGet)
	doctors.HandleFunc("/messages", r.messageHandler.GetMessages).Methods(http.MethodGet)
	doctors.HandleFunc("/messages", r.messageHandler.SendMessage).Methods(http.MethodPost)
	doctors.HandleFunc("/messages/{conversationId}", r.messageHandler.GetConversationMessages).Methods(http.MethodGet)
	doctors.HandleFunc("/schedule", r.doctorScheduleHandler.GetSchedule).Methods(http.MethodGet)
	doctors.HandleFunc("/schedule", r.doctorScheduleHandler.UpdateSchedule).Methods(http.MethodPut)

	// Patient routes; the path variable is the patient's user id
	patients := api.PathPrefix("/patients/{patientId}").Subrouter()
	patients.Use(r.authMiddleware.Authenticate)
	patients.Use(middleware.RequirePatientAccess)
	patients.HandleFunc("/dashboard", r.patientHandler.GetDashboard).Methods(http.MethodGet)
	patients.HandleFunc("/vitals", r.patientHandler.GetVitals).Methods(http.MethodGet)
	patients.HandleFunc("/appointments", r.patientHandler.GetAppointments).Methods(http.MethodGet)
	patients.HandleFunc("/appointments", r.patientHandler.CreateAppointment).Methods(http.MethodPost)
	patients.HandleFunc("/appointments/{appointmentId}", r.patientHandler.UpdateAppointment).Methods(http.MethodPut)
	patients.HandleFunc("/appointments/{appointmentId}", r.patientHandler.DeleteAppointment).Methods(http.MethodDelete)
	patients.HandleFunc("/medications", r.patientHandler.GetMedications).Methods(http.MethodGet)
	patients.HandleFunc("/medications/take", r.patientHandler.TakeMedication).Methods(http.MethodPost)
	patients.HandleFunc("/lab-results", r.patientHandler.GetLabResults).Methods(http.MethodGet)
	patients.HandleFunc("/lab-results/{resultId}", r.patientHandler.GetLabResult).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
