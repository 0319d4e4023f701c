package http

import (
	"net/http"

	"nutrition-booking/internal/delivery/http/handler"
	"nutrition-booking/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router                  *mux.Router
	appointmentTypeHandler  *handler.AppointmentTypeHandler
	timeSlotHandler         *handler.TimeSlotHandler
	availabilityHandler     *handler.AvailabilityHandler
	appointmentHandler      *handler.AppointmentHandler
	auditLogHandler         *handler.AuditLogHandler
	authMiddleware          *middleware.AuthMiddleware
	corsMiddleware          *middleware.CORSMiddleware
	observabilityMiddleware *middleware.ObservabilityMiddleware
	metricsPath             string
	metricsHandler          http.Handler
}

func NewRouter(
	appointmentTypeHandler *handler.AppointmentTypeHandler,
	timeSlotHandler *handler.TimeSlotHandler,
	availabilityHandler *handler.AvailabilityHandler,
	appointmentHandler *handler.AppointmentHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	observabilityMiddleware *middleware.ObservabilityMiddleware,
) *Router {
	return &Router{
		router:                  mux.NewRouter(),
		appointmentTypeHandler:  appointmentTypeHandler,
		timeSlotHandler:         timeSlotHandler,
		availabilityHandler:     availabilityHandler,
		appointmentHandler:      appointmentHandler,
		auditLogHandler:         auditLogHandler,
		authMiddleware:          authMiddleware,
		corsMiddleware:          corsMiddleware,
		observabilityMiddleware: observabilityMiddleware,
	}
}

// WithMetrics exposes a metrics handler at path, outside the API prefix
func (r *Router) WithMetrics(path string, h http.Handler) *Router {
	r.metricsPath = path
	r.metricsHandler = h
	return r
}

func (r *Router) Setup() *mux.Router {
	if r.metricsHandler != nil {
		r.router.Handle(r.metricsPath, r.metricsHandler).Methods(http.MethodGet)
	}

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Public catalogue and availability
	api.HandleFunc("/appointment-types", r.appointmentTypeHandler.ListActive).Methods(http.MethodGet)
	api.HandleFunc("/appointment-types/{id}", r.appointmentTypeHandler.GetActive).Methods(http.MethodGet)
	api.HandleFunc("/availability", r.availabilityHandler.ListAvailable).Methods(http.MethodGet)

	// Booking (guest or logged-in client)
	booking := api.PathPrefix("/appointments").Subrouter()
	booking.Use(r.authMiddleware.OptionalAuthenticate)
	booking.HandleFunc("", r.appointmentHandler.Reserve).Methods(http.MethodPost)

	// Client routes (protected)
	me := api.PathPrefix("/me").Subrouter()
	me.Use(r.authMiddleware.Authenticate)
	me.HandleFunc("/appointments", r.appointmentHandler.GetMyAppointments).Methods(http.MethodGet)
	me.HandleFunc("/appointments/{id}/cancel", r.appointmentHandler.CancelMyAppointment).Methods(http.MethodPost)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	// Appointment type management (admin)
	admin.HandleFunc("/appointment-types", r.appointmentTypeHandler.ListAll).Methods(http.MethodGet)
	admin.HandleFunc("/appointment-types", r.appointmentTypeHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/appointment-types/{id}", r.appointmentTypeHandler.Get).Methods(http.MethodGet)
	admin.HandleFunc("/appointment-types/{id}", r.appointmentTypeHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/appointment-types/{id}", r.appointmentTypeHandler.Delete).Methods(http.MethodDelete)

	// Slot management (admin)
	admin.HandleFunc("/slots", r.timeSlotHandler.ListSlots).Methods(http.MethodGet)
	admin.HandleFunc("/slots", r.timeSlotHandler.CreateSlot).Methods(http.MethodPost)
	admin.HandleFunc("/slots/generate", r.timeSlotHandler.GenerateSlots).Methods(http.MethodPost)
	admin.HandleFunc("/slots/{id}", r.timeSlotHandler.GetSlot).Methods(http.MethodGet)
	admin.HandleFunc("/slots/{id}", r.timeSlotHandler.DeleteSlot).Methods(http.MethodDelete)
	admin.HandleFunc("/slots/{id}/availability", r.timeSlotHandler.SetAvailability).Methods(http.MethodPatch)
	admin.HandleFunc("/availability", r.availabilityHandler.GetOverview).Methods(http.MethodGet)

	// Appointment management (admin)
	admin.HandleFunc("/appointments", r.appointmentHandler.ListAppointments).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{id}", r.appointmentHandler.DeleteAppointment).Methods(http.MethodDelete)
	admin.HandleFunc("/appointments/{id}/status", r.appointmentHandler.UpdateStatus).Methods(http.MethodPatch)
	admin.HandleFunc("/appointments/{id}/payment", r.appointmentHandler.RecordPayment).Methods(http.MethodPost)
	admin.HandleFunc("/appointments/{id}/notes", r.appointmentHandler.UpdateAdminNotes).Methods(http.MethodPatch)

	// Audit logs (admin)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	// Add CORS and request observability middleware
	r.router.Use(r.corsMiddleware.Handle)
	r.router.Use(r.observabilityMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
