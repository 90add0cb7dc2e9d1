package http

import (
	"net/http"

	"medimatch/internal/delivery/http/handler"
	"medimatch/internal/delivery/http/middleware"
	"medimatch/internal/domain/entity"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	doctorHandler      *handler.DoctorHandler
	profileHandler     *handler.ProfileHandler
	appointmentHandler *handler.AppointmentHandler
	sessionMiddleware  *middleware.SessionMiddleware
	corsMiddleware     *middleware.CORSMiddleware
	loggingMiddleware  *middleware.LoggingMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	doctorHandler *handler.DoctorHandler,
	profileHandler *handler.ProfileHandler,
	appointmentHandler *handler.AppointmentHandler,
	sessionMiddleware *middleware.SessionMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		doctorHandler:      doctorHandler,
		profileHandler:     profileHandler,
		appointmentHandler: appointmentHandler,
		sessionMiddleware:  sessionMiddleware,
		corsMiddleware:     corsMiddleware,
		loggingMiddleware:  loggingMiddleware,
	}
}

// Setup registers the API routes. Logging and CORS wrap the whole router so
// that preflight and unmatched requests pass through them as well.
func (r *Router) Setup() http.Handler {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/google/login", r.authHandler.GoogleLogin).Methods(http.MethodGet)
	auth.HandleFunc("/google/callback", r.authHandler.GoogleCallback).Methods(http.MethodGet)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.sessionMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)
	authProtected.HandleFunc("/me/activity", r.authHandler.GetActivity).Methods(http.MethodGet)

	// Doctor discovery (public)
	api.HandleFunc("/specializations", r.doctorHandler.ListSpecializations).Methods(http.MethodGet)
	api.HandleFunc("/doctors", r.doctorHandler.SearchDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id:[0-9]+}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id:[0-9]+}/slots", r.doctorHandler.GetAvailableSlots).Methods(http.MethodGet)

	// Profiles (any signed-in user)
	profiles := api.NewRoute().Subrouter()
	profiles.Use(r.sessionMiddleware.Authenticate)
	profiles.HandleFunc("/doctor-profile", r.profileHandler.CreateDoctorProfile).Methods(http.MethodPost)
	profiles.HandleFunc("/user-profile", r.profileHandler.CreatePatientProfile).Methods(http.MethodPost)
	profiles.HandleFunc("/user-profile", r.profileHandler.GetPatientProfile).Methods(http.MethodGet)
	profiles.Handle("/doctor-profile", middleware.RequireDoctor(http.HandlerFunc(r.profileHandler.GetDoctorProfile))).Methods(http.MethodGet)

	// Appointments
	appointments := api.PathPrefix("/appointments").Subrouter()
	appointments.Use(r.sessionMiddleware.Authenticate)
	appointments.HandleFunc("", r.appointmentHandler.BookAppointment).Methods(http.MethodPost)
	appointments.HandleFunc("/mine", r.appointmentHandler.GetMyAppointments).Methods(http.MethodGet)
	appointments.HandleFunc("/{id:[0-9]+}/cancel", r.appointmentHandler.CancelAppointment).Methods(http.MethodPatch)

	// Appointments (doctor only)
	doctorAppointments := api.PathPrefix("/appointments").Subrouter()
	doctorAppointments.Use(r.sessionMiddleware.Authenticate)
	doctorAppointments.Use(middleware.RequireRole(entity.RoleDoctor))
	doctorAppointments.HandleFunc("/today", r.appointmentHandler.GetTodaysAppointments).Methods(http.MethodGet)
	doctorAppointments.HandleFunc("/{id:[0-9]+}/complete", r.appointmentHandler.CompleteAppointment).Methods(http.MethodPatch)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.sessionMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/doctors/{id:[0-9]+}/status", r.doctorHandler.UpdateDoctorStatus).Methods(http.MethodPatch)

	return r.loggingMiddleware.Handle(r.corsMiddleware.Handle(r.router))
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
