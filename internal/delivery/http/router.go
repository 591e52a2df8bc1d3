package http

import (
	"net/http"

	"lifelink/internal/delivery/http/handler"
	"lifelink/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router           *mux.Router
	authHandler      *handler.AuthHandler
	donorHandler     *handler.DonorHandler
	scheduleHandler  *handler.ScheduleHandler
	bloodBankHandler *handler.BloodBankHandler
	patientHandler   *handler.PatientHandler
	searchHandler    *handler.SearchHandler
	chatHandler      *handler.ChatHandler
	authMiddleware   *middleware.AuthMiddleware
	corsMiddleware   *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	donorHandler *handler.DonorHandler,
	scheduleHandler *handler.ScheduleHandler,
	bloodBankHandler *handler.BloodBankHandler,
	patientHandler *handler.PatientHandler,
	searchHandler *handler.SearchHandler,
	chatHandler *handler.ChatHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:           mux.NewRouter(),
		authHandler:      authHandler,
		donorHandler:     donorHandler,
		scheduleHandler:  scheduleHandler,
		bloodBankHandler: bloodBankHandler,
		patientHandler:   patientHandler,
		searchHandler:    searchHandler,
		chatHandler:      chatHandler,
		authMiddleware:   authMiddleware,
		corsMiddleware:   corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.Me).Methods(http.MethodGet)
	authProtected.HandleFunc("/dashboard", r.authHandler.Dashboard).Methods(http.MethodGet)

	// Account routes (protected, any role)
	users := api.PathPrefix("/users").Subrouter()
	users.Use(r.authMiddleware.Authenticate)
	users.HandleFunc("/me/location", r.authHandler.UpdateLocation).Methods(http.MethodPut)

	// Donor routes (protected - donor only)
	donors := api.PathPrefix("/donors").Subrouter()
	donors.Use(r.authMiddleware.Authenticate)
	donors.Use(middleware.RequireDonor)
	donors.HandleFunc("/dashboard", r.donorHandler.Dashboard).Methods(http.MethodGet)
	donors.HandleFunc("/profile", r.donorHandler.GetProfile).Methods(http.MethodGet)
	donors.HandleFunc("/profile", r.donorHandler.UpdateProfile).Methods(http.MethodPut)
	donors.HandleFunc("/availability/toggle", r.donorHandler.ToggleAvailability).Methods(http.MethodPost)
	donors.HandleFunc("/blood-banks/nearby", r.scheduleHandler.NearbyBloodBanks).Methods(http.MethodGet)
	donors.HandleFunc("/schedules", r.scheduleHandler.CreateSchedule).Methods(http.MethodPost)
	donors.HandleFunc("/schedules", r.scheduleHandler.ListMySchedules).Methods(http.MethodGet)
	donors.HandleFunc("/schedules/{id}/cancel", r.scheduleHandler.CancelSchedule).Methods(http.MethodPost)

	// Blood bank routes (protected - bloodbank only)
	banks := api.PathPrefix("/blood-banks").Subrouter()
	banks.Use(r.authMiddleware.Authenticate)
	banks.Use(middleware.RequireBloodBank)
	banks.HandleFunc("/dashboard", r.bloodBankHandler.Dashboard).Methods(http.MethodGet)
	banks.HandleFunc("/profile", r.bloodBankHandler.GetProfile).Methods(http.MethodGet)
	banks.HandleFunc("/profile", r.bloodBankHandler.UpdateProfile).Methods(http.MethodPut)
	banks.HandleFunc("/inventory", r.bloodBankHandler.ListInventory).Methods(http.MethodGet)
	banks.HandleFunc("/inventory", r.bloodBankHandler.UpdateInventory).Methods(http.MethodPost)
	banks.HandleFunc("/schedules", r.scheduleHandler.ScheduledDonors).Methods(http.MethodGet)
	banks.HandleFunc("/schedules/{id}/complete", r.scheduleHandler.CompleteSchedule).Methods(http.MethodPost)

	// Patient routes (protected - patient only)
	patients := api.PathPrefix("/patients").Subrouter()
	patients.Use(r.authMiddleware.Authenticate)
	patients.Use(middleware.RequirePatient)
	patients.HandleFunc("/dashboard", r.patientHandler.Dashboard).Methods(http.MethodGet)
	patients.HandleFunc("/profile", r.patientHandler.GetProfile).Methods(http.MethodGet)
	patients.HandleFunc("/profile", r.patientHandler.UpdateProfile).Methods(http.MethodPut)
	patients.HandleFunc("/search", r.searchHandler.Search).Methods(http.MethodGet)

	// Chat routes (protected, any role)
	chat := api.PathPrefix("/chat").Subrouter()
	chat.Use(r.authMiddleware.Authenticate)
	chat.HandleFunc("/rooms", r.chatHandler.ListRooms).Methods(http.MethodGet)
	chat.HandleFunc("/rooms", r.chatHandler.OpenRoom).Methods(http.MethodPost)
	chat.HandleFunc("/rooms/{id}/messages", r.chatHandler.RoomDetail).Methods(http.MethodGet)
	chat.HandleFunc("/rooms/{id}/messages", r.chatHandler.SendMessage).Methods(http.MethodPost)
	chat.HandleFunc("/rooms/{id}/ws", r.chatHandler.ServeWS).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
