package http

import (
	"database/sql"

	"rentora-backend/internal/security"
	"rentora-backend/internal/service"
	"rentora-backend/internal/storage"

	"github.com/gorilla/mux"
)

// Handlers bundles everything the router needs.
type Handlers struct {
	Applications  service.ApplicationService
	Leases        service.LeaseService
	Maintenance   service.MaintenanceService
	Properties    service.PropertyService
	Rentals       service.RentalService
	Profiles      service.ProfileService
	Announcements service.AnnouncementService
	Notifications service.NotificationService
	Storage       storage.Storage
}

// NewRouter wires all routes. Upload/download and health endpoints are
// public; everything else requires a valid bearer token.
func NewRouter(h Handlers, tm security.TokenManager, db *sql.DB, version, buildTime string) *mux.Router {
	r := mux.NewRouter()
	r.Use(LoggingMiddleware)
	r.Use(RecoveryMiddleware)

	appHandler := NewApplicationHandler(h.Applications)
	leaseHandler := NewLeaseHandler(h.Leases)
	maintHandler := NewMaintenanceHandler(h.Maintenance)
	propHandler := NewPropertyHandler(h.Properties)
	rentalHandler := NewRentalHandler(h.Rentals)
	profileHandler := NewProfileHandler(h.Profiles)
	annHandler := NewAnnouncementHandler(h.Announcements)
	noteHandler := NewNotificationHandler(h.Notifications)
	uploadHandler := NewUploadHandler(h.Storage)
	systemHandler := NewSystemHandler(db)

	// Public endpoints
	r.HandleFunc("/health", systemHandler.Health).Methods("GET")
	r.HandleFunc("/version", systemHandler.Version(version, buildTime)).Methods("GET")
	r.HandleFunc("/v1/uploads/{token}", uploadHandler.HandleUpload).Methods("PUT")
	r.HandleFunc("/v1/files/{key}", uploadHandler.HandleDownload).Methods("GET")

	// Protected endpoints
	api := r.NewRoute().Subrouter()
	api.Use(AuthMiddleware(tm))

	api.HandleFunc("/applications", appHandler.Submit).Methods("POST")
	api.HandleFunc("/applications", appHandler.List).Methods("GET")
	api.HandleFunc("/applications/{id}", appHandler.Decide).Methods("PUT")

	api.HandleFunc("/leases", leaseHandler.Create).Methods("POST")
	api.HandleFunc("/leases", leaseHandler.List).Methods("GET")
	api.HandleFunc("/leases/{id}", leaseHandler.Update).Methods("PUT")

	api.HandleFunc("/maintenance", maintHandler.Submit).Methods("POST")
	api.HandleFunc("/maintenance", maintHandler.List).Methods("GET")
	api.HandleFunc("/maintenance/{id}/assign", maintHandler.Assign).Methods("PUT")
	api.HandleFunc("/maintenance/{id}/update", maintHandler.Update).Methods("PUT")
	api.HandleFunc("/maintenance/{id}/reopen", maintHandler.Reopen).Methods("PUT")

	api.HandleFunc("/properties", propHandler.Create).Methods("POST")
	api.HandleFunc("/properties", propHandler.List).Methods("GET")
	api.HandleFunc("/properties/{id}", propHandler.Get).Methods("GET")

	api.HandleFunc("/rentals", rentalHandler.List).Methods("GET")

	api.HandleFunc("/profile", profileHandler.Get).Methods("GET")
	api.HandleFunc("/profile/role", profileHandler.AssignRole).Methods("PUT")

	api.HandleFunc("/announcements", annHandler.Post).Methods("POST")
	api.HandleFunc("/announcements", annHandler.List).Methods("GET")

	api.HandleFunc("/notifications", noteHandler.List).Methods("GET")
	api.HandleFunc("/notifications/{id}/read", noteHandler.MarkAsRead).Methods("PUT")

	api.HandleFunc("/uploads", uploadHandler.RequestUploadURL).Methods("POST")

	return r
}
