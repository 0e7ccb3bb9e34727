package http

import (
	"net/http"

	"bragnetic-backend/internal/service"

	"github.com/gorilla/mux"
)

// NewRouter wires every endpoint of the lead-capture API.
func NewRouter(
	submissions service.SubmissionService,
	auth service.AuthService,
	admin service.AdminService,
	secureCookies bool,
) *mux.Router {
	submissionHandler := NewSubmissionHandler(submissions)
	authHandler := NewAuthHandler(auth, secureCookies)
	adminHandler := NewAdminDataHandler(admin, auth)

	router := mux.NewRouter()

	// Public form submission endpoints
	router.HandleFunc("/api/creators", submissionHandler.SubmitCreator).Methods(http.MethodPost)
	router.HandleFunc("/api/brands", submissionHandler.SubmitBrand).Methods(http.MethodPost)
	router.HandleFunc("/api/contact", submissionHandler.SubmitContact).Methods(http.MethodPost)
	router.HandleFunc("/api/waitlist", submissionHandler.JoinWaitlist).Methods(http.MethodPost)

	// Admin session endpoints
	router.HandleFunc("/api/admin/auth", authHandler.Login).Methods(http.MethodPost)
	router.HandleFunc("/api/admin/auth", authHandler.Logout).Methods(http.MethodDelete)
	router.HandleFunc("/api/admin/auth", authHandler.Check).Methods(http.MethodGet)

	// Admin moderation endpoints
	router.HandleFunc("/api/admin/data", adminHandler.List).Methods(http.MethodGet)
	router.HandleFunc("/api/admin/data", adminHandler.Update).Methods(http.MethodPatch)
	router.HandleFunc("/api/admin/data", adminHandler.Delete).Methods(http.MethodDelete)

	// Health check for monitoring
	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	return router
}
