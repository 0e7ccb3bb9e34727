package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"bragnetic-backend/internal/logger"
	"bragnetic-backend/internal/security"
	"bragnetic-backend/internal/service"
)

// SessionCookieName is the cookie carrying the admin session token.
const SessionCookieName = "admin_token"

// AuthHandler serves admin login, logout and session checks.
type AuthHandler struct {
	auth   service.AuthService
	secure bool // Secure cookie flag, on in production
}

func NewAuthHandler(auth service.AuthService, secure bool) *AuthHandler {
	return &AuthHandler{auth: auth, secure: secure}
}

type loginRequest struct {
	Password string `json:"password"`
}

// Login handles POST /api/admin/auth.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	token, err := h.auth.Login(req.Password)
	if err != nil {
		if errors.Is(err, service.ErrAdminNotConfigured) {
			logger.WithEndpoint("admin/auth").Error("login attempted with no admin password configured")
			respondError(w, http.StatusInternalServerError, "Admin not configured")
			return
		}
		if errors.Is(err, service.ErrInvalidPassword) {
			respondError(w, http.StatusUnauthorized, "Invalid password")
			return
		}
		logger.WithEndpoint("admin/auth").Error("login failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(security.SessionLifetime.Seconds()),
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// Logout handles DELETE /api/admin/auth. Clearing is unconditional and
// idempotent.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// Check handles GET /api/admin/auth, the dashboard's landing check.
func (h *AuthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if !sessionValid(r, h.auth) {
		respondJSON(w, http.StatusUnauthorized, map[string]bool{"authenticated": false})
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"authenticated": true})
}

// sessionValid reads the session cookie and verifies it. Absent, malformed,
// badly signed or expired tokens all read as unauthenticated.
func sessionValid(r *http.Request, auth service.AuthService) bool {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return false
	}
	return auth.Verify(cookie.Value)
}
