package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"bragnetic-backend/internal/domain"
	"bragnetic-backend/internal/logger"
	"bragnetic-backend/internal/repository"
	"bragnetic-backend/internal/service"
)

// AdminDataHandler serves the authenticated moderation endpoints over the
// four submission collections.
type AdminDataHandler struct {
	admin service.AdminService
	auth  service.AuthService
}

func NewAdminDataHandler(admin service.AdminService, auth service.AuthService) *AdminDataHandler {
	return &AdminDataHandler{admin: admin, auth: auth}
}

// guard re-runs session verification. Every admin data operation rejects
// with a bare 401 before doing any work.
func (h *AdminDataHandler) guard(w http.ResponseWriter, r *http.Request) bool {
	if !sessionValid(r, h.auth) {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return false
	}
	return true
}

// List handles GET /api/admin/data. Without a type parameter it returns
// the four collection totals for the overview tab.
func (h *AdminDataHandler) List(w http.ResponseWriter, r *http.Request) {
	if !h.guard(w, r) {
		return
	}

	params := r.URL.Query()
	typeParam := params.Get("type")
	if typeParam == "" {
		counts, err := h.admin.Counts(r.Context())
		if err != nil {
			logger.WithEndpoint("admin/data").Error("counts failed", "error", err)
			respondError(w, http.StatusInternalServerError, "Server error")
			return
		}
		respondJSON(w, http.StatusOK, counts)
		return
	}

	kind, err := domain.ParseKind(typeParam)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Unknown type")
		return
	}

	q := service.ListQuery{
		Status: params.Get("status"),
		Search: params.Get("search"),
	}
	if page, err := strconv.Atoi(params.Get("page")); err == nil {
		q.Page = int32(page)
	}
	if limit, err := strconv.Atoi(params.Get("limit")); err == nil {
		q.Limit = int32(limit)
	}

	result, err := h.admin.List(r.Context(), kind, q)
	if err != nil {
		var vErr *service.ValidationError
		if errors.As(err, &vErr) {
			respondJSON(w, http.StatusBadRequest, map[string]any{"errors": vErr.Fields})
			return
		}
		logger.WithEndpoint("admin/data").Error("list failed", "type", typeParam, "error", err)
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}
	respondJSON(w, http.StatusOK, result)
}

type updateRequest struct {
	Type   string  `json:"type"`
	ID     string  `json:"id"`
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}

// Update handles PATCH /api/admin/data. Any update stamps reviewedAt.
func (h *AdminDataHandler) Update(w http.ResponseWriter, r *http.Request) {
	if !h.guard(w, r) {
		return
	}

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	kind, err := domain.ParseKind(req.Type)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Unknown type")
		return
	}

	if err := h.admin.Update(r.Context(), kind, req.ID, req.Status, req.Notes); err != nil {
		var vErr *service.ValidationError
		if errors.As(err, &vErr) {
			respondJSON(w, http.StatusBadRequest, map[string]any{"errors": vErr.Fields})
			return
		}
		if errors.Is(err, repository.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Not found")
			return
		}
		logger.WithEndpoint("admin/data").Error("update failed", "type", req.Type, "id", req.ID, "error", err)
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// Delete handles DELETE /api/admin/data?type=&id=.
func (h *AdminDataHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !h.guard(w, r) {
		return
	}

	params := r.URL.Query()
	kind, err := domain.ParseKind(params.Get("type"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Unknown type")
		return
	}

	if err := h.admin.Delete(r.Context(), kind, params.Get("id")); err != nil {
		var vErr *service.ValidationError
		if errors.As(err, &vErr) {
			respondJSON(w, http.StatusBadRequest, map[string]any{"errors": vErr.Fields})
			return
		}
		if errors.Is(err, repository.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Not found")
			return
		}
		logger.WithEndpoint("admin/data").Error("delete failed", "id", params.Get("id"), "error", err)
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
