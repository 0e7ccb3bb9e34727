package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"bragnetic-backend/internal/logger"
	"bragnetic-backend/internal/service"
)

// SubmissionHandler serves the four public lead-capture endpoints.
type SubmissionHandler struct {
	submissions service.SubmissionService
}

func NewSubmissionHandler(submissions service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{submissions: submissions}
}

type submitResponse struct {
	OK      bool              `json:"ok"`
	Message string            `json:"message,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// SubmitCreator handles POST /api/creators.
func (h *SubmissionHandler) SubmitCreator(w http.ResponseWriter, r *http.Request) {
	var in service.CreatorInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondJSON(w, http.StatusBadRequest, submitResponse{OK: false, Message: "Invalid JSON body"})
		return
	}
	h.respond(w, "creators", func() (*service.SubmitResult, error) {
		return h.submissions.SubmitCreator(r.Context(), in)
	})
}

// SubmitBrand handles POST /api/brands.
func (h *SubmissionHandler) SubmitBrand(w http.ResponseWriter, r *http.Request) {
	var in service.BrandInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondJSON(w, http.StatusBadRequest, submitResponse{OK: false, Message: "Invalid JSON body"})
		return
	}
	h.respond(w, "brands", func() (*service.SubmitResult, error) {
		return h.submissions.SubmitBrand(r.Context(), in)
	})
}

// SubmitContact handles POST /api/contact.
func (h *SubmissionHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var in service.ContactInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondJSON(w, http.StatusBadRequest, submitResponse{OK: false, Message: "Invalid JSON body"})
		return
	}
	h.respond(w, "contact", func() (*service.SubmitResult, error) {
		return h.submissions.SubmitContact(r.Context(), in)
	})
}

// JoinWaitlist handles POST /api/waitlist.
func (h *SubmissionHandler) JoinWaitlist(w http.ResponseWriter, r *http.Request) {
	var in service.WaitlistInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondJSON(w, http.StatusBadRequest, submitResponse{OK: false, Message: "Invalid JSON body"})
		return
	}
	h.respond(w, "waitlist", func() (*service.SubmitResult, error) {
		return h.submissions.JoinWaitlist(r.Context(), in)
	})
}

// respond runs the submission and maps its outcome onto the wire contract:
// field errors and gate rejections are 400s with detail, anything
// unexpected is an opaque 500 logged with the endpoint tag.
func (h *SubmissionHandler) respond(w http.ResponseWriter, endpoint string, submit func() (*service.SubmitResult, error)) {
	result, err := submit()
	if err != nil {
		var vErr *service.ValidationError
		if errors.As(err, &vErr) {
			respondJSON(w, http.StatusBadRequest, submitResponse{OK: false, Errors: vErr.Fields})
			return
		}
		if errors.Is(err, service.ErrVerificationFailed) {
			respondJSON(w, http.StatusBadRequest, submitResponse{OK: false, Message: "Verification failed"})
			return
		}
		logger.WithEndpoint(endpoint).Error("submission failed", "error", err)
		respondJSON(w, http.StatusInternalServerError, submitResponse{OK: false, Message: "Something went wrong"})
		return
	}
	respondJSON(w, http.StatusOK, submitResponse{OK: true, Message: result.Message})
}
