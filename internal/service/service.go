package service

import (
	"context"
	"errors"

	"bragnetic-backend/internal/domain"
)

var (
	// ErrVerificationFailed means the bot gate rejected the submission.
	ErrVerificationFailed = errors.New("verification failed")
	// ErrInvalidPassword means the admin login password did not match.
	ErrInvalidPassword = errors.New("invalid password")
	// ErrAdminNotConfigured means no admin password is set server-side.
	ErrAdminNotConfigured = errors.New("admin not configured")
)

// ValidationError reports field-level validation failures. It is shown to
// the caller and never logged as a server error.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

func newValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

func (e *ValidationError) add(field, msg string) {
	e.Fields[field] = msg
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// CreatorInput is the payload of a creator application form post.
// Website is the honeypot field; humans never fill it.
type CreatorInput struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Portfolio      string `json:"portfolio"`
	Niches         string `json:"niches"`
	Message        string `json:"message"`
	TurnstileToken string `json:"turnstileToken"`
	Website        string `json:"website_url"`
}

// BrandInput is the payload of a brand enquiry form post.
type BrandInput struct {
	Company        string `json:"company"`
	Contact        string `json:"contact"`
	Email          string `json:"email"`
	JobTitle       string `json:"jobTitle"`
	Industry       string `json:"industry"`
	Message        string `json:"message"`
	TurnstileToken string `json:"turnstileToken"`
	Website        string `json:"website_url"`
}

// ContactInput is the payload of a contact form post.
type ContactInput struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Type           string `json:"type"`
	Message        string `json:"message"`
	TurnstileToken string `json:"turnstileToken"`
	Website        string `json:"website_url"`
}

// WaitlistInput is the payload of an academy waitlist signup.
type WaitlistInput struct {
	Email          string `json:"email"`
	Name           string `json:"name"`
	TurnstileToken string `json:"turnstileToken"`
	Website        string `json:"website_url"`
}

// SubmitResult is the success payload of a form submission.
type SubmitResult struct {
	Message string
}

type SubmissionService interface {
	SubmitCreator(ctx context.Context, in CreatorInput) (*SubmitResult, error)
	SubmitBrand(ctx context.Context, in BrandInput) (*SubmitResult, error)
	SubmitContact(ctx context.Context, in ContactInput) (*SubmitResult, error)
	JoinWaitlist(ctx context.Context, in WaitlistInput) (*SubmitResult, error)
}

type AuthService interface {
	// Login exchanges the shared admin password for a session token.
	Login(password string) (string, error)
	// Verify reports whether token is a valid, unexpired admin session.
	// It never returns an error; any failure reads as unauthenticated.
	Verify(token string) bool
}

// ListQuery narrows and pages an admin listing request.
type ListQuery struct {
	Status string
	Search string
	Page   int32
	Limit  int32
}

// ListResult is the admin listing response envelope.
type ListResult struct {
	Data  any   `json:"data"`
	Total int32 `json:"total"`
	Page  int32 `json:"page"`
	Limit int32 `json:"limit"`
}

type AdminService interface {
	List(ctx context.Context, kind domain.SubmissionKind, q ListQuery) (*ListResult, error)
	Counts(ctx context.Context) (*domain.Counts, error)
	Update(ctx context.Context, kind domain.SubmissionKind, id string, status, notes *string) error
	Delete(ctx context.Context, kind domain.SubmissionKind, id string) error
}

type EmailService interface {
	NotifyCreatorApplication(ctx context.Context, app *domain.CreatorApplication) error
	NotifyBrandEnquiry(ctx context.Context, enq *domain.BrandEnquiry) error
	NotifyContactMessage(ctx context.Context, msg *domain.ContactMessage) error
}
