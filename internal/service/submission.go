package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"bragnetic-backend/internal/captcha"
	"bragnetic-backend/internal/domain"
	"bragnetic-backend/internal/logger"
	"bragnetic-backend/internal/repository"
)

const (
	// WaitlistJoinedMessage confirms a first-time waitlist signup.
	WaitlistJoinedMessage = "You're on the list! We'll notify you when enrollment opens."
	// WaitlistAlreadyMessage is returned for a repeat signup. Still a success.
	WaitlistAlreadyMessage = "You're already on the waitlist!"
)

type submissionService struct {
	creatorRepo  repository.CreatorRepository
	brandRepo    repository.BrandRepository
	contactRepo  repository.ContactRepository
	waitlistRepo repository.WaitlistRepository
	verifier     captcha.Verifier
	emailSvc     EmailService
}

func NewSubmissionService(
	creatorRepo repository.CreatorRepository,
	brandRepo repository.BrandRepository,
	contactRepo repository.ContactRepository,
	waitlistRepo repository.WaitlistRepository,
	verifier captcha.Verifier,
	emailSvc EmailService,
) SubmissionService {
	return &submissionService{
		creatorRepo:  creatorRepo,
		brandRepo:    brandRepo,
		contactRepo:  contactRepo,
		waitlistRepo: waitlistRepo,
		verifier:     verifier,
		emailSvc:     emailSvc,
	}
}

func (s *submissionService) SubmitCreator(ctx context.Context, in CreatorInput) (*SubmitResult, error) {
	if in.Website != "" {
		// Honeypot filled: drop silently so the bot sees a normal success.
		logger.Debug("honeypot triggered, dropping submission", "form", "creators")
		return &SubmitResult{}, nil
	}

	v := newValidationError()
	requireText(v, "name", in.Name, 120)
	requireEmail(v, "email", in.Email)
	limitText(v, "portfolio", in.Portfolio, 500)
	limitText(v, "niches", in.Niches, 200)
	limitText(v, "message", in.Message, 1000)
	if err := v.orNil(); err != nil {
		return nil, err
	}

	if !s.verifier.Verify(ctx, in.TurnstileToken) {
		return nil, ErrVerificationFailed
	}

	app := &domain.CreatorApplication{
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.TrimSpace(in.Email),
		Portfolio: in.Portfolio,
		Niches:    in.Niches,
		Message:   in.Message,
	}
	if err := s.creatorRepo.Create(ctx, app); err != nil {
		return nil, fmt.Errorf("failed to persist creator application: %w", err)
	}

	s.notifyAsync(ctx, "creators", func(ctx context.Context) error {
		return s.emailSvc.NotifyCreatorApplication(ctx, app)
	})
	return &SubmitResult{}, nil
}

func (s *submissionService) SubmitBrand(ctx context.Context, in BrandInput) (*SubmitResult, error) {
	if in.Website != "" {
		logger.Debug("honeypot triggered, dropping submission", "form", "brands")
		return &SubmitResult{}, nil
	}

	v := newValidationError()
	requireText(v, "company", in.Company, 160)
	requireText(v, "contact", in.Contact, 160)
	requireEmail(v, "email", in.Email)
	limitText(v, "jobTitle", in.JobTitle, 160)
	limitText(v, "industry", in.Industry, 160)
	limitText(v, "message", in.Message, 1000)
	if err := v.orNil(); err != nil {
		return nil, err
	}

	if !s.verifier.Verify(ctx, in.TurnstileToken) {
		return nil, ErrVerificationFailed
	}

	enq := &domain.BrandEnquiry{
		Company:  strings.TrimSpace(in.Company),
		Contact:  strings.TrimSpace(in.Contact),
		Email:    strings.TrimSpace(in.Email),
		JobTitle: in.JobTitle,
		Industry: in.Industry,
		Message:  in.Message,
	}
	if err := s.brandRepo.Create(ctx, enq); err != nil {
		return nil, fmt.Errorf("failed to persist brand enquiry: %w", err)
	}

	s.notifyAsync(ctx, "brands", func(ctx context.Context) error {
		return s.emailSvc.NotifyBrandEnquiry(ctx, enq)
	})
	return &SubmitResult{}, nil
}

func (s *submissionService) SubmitContact(ctx context.Context, in ContactInput) (*SubmitResult, error) {
	if in.Website != "" {
		logger.Debug("honeypot triggered, dropping submission", "form", "contact")
		return &SubmitResult{}, nil
	}

	v := newValidationError()
	limitText(v, "name", in.Name, 160)
	requireEmail(v, "email", in.Email)
	topic := domain.ContactTopic(in.Type)
	if !topic.Valid() {
		v.add("type", "must be one of: Creator enquiry, Brand enquiry, General")
	}
	limitText(v, "message", in.Message, 1000)
	if err := v.orNil(); err != nil {
		return nil, err
	}

	if !s.verifier.Verify(ctx, in.TurnstileToken) {
		return nil, ErrVerificationFailed
	}

	msg := &domain.ContactMessage{
		Name:    in.Name,
		Email:   strings.TrimSpace(in.Email),
		Type:    topic,
		Message: in.Message,
	}
	if err := s.contactRepo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to persist contact message: %w", err)
	}

	s.notifyAsync(ctx, "contact", func(ctx context.Context) error {
		return s.emailSvc.NotifyContactMessage(ctx, msg)
	})
	return &SubmitResult{}, nil
}

// JoinWaitlist is idempotent by email: a repeat signup returns success with
// the "already on the waitlist" message and creates no second record.
func (s *submissionService) JoinWaitlist(ctx context.Context, in WaitlistInput) (*SubmitResult, error) {
	if in.Website != "" {
		logger.Debug("honeypot triggered, dropping submission", "form", "waitlist")
		return &SubmitResult{Message: WaitlistJoinedMessage}, nil
	}

	v := newValidationError()
	requireEmail(v, "email", in.Email)
	limitText(v, "name", in.Name, 120)
	if err := v.orNil(); err != nil {
		return nil, err
	}

	if !s.verifier.Verify(ctx, in.TurnstileToken) {
		return nil, ErrVerificationFailed
	}

	email := strings.TrimSpace(in.Email)
	existing, err := s.waitlistRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up waitlist entry: %w", err)
	}
	if existing != nil {
		return &SubmitResult{Message: WaitlistAlreadyMessage}, nil
	}

	entry := &domain.WaitlistEntry{
		Email: email,
		Name:  in.Name,
	}
	if err := s.waitlistRepo.Create(ctx, entry); err != nil {
		// A concurrent first signup can win the race between the lookup
		// and the insert. Same outcome as the lookup hit.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return &SubmitResult{Message: WaitlistAlreadyMessage}, nil
		}
		return nil, fmt.Errorf("failed to persist waitlist entry: %w", err)
	}
	return &SubmitResult{Message: WaitlistJoinedMessage}, nil
}

// notifyAsync fires the notification send without blocking the request.
// The context is detached so a client disconnect cannot cancel the send.
// Failures are logged and never surfaced to the submitter.
func (s *submissionService) notifyAsync(ctx context.Context, form string, send func(context.Context) error) {
	detached := context.WithoutCancel(ctx)
	go func() {
		if err := send(detached); err != nil {
			logger.WithService("email").Error("failed to send notification", "form", form, "error", err)
		}
	}()
}

func requireText(v *ValidationError, field, value string, max int) {
	if strings.TrimSpace(value) == "" {
		v.add(field, "is required")
		return
	}
	limitText(v, field, value, max)
}

func limitText(v *ValidationError, field, value string, max int) {
	if utf8.RuneCountInString(value) > max {
		v.add(field, fmt.Sprintf("must be at most %d characters", max))
	}
}

func requireEmail(v *ValidationError, field, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		v.add(field, "is required")
		return
	}
	if utf8.RuneCountInString(value) > 160 {
		v.add(field, "must be at most 160 characters")
		return
	}
	if _, err := mail.ParseAddress(value); err != nil {
		v.add(field, "must be a valid email address")
	}
}
