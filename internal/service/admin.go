package service

import (
	"context"
	"fmt"

	"bragnetic-backend/internal/domain"
	"bragnetic-backend/internal/repository"
)

const (
	defaultPageSize = 50
	maxPageSize     = 100
)

type adminService struct {
	creatorRepo  repository.CreatorRepository
	brandRepo    repository.BrandRepository
	contactRepo  repository.ContactRepository
	waitlistRepo repository.WaitlistRepository
}

func NewAdminService(
	creatorRepo repository.CreatorRepository,
	brandRepo repository.BrandRepository,
	contactRepo repository.ContactRepository,
	waitlistRepo repository.WaitlistRepository,
) AdminService {
	return &adminService{
		creatorRepo:  creatorRepo,
		brandRepo:    brandRepo,
		contactRepo:  contactRepo,
		waitlistRepo: waitlistRepo,
	}
}

func (s *adminService) List(ctx context.Context, kind domain.SubmissionKind, q ListQuery) (*ListResult, error) {
	if q.Status != "" && !domain.Status(q.Status).Valid() {
		v := newValidationError()
		v.add("status", "unknown status")
		return nil, v
	}

	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	filter := repository.ListFilter{
		Status: q.Status,
		Search: q.Search,
		Page:   page,
		Limit:  limit,
	}

	var data any
	var total int32
	var err error
	switch kind {
	case domain.KindCreators:
		var apps []domain.CreatorApplication
		apps, total, err = s.creatorRepo.List(ctx, filter)
		if apps == nil {
			apps = []domain.CreatorApplication{}
		}
		data = apps
	case domain.KindBrands:
		var enqs []domain.BrandEnquiry
		enqs, total, err = s.brandRepo.List(ctx, filter)
		if enqs == nil {
			enqs = []domain.BrandEnquiry{}
		}
		data = enqs
	case domain.KindContacts:
		var msgs []domain.ContactMessage
		msgs, total, err = s.contactRepo.List(ctx, filter)
		if msgs == nil {
			msgs = []domain.ContactMessage{}
		}
		data = msgs
	case domain.KindWaitlist:
		var entries []domain.WaitlistEntry
		entries, total, err = s.waitlistRepo.List(ctx, filter)
		if entries == nil {
			entries = []domain.WaitlistEntry{}
		}
		data = entries
	default:
		return nil, fmt.Errorf("unknown submission kind: %q", kind)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", kind, err)
	}

	return &ListResult{
		Data:  data,
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}

func (s *adminService) Counts(ctx context.Context) (*domain.Counts, error) {
	creators, err := s.creatorRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count creators: %w", err)
	}
	brands, err := s.brandRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count brands: %w", err)
	}
	contacts, err := s.contactRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count contacts: %w", err)
	}
	waitlist, err := s.waitlistRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count waitlist: %w", err)
	}
	return &domain.Counts{
		Creators: creators,
		Brands:   brands,
		Contacts: contacts,
		Waitlist: waitlist,
	}, nil
}

func (s *adminService) Update(ctx context.Context, kind domain.SubmissionKind, id string, status, notes *string) error {
	v := newValidationError()
	if id == "" {
		v.add("id", "is required")
	}
	if status == nil && notes == nil {
		v.add("status", "status or notes is required")
	}
	if status != nil && !domain.Status(*status).Valid() {
		v.add("status", "unknown status")
	}
	if err := v.orNil(); err != nil {
		return err
	}

	upd := repository.ModerationUpdate{Status: status, Notes: notes}
	switch kind {
	case domain.KindCreators:
		return s.creatorRepo.UpdateModeration(ctx, id, upd)
	case domain.KindBrands:
		return s.brandRepo.UpdateModeration(ctx, id, upd)
	case domain.KindContacts:
		return s.contactRepo.UpdateModeration(ctx, id, upd)
	case domain.KindWaitlist:
		return s.waitlistRepo.UpdateModeration(ctx, id, upd)
	}
	return fmt.Errorf("unknown submission kind: %q", kind)
}

func (s *adminService) Delete(ctx context.Context, kind domain.SubmissionKind, id string) error {
	if id == "" {
		v := newValidationError()
		v.add("id", "is required")
		return v
	}
	switch kind {
	case domain.KindCreators:
		return s.creatorRepo.Delete(ctx, id)
	case domain.KindBrands:
		return s.brandRepo.Delete(ctx, id)
	case domain.KindContacts:
		return s.contactRepo.Delete(ctx, id)
	case domain.KindWaitlist:
		return s.waitlistRepo.Delete(ctx, id)
	}
	return fmt.Errorf("unknown submission kind: %q", kind)
}
