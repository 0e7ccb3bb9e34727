package repository

import (
	"context"
	"errors"

	"bragnetic-backend/internal/domain"
)

// ErrNotFound is returned when an update or delete targets an id that
// does not exist.
var ErrNotFound = errors.New("record not found")

// ErrDuplicateEmail is returned when a waitlist insert hits the unique
// email constraint. Callers treat it as idempotent success.
var ErrDuplicateEmail = errors.New("email already on waitlist")

// ListFilter narrows and pages a listing. Page is 1-based.
type ListFilter struct {
	Status string // empty matches every status
	Search string // case-insensitive substring over kind-specific text fields
	Page   int32
	Limit  int32
}

// Offset returns the row offset implied by Page and Limit.
func (f ListFilter) Offset() int32 {
	page := f.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * f.Limit
}

// ModerationUpdate carries the admin-settable fields. Nil means "leave
// unchanged"; reviewed_at is always bumped as a side effect.
type ModerationUpdate struct {
	Status *string
	Notes  *string
}

type CreatorRepository interface {
	Create(ctx context.Context, app *domain.CreatorApplication) error
	List(ctx context.Context, filter ListFilter) ([]domain.CreatorApplication, int32, error)
	Count(ctx context.Context) (int32, error)
	UpdateModeration(ctx context.Context, id string, upd ModerationUpdate) error
	Delete(ctx context.Context, id string) error
}

type BrandRepository interface {
	Create(ctx context.Context, enq *domain.BrandEnquiry) error
	List(ctx context.Context, filter ListFilter) ([]domain.BrandEnquiry, int32, error)
	Count(ctx context.Context) (int32, error)
	UpdateModeration(ctx context.Context, id string, upd ModerationUpdate) error
	Delete(ctx context.Context, id string) error
}

type ContactRepository interface {
	Create(ctx context.Context, msg *domain.ContactMessage) error
	List(ctx context.Context, filter ListFilter) ([]domain.ContactMessage, int32, error)
	Count(ctx context.Context) (int32, error)
	UpdateModeration(ctx context.Context, id string, upd ModerationUpdate) error
	Delete(ctx context.Context, id string) error
}

type WaitlistRepository interface {
	Create(ctx context.Context, entry *domain.WaitlistEntry) error
	GetByEmail(ctx context.Context, email string) (*domain.WaitlistEntry, error)
	List(ctx context.Context, filter ListFilter) ([]domain.WaitlistEntry, int32, error)
	Count(ctx context.Context) (int32, error)
	UpdateModeration(ctx context.Context, id string, upd ModerationUpdate) error
	Delete(ctx context.Context, id string) error
}
