package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"bragnetic-backend/internal/domain"
	"bragnetic-backend/internal/repository"

	"github.com/google/uuid"
)

const waitlistTable = "academy_waitlist"

var waitlistSearchCols = []string{"email", "name"}

type waitlistRepository struct {
	db *sql.DB
}

func NewWaitlistRepository(db *sql.DB) repository.WaitlistRepository {
	return &waitlistRepository{db: db}
}

// Create inserts a waitlist entry. A unique-violation on email is mapped
// to repository.ErrDuplicateEmail so callers can treat repeat signups as
// idempotent success.
func (r *waitlistRepository) Create(ctx context.Context, entry *domain.WaitlistEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Status == "" {
		entry.Status = domain.StatusNew
	}
	query := `INSERT INTO academy_waitlist (id, email, name, status, notes)
	          VALUES ($1, $2, $3, $4, $5) RETURNING created_at`
	err := r.db.QueryRowContext(ctx, query,
		entry.ID, entry.Email, entry.Name, entry.Status, entry.Notes,
	).Scan(&entry.CreatedAt)
	if err != nil && isUniqueViolation(err) {
		return repository.ErrDuplicateEmail
	}
	return err
}

func (r *waitlistRepository) GetByEmail(ctx context.Context, email string) (*domain.WaitlistEntry, error) {
	query := `SELECT id, email, COALESCE(name, ''), created_at, status, COALESCE(notes, ''), reviewed_at
	          FROM academy_waitlist WHERE email = $1`
	var e domain.WaitlistEntry
	var reviewedAt sql.NullTime
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&e.ID, &e.Email, &e.Name, &e.CreatedAt, &e.Status, &e.Notes, &reviewedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if reviewedAt.Valid {
		e.ReviewedAt = &reviewedAt.Time
	}
	return &e, nil
}

func (r *waitlistRepository) List(ctx context.Context, f repository.ListFilter) ([]domain.WaitlistEntry, int32, error) {
	where, args := listConditions(f, waitlistSearchCols)
	query := `SELECT id, email, COALESCE(name, ''), created_at, status, COALESCE(notes, ''), reviewed_at
	          FROM academy_waitlist` + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)

	rows, err := r.db.QueryContext(ctx, query, append(args, f.Limit, f.Offset())...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var entries []domain.WaitlistEntry
	for rows.Next() {
		var e domain.WaitlistEntry
		var reviewedAt sql.NullTime
		if err := rows.Scan(&e.ID, &e.Email, &e.Name, &e.CreatedAt, &e.Status, &e.Notes, &reviewedAt); err != nil {
			return nil, 0, err
		}
		if reviewedAt.Valid {
			e.ReviewedAt = &reviewedAt.Time
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int32
	countQuery := `SELECT count(*) FROM academy_waitlist` + where
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

func (r *waitlistRepository) Count(ctx context.Context) (int32, error) {
	return countTable(ctx, r.db, waitlistTable)
}

func (r *waitlistRepository) UpdateModeration(ctx context.Context, id string, upd repository.ModerationUpdate) error {
	return updateModeration(ctx, r.db, waitlistTable, id, upd)
}

func (r *waitlistRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, waitlistTable, id)
}
