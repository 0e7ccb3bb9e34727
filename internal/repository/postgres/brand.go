package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"bragnetic-backend/internal/domain"
	"bragnetic-backend/internal/repository"

	"github.com/google/uuid"
)

const brandTable = "brand_enquiries"

var brandSearchCols = []string{"company", "contact", "email", "industry"}

type brandRepository struct {
	db *sql.DB
}

func NewBrandRepository(db *sql.DB) repository.BrandRepository {
	return &brandRepository{db: db}
}

func (r *brandRepository) Create(ctx context.Context, enq *domain.BrandEnquiry) error {
	if enq.ID == "" {
		enq.ID = uuid.NewString()
	}
	if enq.Status == "" {
		enq.Status = domain.StatusNew
	}
	query := `INSERT INTO brand_enquiries (id, company, contact, email, job_title, industry, message, status, notes)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING created_at`
	return r.db.QueryRowContext(ctx, query,
		enq.ID, enq.Company, enq.Contact, enq.Email, enq.JobTitle, enq.Industry, enq.Message, enq.Status, enq.Notes,
	).Scan(&enq.CreatedAt)
}

func (r *brandRepository) List(ctx context.Context, f repository.ListFilter) ([]domain.BrandEnquiry, int32, error) {
	where, args := listConditions(f, brandSearchCols)
	query := `SELECT id, company, contact, email, COALESCE(job_title, ''), COALESCE(industry, ''), COALESCE(message, ''),
	                 created_at, status, COALESCE(notes, ''), reviewed_at
	          FROM brand_enquiries` + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)

	rows, err := r.db.QueryContext(ctx, query, append(args, f.Limit, f.Offset())...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var enqs []domain.BrandEnquiry
	for rows.Next() {
		var e domain.BrandEnquiry
		var reviewedAt sql.NullTime
		if err := rows.Scan(&e.ID, &e.Company, &e.Contact, &e.Email, &e.JobTitle, &e.Industry, &e.Message,
			&e.CreatedAt, &e.Status, &e.Notes, &reviewedAt); err != nil {
			return nil, 0, err
		}
		if reviewedAt.Valid {
			e.ReviewedAt = &reviewedAt.Time
		}
		enqs = append(enqs, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int32
	countQuery := `SELECT count(*) FROM brand_enquiries` + where
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}
	return enqs, total, nil
}

func (r *brandRepository) Count(ctx context.Context) (int32, error) {
	return countTable(ctx, r.db, brandTable)
}

func (r *brandRepository) UpdateModeration(ctx context.Context, id string, upd repository.ModerationUpdate) error {
	return updateModeration(ctx, r.db, brandTable, id, upd)
}

func (r *brandRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, brandTable, id)
}
