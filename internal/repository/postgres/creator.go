package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"bragnetic-backend/internal/domain"
	"bragnetic-backend/internal/repository"

	"github.com/google/uuid"
)

const creatorTable = "creator_applications"

var creatorSearchCols = []string{"name", "email", "niches"}

type creatorRepository struct {
	db *sql.DB
}

func NewCreatorRepository(db *sql.DB) repository.CreatorRepository {
	return &creatorRepository{db: db}
}

func (r *creatorRepository) Create(ctx context.Context, app *domain.CreatorApplication) error {
	if app.ID == "" {
		app.ID = uuid.NewString()
	}
	if app.Status == "" {
		app.Status = domain.StatusNew
	}
	query := `INSERT INTO creator_applications (id, name, email, portfolio, niches, message, status, notes)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING created_at`
	return r.db.QueryRowContext(ctx, query,
		app.ID, app.Name, app.Email, app.Portfolio, app.Niches, app.Message, app.Status, app.Notes,
	).Scan(&app.CreatedAt)
}

func (r *creatorRepository) List(ctx context.Context, f repository.ListFilter) ([]domain.CreatorApplication, int32, error) {
	where, args := listConditions(f, creatorSearchCols)
	query := `SELECT id, name, email, COALESCE(portfolio, ''), COALESCE(niches, ''), COALESCE(message, ''),
	                 created_at, status, COALESCE(notes, ''), reviewed_at
	          FROM creator_applications` + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)

	rows, err := r.db.QueryContext(ctx, query, append(args, f.Limit, f.Offset())...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var apps []domain.CreatorApplication
	for rows.Next() {
		var a domain.CreatorApplication
		var reviewedAt sql.NullTime
		if err := rows.Scan(&a.ID, &a.Name, &a.Email, &a.Portfolio, &a.Niches, &a.Message,
			&a.CreatedAt, &a.Status, &a.Notes, &reviewedAt); err != nil {
			return nil, 0, err
		}
		if reviewedAt.Valid {
			a.ReviewedAt = &reviewedAt.Time
		}
		apps = append(apps, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int32
	countQuery := `SELECT count(*) FROM creator_applications` + where
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}
	return apps, total, nil
}

func (r *creatorRepository) Count(ctx context.Context) (int32, error) {
	return countTable(ctx, r.db, creatorTable)
}

func (r *creatorRepository) UpdateModeration(ctx context.Context, id string, upd repository.ModerationUpdate) error {
	return updateModeration(ctx, r.db, creatorTable, id, upd)
}

func (r *creatorRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, creatorTable, id)
}
