package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"bragnetic-backend/internal/domain"
	"bragnetic-backend/internal/repository"

	"github.com/google/uuid"
)

const contactTable = "contact_messages"

var contactSearchCols = []string{"name", "email", "message"}

type contactRepository struct {
	db *sql.DB
}

func NewContactRepository(db *sql.DB) repository.ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(ctx context.Context, msg *domain.ContactMessage) error {
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.Status == "" {
		msg.Status = domain.StatusNew
	}
	query := `INSERT INTO contact_messages (id, name, email, type, message, status, notes)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING created_at`
	return r.db.QueryRowContext(ctx, query,
		msg.ID, msg.Name, msg.Email, string(msg.Type), msg.Message, msg.Status, msg.Notes,
	).Scan(&msg.CreatedAt)
}

func (r *contactRepository) List(ctx context.Context, f repository.ListFilter) ([]domain.ContactMessage, int32, error) {
	where, args := listConditions(f, contactSearchCols)
	query := `SELECT id, COALESCE(name, ''), email, type, COALESCE(message, ''),
	                 created_at, status, COALESCE(notes, ''), reviewed_at
	          FROM contact_messages` + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)

	rows, err := r.db.QueryContext(ctx, query, append(args, f.Limit, f.Offset())...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var msgs []domain.ContactMessage
	for rows.Next() {
		var m domain.ContactMessage
		var reviewedAt sql.NullTime
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Type, &m.Message,
			&m.CreatedAt, &m.Status, &m.Notes, &reviewedAt); err != nil {
			return nil, 0, err
		}
		if reviewedAt.Valid {
			m.ReviewedAt = &reviewedAt.Time
		}
		msgs = append(msgs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int32
	countQuery := `SELECT count(*) FROM contact_messages` + where
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}
	return msgs, total, nil
}

func (r *contactRepository) Count(ctx context.Context) (int32, error) {
	return countTable(ctx, r.db, contactTable)
}

func (r *contactRepository) UpdateModeration(ctx context.Context, id string, upd repository.ModerationUpdate) error {
	return updateModeration(ctx, r.db, contactTable, id, upd)
}

func (r *contactRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, contactTable, id)
}
