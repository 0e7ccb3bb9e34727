package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"bragnetic-backend/internal/repository"

	"github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.CreatorRepository
	repository.BrandRepository
	repository.ContactRepository
	repository.WaitlistRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                 db,
		CreatorRepository:  NewCreatorRepository(db),
		BrandRepository:    NewBrandRepository(db),
		ContactRepository:  NewContactRepository(db),
		WaitlistRepository: NewWaitlistRepository(db),
	}
}

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	if pqErr, ok := err.(*pq.Error); ok {
		return pqErr.Code == "23505"
	}
	return false
}

// updateModeration bumps status/notes on one row of the given table and
// stamps reviewed_at. A nil field leaves the current value in place.
func updateModeration(ctx context.Context, db *sql.DB, table, id string, upd repository.ModerationUpdate) error {
	query := `UPDATE ` + table + ` SET status = COALESCE($2, status), notes = COALESCE($3, notes), reviewed_at = NOW() WHERE id = $1`
	result, err := db.ExecContext(ctx, query, id, upd.Status, upd.Notes)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// deleteByID removes one row of the given table.
func deleteByID(ctx context.Context, db *sql.DB, table, id string) error {
	result, err := db.ExecContext(ctx, `DELETE FROM `+table+` WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// listConditions builds the WHERE clause shared by a listing query and
// its matching count query. Search is a case-insensitive substring match
// over the kind's text columns.
func listConditions(f repository.ListFilter, searchCols []string) (string, []any) {
	var conds []string
	var args []any
	if f.Status != "" {
		args = append(args, f.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		ors := make([]string, 0, len(searchCols))
		for _, col := range searchCols {
			ors = append(ors, fmt.Sprintf("%s ILIKE $%d", col, n))
		}
		conds = append(conds, "("+strings.Join(ors, " OR ")+")")
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// countTable returns the total number of rows in the given table.
func countTable(ctx context.Context, db *sql.DB, table string) (int32, error) {
	var count int32
	err := db.QueryRowContext(ctx, `SELECT count(*) FROM `+table).Scan(&count)
	return count, err
}
