package repository

import (
	"context"
	"database/sql"
	"fmt"

	"kiosk/internal/domain"
	"kiosk/internal/errors"
)

type SQLiteMemberRepository struct {
	db *sql.DB
}

func NewSQLiteMemberRepository(db *sql.DB) *SQLiteMemberRepository {
	return &SQLiteMemberRepository{db: db}
}

func (r *SQLiteMemberRepository) FindByID(ctx context.Context, id int64) (*domain.Member, error) {
	query := `SELECT id, name FROM members WHERE id = ?`

	var m domain.Member
	err := r.db.QueryRowContext(ctx, query, id).Scan(&m.ID, &m.Name)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("member %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying member by id: %w", err)
	}

	return &m, nil
}

func (r *SQLiteMemberRepository) ListAll(ctx context.Context) ([]domain.Member, error) {
	query := `SELECT id, name FROM members ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying members: %w", err)
	}
	defer rows.Close()

	var members []domain.Member
	for rows.Next() {
		var m domain.Member
		if err := rows.Scan(&m.ID, &m.Name); err != nil {
			return nil, fmt.Errorf("scanning member row: %w", err)
		}
		members = append(members, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating member rows: %w", err)
	}

	return members, nil
}
