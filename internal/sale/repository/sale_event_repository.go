package repository

import (
	"context"
	"database/sql"
	"fmt"

	"kiosk/internal/domain"
)

type SQLiteSaleEventRepository struct {
	db *sql.DB
}

func NewSQLiteSaleEventRepository(db *sql.DB) *SQLiteSaleEventRepository {
	return &SQLiteSaleEventRepository{db: db}
}

// Insert appends one sale event. The table is append-only; there is no
// update or delete path.
func (r *SQLiteSaleEventRepository) Insert(ctx context.Context, tx *sql.Tx, ev domain.SaleEvent) (int64, error) {
	query := `
		INSERT INTO sale_events (member_id, member_name, product_id, product_name, timestamp)
		VALUES (?, ?, ?, ?, ?)`

	result, err := tx.ExecContext(ctx, query, ev.MemberID, ev.MemberName, ev.ProductID, ev.ProductName, ev.Timestamp)
	if err != nil {
		return 0, fmt.Errorf("inserting sale event: %w", err)
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}

	return lastInsertID, nil
}
