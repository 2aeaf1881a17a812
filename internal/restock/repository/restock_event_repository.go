package repository

import (
	"context"
	"database/sql"
	"fmt"

	"kiosk/internal/domain"
	"kiosk/internal/errors"
)

type SQLiteRestockEventRepository struct {
	db *sql.DB
}

func NewSQLiteRestockEventRepository(db *sql.DB) *SQLiteRestockEventRepository {
	return &SQLiteRestockEventRepository{db: db}
}

func (r *SQLiteRestockEventRepository) Insert(ctx context.Context, tx *sql.Tx, ev domain.RestockEvent) (int64, error) {
	query := `
		INSERT INTO restock_events
			(product_id, product_name, barcode, unit_price, price, quantity, subtotal, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := tx.ExecContext(ctx, query,
		ev.ProductID, ev.ProductName, ev.Barcode,
		ev.UnitPrice, ev.Price, ev.Quantity, ev.Subtotal, ev.Timestamp,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting restock event: %w", err)
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}

	return lastInsertID, nil
}

func (r *SQLiteRestockEventRepository) FindByID(ctx context.Context, tx *sql.Tx, id int64) (*domain.RestockEvent, error) {
	query := `
		SELECT id, product_id, product_name, barcode, unit_price, price, quantity, subtotal, timestamp
		FROM restock_events
		WHERE id = ?`

	var ev domain.RestockEvent
	err := tx.QueryRowContext(ctx, query, id).Scan(
		&ev.ID, &ev.ProductID, &ev.ProductName, &ev.Barcode,
		&ev.UnitPrice, &ev.Price, &ev.Quantity, &ev.Subtotal, &ev.Timestamp,
	)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("restock event %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying restock event by id: %w", err)
	}

	return &ev, nil
}

func (r *SQLiteRestockEventRepository) Update(ctx context.Context, tx *sql.Tx, id int64, ev domain.RestockEvent) error {
	query := `
		UPDATE restock_events
		SET product_id = ?, product_name = ?, barcode = ?, unit_price = ?, price = ?,
		    quantity = ?, subtotal = ?, timestamp = ?
		WHERE id = ?`

	if _, err := tx.ExecContext(ctx, query,
		ev.ProductID, ev.ProductName, ev.Barcode,
		ev.UnitPrice, ev.Price, ev.Quantity, ev.Subtotal, ev.Timestamp, id,
	); err != nil {
		return fmt.Errorf("updating restock event: %w", err)
	}

	return nil
}

func (r *SQLiteRestockEventRepository) Delete(ctx context.Context, tx *sql.Tx, id int64) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM restock_events WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting restock event: %w", err)
	}

	return nil
}

func (r *SQLiteRestockEventRepository) ListAll(ctx context.Context, descending bool) ([]domain.RestockEvent, error) {
	order := "ASC"
	if descending {
		order = "DESC"
	}
	query := fmt.Sprintf(`
		SELECT id, product_id, product_name, barcode, unit_price, price, quantity, subtotal, timestamp
		FROM restock_events
		ORDER BY id %s`, order)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying restock events: %w", err)
	}
	defer rows.Close()

	var events []domain.RestockEvent
	for rows.Next() {
		var ev domain.RestockEvent
		if err := rows.Scan(
			&ev.ID, &ev.ProductID, &ev.ProductName, &ev.Barcode,
			&ev.UnitPrice, &ev.Price, &ev.Quantity, &ev.Subtotal, &ev.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("scanning restock event row: %w", err)
		}
		events = append(events, ev)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating restock event rows: %w", err)
	}

	return events, nil
}
