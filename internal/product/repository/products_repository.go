package repository

import (
	"context"
	"database/sql"
	"fmt"

	"kiosk/internal/domain"
	"kiosk/internal/errors"
)

type SQLiteProductRepository struct {
	db *sql.DB
}

func NewSQLiteProductRepository(db *sql.DB) *SQLiteProductRepository {
	return &SQLiteProductRepository{db: db}
}

func (r *SQLiteProductRepository) FindByID(ctx context.Context, tx *sql.Tx, id int64) (*domain.Product, error) {
	query := `SELECT id, name, barcode, price, stock FROM products WHERE id = ?`

	var p domain.Product
	err := tx.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Name, &p.Barcode, &p.Price, &p.Stock)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("product %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying product by id: %w", err)
	}

	return &p, nil
}

func (r *SQLiteProductRepository) FindByBarcode(ctx context.Context, tx *sql.Tx, barcode string) (*domain.Product, error) {
	query := `SELECT id, name, barcode, price, stock FROM products WHERE barcode = ?`

	var p domain.Product
	err := tx.QueryRowContext(ctx, query, barcode).Scan(&p.ID, &p.Name, &p.Barcode, &p.Price, &p.Stock)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("product with barcode %s not found", barcode))
	}
	if err != nil {
		return nil, fmt.Errorf("querying product by barcode: %w", err)
	}

	return &p, nil
}

func (r *SQLiteProductRepository) Insert(ctx context.Context, tx *sql.Tx, p domain.Product) (int64, error) {
	query := `INSERT INTO products (name, barcode, price, stock) VALUES (?, ?, ?, ?)`

	result, err := tx.ExecContext(ctx, query, p.Name, p.Barcode, p.Price, p.Stock)
	if err != nil {
		return 0, fmt.Errorf("inserting product: %w", err)
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}

	return lastInsertID, nil
}

func (r *SQLiteProductRepository) ListAll(ctx context.Context) ([]domain.Product, error) {
	query := `SELECT id, name, barcode, price, stock FROM products ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Barcode, &p.Price, &p.Stock); err != nil {
			return nil, fmt.Errorf("scanning product row: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating product rows: %w", err)
	}

	return products, nil
}

// AdjustStock is the stock ledger: the only write path to stock and price
// outside the per-unit sale decrement. A non-positive productID is a silent
// no-op, not an error; callers pass optional or missing ids through here and
// rely on that leniency. Price is touched only when a new price is supplied
// and actually differs from the stored one.
func (r *SQLiteProductRepository) AdjustStock(ctx context.Context, tx *sql.Tx, productID int64, delta int, newPrice *int) error {
	if productID <= 0 {
		return nil
	}

	if _, err := tx.ExecContext(ctx, `UPDATE products SET stock = stock + ? WHERE id = ?`, delta, productID); err != nil {
		return fmt.Errorf("adjusting stock: %w", err)
	}

	if newPrice != nil {
		query := `UPDATE products SET price = ? WHERE id = ? AND price <> ?`
		if _, err := tx.ExecContext(ctx, query, *newPrice, productID, *newPrice); err != nil {
			return fmt.Errorf("updating price: %w", err)
		}
	}

	return nil
}

// DecrementForSale takes one unit of stock, floored at zero. A sale is still
// recorded when stock is already empty; the counter never goes negative on
// this path.
func (r *SQLiteProductRepository) DecrementForSale(ctx context.Context, tx *sql.Tx, productID int64) error {
	query := `UPDATE products SET stock = CASE WHEN stock > 0 THEN stock - 1 ELSE 0 END WHERE id = ?`

	if _, err := tx.ExecContext(ctx, query, productID); err != nil {
		return fmt.Errorf("decrementing stock: %w", err)
	}

	return nil
}

// ClampNegativeStock forces any below-zero counter back to zero. Runs at the
// end of every sale batch.
func (r *SQLiteProductRepository) ClampNegativeStock(ctx context.Context, tx *sql.Tx) error {
	if _, err := tx.ExecContext(ctx, `UPDATE products SET stock = 0 WHERE stock < 0`); err != nil {
		return fmt.Errorf("clamping negative stock: %w", err)
	}

	return nil
}
