package suggestion

import (
	"context"
	"database/sql"
	"fmt"
)

// SQLiteStatsRepository aggregates sales history per product in a single
// read-only query. Timestamps are fixed-offset local strings, so the window
// boundaries compare lexicographically.
type SQLiteStatsRepository struct {
	db *sql.DB
}

func NewSQLiteStatsRepository(db *sql.DB) *SQLiteStatsRepository {
	return &SQLiteStatsRepository{db: db}
}

func (r *SQLiteStatsRepository) Aggregate(ctx context.Context, since7, sinceWindow string) ([]ProductSales, error) {
	query := `
		SELECT
			pr.id,
			pr.name,
			COALESCE(pr.barcode, ''),
			pr.price,
			pr.stock,
			COALESCE(SUM(CASE WHEN s.timestamp >= ? THEN 1 ELSE 0 END), 0) AS sold_7d,
			COALESCE(SUM(CASE WHEN s.timestamp >= ? THEN 1 ELSE 0 END), 0) AS sold_nd,
			COALESCE(MAX(s.timestamp), '') AS last_sold_at
		FROM products pr
		LEFT JOIN sale_events s ON s.product_id = pr.id
		GROUP BY pr.id`

	rows, err := r.db.QueryContext(ctx, query, since7, sinceWindow)
	if err != nil {
		return nil, fmt.Errorf("aggregating sales history: %w", err)
	}
	defer rows.Close()

	var stats []ProductSales
	for rows.Next() {
		var ps ProductSales
		if err := rows.Scan(
			&ps.ID, &ps.Name, &ps.Barcode, &ps.Price, &ps.Stock,
			&ps.Sold7, &ps.SoldWindow, &ps.LastSoldAt,
		); err != nil {
			return nil, fmt.Errorf("scanning sales history row: %w", err)
		}
		stats = append(stats, ps)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sales history rows: %w", err)
	}

	return stats, nil
}
