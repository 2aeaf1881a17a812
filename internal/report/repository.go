package report

import (
	"context"
	"database/sql"
	"fmt"

	"kiosk/internal/dto"
)

type SQLiteSettlementRepository struct {
	db *sql.DB
}

func NewSQLiteSettlementRepository(db *sql.DB) *SQLiteSettlementRepository {
	return &SQLiteSettlementRepository{db: db}
}

// MonthlySettlements sums the current product price over each member's sale
// events in the given local month. Every member appears, zero when they
// bought nothing.
func (r *SQLiteSettlementRepository) MonthlySettlements(ctx context.Context, year, month string) ([]dto.SettlementRow, error) {
	query := `
		SELECT
			m.id,
			m.name,
			COALESCE((
				SELECT SUM(pr.price)
				FROM sale_events s
				JOIN products pr ON pr.id = s.product_id
				WHERE s.member_id = m.id
				  AND strftime('%Y', s.timestamp) = ?
				  AND strftime('%m', s.timestamp) = ?
			), 0) AS settlement
		FROM members m
		ORDER BY m.id`

	rows, err := r.db.QueryContext(ctx, query, year, month)
	if err != nil {
		return nil, fmt.Errorf("querying monthly settlements: %w", err)
	}
	defer rows.Close()

	var settlements []dto.SettlementRow
	for rows.Next() {
		var row dto.SettlementRow
		if err := rows.Scan(&row.MemberID, &row.MemberName, &row.Settlement); err != nil {
			return nil, fmt.Errorf("scanning settlement row: %w", err)
		}
		settlements = append(settlements, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating settlement rows: %w", err)
	}

	return settlements, nil
}
