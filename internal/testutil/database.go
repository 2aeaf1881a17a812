package testutil

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"kiosk/internal/infrastructure/sqlite"
)

// NewTestDB opens an in-memory database with the full schema. Each call gets
// its own private database; Close runs via t.Cleanup.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:?_foreign_keys=on")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	// An in-memory database exists per connection; more than one would give
	// each test statement a different empty schema.
	db.SetMaxOpenConns(1)

	if err := sqlite.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func InsertMember(t *testing.T, db *sql.DB, name string) int64 {
	t.Helper()

	result, err := db.ExecContext(context.Background(), `INSERT INTO members (name) VALUES (?)`, name)
	if err != nil {
		t.Fatalf("failed to insert member: %v", err)
	}
	id, _ := result.LastInsertId()
	return id
}

func InsertProduct(t *testing.T, db *sql.DB, name string, barcode string, price, stock int) int64 {
	t.Helper()

	var bc interface{}
	if barcode != "" {
		bc = barcode
	}
	result, err := db.ExecContext(context.Background(),
		`INSERT INTO products (name, barcode, price, stock) VALUES (?, ?, ?, ?)`,
		name, bc, price, stock,
	)
	if err != nil {
		t.Fatalf("failed to insert product: %v", err)
	}
	id, _ := result.LastInsertId()
	return id
}

func InsertSaleEvent(t *testing.T, db *sql.DB, memberID int64, memberName string, productID int64, productName, timestamp string) int64 {
	t.Helper()

	result, err := db.ExecContext(context.Background(),
		`INSERT INTO sale_events (member_id, member_name, product_id, product_name, timestamp) VALUES (?, ?, ?, ?, ?)`,
		memberID, memberName, productID, productName, timestamp,
	)
	if err != nil {
		t.Fatalf("failed to insert sale event: %v", err)
	}
	id, _ := result.LastInsertId()
	return id
}

func ProductStock(t *testing.T, db *sql.DB, productID int64) int {
	t.Helper()

	var stock int
	if err := db.QueryRowContext(context.Background(), `SELECT stock FROM products WHERE id = ?`, productID).Scan(&stock); err != nil {
		t.Fatalf("failed to read product stock: %v", err)
	}
	return stock
}

func ProductPrice(t *testing.T, db *sql.DB, productID int64) int {
	t.Helper()

	var price int
	if err := db.QueryRowContext(context.Background(), `SELECT price FROM products WHERE id = ?`, productID).Scan(&price); err != nil {
		t.Fatalf("failed to read product price: %v", err)
	}
	return price
}

func CountRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()

	var n int
	if err := db.QueryRowContext(context.Background(), `SELECT COUNT(*) FROM `+table).Scan(&n); err != nil {
		t.Fatalf("failed to count rows in %s: %v", table, err)
	}
	return n
}
