package sqlite

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"kiosk/internal/config"
)

// NewConnection opens the embedded store and migrates the schema. Use
// ":memory:" as the path for a throwaway database. WAL keeps readers from
// blocking behind the single writer; the busy timeout covers short writer
// contention instead of surfacing SQLITE_BUSY.
func NewConnection(cfg config.DatabaseConfig) (*sql.DB, error) {
	dsn := fmt.Sprintf("%s?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000", cfg.Path)

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating database: %w", err)
	}

	return db, nil
}

// Migrate creates the schema. Timestamps are stored as fixed-offset local
// strings (clock.Layout), which makes the windowed aggregation queries plain
// lexicographic comparisons.
func Migrate(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS members (
		id   INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS products (
		id      INTEGER PRIMARY KEY AUTOINCREMENT,
		name    TEXT NOT NULL,
		barcode TEXT UNIQUE,
		price   INTEGER NOT NULL DEFAULT 0,
		stock   INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS sale_events (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		member_id    INTEGER NOT NULL,
		member_name  TEXT NOT NULL,
		product_id   INTEGER NOT NULL,
		product_name TEXT NOT NULL,
		timestamp    TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS restock_events (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		product_id   INTEGER NOT NULL,
		product_name TEXT NOT NULL DEFAULT '',
		barcode      TEXT NOT NULL DEFAULT '',
		unit_price   INTEGER NOT NULL DEFAULT 0,
		price        INTEGER NOT NULL DEFAULT 0,
		quantity     INTEGER NOT NULL DEFAULT 0,
		subtotal     INTEGER NOT NULL DEFAULT 0,
		timestamp    TEXT NOT NULL DEFAULT ''
	);

	CREATE INDEX IF NOT EXISTS idx_sale_events_product_ts ON sale_events(product_id, timestamp);
	CREATE INDEX IF NOT EXISTS idx_sale_events_member ON sale_events(member_id);
	CREATE INDEX IF NOT EXISTS idx_restock_events_product ON restock_events(product_id);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	return nil
}
