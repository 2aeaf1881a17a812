package suggestion

import (
	"database/sql"

	"kiosk/internal/clock"

	"go.uber.org/zap"
)

func NewModule(db *sql.DB, clk clock.Clock, logger *zap.Logger) *Controller {
	repo := NewSQLiteStatsRepository(db)
	return NewController(repo, clk, logger)
}
