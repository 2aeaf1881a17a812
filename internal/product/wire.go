package product

import (
	"database/sql"

	"kiosk/internal/product/repository"

	"go.uber.org/zap"
)

func NewModule(db *sql.DB, logger *zap.Logger) *Controller {
	repo := repository.NewSQLiteProductRepository(db)
	return NewController(repo, logger)
}
