package restock

import (
	"database/sql"

	"kiosk/internal/clock"
	productrepo "kiosk/internal/product/repository"
	"kiosk/internal/restock/controller"
	restockrepo "kiosk/internal/restock/repository"
	"kiosk/internal/restock/service"

	"go.uber.org/zap"
)

func NewModule(db *sql.DB, parser service.OrderTextParser, clk clock.Clock, logger *zap.Logger) *controller.RestockController {
	productRepo := productrepo.NewSQLiteProductRepository(db)
	restockRepo := restockrepo.NewSQLiteRestockEventRepository(db)

	svc := service.NewRestockService(db, parser, productRepo, restockRepo, clk, logger)

	return controller.NewRestockController(svc, logger)
}
