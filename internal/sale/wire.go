package sale

import (
	"database/sql"

	"kiosk/internal/clock"
	memberrepo "kiosk/internal/member/repository"
	productrepo "kiosk/internal/product/repository"
	"kiosk/internal/sale/controller"
	salerepo "kiosk/internal/sale/repository"
	"kiosk/internal/sale/service"

	"go.uber.org/zap"
)

func NewModule(db *sql.DB, clk clock.Clock, logger *zap.Logger) *controller.SaleController {
	memberRepo := memberrepo.NewSQLiteMemberRepository(db)
	productRepo := productrepo.NewSQLiteProductRepository(db)
	saleRepo := salerepo.NewSQLiteSaleEventRepository(db)

	svc := service.NewSaleService(db, memberRepo, productRepo, saleRepo, clk, logger)

	return controller.NewSaleController(svc, logger)
}
