package service

import (
	"context"
	"database/sql"
	"strings"

	"kiosk/internal/clock"
	"kiosk/internal/domain"
	"kiosk/internal/dto"
	apperrors "kiosk/internal/errors"

	"go.uber.org/zap"
)

type TransactionManager interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

// OrderTextParser is the opaque upstream collaborator that turns raw order
// text into structured line items. An empty slice means nothing extracted.
type OrderTextParser interface {
	Parse(text string) []dto.RestockItem
}

type ProductRepository interface {
	FindByBarcode(ctx context.Context, tx *sql.Tx, barcode string) (*domain.Product, error)
	Insert(ctx context.Context, tx *sql.Tx, p domain.Product) (int64, error)
	AdjustStock(ctx context.Context, tx *sql.Tx, productID int64, delta int, newPrice *int) error
}

type RestockEventRepository interface {
	Insert(ctx context.Context, tx *sql.Tx, ev domain.RestockEvent) (int64, error)
	FindByID(ctx context.Context, tx *sql.Tx, id int64) (*domain.RestockEvent, error)
	Update(ctx context.Context, tx *sql.Tx, id int64, ev domain.RestockEvent) error
	Delete(ctx context.Context, tx *sql.Tx, id int64) error
	ListAll(ctx context.Context, descending bool) ([]domain.RestockEvent, error)
}

// RestockService keeps Product in sync with the restock_events log. It is the
// only log whose rows can be edited or deleted, so every structural change to
// a row re-derives the net ledger effect instead of trusting the ledger to
// already reflect the edit. Manual edits do not floor stock at zero; only the
// sale path does.
type RestockService struct {
	db       TransactionManager
	parser   OrderTextParser
	products ProductRepository
	restocks RestockEventRepository
	clock    clock.Clock
	logger   *zap.Logger
}

func NewRestockService(
	db TransactionManager,
	parser OrderTextParser,
	products ProductRepository,
	restocks RestockEventRepository,
	clk clock.Clock,
	logger *zap.Logger,
) *RestockService {
	return &RestockService{
		db:       db,
		parser:   parser,
		products: products,
		restocks: restocks,
		clock:    clk,
		logger:   logger,
	}
}

// Import applies a parsed batch of restock line items in one transaction.
// Known barcodes get the item's price and quantity added to stock; unknown
// barcodes become new products with initial stock equal to the quantity. A
// barcode repeated within one batch accumulates once per occurrence.
func (s *RestockService) Import(ctx context.Context, rawText string) (int, error) {
	if strings.TrimSpace(rawText) == "" {
		return 0, apperrors.NewEmptyInputError("import text is empty")
	}

	items := s.parser.Parse(rawText)
	if len(items) == 0 {
		return 0, apperrors.NewEmptyInputError("no items extracted from import text")
	}

	ts := clock.Timestamp(s.clock.Now())

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("failed to begin transaction", zap.Error(err))
		return 0, apperrors.NewInternalError("beginning import transaction", err)
	}
	defer tx.Rollback()

	for _, item := range items {
		productID, err := s.upsertProduct(ctx, tx, item)
		if err != nil {
			return 0, err
		}

		ev := domain.RestockEvent{
			ProductID:   productID,
			ProductName: item.ProductName,
			Barcode:     item.Barcode,
			UnitPrice:   item.UnitPrice,
			Price:       item.Price,
			Quantity:    item.Quantity,
			Subtotal:    item.Subtotal,
			Timestamp:   ts,
		}
		if _, err := s.restocks.Insert(ctx, tx, ev); err != nil {
			return 0, apperrors.NewInternalError("staging restock event", err)
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("failed to commit import", zap.Error(err))
		return 0, apperrors.NewInternalError("committing import transaction", err)
	}

	s.logger.Info("restock batch imported", zap.Int("itemCount", len(items)))

	return len(items), nil
}

func (s *RestockService) upsertProduct(ctx context.Context, tx *sql.Tx, item dto.RestockItem) (int64, error) {
	product, err := s.products.FindByBarcode(ctx, tx, item.Barcode)
	if err == nil {
		price := item.Price
		if err := s.products.AdjustStock(ctx, tx, product.ID, item.Quantity, &price); err != nil {
			return 0, apperrors.NewInternalError("adjusting stock for import", err)
		}
		return product.ID, nil
	}
	if _, ok := apperrors.IsNotFoundError(err); !ok {
		return 0, apperrors.NewInternalError("looking up product by barcode", err)
	}

	barcode := item.Barcode
	id, err := s.products.Insert(ctx, tx, domain.Product{
		Name:    item.ProductName,
		Barcode: &barcode,
		Price:   item.Price,
		Stock:   item.Quantity,
	})
	if err != nil {
		return 0, apperrors.NewInternalError("creating product for import", err)
	}
	return id, nil
}

// CreateEntry inserts one manual restock-history row and applies its effect
// to the ledger. A missing product id is resolved via barcode, or a new
// product is created with zero starting stock before the row exists.
func (s *RestockService) CreateEntry(ctx context.Context, row dto.RestockEntryRequest) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, apperrors.NewInternalError("beginning transaction", err)
	}
	defer tx.Rollback()

	productID := row.ProductID
	if productID == 0 && row.Barcode != "" {
		found, err := s.products.FindByBarcode(ctx, tx, row.Barcode)
		if err == nil {
			productID = found.ID
		} else if _, ok := apperrors.IsNotFoundError(err); !ok {
			return 0, apperrors.NewInternalError("looking up product by barcode", err)
		}
	}
	if productID == 0 {
		name := row.ProductName
		if name == "" {
			name = "new product"
		}
		p := domain.Product{Name: name, Price: intOrZero(row.Price), Stock: 0}
		if row.Barcode != "" {
			barcode := row.Barcode
			p.Barcode = &barcode
		}
		productID, err = s.products.Insert(ctx, tx, p)
		if err != nil {
			return 0, apperrors.NewInternalError("creating product for restock entry", err)
		}
	}

	if err := s.products.AdjustStock(ctx, tx, productID, row.Quantity, row.Price); err != nil {
		return 0, apperrors.NewInternalError("applying restock entry to ledger", err)
	}

	id, err := s.restocks.Insert(ctx, tx, s.toEvent(productID, row))
	if err != nil {
		return 0, apperrors.NewInternalError("inserting restock entry", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, apperrors.NewInternalError("committing transaction", err)
	}

	s.logger.Info("restock entry created", zap.Int64("id", id), zap.Int64("productId", productID), zap.Int("quantity", row.Quantity))

	return id, nil
}

// UpdateEntry persists new row values and re-derives the ledger effect. When
// the product id changes, the old row's effect is reversed on the old product
// and the new row's full effect applied to the new one; otherwise only the
// quantity difference is applied.
func (s *RestockService) UpdateEntry(ctx context.Context, id int64, row dto.RestockEntryRequest) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return apperrors.NewInternalError("beginning transaction", err)
	}
	defer tx.Rollback()

	old, err := s.restocks.FindByID(ctx, tx, id)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return err
		}
		return apperrors.NewInternalError("loading restock entry", err)
	}

	if old.ProductID != row.ProductID {
		if err := s.products.AdjustStock(ctx, tx, old.ProductID, -old.Quantity, nil); err != nil {
			return apperrors.NewInternalError("reversing old restock effect", err)
		}
		if err := s.products.AdjustStock(ctx, tx, row.ProductID, row.Quantity, row.Price); err != nil {
			return apperrors.NewInternalError("applying new restock effect", err)
		}
	} else {
		diff := row.Quantity - old.Quantity
		if err := s.products.AdjustStock(ctx, tx, row.ProductID, diff, row.Price); err != nil {
			return apperrors.NewInternalError("applying restock difference", err)
		}
	}

	if err := s.restocks.Update(ctx, tx, id, s.toEvent(row.ProductID, row)); err != nil {
		return apperrors.NewInternalError("updating restock entry", err)
	}

	if err := tx.Commit(); err != nil {
		return apperrors.NewInternalError("committing transaction", err)
	}

	s.logger.Info("restock entry updated", zap.Int64("id", id), zap.Int64("productId", row.ProductID))

	return nil
}

// DeleteEntry reverses the row's ledger effect before removing the row.
func (s *RestockService) DeleteEntry(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return apperrors.NewInternalError("beginning transaction", err)
	}
	defer tx.Rollback()

	old, err := s.restocks.FindByID(ctx, tx, id)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return err
		}
		return apperrors.NewInternalError("loading restock entry", err)
	}

	if err := s.products.AdjustStock(ctx, tx, old.ProductID, -old.Quantity, nil); err != nil {
		return apperrors.NewInternalError("reversing restock effect", err)
	}

	if err := s.restocks.Delete(ctx, tx, id); err != nil {
		return apperrors.NewInternalError("deleting restock entry", err)
	}

	if err := tx.Commit(); err != nil {
		return apperrors.NewInternalError("committing transaction", err)
	}

	s.logger.Info("restock entry deleted", zap.Int64("id", id), zap.Int64("productId", old.ProductID), zap.Int("quantity", old.Quantity))

	return nil
}

func (s *RestockService) ListEntries(ctx context.Context, descending bool) ([]domain.RestockEvent, error) {
	return s.restocks.ListAll(ctx, descending)
}

func (s *RestockService) toEvent(productID int64, row dto.RestockEntryRequest) domain.RestockEvent {
	ts := row.Timestamp
	if ts == "" {
		ts = clock.Timestamp(s.clock.Now())
	}
	return domain.RestockEvent{
		ProductID:   productID,
		ProductName: row.ProductName,
		Barcode:     row.Barcode,
		UnitPrice:   intOrZero(row.UnitPrice),
		Price:       intOrZero(row.Price),
		Quantity:    row.Quantity,
		Subtotal:    intOrZero(row.Subtotal),
		Timestamp:   ts,
	}
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
