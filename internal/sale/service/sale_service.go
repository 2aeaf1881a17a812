package service

import (
	"context"
	"database/sql"
	"fmt"

	"kiosk/internal/clock"
	"kiosk/internal/domain"
	apperrors "kiosk/internal/errors"

	"go.uber.org/zap"
)

type TransactionManager interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

type MemberRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Member, error)
	ListAll(ctx context.Context) ([]domain.Member, error)
}

type ProductRepository interface {
	FindByID(ctx context.Context, tx *sql.Tx, id int64) (*domain.Product, error)
	DecrementForSale(ctx context.Context, tx *sql.Tx, productID int64) error
	ClampNegativeStock(ctx context.Context, tx *sql.Tx) error
	ListAll(ctx context.Context) ([]domain.Product, error)
}

type SaleEventRepository interface {
	Insert(ctx context.Context, tx *sql.Tx, ev domain.SaleEvent) (int64, error)
}

type Snapshot struct {
	Members  []domain.Member
	Products []domain.Product
}

type SaleService struct {
	db       TransactionManager
	members  MemberRepository
	products ProductRepository
	sales    SaleEventRepository
	clock    clock.Clock
	logger   *zap.Logger
}

func NewSaleService(
	db TransactionManager,
	members MemberRepository,
	products ProductRepository,
	sales SaleEventRepository,
	clk clock.Clock,
	logger *zap.Logger,
) *SaleService {
	return &SaleService{
		db:       db,
		members:  members,
		products: products,
		sales:    sales,
		clock:    clk,
		logger:   logger,
	}
}

// Commit records one sale event per product id, decrements stock with a floor
// at zero, and returns fresh member and product snapshots. The whole batch is
// one transaction: an unknown product id anywhere in the list rolls back every
// already-staged event, including earlier items of the same call. All events
// in the batch share a single timestamp.
func (s *SaleService) Commit(ctx context.Context, memberID int64, productIDs []int64) (*Snapshot, error) {
	member, err := s.members.FindByID(ctx, memberID)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return nil, apperrors.NewValidationError("invalid memberId", apperrors.ValidationDetail{
				Field:   "memberId",
				Message: fmt.Sprintf("member %d does not exist", memberID),
			})
		}
		return nil, err
	}

	ts := clock.Timestamp(s.clock.Now())

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("failed to begin transaction", zap.Error(err))
		return nil, apperrors.NewInternalError("beginning sale transaction", err)
	}
	// Rollback after a successful commit is a no-op.
	defer tx.Rollback()

	for _, pid := range productIDs {
		product, err := s.products.FindByID(ctx, tx, pid)
		if err != nil {
			if _, ok := apperrors.IsNotFoundError(err); ok {
				s.logger.Warn("sale aborted, unknown product", zap.Int64("memberId", memberID), zap.Int64("productId", pid))
				return nil, apperrors.NewValidationError("unknown productId", apperrors.ValidationDetail{
					Field:   "productIds",
					Message: fmt.Sprintf("product %d does not exist", pid),
				})
			}
			return nil, err
		}

		ev := domain.SaleEvent{
			MemberID:    memberID,
			MemberName:  member.Name,
			ProductID:   pid,
			ProductName: product.Name,
			Timestamp:   ts,
		}
		if _, err := s.sales.Insert(ctx, tx, ev); err != nil {
			return nil, apperrors.NewInternalError("staging sale event", err)
		}

		if err := s.products.DecrementForSale(ctx, tx, pid); err != nil {
			return nil, apperrors.NewInternalError("decrementing stock", err)
		}
	}

	if err := s.products.ClampNegativeStock(ctx, tx); err != nil {
		return nil, apperrors.NewInternalError("clamping stock", err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("failed to commit sale", zap.Int64("memberId", memberID), zap.Error(err))
		return nil, apperrors.NewInternalError("committing sale transaction", err)
	}

	s.logger.Info("sale committed", zap.Int64("memberId", memberID), zap.Int("itemCount", len(productIDs)))

	members, err := s.members.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.products.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return &Snapshot{Members: members, Products: products}, nil
}
