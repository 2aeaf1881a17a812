package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"kiosk/internal/clock"
	"kiosk/internal/dto"
	apperrors "kiosk/internal/errors"
	productrepo "kiosk/internal/product/repository"
	restockrepo "kiosk/internal/restock/repository"
	"kiosk/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testInstant = time.Date(2026, 5, 20, 3, 0, 0, 0, time.UTC)

// fakeParser satisfies OrderTextParser with canned items.
type fakeParser struct {
	items []dto.RestockItem
}

func (f *fakeParser) Parse(string) []dto.RestockItem {
	return f.items
}

func newTestRestockService(db *sql.DB, parser OrderTextParser) *RestockService {
	return NewRestockService(
		db,
		parser,
		productrepo.NewSQLiteProductRepository(db),
		restockrepo.NewSQLiteRestockEventRepository(db),
		clock.Fixed{T: testInstant},
		zap.NewNop(),
	)
}

func item(barcode, name string, price, qty int) dto.RestockItem {
	return dto.RestockItem{
		Barcode:     barcode,
		ProductName: name,
		Price:       price,
		UnitPrice:   price,
		Quantity:    qty,
		Subtotal:    price * qty,
	}
}

func intPtr(v int) *int {
	return &v
}

func TestImport_CreatesAndUpdatesProducts(t *testing.T) {
	db := testutil.NewTestDB(t)
	existing := testutil.InsertProduct(t, db, "cola", "490001", 100, 4)

	svc := newTestRestockService(db, &fakeParser{items: []dto.RestockItem{
		item("490001", "cola", 110, 6),
		item("490009", "new tea", 90, 12),
	}})

	imported, err := svc.Import(context.Background(), "order text")
	require.NoError(t, err)
	assert.Equal(t, 2, imported)

	assert.Equal(t, 10, testutil.ProductStock(t, db, existing))
	assert.Equal(t, 110, testutil.ProductPrice(t, db, existing))

	var newStock, newPrice int
	require.NoError(t, db.QueryRow(`SELECT stock, price FROM products WHERE barcode = '490009'`).Scan(&newStock, &newPrice))
	assert.Equal(t, 12, newStock)
	assert.Equal(t, 90, newPrice)

	assert.Equal(t, 2, testutil.CountRows(t, db, "restock_events"))
}

func TestImport_DuplicateBarcodeAccumulates(t *testing.T) {
	db := testutil.NewTestDB(t)
	pid := testutil.InsertProduct(t, db, "cola", "490001", 100, 0)

	svc := newTestRestockService(db, &fakeParser{items: []dto.RestockItem{
		item("490001", "cola", 100, 3),
		item("490001", "cola", 100, 5),
	}})

	imported, err := svc.Import(context.Background(), "order text")
	require.NoError(t, err)
	assert.Equal(t, 2, imported)

	// Two additions, not an overwrite.
	assert.Equal(t, 8, testutil.ProductStock(t, db, pid))
	assert.Equal(t, 2, testutil.CountRows(t, db, "restock_events"))
}

func TestImport_EmptyTextFailsBeforeParsing(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := newTestRestockService(db, &fakeParser{items: []dto.RestockItem{item("x", "y", 1, 1)}})

	_, err := svc.Import(context.Background(), "   ")
	_, ok := apperrors.IsEmptyInputError(err)
	assert.True(t, ok)
	assert.Equal(t, 0, testutil.CountRows(t, db, "restock_events"))
}

func TestImport_NoItemsExtracted(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := newTestRestockService(db, &fakeParser{})

	_, err := svc.Import(context.Background(), "some text")
	_, ok := apperrors.IsEmptyInputError(err)
	assert.True(t, ok)
	assert.Equal(t, 0, testutil.CountRows(t, db, "restock_events"))
}

func TestCreateEntry_WithExplicitProduct(t *testing.T) {
	db := testutil.NewTestDB(t)
	pid := testutil.InsertProduct(t, db, "cola", "490001", 100, 2)
	svc := newTestRestockService(db, &fakeParser{})

	id, err := svc.CreateEntry(context.Background(), dto.RestockEntryRequest{
		ProductID: pid,
		Quantity:  7,
		Price:     intPtr(130),
	})
	require.NoError(t, err)
	assert.Greater(t, id, int64(0))

	assert.Equal(t, 9, testutil.ProductStock(t, db, pid))
	assert.Equal(t, 130, testutil.ProductPrice(t, db, pid))
}

func TestCreateEntry_ResolvesProductByBarcode(t *testing.T) {
	db := testutil.NewTestDB(t)
	pid := testutil.InsertProduct(t, db, "cola", "490001", 100, 2)
	svc := newTestRestockService(db, &fakeParser{})

	_, err := svc.CreateEntry(context.Background(), dto.RestockEntryRequest{
		Barcode:  "490001",
		Quantity: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, 5, testutil.ProductStock(t, db, pid))
}

func TestCreateEntry_CreatesProductWithDefaultName(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := newTestRestockService(db, &fakeParser{})

	_, err := svc.CreateEntry(context.Background(), dto.RestockEntryRequest{
		Quantity: 4,
		Price:    intPtr(80),
	})
	require.NoError(t, err)

	var name string
	var stock int
	require.NoError(t, db.QueryRow(`SELECT name, stock FROM products`).Scan(&name, &stock))
	assert.Equal(t, "new product", name)
	// Created with zero stock, then the entry's quantity applied.
	assert.Equal(t, 4, stock)
}

func TestUpdateEntry_QuantityDifferenceOnly(t *testing.T) {
	db := testutil.NewTestDB(t)
	pid := testutil.InsertProduct(t, db, "cola", "490001", 100, 2)
	svc := newTestRestockService(db, &fakeParser{})

	id, err := svc.CreateEntry(context.Background(), dto.RestockEntryRequest{ProductID: pid, Quantity: 5})
	require.NoError(t, err)
	require.Equal(t, 7, testutil.ProductStock(t, db, pid))

	err = svc.UpdateEntry(context.Background(), id, dto.RestockEntryRequest{ProductID: pid, Quantity: 2})
	require.NoError(t, err)

	assert.Equal(t, 4, testutil.ProductStock(t, db, pid))
}

func TestUpdateEntry_ProductChangeMovesFullEffect(t *testing.T) {
	db := testutil.NewTestDB(t)
	p1 := testutil.InsertProduct(t, db, "cola", "490001", 100, 0)
	p2 := testutil.InsertProduct(t, db, "chips", "490002", 200, 0)
	svc := newTestRestockService(db, &fakeParser{})

	id, err := svc.CreateEntry(context.Background(), dto.RestockEntryRequest{ProductID: p1, Quantity: 6})
	require.NoError(t, err)
	require.Equal(t, 6, testutil.ProductStock(t, db, p1))

	err = svc.UpdateEntry(context.Background(), id, dto.RestockEntryRequest{ProductID: p2, Quantity: 6, Price: intPtr(210)})
	require.NoError(t, err)

	assert.Equal(t, 0, testutil.ProductStock(t, db, p1))
	assert.Equal(t, 6, testutil.ProductStock(t, db, p2))
	assert.Equal(t, 210, testutil.ProductPrice(t, db, p2))
}

func TestDeleteEntry_ReversesEffect(t *testing.T) {
	db := testutil.NewTestDB(t)
	pid := testutil.InsertProduct(t, db, "cola", "490001", 100, 2)
	svc := newTestRestockService(db, &fakeParser{})

	id, err := svc.CreateEntry(context.Background(), dto.RestockEntryRequest{ProductID: pid, Quantity: 5})
	require.NoError(t, err)
	require.Equal(t, 7, testutil.ProductStock(t, db, pid))

	require.NoError(t, svc.DeleteEntry(context.Background(), id))

	// Round-trip law: create then delete restores the pre-edit stock.
	assert.Equal(t, 2, testutil.ProductStock(t, db, pid))
	assert.Equal(t, 0, testutil.CountRows(t, db, "restock_events"))
}

func TestUpdateEntry_RoundTripRestoresStock(t *testing.T) {
	db := testutil.NewTestDB(t)
	pid := testutil.InsertProduct(t, db, "cola", "490001", 100, 2)
	svc := newTestRestockService(db, &fakeParser{})

	id, err := svc.CreateEntry(context.Background(), dto.RestockEntryRequest{ProductID: pid, Quantity: 5})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateEntry(context.Background(), id, dto.RestockEntryRequest{ProductID: pid, Quantity: 9}))
	require.NoError(t, svc.UpdateEntry(context.Background(), id, dto.RestockEntryRequest{ProductID: pid, Quantity: 5}))

	assert.Equal(t, 7, testutil.ProductStock(t, db, pid))
}

func TestDeleteEntry_CanPushStockNegative(t *testing.T) {
	db := testutil.NewTestDB(t)
	pid := testutil.InsertProduct(t, db, "cola", "490001", 100, 2)
	svc := newTestRestockService(db, &fakeParser{})

	id, err := svc.CreateEntry(context.Background(), dto.RestockEntryRequest{ProductID: pid, Quantity: 5})
	require.NoError(t, err)

	// Sell down below the entry's quantity, then delete the entry. Manual
	// edits are deliberately not floored, unlike sales.
	_, err = db.Exec(`UPDATE products SET stock = 1 WHERE id = ?`, pid)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteEntry(context.Background(), id))

	assert.Equal(t, -4, testutil.ProductStock(t, db, pid))
}

func TestUpdateEntry_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := newTestRestockService(db, &fakeParser{})

	err := svc.UpdateEntry(context.Background(), 42, dto.RestockEntryRequest{Quantity: 1})
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)

	err = svc.DeleteEntry(context.Background(), 42)
	_, ok = apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestListEntries_Ordering(t *testing.T) {
	db := testutil.NewTestDB(t)
	pid := testutil.InsertProduct(t, db, "cola", "490001", 100, 0)
	svc := newTestRestockService(db, &fakeParser{})

	first, err := svc.CreateEntry(context.Background(), dto.RestockEntryRequest{ProductID: pid, Quantity: 1})
	require.NoError(t, err)
	second, err := svc.CreateEntry(context.Background(), dto.RestockEntryRequest{ProductID: pid, Quantity: 2})
	require.NoError(t, err)

	asc, err := svc.ListEntries(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, asc, 2)
	assert.Equal(t, first, asc[0].ID)

	desc, err := svc.ListEntries(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, second, desc[0].ID)
}
