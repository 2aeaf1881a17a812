package suggestion

import (
	"context"
	"testing"
	"time"

	"kiosk/internal/clock"
	"kiosk/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate_CountsPerWindow(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteStatsRepository(db)

	now := time.Date(2026, 5, 20, 3, 0, 0, 0, time.UTC)
	mid := testutil.InsertMember(t, db, "alice")
	pid := testutil.InsertProduct(t, db, "cola", "490001", 120, 5)
	quiet := testutil.InsertProduct(t, db, "tea", "490002", 90, 3)

	// Two sales inside the 7-day window, one more inside 30 days, one outside.
	testutil.InsertSaleEvent(t, db, mid, "alice", pid, "cola", clock.DaysAgo(now, 1))
	testutil.InsertSaleEvent(t, db, mid, "alice", pid, "cola", clock.DaysAgo(now, 6))
	testutil.InsertSaleEvent(t, db, mid, "alice", pid, "cola", clock.DaysAgo(now, 20))
	testutil.InsertSaleEvent(t, db, mid, "alice", pid, "cola", clock.DaysAgo(now, 40))

	rows, err := repo.Aggregate(context.Background(), clock.DaysAgo(now, 7), clock.DaysAgo(now, 30))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byID := map[int64]ProductSales{}
	for _, r := range rows {
		byID[r.ID] = r
	}

	cola := byID[pid]
	assert.Equal(t, 2, cola.Sold7)
	assert.Equal(t, 3, cola.SoldWindow)
	assert.Equal(t, clock.DaysAgo(now, 1), cola.LastSoldAt)
	assert.Equal(t, 5, cola.Stock)

	// Products with no sales still appear, zeroed.
	teaRow := byID[quiet]
	assert.Equal(t, 0, teaRow.Sold7)
	assert.Equal(t, 0, teaRow.SoldWindow)
	assert.Equal(t, "", teaRow.LastSoldAt)
}
