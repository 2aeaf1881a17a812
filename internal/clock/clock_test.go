package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimestamp_FixedOffset(t *testing.T) {
	// 2026-03-01 23:30:15 UTC is 2026-03-02 08:30:15 at +9h.
	instant := time.Date(2026, 3, 1, 23, 30, 15, 0, time.UTC)

	assert.Equal(t, "2026-03-02 08:30:15", Timestamp(instant))
}

func TestTimestamp_TruncatesSubSecond(t *testing.T) {
	instant := time.Date(2026, 3, 1, 12, 0, 0, 999_000_000, time.UTC)

	assert.Equal(t, "2026-03-01 21:00:00", Timestamp(instant))
}

func TestDaysAgo(t *testing.T) {
	instant := time.Date(2026, 3, 10, 3, 0, 0, 0, time.UTC)

	assert.Equal(t, "2026-03-03 12:00:00", DaysAgo(instant, 7))
	assert.Equal(t, "2026-03-10 12:00:00", DaysAgo(instant, 0))
}

func TestFixedClock(t *testing.T) {
	instant := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c := Fixed{T: instant}

	assert.Equal(t, instant, c.Now())
	assert.Equal(t, instant, c.Now())
}
