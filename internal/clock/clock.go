package clock

import (
	"fmt"
	"time"
)

// Timestamps are persisted as local strings in a fixed nine-hour offset from
// UTC, second precision. Instants stay time.Time inside the process; the
// string form exists only at the log-insert boundary and in query windows.
const Layout = "2006-01-02 15:04:05"

var location = time.FixedZone("UTC+9", 9*60*60)

type Clock interface {
	Now() time.Time
}

// System is the production clock.
type System struct{}

func (System) Now() time.Time {
	return time.Now()
}

// Fixed always reports the same instant. Tests inject it to make every
// time-windowed computation deterministic.
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time {
	return f.T
}

// Timestamp renders t in the fixed local offset, truncated to seconds.
func Timestamp(t time.Time) string {
	return t.In(location).Format(Layout)
}

// DaysAgo renders the instant n days before t, same format.
func DaysAgo(t time.Time, n int) string {
	return Timestamp(t.Add(-time.Duration(n) * 24 * time.Hour))
}

// YearMonth reports t's local year and zero-padded month as strings, the
// shape strftime produces when filtering the stored timestamps.
func YearMonth(t time.Time) (string, string) {
	lt := t.In(location)
	return fmt.Sprintf("%04d", lt.Year()), fmt.Sprintf("%02d", int(lt.Month()))
}
