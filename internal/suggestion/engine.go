package suggestion

import (
	"math"
	"sort"

	"kiosk/internal/dto"
)

const (
	DefaultWindowDays = 30
	DefaultLimit      = 100
	MaxLimit          = 500
	DefaultTargetDays = 14
	DefaultSafetyDays = 3
	DefaultMinSold    = 1

	// ShortWindowDays is the fixed secondary window used to detect trending
	// products independently of the configurable long window.
	ShortWindowDays = 7

	// SupplySentinel stands in for "effectively unlimited" days of supply:
	// stock on hand but no sales velocity to burn it down.
	SupplySentinel = 9999
)

type Config struct {
	WindowDays                 int
	Limit                      int
	TargetDays                 int
	SafetyDays                 int
	MinSold                    int
	IncludeZeroVelocityWhenOOS bool
}

func DefaultConfig() Config {
	return Config{
		WindowDays: DefaultWindowDays,
		Limit:      DefaultLimit,
		TargetDays: DefaultTargetDays,
		SafetyDays: DefaultSafetyDays,
		MinSold:    DefaultMinSold,
	}
}

// normalized coerces malformed numeric values to their defaults instead of
// failing; the engine never errors on config input.
func (c Config) normalized() Config {
	if c.WindowDays <= 0 {
		c.WindowDays = DefaultWindowDays
	}
	if c.Limit <= 0 {
		c.Limit = DefaultLimit
	}
	if c.Limit > MaxLimit {
		c.Limit = MaxLimit
	}
	if c.TargetDays <= 0 {
		c.TargetDays = DefaultTargetDays
	}
	if c.SafetyDays < 0 {
		c.SafetyDays = DefaultSafetyDays
	}
	if c.MinSold < 0 {
		c.MinSold = DefaultMinSold
	}
	return c
}

// ProductSales is one product's aggregated sales history: unit counts over
// the short and long windows plus current stock.
type ProductSales struct {
	ID         int64
	Name       string
	Barcode    string
	Price      int
	Stock      int
	Sold7      int
	SoldWindow int
	LastSoldAt string
}

// Rank derives reorder recommendations from aggregated history. Velocity is
// the faster of the two window averages (a product selling harder this week
// than over the long window is trending). The suggested quantity builds
// toward targetDays plus safetyDays of supply. Pure function; performs no
// reads or writes itself.
func Rank(cfg Config, rows []ProductSales) []dto.Suggestion {
	cfg = cfg.normalized()

	suggestions := make([]dto.Suggestion, 0, len(rows))
	for _, r := range rows {
		avg7 := float64(r.Sold7) / float64(ShortWindowDays)
		avgN := float64(r.SoldWindow) / float64(cfg.WindowDays)

		trending := avg7 > avgN
		velocity := avgN
		if trending {
			velocity = avg7
		}

		outOfStock := r.Stock <= 0

		var daysOfSupply float64
		switch {
		case velocity > 0:
			daysOfSupply = float64(r.Stock) / velocity
		case outOfStock:
			daysOfSupply = 0
		default:
			daysOfSupply = SupplySentinel
		}

		targetQty := velocity*float64(cfg.TargetDays+cfg.SafetyDays) - float64(r.Stock)
		suggestedQty := int(math.Ceil(math.Max(0, targetQty)))
		if outOfStock && velocity == 0 && cfg.IncludeZeroVelocityWhenOOS && suggestedQty < 1 {
			suggestedQty = 1
		}

		var reason string
		switch {
		case outOfStock:
			reason = "out of stock"
		case velocity > 0 && daysOfSupply < float64(cfg.TargetDays):
			reason = "low days of supply"
		case trending:
			reason = "trending"
		}

		if suggestedQty <= 0 {
			continue
		}
		if r.SoldWindow < cfg.MinSold && !(cfg.IncludeZeroVelocityWhenOOS && outOfStock) {
			continue
		}

		if daysOfSupply != SupplySentinel {
			daysOfSupply = math.Round(daysOfSupply*10) / 10
		}

		suggestions = append(suggestions, dto.Suggestion{
			ID:             r.ID,
			Name:           r.Name,
			Barcode:        r.Barcode,
			Price:          r.Price,
			Stock:          r.Stock,
			Sold7d:         r.Sold7,
			SoldWindow:     r.SoldWindow,
			WindowDays:     cfg.WindowDays,
			VelocityPerDay: math.Round(velocity*1000) / 1000,
			DaysOfSupply:   daysOfSupply,
			LastSoldAt:     r.LastSoldAt,
			SuggestedQty:   suggestedQty,
			Reason:         reason,
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].SuggestedQty > suggestions[j].SuggestedQty
	})

	if len(suggestions) > cfg.Limit {
		suggestions = suggestions[:cfg.Limit]
	}

	return suggestions
}
