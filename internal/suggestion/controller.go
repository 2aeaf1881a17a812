package suggestion

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"kiosk/internal/clock"
	"kiosk/internal/dto"

	"go.uber.org/zap"
)

type StatsRepository interface {
	Aggregate(ctx context.Context, since7, sinceWindow string) ([]ProductSales, error)
}

// Controller serves the reorder recommendation listing. The engine reads a
// point-in-time snapshot and performs no writes, so requests can run
// alongside sale and restock commits; the output is advisory.
type Controller struct {
	stats  StatsRepository
	clock  clock.Clock
	logger *zap.Logger
}

func NewController(stats StatsRepository, clk clock.Clock, logger *zap.Logger) *Controller {
	return &Controller{
		stats:  stats,
		clock:  clk,
		logger: logger,
	}
}

func (c *Controller) HandleSuggestions(w http.ResponseWriter, r *http.Request) {
	cfg := parseConfig(r)

	now := c.clock.Now()
	since7 := clock.DaysAgo(now, ShortWindowDays)
	sinceWindow := clock.DaysAgo(now, cfg.WindowDays)

	rows, err := c.stats.Aggregate(r.Context(), since7, sinceWindow)
	if err != nil {
		c.logger.Error("suggestion aggregation failed", zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "INTERNAL_ERROR",
			"message": "an unexpected error occurred",
		})
		return
	}

	suggestions := Rank(cfg, rows)

	c.writeJSON(w, http.StatusOK, dto.SuggestionsResponse{
		Suggestions: suggestions,
		Meta: dto.SuggestionMeta{
			Days:       cfg.WindowDays,
			TargetDays: cfg.TargetDays,
			SafetyDays: cfg.SafetyDays,
			MinSold:    cfg.MinSold,
			Limit:      cfg.Limit,
		},
	})
}

// parseConfig reads the query parameters, coercing anything malformed to its
// default instead of rejecting the request.
func parseConfig(r *http.Request) Config {
	cfg := DefaultConfig()
	q := r.URL.Query()

	cfg.WindowDays = intParam(q.Get("days"), cfg.WindowDays)
	cfg.Limit = intParam(q.Get("limit"), cfg.Limit)
	cfg.TargetDays = intParam(q.Get("targetDays"), cfg.TargetDays)
	cfg.SafetyDays = intParam(q.Get("safetyDays"), cfg.SafetyDays)
	cfg.MinSold = intParam(q.Get("minSold"), cfg.MinSold)
	cfg.IncludeZeroVelocityWhenOOS = q.Get("includeOOS") == "true"

	return cfg.normalized()
}

func intParam(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
