package report

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"kiosk/internal/clock"
	"kiosk/internal/dto"

	"go.uber.org/zap"
)

type SettlementRepository interface {
	MonthlySettlements(ctx context.Context, year, month string) ([]dto.SettlementRow, error)
}

type Controller struct {
	settlements SettlementRepository
	clock       clock.Clock
	logger      *zap.Logger
}

func NewController(settlements SettlementRepository, clk clock.Clock, logger *zap.Logger) *Controller {
	return &Controller{
		settlements: settlements,
		clock:       clk,
		logger:      logger,
	}
}

// HandleInvoiceSummary lists each member's settlement for one local month,
// defaulting to the current one.
func (c *Controller) HandleInvoiceSummary(w http.ResponseWriter, r *http.Request) {
	year, month := clock.YearMonth(c.clock.Now())

	q := r.URL.Query()
	if y := q.Get("year"); y != "" {
		if v, err := strconv.Atoi(y); err == nil && v > 0 {
			year = fmt.Sprintf("%04d", v)
		}
	}
	if m := q.Get("month"); m != "" {
		if v, err := strconv.Atoi(m); err == nil && v >= 1 && v <= 12 {
			month = fmt.Sprintf("%02d", v)
		}
	}

	rows, err := c.settlements.MonthlySettlements(r.Context(), year, month)
	if err != nil {
		c.logger.Error("invoice summary failed", zap.String("year", year), zap.String("month", month), zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "INTERNAL_ERROR",
			"message": "an unexpected error occurred",
		})
		return
	}

	if rows == nil {
		rows = []dto.SettlementRow{}
	}

	c.writeJSON(w, http.StatusOK, dto.InvoiceSummaryResponse{Rows: rows})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
