package member

import (
	"context"
	"encoding/json"
	"net/http"

	"kiosk/internal/domain"
	"kiosk/internal/dto"

	"go.uber.org/zap"
)

type Repository interface {
	ListAll(ctx context.Context) ([]domain.Member, error)
}

type Controller struct {
	repo   Repository
	logger *zap.Logger
}

func NewController(repo Repository, logger *zap.Logger) *Controller {
	return &Controller{repo: repo, logger: logger}
}

func (c *Controller) HandleList(w http.ResponseWriter, r *http.Request) {
	members, err := c.repo.ListAll(r.Context())
	if err != nil {
		c.logger.Error("listing members failed", zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "INTERNAL_ERROR",
			"message": "an unexpected error occurred",
		})
		return
	}

	out := make([]dto.MemberDTO, 0, len(members))
	for _, m := range members {
		out = append(out, dto.MemberDTO{ID: m.ID, Name: m.Name})
	}

	c.writeJSON(w, http.StatusOK, map[string][]dto.MemberDTO{"members": out})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
