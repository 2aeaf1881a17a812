package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"kiosk/internal/dto"
	apperrors "kiosk/internal/errors"
	"kiosk/internal/sale/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SaleCommitter interface {
	Commit(ctx context.Context, memberID int64, productIDs []int64) (*service.Snapshot, error)
}

type SaleController struct {
	committer SaleCommitter
	validate  *validator.Validate
	logger    *zap.Logger
}

func NewSaleController(committer SaleCommitter, logger *zap.Logger) *SaleController {
	return &SaleController{
		committer: committer,
		validate:  validator.New(),
		logger:    logger,
	}
}

func (c *SaleController) HandlePurchase(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.PurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if err := c.validate.Struct(req); err != nil {
		logger.Warn("purchase request rejected", zap.Error(err))
		c.writeValidationError(w, "validation failed", validationDetails(err)...)
		return
	}

	snapshot, err := c.committer.Commit(r.Context(), req.MemberID, req.ProductIDs)
	if err != nil {
		if ve, ok := apperrors.IsValidationError(err); ok {
			c.writeValidationError(w, ve.Message, ve.Details...)
			return
		}
		logger.Error("purchase failed", zap.Int64("memberId", req.MemberID), zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "INTERNAL_ERROR",
			"message": "an unexpected error occurred",
		})
		return
	}

	resp := dto.PurchaseResponse{
		Members:  make([]dto.MemberDTO, 0, len(snapshot.Members)),
		Products: make([]dto.ProductDTO, 0, len(snapshot.Products)),
	}
	for _, m := range snapshot.Members {
		resp.Members = append(resp.Members, dto.MemberDTO{ID: m.ID, Name: m.Name})
	}
	for _, p := range snapshot.Products {
		resp.Products = append(resp.Products, dto.ProductDTO{
			ID:      p.ID,
			Name:    p.Name,
			Barcode: p.Barcode,
			Price:   p.Price,
			Stock:   p.Stock,
		})
	}

	c.writeJSON(w, http.StatusOK, resp)
}

func validationDetails(err error) []apperrors.ValidationDetail {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []apperrors.ValidationDetail{{Field: "body", Message: err.Error()}}
	}

	details := make([]apperrors.ValidationDetail, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, apperrors.ValidationDetail{
			Field:   fe.Field(),
			Message: "failed " + fe.Tag() + " validation",
		})
	}
	return details
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *SaleController) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *SaleController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
