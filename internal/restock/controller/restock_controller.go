package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"kiosk/internal/domain"
	"kiosk/internal/dto"
	apperrors "kiosk/internal/errors"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RestockProcessor interface {
	Import(ctx context.Context, rawText string) (int, error)
	CreateEntry(ctx context.Context, row dto.RestockEntryRequest) (int64, error)
	UpdateEntry(ctx context.Context, id int64, row dto.RestockEntryRequest) error
	DeleteEntry(ctx context.Context, id int64) error
	ListEntries(ctx context.Context, descending bool) ([]domain.RestockEvent, error)
}

type RestockController struct {
	processor RestockProcessor
	validate  *validator.Validate
	logger    *zap.Logger
}

func NewRestockController(processor RestockProcessor, logger *zap.Logger) *RestockController {
	return &RestockController{
		processor: processor,
		validate:  validator.New(),
		logger:    logger,
	}
}

func (c *RestockController) HandleImport(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.ImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body")
		return
	}

	imported, err := c.processor.Import(r.Context(), req.Text)
	if err != nil {
		c.handleServiceError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.ImportResponse{Imported: imported})
}

func (c *RestockController) HandleList(w http.ResponseWriter, r *http.Request) {
	descending := r.URL.Query().Get("order") == "desc"

	events, err := c.processor.ListEntries(r.Context(), descending)
	if err != nil {
		c.handleServiceError(w, err, c.logger)
		return
	}

	rows := make([]dto.RestockEventDTO, 0, len(events))
	for _, ev := range events {
		rows = append(rows, toEventDTO(ev))
	}

	c.writeJSON(w, http.StatusOK, map[string][]dto.RestockEventDTO{"rows": rows})
}

func (c *RestockController) HandleCreate(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	row, ok := c.decodeEntry(w, r, logger)
	if !ok {
		return
	}

	id, err := c.processor.CreateEntry(r.Context(), row)
	if err != nil {
		c.handleServiceError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.RestockEntryResponse{ID: id})
}

func (c *RestockController) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	id, ok := c.parseID(w, r, logger)
	if !ok {
		return
	}

	row, ok := c.decodeEntry(w, r, logger)
	if !ok {
		return
	}

	if err := c.processor.UpdateEntry(r.Context(), id, row); err != nil {
		c.handleServiceError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (c *RestockController) HandleDelete(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	id, ok := c.parseID(w, r, logger)
	if !ok {
		return
	}

	if err := c.processor.DeleteEntry(r.Context(), id); err != nil {
		c.handleServiceError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (c *RestockController) parseID(w http.ResponseWriter, r *http.Request, logger *zap.Logger) (int64, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		logger.Warn("invalid id in path", zap.String("id", idStr))
		c.writeValidationError(w, "id must be a positive integer")
		return 0, false
	}
	return id, true
}

func (c *RestockController) decodeEntry(w http.ResponseWriter, r *http.Request, logger *zap.Logger) (dto.RestockEntryRequest, bool) {
	var row dto.RestockEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&row); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body")
		return row, false
	}

	if err := c.validate.Struct(row); err != nil {
		logger.Warn("restock entry rejected", zap.Error(err))
		c.writeValidationError(w, "validation failed")
		return row, false
	}

	return row, true
}

func (c *RestockController) handleServiceError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeValidationError(w, ve.Message)
		return
	}
	if eie, ok := apperrors.IsEmptyInputError(err); ok {
		c.writeJSON(w, http.StatusBadRequest, map[string]string{
			"error":   "EMPTY_INPUT",
			"message": eie.Message,
		})
		return
	}
	if nfe, ok := apperrors.IsNotFoundError(err); ok {
		c.writeJSON(w, http.StatusNotFound, map[string]string{
			"error":   "NOT_FOUND",
			"message": nfe.Message,
		})
		return
	}

	logger.Error("restock operation failed", zap.Error(err))
	c.writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error":   "INTERNAL_ERROR",
		"message": "an unexpected error occurred",
	})
}

func toEventDTO(ev domain.RestockEvent) dto.RestockEventDTO {
	return dto.RestockEventDTO{
		ID:          ev.ID,
		ProductID:   ev.ProductID,
		ProductName: ev.ProductName,
		Barcode:     ev.Barcode,
		UnitPrice:   ev.UnitPrice,
		Price:       ev.Price,
		Quantity:    ev.Quantity,
		Subtotal:    ev.Subtotal,
		Timestamp:   ev.Timestamp,
	}
}

func (c *RestockController) writeValidationError(w http.ResponseWriter, message string) {
	c.writeJSON(w, http.StatusBadRequest, map[string]string{
		"error":   "VALIDATION_ERROR",
		"message": message,
	})
}

func (c *RestockController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
