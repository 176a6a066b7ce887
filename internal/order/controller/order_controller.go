package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"ordersvc/internal/domain"
	"ordersvc/internal/dto"
	apperrors "ordersvc/internal/errors"
)

type OrderStore interface {
	Create(ctx context.Context, customer string, items []string) (domain.Order, error)
	List(ctx context.Context) []domain.Order
	Get(ctx context.Context, id string) (domain.Order, error)
	UpdateStatus(ctx context.Context, id, status string) (domain.Order, error)
	Delete(ctx context.Context, id string) error
}

type OrderController struct {
	store  OrderStore
	logger *zap.Logger
}

func NewOrderController(store OrderStore, logger *zap.Logger) *OrderController {
	return &OrderController{
		store:  store,
		logger: logger,
	}
}

func (c *OrderController) Create(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	var req dto.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeInvalidBody(w)
		return
	}

	order, err := c.store.Create(r.Context(), req.Customer, req.Items)
	if err != nil {
		c.writeError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusCreated, dto.NewOrderResponse(order))
}

func (c *OrderController) List(w http.ResponseWriter, r *http.Request) {
	orders := c.store.List(r.Context())
	c.writeJSON(w, http.StatusOK, dto.NewOrderListResponse(orders))
}

func (c *OrderController) Get(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	order, err := c.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		c.writeError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.NewOrderResponse(order))
}

func (c *OrderController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	var req dto.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeInvalidBody(w)
		return
	}

	order, err := c.store.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		c.writeError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.NewOrderResponse(order))
}

func (c *OrderController) Delete(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	if err := c.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		c.writeError(w, err, logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (c *OrderController) requestLogger() *zap.Logger {
	return c.logger.With(zap.String("traceId", uuid.New().String()))
}

// writeError maps each taxonomy kind to its transport status. The set
// is closed; anything else is a programming error and reported as 500.
func (c *OrderController) writeError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{
			Message: ve.Message,
			Details: ve.Fields,
		})
		return
	}

	if nf, ok := apperrors.IsNotFoundError(err); ok {
		c.writeJSON(w, http.StatusNotFound, dto.ErrorResponse{Message: nf.Message})
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	c.writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{
		Message: "internal server error",
	})
}

func (c *OrderController) writeInvalidBody(w http.ResponseWriter) {
	fields := apperrors.FieldErrors{}
	fields.Add("body", "request body must be valid JSON")
	c.writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{
		Message: "invalid JSON body",
		Details: fields,
	})
}

func (c *OrderController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
