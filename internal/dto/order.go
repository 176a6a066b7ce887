package dto

import (
	"time"

	"ordersvc/internal/domain"
	apperrors "ordersvc/internal/errors"
)

type CreateOrderRequest struct {
	Customer string   `json:"customer"`
	Items    []string `json:"items"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type OrderResponse struct {
	ID        string    `json:"id"`
	Customer  string    `json:"customer"`
	Items     []string  `json:"items"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewOrderResponse(o domain.Order) OrderResponse {
	return OrderResponse{
		ID:        o.ID,
		Customer:  o.Customer,
		Items:     o.Items,
		Status:    string(o.Status),
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

func NewOrderListResponse(orders []domain.Order) []OrderResponse {
	responses := make([]OrderResponse, len(orders))
	for i, o := range orders {
		responses[i] = NewOrderResponse(o)
	}
	return responses
}

// ErrorResponse is the wire shape for every failure. Details is only
// populated for validation failures.
type ErrorResponse struct {
	Message string                `json:"message"`
	Details apperrors.FieldErrors `json:"details,omitempty"`
}
