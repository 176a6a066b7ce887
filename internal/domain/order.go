package domain

import (
	"time"

	"github.com/google/uuid"

	apperrors "ordersvc/internal/errors"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

// ParseStatus maps a raw client value onto the closed status set.
// Matching is case-sensitive.
func ParseStatus(value string) (Status, error) {
	switch Status(value) {
	case StatusPending, StatusShipped, StatusDelivered, StatusCancelled:
		return Status(value), nil
	default:
		return "", apperrors.NewInvalidStatusError(value)
	}
}

type Order struct {
	ID        string
	Customer  string
	Items     []string
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewOrder builds a pending order with a fresh id. Items are copied so
// the caller keeps no reference into the new order.
func NewOrder(customer string, items []string) Order {
	now := time.Now().UTC()
	copied := make([]string, len(items))
	copy(copied, items)

	return Order{
		ID:        uuid.New().String(),
		Customer:  customer,
		Items:     copied,
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// WithStatus returns a copy of the order carrying the new status and a
// refreshed UpdatedAt. Any status may follow any other; well-formedness
// is checked by ParseStatus at the boundary.
func (o Order) WithStatus(status Status) Order {
	o.Status = status
	o.UpdatedAt = time.Now().UTC()
	return o
}

// Clone returns an independent copy, including the items slice.
func (o Order) Clone() Order {
	items := make([]string, len(o.Items))
	copy(items, o.Items)
	o.Items = items
	return o
}
