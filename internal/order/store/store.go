package store

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"ordersvc/internal/domain"
	apperrors "ordersvc/internal/errors"
	"ordersvc/internal/order/validator"
)

// Store is the sole owner of order records for the lifetime of the
// process. A single RWMutex guards the whole collection: mutations are
// exclusive, reads may run concurrently with each other. Insertion
// order is kept in a separate id slice so List stays stable.
type Store struct {
	mu     sync.RWMutex
	orders map[string]domain.Order
	ids    []string
	logger *zap.Logger
}

func New(logger *zap.Logger) *Store {
	return &Store{
		orders: make(map[string]domain.Order),
		logger: logger,
	}
}

// Create validates the payload, allocates a fresh id and inserts the
// order with status pending. The returned order is a snapshot.
func (s *Store) Create(ctx context.Context, customer string, items []string) (domain.Order, error) {
	if err := validator.ValidateCreate(customer, items); err != nil {
		return domain.Order{}, err
	}

	order := domain.NewOrder(customer, items)

	s.mu.Lock()
	s.orders[order.ID] = order
	s.ids = append(s.ids, order.ID)
	s.mu.Unlock()

	s.logger.Info("order created",
		zap.String("orderId", order.ID),
		zap.String("customer", order.Customer),
		zap.Int("itemCount", len(order.Items)))

	return order.Clone(), nil
}

// List returns a snapshot of all orders in creation order.
func (s *Store) List(ctx context.Context) []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]domain.Order, 0, len(s.ids))
	for _, id := range s.ids {
		orders = append(orders, s.orders[id].Clone())
	}
	return orders
}

func (s *Store) Get(ctx context.Context, id string) (domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.orders[id]
	if !ok {
		return domain.Order{}, apperrors.NewNotFoundError("order not found")
	}
	return order.Clone(), nil
}

// UpdateStatus overwrites the order's status. The status is validated
// before the lookup, so a malformed status on an unknown id still
// reports a validation failure.
func (s *Store) UpdateStatus(ctx context.Context, id, status string) (domain.Order, error) {
	parsed, err := validator.ValidateStatus(status)
	if err != nil {
		return domain.Order{}, err
	}

	s.mu.Lock()
	order, ok := s.orders[id]
	if !ok {
		s.mu.Unlock()
		return domain.Order{}, apperrors.NewNotFoundError("order not found")
	}
	updated := order.WithStatus(parsed)
	s.orders[id] = updated
	s.mu.Unlock()

	s.logger.Info("order status updated",
		zap.String("orderId", id),
		zap.String("status", string(parsed)))

	return updated.Clone(), nil
}

// Delete removes the record permanently. Ids are never reassigned.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	if _, ok := s.orders[id]; !ok {
		s.mu.Unlock()
		return apperrors.NewNotFoundError("order not found")
	}
	delete(s.orders, id)
	for i, existing := range s.ids {
		if existing == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	s.logger.Info("order deleted", zap.String("orderId", id))
	return nil
}
