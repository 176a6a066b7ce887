package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ordersvc/internal/domain"
	apperrors "ordersvc/internal/errors"
)

func newTestStore() *Store {
	return New(zap.NewNop())
}

func TestCreate(t *testing.T) {
	s := newTestStore()

	order, err := s.Create(context.Background(), "Test Customer", []string{"Item 1", "Item 2"})
	require.NoError(t, err)

	assert.NotEmpty(t, order.ID)
	assert.Equal(t, "Test Customer", order.Customer)
	assert.Len(t, order.Items, 2)
	assert.Equal(t, domain.StatusPending, order.Status)
	assert.Equal(t, order.CreatedAt, order.UpdatedAt)
}

func TestCreate_ValidationError(t *testing.T) {
	s := newTestStore()

	_, err := s.Create(context.Background(), "", nil)

	ve, ok := apperrors.IsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "customer")
	assert.Contains(t, ve.Fields, "items")

	assert.Empty(t, s.List(context.Background()))
}

func TestGet(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	created, err := s.Create(ctx, "Test Customer", []string{"Item 1"})
	require.NoError(t, err)

	retrieved, err := s.Get(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, created, retrieved)
}

func TestGet_NotFound(t *testing.T) {
	s := newTestStore()

	_, err := s.Get(context.Background(), "00000000-0000-0000-0000-000000000000")

	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestList_InsertionOrder(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	assert.Empty(t, s.List(ctx))

	first, err := s.Create(ctx, "Customer 1", []string{"Item 1"})
	require.NoError(t, err)
	second, err := s.Create(ctx, "Customer 2", []string{"Item 2"})
	require.NoError(t, err)

	orders := s.List(ctx)
	require.Len(t, orders, 2)
	assert.Equal(t, first.ID, orders[0].ID)
	assert.Equal(t, second.ID, orders[1].ID)

	// repeated reads return the same set absent mutation
	assert.Equal(t, orders, s.List(ctx))
}

func TestList_ReturnsSnapshots(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	_, err := s.Create(ctx, "Customer 1", []string{"Item 1"})
	require.NoError(t, err)

	orders := s.List(ctx)
	orders[0].Items[0] = "changed"

	assert.Equal(t, "Item 1", s.List(ctx)[0].Items[0])
}

func TestUpdateStatus(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	created, err := s.Create(ctx, "Test Customer", []string{"Item 1"})
	require.NoError(t, err)

	time.Sleep(time.Millisecond)

	updated, err := s.UpdateStatus(ctx, created.ID, "shipped")
	require.NoError(t, err)

	assert.Equal(t, domain.StatusShipped, updated.Status)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))

	retrieved, err := s.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusShipped, retrieved.Status)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	created, err := s.Create(ctx, "Test Customer", []string{"Item 1"})
	require.NoError(t, err)

	_, err = s.UpdateStatus(ctx, created.ID, "bogus")

	ve, ok := apperrors.IsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "status")

	retrieved, err := s.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, retrieved.Status)
}

func TestUpdateStatus_InvalidStatusOnMissingID(t *testing.T) {
	s := newTestStore()

	// validation runs before the lookup
	_, err := s.UpdateStatus(context.Background(), "missing", "bogus")

	_, ok := apperrors.IsValidationError(err)
	assert.True(t, ok)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	s := newTestStore()

	_, err := s.UpdateStatus(context.Background(), "missing", "shipped")

	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestDelete(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	created, err := s.Create(ctx, "Test Customer", []string{"Item 1"})
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, created.ID))

	_, err = s.Get(ctx, created.ID)
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)

	assert.Empty(t, s.List(ctx))
}

func TestDelete_NotFound(t *testing.T) {
	s := newTestStore()

	err := s.Delete(context.Background(), "missing")

	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestCreate_Concurrent(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	const workers = 50

	var wg sync.WaitGroup
	ids := make(chan string, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			order, err := s.Create(ctx, "Concurrent Customer", []string{"Item"})
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			ids <- order.ID
		}()
	}

	wg.Wait()
	close(ids)

	seen := make(map[string]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
	assert.Len(t, seen, workers)
	assert.Len(t, s.List(ctx), workers)
}
