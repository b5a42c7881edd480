package memory

import (
	"context"
	"sync"

	"github.com/mikimas/truster/internal/domain/model"
)

// Store keeps orders in process memory. The earliest deployments ran with a
// plain array; this variant preserves that behaviour for local runs and tests.
// Identifiers come from a process-local counter starting at 1.
type Store struct {
	mu     sync.Mutex
	orders []model.Order
	nextID int64
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{}
}

// Save assigns the next identifier and appends the order.
func (s *Store) Save(ctx context.Context, order *model.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	order.ID = s.nextID
	s.orders = append(s.orders, *order)
	return nil
}

// List returns stored orders in insertion order.
func (s *Store) List(ctx context.Context) ([]model.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]model.Order, len(s.orders))
	copy(result, s.orders)
	return result, nil
}
