package repository

import (
	"context"

	"github.com/mikimas/truster/internal/domain/model"
)

// OrderRepository describes persistence operations with purchase requests.
type OrderRepository interface {
	// Save records the order and fills its server-assigned identifier.
	// The caller sets Status and CreatedAt before calling.
	Save(ctx context.Context, order *model.Order) error
	// List returns every stored order. The PostgreSQL implementation returns
	// newest first; the in-memory one preserves insertion order.
	List(ctx context.Context) ([]model.Order, error)
}
