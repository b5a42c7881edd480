package test

import (
	"context"

	"github.com/mikimas/truster/internal/domain/model"
	"github.com/mikimas/truster/internal/usecase"
)

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	CreateFn func(context.Context, usecase.Submission) (*model.Order, error)
	OrdersFn func(context.Context) ([]model.Order, error)
}

// CreateOrder delegates to the provided function or returns a default order.
func (s OrderFacadeStub) CreateOrder(ctx context.Context, sub usecase.Submission) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, sub)
	}
	return &model.Order{ID: 1, Status: model.OrderStatusPendingReview, ProductURL: sub.ProductURL}, nil
}

// Orders returns predefined orders.
func (s OrderFacadeStub) Orders(ctx context.Context) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx)
	}
	return []model.Order{{ID: 1, Status: model.OrderStatusPendingReview}}, nil
}
