package handlers

import (
	"context"

	"github.com/mikimas/truster/internal/domain/model"
	"github.com/mikimas/truster/internal/usecase"
)

// OrderFacade encapsulates intake operations exposed via HTTP.
type OrderFacade interface {
	CreateOrder(ctx context.Context, sub usecase.Submission) (*model.Order, error)
	Orders(ctx context.Context) ([]model.Order, error)
}
