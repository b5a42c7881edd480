package app

import (
	"context"

	"github.com/mikimas/truster/internal/domain/model"
	"github.com/mikimas/truster/internal/usecase"
)

// IntakeFacade is the application surface the HTTP layer talks to.
type IntakeFacade struct {
	intake *usecase.IntakeUseCase
}

// NewIntakeFacade constructs IntakeFacade.
func NewIntakeFacade(intake *usecase.IntakeUseCase) *IntakeFacade {
	return &IntakeFacade{intake: intake}
}

// CreateOrder runs the intake sequence for a submission.
func (f *IntakeFacade) CreateOrder(ctx context.Context, sub usecase.Submission) (*model.Order, error) {
	return f.intake.CreateOrder(ctx, sub)
}

// Orders returns every stored order.
func (f *IntakeFacade) Orders(ctx context.Context) ([]model.Order, error) {
	return f.intake.ListOrders(ctx)
}
