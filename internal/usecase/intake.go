package usecase

import (
	"context"
	"time"

	domainErrors "github.com/mikimas/truster/internal/domain/errors"
	"github.com/mikimas/truster/internal/domain/model"
	"github.com/mikimas/truster/internal/domain/repository"
	"github.com/mikimas/truster/internal/notifier"
)

// Submission carries the raw field values posted by the client form.
type Submission struct {
	ProductURL   string
	ExtraInfo    string
	FullName     string
	DNI          string
	Email        string
	Phone        string
	AddressLine1 string
	AddressLine2 string
	City         string
	PostalCode   string
	Province     string
	Notes        string
}

// IntakeUseCase runs the validate-store-notify sequence for new purchase
// requests and exposes the stored orders.
type IntakeUseCase struct {
	orders   repository.OrderRepository
	notifier notifier.Notifier
}

// NewIntakeUseCase constructs IntakeUseCase.
func NewIntakeUseCase(orders repository.OrderRepository, n notifier.Notifier) *IntakeUseCase {
	return &IntakeUseCase{orders: orders, notifier: n}
}

// CreateOrder validates the submission, persists it as a new order and emails
// the administrator. A notification failure surfaces to the caller while the
// order stays stored; losing the email must not lose the request.
func (u *IntakeUseCase) CreateOrder(ctx context.Context, sub Submission) (*model.Order, error) {
	if !ValidateSubmission(sub) {
		return nil, domainErrors.ErrMissingFields
	}

	order := &model.Order{
		Status:       model.OrderStatusPendingReview,
		ProductURL:   sub.ProductURL,
		ExtraInfo:    sub.ExtraInfo,
		FullName:     sub.FullName,
		DNI:          sub.DNI,
		Email:        sub.Email,
		Phone:        sub.Phone,
		AddressLine1: sub.AddressLine1,
		AddressLine2: sub.AddressLine2,
		City:         sub.City,
		PostalCode:   sub.PostalCode,
		Province:     sub.Province,
		Notes:        sub.Notes,
		CreatedAt:    time.Now().UTC(),
	}

	if err := u.orders.Save(ctx, order); err != nil {
		return nil, err
	}

	if err := u.notifier.SendOrderNotification(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

// ListOrders returns every stored order.
func (u *IntakeUseCase) ListOrders(ctx context.Context) ([]model.Order, error) {
	return u.orders.List(ctx)
}
