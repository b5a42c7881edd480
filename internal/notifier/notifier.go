package notifier

import (
	"context"
	"log/slog"

	"github.com/mikimas/truster/internal/domain/model"
)

// Notifier delivers new-order notifications to the administrator.
type Notifier interface {
	// SendOrderNotification dispatches a message about the order. Dispatch is
	// synchronous: there is no queuing or retry, a failure reaches the caller
	// while the order stays persisted.
	SendOrderNotification(ctx context.Context, order *model.Order) error
}

// LogNotifier writes notifications to the log instead of emailing them.
// Used for local runs without Mailjet credentials.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier constructs LogNotifier.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// SendOrderNotification logs the order instead of dispatching an email.
func (n *LogNotifier) SendOrderNotification(ctx context.Context, order *model.Order) error {
	n.logger.Info("order notification suppressed",
		slog.Int64("order_id", order.ID),
		slog.String("product_url", order.ProductURL),
		slog.String("customer", order.FullName),
	)
	return nil
}
