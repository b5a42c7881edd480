package notifier

import (
	"context"
	"fmt"
	"log/slog"

	mailjet "github.com/mailjet/mailjet-apiv3-go/v4"

	domainErrors "github.com/mikimas/truster/internal/domain/errors"
	"github.com/mikimas/truster/internal/domain/model"
)

// sender is the subset of the Mailjet client the notifier uses; tests stub it.
type sender interface {
	SendMailV31(data *mailjet.MessagesV31, options ...mailjet.RequestOptions) (*mailjet.ResultsV31, error)
}

// MailjetNotifier emails order notifications through the Mailjet v3.1 API.
type MailjetNotifier struct {
	client     sender
	senderMail string
	senderName string
	receiver   string
	logger     *slog.Logger
}

// NewMailjetNotifier constructs the notifier with a fresh Mailjet client.
func NewMailjetNotifier(publicKey, secretKey, senderMail, senderName, receiver string, logger *slog.Logger) *MailjetNotifier {
	return &MailjetNotifier{
		client:     mailjet.NewMailjetClient(publicKey, secretKey),
		senderMail: senderMail,
		senderName: senderName,
		receiver:   receiver,
		logger:     logger,
	}
}

// SendOrderNotification renders the order email and dispatches it to the
// configured receiver.
func (n *MailjetNotifier) SendOrderNotification(ctx context.Context, order *model.Order) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", domainErrors.ErrNotification, err)
	}

	html, err := RenderOrderEmail(order)
	if err != nil {
		return fmt.Errorf("%w: %v", domainErrors.ErrNotification, err)
	}

	messages := mailjet.MessagesV31{
		Info: []mailjet.InfoMessagesV31{
			{
				From: &mailjet.RecipientV31{
					Email: n.senderMail,
					Name:  n.senderName,
				},
				To: &mailjet.RecipientsV31{
					{Email: n.receiver},
				},
				Subject:  Subject(order),
				HTMLPart: html,
			},
		},
	}

	if _, err := n.client.SendMailV31(&messages); err != nil {
		n.logger.Error("order notification dispatch failed",
			slog.Int64("order_id", order.ID),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("%w: %v", domainErrors.ErrNotification, err)
	}

	return nil
}
