package notifier

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	mailjet "github.com/mailjet/mailjet-apiv3-go/v4"

	domainErrors "github.com/mikimas/truster/internal/domain/errors"
)

type senderStub struct {
	sent []*mailjet.MessagesV31
	err  error
}

func (s *senderStub) SendMailV31(data *mailjet.MessagesV31, options ...mailjet.RequestOptions) (*mailjet.ResultsV31, error) {
	s.sent = append(s.sent, data)
	if s.err != nil {
		return nil, s.err
	}
	return &mailjet.ResultsV31{}, nil
}

func newTestNotifier(stub *senderStub) *MailjetNotifier {
	return &MailjetNotifier{
		client:     stub,
		senderMail: "noreply@example.com",
		senderName: "Truster",
		receiver:   "admin@example.com",
		logger:     slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
}

func TestSendOrderNotification(t *testing.T) {
	stub := &senderStub{}
	n := newTestNotifier(stub)

	if err := n.SendOrderNotification(context.Background(), fullOrder()); err != nil {
		t.Fatalf("send returned unexpected error: %v", err)
	}

	if len(stub.sent) != 1 {
		t.Fatalf("expected 1 dispatch, got %d", len(stub.sent))
	}
	msgs := stub.sent[0].Info
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(msgs))
	}
	msg := msgs[0]
	if msg.From == nil || msg.From.Email != "noreply@example.com" {
		t.Errorf("unexpected sender: %+v", msg.From)
	}
	if msg.To == nil || len(*msg.To) != 1 || (*msg.To)[0].Email != "admin@example.com" {
		t.Errorf("unexpected recipients: %+v", msg.To)
	}
	if msg.Subject != "Nuevo pedido recibido (#42)" {
		t.Errorf("unexpected subject %q", msg.Subject)
	}
	if !strings.Contains(msg.HTMLPart, "Ana Gomez") {
		t.Error("expected rendered body in HTMLPart")
	}
}

func TestSendOrderNotificationWrapsProviderError(t *testing.T) {
	stub := &senderStub{err: errors.New("mailjet 500")}
	n := newTestNotifier(stub)

	err := n.SendOrderNotification(context.Background(), fullOrder())
	if !errors.Is(err, domainErrors.ErrNotification) {
		t.Fatalf("expected notification error, got %v", err)
	}
}

func TestSendOrderNotificationCancelledContext(t *testing.T) {
	stub := &senderStub{}
	n := newTestNotifier(stub)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := n.SendOrderNotification(ctx, fullOrder())
	if !errors.Is(err, domainErrors.ErrNotification) {
		t.Fatalf("expected notification error, got %v", err)
	}
	if len(stub.sent) != 0 {
		t.Errorf("expected no dispatch after cancellation, got %d", len(stub.sent))
	}
}
