package test

import (
	"context"
	"sync"

	"github.com/mikimas/truster/internal/domain/model"
)

// NotifierStub records notification attempts.
type NotifierStub struct {
	mu     sync.Mutex
	Err    error
	SendFn func(context.Context, *model.Order) error
	Sent   []int64
}

// SendOrderNotification records the order id and returns the configured error.
func (s *NotifierStub) SendOrderNotification(ctx context.Context, order *model.Order) error {
	if s.SendFn != nil {
		return s.SendFn(ctx, order)
	}
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	s.Sent = append(s.Sent, order.ID)
	s.mu.Unlock()
	return nil
}

// SentCount returns how many notifications were recorded.
func (s *NotifierStub) SentCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Sent)
}
