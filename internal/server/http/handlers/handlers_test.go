package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/mikimas/truster/internal/domain/errors"
	"github.com/mikimas/truster/internal/domain/model"
	"github.com/mikimas/truster/internal/server/http/dto"
	testhelpers "github.com/mikimas/truster/internal/test"
	"github.com/mikimas/truster/internal/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(t *testing.T, method, path string, handler gin.HandlerFunc, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Handle(method, path, handler)

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func validRequestBody(t *testing.T) []byte {
	t.Helper()
	body, err := json.Marshal(dto.CreateOrderRequest{
		ProductURL:   "https://x.com/p",
		FullName:     "Ana Gomez",
		Email:        "ana@x.com",
		AddressLine1: "Calle 1",
		City:         "Madrid",
		PostalCode:   "28001",
	})
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	return body
}

func TestCreateOrderSuccess(t *testing.T) {
	facade := testhelpers.OrderFacadeStub{CreateFn: func(ctx context.Context, sub usecase.Submission) (*model.Order, error) {
		if sub.FullName != "Ana Gomez" || sub.ProductURL != "https://x.com/p" {
			t.Fatalf("unexpected submission passed to facade: %+v", sub)
		}
		return &model.Order{ID: 17, Status: model.OrderStatusPendingReview}, nil
	}}

	resp := performRequest(t, http.MethodPost, "/api/orders", NewOrderHandler(facade).Create, validRequestBody(t))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var envelope dto.CreateOrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !envelope.OK {
		t.Error("expected ok envelope")
	}
	if envelope.OrderID != 17 {
		t.Errorf("expected orderId 17, got %d", envelope.OrderID)
	}
	if envelope.Message == "" {
		t.Error("expected non-empty message")
	}
}

func TestCreateOrderFailures(t *testing.T) {
	tests := []struct {
		name    string
		facade  testhelpers.OrderFacadeStub
		body    []byte
		status  int
		message string
	}{
		{
			name:   "bad json",
			body:   []byte("not json"),
			status: http.StatusBadRequest,
		},
		{
			name: "missing fields",
			body: []byte(`{}`),
			facade: testhelpers.OrderFacadeStub{CreateFn: func(context.Context, usecase.Submission) (*model.Order, error) {
				return nil, domainErrors.ErrMissingFields
			}},
			status:  http.StatusBadRequest,
			message: msgMissingFields,
		},
		{
			name: "persistence failure",
			facade: testhelpers.OrderFacadeStub{CreateFn: func(context.Context, usecase.Submission) (*model.Order, error) {
				return nil, domainErrors.ErrPersistence
			}},
			status:  http.StatusInternalServerError,
			message: msgInternal,
		},
		{
			name: "notification failure",
			facade: testhelpers.OrderFacadeStub{CreateFn: func(context.Context, usecase.Submission) (*model.Order, error) {
				return nil, domainErrors.ErrNotification
			}},
			status:  http.StatusInternalServerError,
			message: msgInternal,
		},
		{
			name: "internal detail stays hidden",
			facade: testhelpers.OrderFacadeStub{CreateFn: func(context.Context, usecase.Submission) (*model.Order, error) {
				return nil, errors.New("pgx: connection to 10.0.0.5 refused")
			}},
			status:  http.StatusInternalServerError,
			message: msgInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := tt.body
			if body == nil {
				body = validRequestBody(t)
			}
			resp := performRequest(t, http.MethodPost, "/api/orders", NewOrderHandler(tt.facade).Create, body)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}

			var envelope dto.CreateOrderResponse
			if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if envelope.OK {
				t.Error("expected ok=false envelope")
			}
			if envelope.Message == "" {
				t.Error("expected non-empty message")
			}
			if tt.message != "" && envelope.Message != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, envelope.Message)
			}
			if strings.Contains(resp.Body.String(), "10.0.0.5") {
				t.Error("internal error detail leaked to the client")
			}
		})
	}
}

func TestListOrders(t *testing.T) {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	facade := testhelpers.OrderFacadeStub{OrdersFn: func(context.Context) ([]model.Order, error) {
		return []model.Order{
			{ID: 2, Status: model.OrderStatusPendingReview, ProductURL: "https://b.com", FullName: "Bea", Email: "bea@x.com", AddressLine1: "Calle 2", City: "Madrid", PostalCode: "28002", CreatedAt: created},
			{ID: 1, Status: model.OrderStatusPendingReview, ProductURL: "https://a.com", FullName: "Ana", Email: "ana@x.com", AddressLine1: "Calle 1", City: "Madrid", PostalCode: "28001", CreatedAt: created.Add(-time.Hour)},
		}, nil
	}}

	resp := performRequest(t, http.MethodGet, "/api/orders", NewOrderHandler(facade).List, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var envelope dto.ListOrdersResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !envelope.OK {
		t.Error("expected ok envelope")
	}
	if len(envelope.Orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(envelope.Orders))
	}
	if envelope.Orders[0].ID != 2 {
		t.Errorf("expected facade order preserved, got id %d", envelope.Orders[0].ID)
	}
	if envelope.Orders[0].Status != string(model.OrderStatusPendingReview) {
		t.Errorf("unexpected status %q", envelope.Orders[0].Status)
	}
	if _, err := time.Parse(time.RFC3339, envelope.Orders[0].CreatedAt); err != nil {
		t.Errorf("createdAt is not RFC 3339: %q", envelope.Orders[0].CreatedAt)
	}
}

func TestListOrdersEmpty(t *testing.T) {
	facade := testhelpers.OrderFacadeStub{OrdersFn: func(context.Context) ([]model.Order, error) {
		return nil, nil
	}}

	resp := performRequest(t, http.MethodGet, "/api/orders", NewOrderHandler(facade).List, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), `"orders":[]`) {
		t.Errorf("expected empty array, got %s", resp.Body.String())
	}
}

func TestListOrdersFailure(t *testing.T) {
	facade := testhelpers.OrderFacadeStub{OrdersFn: func(context.Context) ([]model.Order, error) {
		return nil, domainErrors.ErrPersistence
	}}

	resp := performRequest(t, http.MethodGet, "/api/orders", NewOrderHandler(facade).List, nil)
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", resp.Code)
	}
}
