package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/mikimas/truster/internal/domain/errors"
	"github.com/mikimas/truster/internal/domain/model"
	"github.com/mikimas/truster/internal/server/http/dto"
	"github.com/mikimas/truster/internal/usecase"
)

// Response messages match what the client form displays; internal error
// detail never reaches the client.
const (
	msgCreated       = "Solicitud recibida correctamente."
	msgMissingFields = "Faltan campos obligatorios"
	msgInternal      = "Error interno"
)

// OrderHandler manages order intake endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.CreateOrderResponse{OK: false, Message: msgMissingFields})
		return
	}

	order, err := h.facade.CreateOrder(c.Request.Context(), toSubmission(req))
	if err != nil {
		if errors.Is(err, domainErrors.ErrMissingFields) {
			c.JSON(http.StatusBadRequest, dto.CreateOrderResponse{OK: false, Message: msgMissingFields})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.CreateOrderResponse{OK: false, Message: msgInternal})
		return
	}

	c.JSON(http.StatusOK, dto.CreateOrderResponse{OK: true, Message: msgCreated, OrderID: order.ID})
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.Orders(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.CreateOrderResponse{OK: false, Message: msgInternal})
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}

	c.JSON(http.StatusOK, dto.ListOrdersResponse{OK: true, Orders: response})
}

func toSubmission(req dto.CreateOrderRequest) usecase.Submission {
	return usecase.Submission{
		ProductURL:   req.ProductURL,
		ExtraInfo:    req.ExtraInfo,
		FullName:     req.FullName,
		DNI:          req.DNI,
		Email:        req.Email,
		Phone:        req.Phone,
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		City:         req.City,
		PostalCode:   req.PostalCode,
		Province:     req.Province,
		Notes:        req.Notes,
	}
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:           order.ID,
		Status:       string(order.Status),
		ProductURL:   order.ProductURL,
		ExtraInfo:    order.ExtraInfo,
		FullName:     order.FullName,
		DNI:          order.DNI,
		Email:        order.Email,
		Phone:        order.Phone,
		AddressLine1: order.AddressLine1,
		AddressLine2: order.AddressLine2,
		City:         order.City,
		PostalCode:   order.PostalCode,
		Province:     order.Province,
		Notes:        order.Notes,
		CreatedAt:    order.CreatedAt.Format(time.RFC3339),
	}
}
