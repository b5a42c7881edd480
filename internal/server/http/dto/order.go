package dto

// CreateOrderRequest mirrors the flat JSON object posted by the client form.
type CreateOrderRequest struct {
	ProductURL   string `json:"productUrl"`
	ExtraInfo    string `json:"extraInfo"`
	FullName     string `json:"fullName"`
	DNI          string `json:"dni"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	City         string `json:"city"`
	PostalCode   string `json:"postalCode"`
	Province     string `json:"province"`
	Notes        string `json:"notes"`
}

// CreateOrderResponse is the envelope returned by POST /api/orders.
type CreateOrderResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
	OrderID int64  `json:"orderId,omitempty"`
}

// OrderResponse is a stored order as returned by GET /api/orders.
type OrderResponse struct {
	ID           int64  `json:"id"`
	Status       string `json:"status"`
	ProductURL   string `json:"productUrl"`
	ExtraInfo    string `json:"extraInfo,omitempty"`
	FullName     string `json:"fullName"`
	DNI          string `json:"dni,omitempty"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	City         string `json:"city"`
	PostalCode   string `json:"postalCode"`
	Province     string `json:"province,omitempty"`
	Notes        string `json:"notes,omitempty"`
	CreatedAt    string `json:"createdAt"`
}

// ListOrdersResponse is the envelope returned by GET /api/orders.
type ListOrdersResponse struct {
	OK     bool            `json:"ok"`
	Orders []OrderResponse `json:"orders"`
}
