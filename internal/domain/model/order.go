package model

import "time"

// OrderStatus describes review lifecycle.
type OrderStatus string

// OrderStatusPendingReview is the only status in scope: every submitted
// purchase request waits for manual review by the administrator.
const OrderStatusPendingReview OrderStatus = "pending_review"

// Order describes a purchase request submitted through the web form.
// Orders are append-only: no field changes after creation and nothing
// deletes them.
type Order struct {
	ID           int64
	Status       OrderStatus
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
	CreatedAt    time.Time
}
