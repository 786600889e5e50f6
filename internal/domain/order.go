package domain

import (
	"fmt"
	"time"
)

// OrderStatus is the order's fulfillment stage. The set is closed; the
// intended progression is pending -> processing -> shipped -> delivered.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
)

// Statuses lists all order statuses in lifecycle order.
var Statuses = []OrderStatus{StatusPending, StatusProcessing, StatusShipped, StatusDelivered}

// ParseStatus maps a raw string onto the closed status enumeration.
func ParseStatus(raw string) (OrderStatus, error) {
	for _, s := range Statuses {
		if string(s) == raw {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown order status %q: %w", raw, ErrInvalidInput)
}

// CanTransition reports whether moving from one status to the next follows
// the linear lifecycle. Status updates do not currently consult it; it
// exists so ordering can be enforced without touching the update path.
func CanTransition(from, to OrderStatus) bool {
	order := map[OrderStatus]int{
		StatusPending:    0,
		StatusProcessing: 1,
		StatusShipped:    2,
		StatusDelivered:  3,
	}
	fromIdx, ok := order[from]
	if !ok {
		return false
	}
	toIdx, ok := order[to]
	if !ok {
		return false
	}
	return toIdx == fromIdx+1
}

// ShippingAddress is the destination captured at checkout.
type ShippingAddress struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

// OrderItem is a frozen snapshot of one product variant at checkout time.
// It copies name and price so later catalog edits never rewrite history.
type OrderItem struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Size        string `json:"size"`
	Color       string `json:"color"`
	Quantity    int    `json:"quantity"`
	Price       int64  `json:"price"`
}

// Order is created exactly once at checkout with status pending. Only the
// status field is ever mutated afterwards; orders are never deleted.
// TotalAmount is client-computed and stored as submitted.
type Order struct {
	ID              string          `json:"id"`
	OrderNumber     string          `json:"orderNumber"`
	CustomerName    string          `json:"customerName"`
	CustomerEmail   string          `json:"customerEmail"`
	CustomerPhone   string          `json:"customerPhone"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	Items           []OrderItem     `json:"items"`
	TotalAmount     int64           `json:"totalAmount"`
	Status          OrderStatus     `json:"status"`
	PaymentMethod   string          `json:"paymentMethod"`
	Notes           string          `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}
