package models

import "time"

// OrderStatus represents all possible states of an order in the
// fulfillment pipeline
type OrderStatus string

const (
	StatusPending        OrderStatus = "pending"
	StatusPreparing      OrderStatus = "preparing"
	StatusOutForDelivery OrderStatus = "out-for-delivery"
	StatusDelivered      OrderStatus = "delivered"
)

// PaymentMethod is the payment option selected at checkout
type PaymentMethod string

const (
	PaymentCard PaymentMethod = "card"
	PaymentUPI  PaymentMethod = "upi"
	PaymentCOD  PaymentMethod = "cod"
)

// CartLine is one menu item plus a quantity. A cart holds at most one
// line per item id; order lines are snapshots frozen at placement time.
type CartLine struct {
	Item     MenuItem `json:"item" yaml:"item"`
	Quantity int      `json:"quantity" yaml:"quantity"`
}

// Subtotal returns the line's contribution to the cart or order total.
func (l CartLine) Subtotal() float64 {
	return l.Item.Price * float64(l.Quantity)
}

type Order struct {
	ID              string         `json:"id" yaml:"id"`
	UserID          string         `json:"user_id" yaml:"user_id"`
	Items           []CartLine     `json:"items" yaml:"items"`
	Total           float64        `json:"total" yaml:"total"` // frozen at placement, never recomputed
	Status          OrderStatus    `json:"status" yaml:"status"`
	PlacedAt        time.Time      `json:"placed_at" yaml:"placed_at"`
	DeliveryAddress string         `json:"delivery_address" yaml:"delivery_address"`
	Payment         PaymentMethod  `json:"payment" yaml:"payment"`
	History         []StatusChange `json:"history,omitempty" yaml:"history,omitempty"`
}

// StatusChange records one status transition for the audit trail
type StatusChange struct {
	From      OrderStatus `json:"from_status,omitempty" yaml:"from_status,omitempty"`
	To        OrderStatus `json:"to_status" yaml:"to_status"`
	ChangedBy string      `json:"changed_by" yaml:"changed_by"`
	Note      string      `json:"note,omitempty" yaml:"note,omitempty"`
	At        time.Time   `json:"at" yaml:"at"`
}
