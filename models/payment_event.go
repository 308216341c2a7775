package models

import "time"

// PaymentEvent is the settlement event published to Kafka when an order is
// marked paid.
type PaymentEvent struct {
	Type      string    `json:"type"`
	OrderID   string    `json:"order_id"`
	UserID    string    `json:"user_id"`
	SessionID string    `json:"session_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
