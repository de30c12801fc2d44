package domain

import (
	"context"
	"time"
)

// OrderSubmittedTopic carries order hand-off events.
const OrderSubmittedTopic = "checkout.order.submitted"

// OrderSubmittedEvent records an order intent handed off to the store
// admin. There is no acknowledgment channel; the event is the only
// durable trace of the hand-off.
type OrderSubmittedEvent struct {
	CartID        string    `json:"cart_id"`
	CustomerName  string    `json:"customer_name"`
	CustomerPhone string    `json:"customer_phone"`
	ItemCount     int       `json:"item_count"`
	Total         int64     `json:"total"`
	ContactNumber string    `json:"contact_number"`
	Timestamp     time.Time `json:"timestamp"`
}

// EventPublisher publishes checkout events. Implementations must not
// block checkout on delivery: publishing is fire-and-forget.
type EventPublisher interface {
	Publish(ctx context.Context, topic, key string, event any) error
}
