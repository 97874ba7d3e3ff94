package domain

import "time"

// Idempotency records the outcome of a previously processed order placement,
// keyed by (user_id, key). It lets the storefront replay the original
// response on client retries instead of creating a second order.
type Idempotency struct {
	ID        string    `json:"id"`
	UserID    int       `json:"user_id"`
	Key       string    `json:"key"`
	OrderID   int       `json:"order_id"`
	Status    int       `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
