package domain

import (
	"time"

	"github.com/google/uuid"
)

// OrderSummary is the read-only snapshot handed to the order hand-off
// surface. It carries everything needed to compose an outbound order
// message; the composition itself happens outside this module.
type OrderSummary struct {
	OrderID        uuid.UUID  `json:"order_id"`
	Lines          []CartLine `json:"lines"`
	Subtotal       int64      `json:"subtotal"`
	DiscountAmount int64      `json:"discount_amount"`
	DiscountCode   string     `json:"discount_code,omitempty"`
	ShippingFee    int64      `json:"shipping_fee"`
	Total          int64      `json:"total"`
	ItemCount      int        `json:"item_count"`
	GeneratedAt    time.Time  `json:"generated_at"`
}
