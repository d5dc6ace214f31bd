package cart

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"globalstore/internal/domain"
)

// Subtotal returns the sum of line totals before discount and shipping.
func (c *Cart) Subtotal() int64 {
	var sum int64
	for _, line := range c.lines {
		sum += line.LineTotal()
	}
	return sum
}

// DiscountAmount returns the value of the applied discount, rounded
// half-up once at this single point rather than per line.
func (c *Cart) DiscountAmount() int64 {
	if c.discount == nil {
		return 0
	}

	return decimal.NewFromInt(c.Subtotal()).
		Mul(decimal.NewFromInt(int64(c.discount.Percent))).
		Div(decimal.NewFromInt(100)).
		Round(0).
		IntPart()
}

// ShippingFee returns the flat delivery fee, waived for an empty cart and
// for subtotals at or above the free-shipping threshold.
func (c *Cart) ShippingFee() int64 {
	if len(c.lines) == 0 {
		return 0
	}
	if c.Subtotal() >= c.shipping.FreeThreshold {
		return 0
	}
	return c.shipping.FlatFee
}

// Total returns the amount due: the discounted subtotal, clamped at zero
// against pathological discount configurations, plus shipping.
func (c *Cart) Total() int64 {
	discounted := c.Subtotal() - c.DiscountAmount()
	if discounted < 0 {
		discounted = 0
	}
	return discounted + c.ShippingFee()
}

// ItemCount returns the total quantity across all lines, for the visible
// cart badge.
func (c *Cart) ItemCount() int {
	var count int
	for _, line := range c.lines {
		count += line.Quantity
	}
	return count
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []domain.CartLine {
	return append([]domain.CartLine(nil), c.lines...)
}

// AppliedDiscount returns a copy of the active discount, or nil.
func (c *Cart) AppliedDiscount() *domain.Discount {
	if c.discount == nil {
		return nil
	}
	d := *c.discount
	return &d
}

// OrderSummary captures the snapshot the order hand-off surface formats
// into an outbound message. It is a pure read; the hand-off calls Clear
// after a confirmed send.
func (c *Cart) OrderSummary() domain.OrderSummary {
	summary := domain.OrderSummary{
		OrderID:        uuid.New(),
		Lines:          c.Lines(),
		Subtotal:       c.Subtotal(),
		DiscountAmount: c.DiscountAmount(),
		ShippingFee:    c.ShippingFee(),
		Total:          c.Total(),
		ItemCount:      c.ItemCount(),
		GeneratedAt:    time.Now().UTC(),
	}
	if c.discount != nil {
		summary.DiscountCode = c.discount.Code
	}
	return summary
}
