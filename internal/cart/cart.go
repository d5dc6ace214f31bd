// Package cart implements the shopping-cart aggregate: line mutations,
// derived totals, discount gating, the persistence contract, and change
// notification. It owns no presentation and performs no product lookups;
// callers hand it fully resolved product snapshots.
package cart

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"globalstore/internal/domain"
	"globalstore/internal/storage"
)

var (
	ErrInvalidQuantity         = errors.New("quantity must be at least 1")
	ErrLineNotFound            = errors.New("cart line not found")
	ErrUnknownDiscountCode     = errors.New("unknown discount code")
	ErrDiscountThresholdNotMet = errors.New("subtotal below discount minimum")
	ErrPersistence             = errors.New("failed to persist cart state")
)

// Rule is the redemption rule behind a discount code.
type Rule struct {
	Percent     int
	MinSubtotal int64
}

// RuleTable maps canonical (upper-case) discount codes to their rules.
type RuleTable map[string]Rule

// ShippingPolicy is a flat delivery fee waived at or above a subtotal
// threshold. Amounts are minor units.
type ShippingPolicy struct {
	FreeThreshold int64
	FlatFee       int64
}

// Cart is the aggregate root for one shopper session.
//
// Cart is not safe for concurrent use: per the client-session execution
// model, all operations are expected to run from a single goroutine. The
// in-memory state stays authoritative for the session even when a persist
// fails.
type Cart struct {
	store    storage.CartStore
	rules    RuleTable
	shipping ShippingPolicy
	logger   *zap.Logger

	lines    []domain.CartLine
	discount *domain.Discount

	nextListener int
	listeners    map[int]func(Snapshot)
}

// New constructs a Cart and restores any previously persisted state.
// A missing slot, malformed document, or state violating the cart
// invariants degrades to an empty cart; construction never fails.
func New(ctx context.Context, store storage.CartStore, rules RuleTable, shipping ShippingPolicy, logger *zap.Logger) *Cart {
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Cart{
		store:     store,
		rules:     rules,
		shipping:  shipping,
		logger:    logger,
		listeners: make(map[int]func(Snapshot)),
	}

	state, err := store.Load(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.Warn("Stored cart state unreadable, starting empty", zap.Error(err))
		}
		return c
	}

	if err := validateState(state); err != nil {
		logger.Warn("Stored cart state invalid, starting empty", zap.Error(err))
		return c
	}

	c.lines = append(c.lines, state.Lines...)
	if state.Discount != nil {
		d := *state.Discount
		c.discount = &d
	}

	logger.Debug("Cart state restored",
		zap.Int("lines", len(c.lines)),
		zap.Bool("discount", c.discount != nil),
	)
	return c
}

// validateState checks the invariants a persisted document must satisfy
// before it is trusted: positive quantities, non-negative prices, unique
// product IDs, and a sane discount percentage.
func validateState(state *domain.CartState) error {
	seen := make(map[string]struct{}, len(state.Lines))
	for _, line := range state.Lines {
		if line.ProductID == "" {
			return errors.New("line without product id")
		}
		if line.Quantity < 1 {
			return fmt.Errorf("line %s has quantity %d", line.ProductID, line.Quantity)
		}
		if line.UnitPrice < 0 {
			return fmt.Errorf("line %s has negative unit price", line.ProductID)
		}
		if _, dup := seen[line.ProductID]; dup {
			return fmt.Errorf("duplicate line for product %s", line.ProductID)
		}
		seen[line.ProductID] = struct{}{}
	}

	if d := state.Discount; d != nil {
		if d.Code == "" || d.Percent < 0 || d.Percent > 100 || d.MinSubtotal < 0 {
			return errors.New("invalid discount state")
		}
	}

	return nil
}

// AddItem merges quantity into an existing line for the product, or
// appends a new line snapshotting the product's display fields. It
// returns a copy of the resulting line.
func (c *Cart) AddItem(ctx context.Context, product domain.Product, quantity int) (*domain.CartLine, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	idx := c.findLine(product.ID)
	if idx >= 0 {
		c.lines[idx].Quantity += quantity
	} else {
		c.lines = append(c.lines, domain.CartLine{
			ProductID:  product.ID,
			Name:       product.Name,
			UnitPrice:  product.UnitPrice,
			ImageRef:   product.ImageRef,
			CategoryID: product.CategoryID,
			Quantity:   quantity,
		})
		idx = len(c.lines) - 1
	}

	if err := c.commit(ctx); err != nil {
		return nil, err
	}

	c.logger.Debug("Item added to cart",
		zap.String("product_id", product.ID),
		zap.Int("quantity", c.lines[idx].Quantity),
	)

	line := c.lines[idx]
	return &line, nil
}

// RemoveItem deletes the line for productID. Removing an absent product
// is a no-op, not an error; nothing is persisted and no signal is sent.
func (c *Cart) RemoveItem(ctx context.Context, productID string) error {
	idx := c.findLine(productID)
	if idx < 0 {
		return nil
	}

	c.lines = append(c.lines[:idx], c.lines[idx+1:]...)

	if err := c.commit(ctx); err != nil {
		return err
	}

	c.logger.Debug("Item removed from cart", zap.String("product_id", productID))
	return nil
}

// SetQuantity sets the line's quantity to exactly quantity. A value of
// zero or less behaves like RemoveItem. Targeting a missing line is an
// error.
func (c *Cart) SetQuantity(ctx context.Context, productID string, quantity int) error {
	if quantity < 1 {
		return c.RemoveItem(ctx, productID)
	}

	idx := c.findLine(productID)
	if idx < 0 {
		return ErrLineNotFound
	}

	c.lines[idx].Quantity = quantity

	if err := c.commit(ctx); err != nil {
		return err
	}

	c.logger.Debug("Cart quantity updated",
		zap.String("product_id", productID),
		zap.Int("quantity", quantity),
	)
	return nil
}

// Clear empties the cart and drops any applied discount.
func (c *Cart) Clear(ctx context.Context) error {
	c.lines = nil
	c.discount = nil

	if err := c.commit(ctx); err != nil {
		return err
	}

	c.logger.Debug("Cart cleared")
	return nil
}

// ApplyDiscount redeems code against the configured rule table. Lookup is
// case-insensitive. The current subtotal must meet the rule's minimum.
// On success the granted percentage is returned; on failure any already
// applied discount is left untouched.
func (c *Cart) ApplyDiscount(ctx context.Context, code string) (int, error) {
	canonical := strings.ToUpper(strings.TrimSpace(code))

	rule, ok := c.rules[canonical]
	if !ok {
		return 0, ErrUnknownDiscountCode
	}
	if c.Subtotal() < rule.MinSubtotal {
		return 0, ErrDiscountThresholdNotMet
	}

	c.discount = &domain.Discount{
		Code:        canonical,
		Percent:     rule.Percent,
		MinSubtotal: rule.MinSubtotal,
	}

	if err := c.commit(ctx); err != nil {
		return 0, err
	}

	c.logger.Debug("Discount applied",
		zap.String("code", canonical),
		zap.Int("percent", rule.Percent),
	)
	return rule.Percent, nil
}

// RemoveDiscount drops any applied discount. Removing when none is
// applied is a no-op.
func (c *Cart) RemoveDiscount(ctx context.Context) error {
	if c.discount == nil {
		return nil
	}

	c.discount = nil

	if err := c.commit(ctx); err != nil {
		return err
	}

	c.logger.Debug("Discount removed")
	return nil
}

func (c *Cart) findLine(productID string) int {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// commit persists the full state and, only after a successful write,
// publishes the change to subscribers. On a write failure the in-memory
// mutation is kept (it stays authoritative for the session) and the
// caller receives ErrPersistence so the failure can be surfaced.
func (c *Cart) commit(ctx context.Context) error {
	state := &domain.CartState{
		Lines: append([]domain.CartLine(nil), c.lines...),
	}
	if c.discount != nil {
		d := *c.discount
		state.Discount = &d
	}

	if err := c.store.Save(ctx, state); err != nil {
		c.logger.Warn("Cart state not persisted, changes may not survive a reload", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	c.publish()
	return nil
}
