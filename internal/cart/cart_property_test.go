package cart

import (
	"context"
	"fmt"
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Property: after any sequence of adds, the cart holds at most one line
// per distinct product id, and its quantity is the sum of everything
// added for that id.
func TestProperty_AddAccumulatesPerProduct(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("lines stay unique and quantities accumulate", prop.ForAll(
		func(ids []int, quantities []int) bool {
			c := newTestCart(&memStore{})
			ctx := context.Background()

			n := len(ids)
			if len(quantities) < n {
				n = len(quantities)
			}

			expected := map[string]int{}
			for i := 0; i < n; i++ {
				id := fmt.Sprintf("p%d", ids[i])
				if _, err := c.AddItem(ctx, product(id, 100), quantities[i]); err != nil {
					t.Logf("AddItem failed: %v", err)
					return false
				}
				expected[id] += quantities[i]
			}

			lines := c.Lines()
			if len(lines) != len(expected) {
				t.Logf("FAIL: %d lines for %d distinct products", len(lines), len(expected))
				return false
			}

			seen := map[string]bool{}
			for _, line := range lines {
				if seen[line.ProductID] {
					t.Logf("FAIL: duplicate line for %s", line.ProductID)
					return false
				}
				seen[line.ProductID] = true
				if line.Quantity != expected[line.ProductID] {
					t.Logf("FAIL: %s quantity %d, want %d", line.ProductID, line.Quantity, expected[line.ProductID])
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 4)),
		gen.SliceOf(gen.IntRange(1, 9)),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// Property: in every reachable state, line quantities are positive, all
// derived amounts are non-negative, and the total composes exactly from
// subtotal, discount, and shipping.
func TestProperty_DerivedTotalsStayConsistent(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("non-negativity and total composition hold", prop.ForAll(
		func(ids []int, quantities []int, removals []int, code string) bool {
			c := newTestCart(&memStore{})
			ctx := context.Background()

			n := len(ids)
			if len(quantities) < n {
				n = len(quantities)
			}
			for i := 0; i < n; i++ {
				if _, err := c.AddItem(ctx, product(fmt.Sprintf("p%d", ids[i]), int64(ids[i]+1)*75), quantities[i]); err != nil {
					t.Logf("AddItem failed: %v", err)
					return false
				}
			}

			// Discount application may legitimately be rejected; either
			// way the invariants below must hold.
			_, _ = c.ApplyDiscount(ctx, code)

			for _, r := range removals {
				if err := c.RemoveItem(ctx, fmt.Sprintf("p%d", r)); err != nil {
					t.Logf("RemoveItem failed: %v", err)
					return false
				}
			}

			for _, line := range c.Lines() {
				if line.Quantity < 1 {
					t.Logf("FAIL: line %s quantity %d", line.ProductID, line.Quantity)
					return false
				}
			}

			subtotal := c.Subtotal()
			discount := c.DiscountAmount()
			shipping := c.ShippingFee()
			if subtotal < 0 || discount < 0 || shipping < 0 || c.Total() < 0 {
				t.Logf("FAIL: negative amount: subtotal=%d discount=%d shipping=%d total=%d",
					subtotal, discount, shipping, c.Total())
				return false
			}

			discounted := subtotal - discount
			if discounted < 0 {
				discounted = 0
			}
			if c.Total() != discounted+shipping {
				t.Logf("FAIL: total %d != max(0, %d-%d)+%d", c.Total(), subtotal, discount, shipping)
				return false
			}

			if c.IsEmpty() != (len(c.Lines()) == 0) {
				return false
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 4)),
		gen.SliceOf(gen.IntRange(1, 9)),
		gen.SliceOf(gen.IntRange(0, 6)),
		gen.OneConstOf("WELCOME10", "welcome10", "GLITCH", "NOPE", ""),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// Property: removing a product id that is not in the cart never changes
// anything and never errors.
func TestProperty_RemovalIsIdempotent(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("removing an absent id is a no-op", prop.ForAll(
		func(ids []int, quantities []int) bool {
			store := &memStore{}
			c := newTestCart(store)
			ctx := context.Background()

			n := len(ids)
			if len(quantities) < n {
				n = len(quantities)
			}
			for i := 0; i < n; i++ {
				if _, err := c.AddItem(ctx, product(fmt.Sprintf("p%d", ids[i]), 100), quantities[i]); err != nil {
					return false
				}
			}

			before := c.Lines()
			savesBefore := store.saves

			if err := c.RemoveItem(ctx, "never-added"); err != nil {
				t.Logf("FAIL: idempotent removal errored: %v", err)
				return false
			}

			return reflect.DeepEqual(before, c.Lines()) && store.saves == savesBefore
		},
		gen.SliceOf(gen.IntRange(0, 4)),
		gen.SliceOf(gen.IntRange(1, 9)),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// Property: a cart rebuilt from whatever the previous cart persisted has
// identical lines and discount (the persisted document round-trips through
// the aggregate itself).
func TestProperty_PersistedStateRebuildsIdentically(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("a new cart over the same store matches", prop.ForAll(
		func(ids []int, quantities []int, applyCode bool) bool {
			store := &memStore{}
			c := newTestCart(store)
			ctx := context.Background()

			n := len(ids)
			if len(quantities) < n {
				n = len(quantities)
			}
			for i := 0; i < n; i++ {
				if _, err := c.AddItem(ctx, product(fmt.Sprintf("p%d", ids[i]), 100), quantities[i]); err != nil {
					return false
				}
			}
			if applyCode {
				// May be rejected below the threshold; either outcome
				// must survive the rebuild.
				_, _ = c.ApplyDiscount(ctx, "WELCOME10")
			}

			rebuilt := newTestCart(store)

			if !reflect.DeepEqual(c.Lines(), rebuilt.Lines()) {
				t.Logf("FAIL: lines differ after rebuild")
				return false
			}
			return reflect.DeepEqual(c.AppliedDiscount(), rebuilt.AppliedDiscount())
		},
		gen.SliceOf(gen.IntRange(0, 4)),
		gen.SliceOf(gen.IntRange(1, 9)),
		gen.Bool(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
