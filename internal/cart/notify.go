package cart

import "globalstore/internal/domain"

// Snapshot is the payload delivered to change subscribers, carrying
// enough derived state for an observer to re-render without querying the
// cart again.
type Snapshot struct {
	Lines     []domain.CartLine
	Subtotal  int64
	ItemCount int
	Total     int64
}

// Subscribe registers fn to be called synchronously after every
// successfully persisted mutation. The returned function unsubscribes it.
func (c *Cart) Subscribe(fn func(Snapshot)) func() {
	id := c.nextListener
	c.nextListener++
	c.listeners[id] = fn

	return func() {
		delete(c.listeners, id)
	}
}

func (c *Cart) publish() {
	if len(c.listeners) == 0 {
		return
	}

	snapshot := Snapshot{
		Lines:     c.Lines(),
		Subtotal:  c.Subtotal(),
		ItemCount: c.ItemCount(),
		Total:     c.Total(),
	}
	for _, fn := range c.listeners {
		fn(snapshot)
	}
}
