package domain

// CartLine is one product-and-quantity entry in the cart. Display fields
// are denormalized from the product at the time the line was created, so
// the cart still renders sensibly if the catalog item later changes or
// disappears.
type CartLine struct {
	ProductID  string `json:"product_id"`
	Name       string `json:"name"`
	UnitPrice  int64  `json:"unit_price"`
	ImageRef   string `json:"image_ref"`
	CategoryID string `json:"category_id"`
	Quantity   int    `json:"quantity"`
}

// LineTotal returns the line's price contribution in minor units.
func (l CartLine) LineTotal() int64 {
	return l.UnitPrice * int64(l.Quantity)
}

// Discount is an applied discount code together with the rule it was
// granted under.
type Discount struct {
	Code        string `json:"code"`
	Percent     int    `json:"percent"`
	MinSubtotal int64  `json:"min_subtotal"`
}

// CartState is the full persisted cart document. It is serialized as a
// single JSON object under one well-known storage key.
type CartState struct {
	Lines    []CartLine `json:"lines"`
	Discount *Discount  `json:"discount"`
}
