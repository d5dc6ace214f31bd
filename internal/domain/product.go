package domain

// Product represents a product in the catalog.
//
// All monetary amounts in this package are expressed in integer minor
// units of the shop currency (e.g. halalas), never floating point.
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	UnitPrice   int64  `json:"unit_price"`
	OldPrice    *int64 `json:"old_price,omitempty"`
	ImageRef    string `json:"image_ref"`
	CategoryID  string `json:"category_id"`
	Description string `json:"description,omitempty"`
}

// OnSale reports whether the product carries a "was X, now Y" listing.
func (p *Product) OnSale() bool {
	return p.OldPrice != nil && *p.OldPrice > p.UnitPrice
}
