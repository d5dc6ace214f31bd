package catalog

import "globalstore/internal/domain"

func ptr(v int64) *int64 { return &v }

// SeedProducts returns the storefront's stock product list. Prices are in
// minor units.
func SeedProducts() []domain.Product {
	return []domain.Product{
		{ID: "p1", Name: "Luxury Lipstick", UnitPrice: 450000, ImageRef: "/images/lipstick.jpg", CategoryID: "cosmetics", Description: "Long-lasting color with an elegant shine."},
		{ID: "p2", Name: "Oriental Perfume", UnitPrice: 1200000, ImageRef: "/images/perfume.jpg", CategoryID: "cosmetics", Description: "Distinctive notes for evening wear."},
		{ID: "p3", Name: "Metal Necklace", UnitPrice: 800000, ImageRef: "/images/necklace.jpg", CategoryID: "accessories", Description: "Simple design with an elegant touch."},
		{ID: "p4", Name: "Handbag", UnitPrice: 1500000, ImageRef: "/images/bag.jpg", CategoryID: "accessories", Description: "High quality with practical capacity."},
		{ID: "p5", Name: "Cotton Shirt", UnitPrice: 900000, ImageRef: "/images/shirt.jpg", CategoryID: "clothing", Description: "Everyday comfort in excellent fabric."},
		{ID: "p6", Name: "Sport Sneakers", UnitPrice: 2200000, ImageRef: "/images/shoes.jpg", CategoryID: "clothing", Description: "Stability and comfort on long walks."},
		{ID: "p7", Name: "Wireless Earbuds", UnitPrice: 3000000, ImageRef: "/images/earbuds.jpg", CategoryID: "electronics", Description: "Clear sound with noise isolation."},
		{ID: "p8", Name: "Fast Charger", UnitPrice: 700000, ImageRef: "/images/charger.jpg", CategoryID: "electronics", Description: "Efficient charging with high safety."},
		{ID: "offer1", Name: "Season Finale Deal", UnitPrice: 1990000, OldPrice: ptr(3990000), ImageRef: "/images/offer.jpg", CategoryID: "offers", Description: "Half price for a limited time."},
	}
}
