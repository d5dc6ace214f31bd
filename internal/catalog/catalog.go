package catalog

import (
	"errors"
	"strings"

	"globalstore/internal/domain"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// Catalog defines the single, total product-lookup contract used by the
// cart and by browsing surfaces. There is exactly one catalog; callers
// never fall back to alternative sources.
type Catalog interface {
	GetProductByID(id string) (*domain.Product, error)
	List() []*domain.Product
	ListByCategory(categoryID string) []*domain.Product
	Search(query string) []*domain.Product
}

type memoryCatalog struct {
	products []domain.Product
	byID     map[string]int
}

// NewMemoryCatalog creates a Catalog over a fixed product list. Listing
// order follows the input order; a later duplicate ID replaces an earlier
// one.
func NewMemoryCatalog(products []domain.Product) Catalog {
	c := &memoryCatalog{
		byID: make(map[string]int, len(products)),
	}
	for _, p := range products {
		if idx, ok := c.byID[p.ID]; ok {
			c.products[idx] = p
			continue
		}
		c.byID[p.ID] = len(c.products)
		c.products = append(c.products, p)
	}
	return c
}

// GetProductByID retrieves a product by its opaque identifier.
func (c *memoryCatalog) GetProductByID(id string) (*domain.Product, error) {
	idx, ok := c.byID[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	product := c.products[idx]
	return &product, nil
}

// List returns all products in catalog order.
func (c *memoryCatalog) List() []*domain.Product {
	out := make([]*domain.Product, 0, len(c.products))
	for i := range c.products {
		product := c.products[i]
		out = append(out, &product)
	}
	return out
}

// ListByCategory returns the products classified under categoryID.
func (c *memoryCatalog) ListByCategory(categoryID string) []*domain.Product {
	out := []*domain.Product{}
	for i := range c.products {
		if c.products[i].CategoryID != categoryID {
			continue
		}
		product := c.products[i]
		out = append(out, &product)
	}
	return out
}

// Search matches the query case-insensitively against product names and
// descriptions. An empty or whitespace query returns the full catalog.
func (c *memoryCatalog) Search(query string) []*domain.Product {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return c.List()
	}

	out := []*domain.Product{}
	for i := range c.products {
		p := c.products[i]
		if strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.Description), query) {
			out = append(out, &p)
		}
	}
	return out
}
