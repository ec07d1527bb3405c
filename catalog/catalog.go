// Package catalog loads the product list the storefront sells. The catalog
// is an external collaborator: stores never import it, they only receive
// copies of product fields through their operations.
package catalog

import (
	"errors"
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/MRxhaqq/Luxury-Hijabi/models"
)

// Catalog is an id-indexed product lookup.
type Catalog struct {
	products []models.Product
	byID     map[string]models.Product
}

// Load parses a TOML catalog file. A missing file yields an empty catalog,
// not an error, so the storefront stays runnable without one.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return New(nil), nil
		}
		return nil, err
	}

	var doc struct {
		Products []models.Product `toml:"products"`
	}
	if err := toml.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return New(doc.Products), nil
}

// New builds a catalog from an in-memory product list.
func New(products []models.Product) *Catalog {
	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &Catalog{products: products, byID: byID}
}

// Lookup finds a product by id.
func (c *Catalog) Lookup(id string) (models.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Products returns every catalog entry.
func (c *Catalog) Products() []models.Product {
	return c.products
}

// Len is the number of products on sale.
func (c *Catalog) Len() int {
	return len(c.products)
}
