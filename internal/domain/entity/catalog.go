package entity

import "time"

// CatalogState tells a loaded catalog apart from one whose fetch failed.
type CatalogState string

const (
	CatalogPopulated CatalogState = "populated"
	CatalogEmpty     CatalogState = "empty"
)

// Catalog is the product list a shopper session browses.
type Catalog struct {
	Products []Product
	State    CatalogState
	LoadedAt time.Time

	index map[string]int
}

// NewCatalog indexes products by id. Later duplicates of an id are dropped.
func NewCatalog(products []Product, loadedAt time.Time) *Catalog {
	c := &Catalog{
		Products: make([]Product, 0, len(products)),
		State:    CatalogPopulated,
		LoadedAt: loadedAt,
		index:    make(map[string]int, len(products)),
	}

	for _, p := range products {
		if _, dup := c.index[p.ID]; dup {
			continue
		}
		c.index[p.ID] = len(c.Products)
		c.Products = append(c.Products, p)
	}

	if len(c.Products) == 0 {
		c.State = CatalogEmpty
	}

	return c
}

// EmptyCatalog is the catalog shown after a failed fetch.
func EmptyCatalog(loadedAt time.Time) *Catalog {
	return NewCatalog(nil, loadedAt)
}

// Find looks a product up by id.
func (c *Catalog) Find(id string) (Product, bool) {
	if c == nil {
		return Product{}, false
	}

	i, ok := c.index[id]
	if !ok {
		return Product{}, false
	}

	return c.Products[i], true
}

// IsEmpty reports whether the catalog has no products.
func (c *Catalog) IsEmpty() bool {
	return c == nil || len(c.Products) == 0
}
