package storefront

import (
	"context"
	"sync"

	"langnghe/internal/catalog"
	"langnghe/internal/models"
)

// Catalog caches the product and category listings and filters them
// locally.
type Catalog struct {
	client *Client

	mu         sync.RWMutex
	products   []models.Product
	categories []models.Category
}

func NewCatalog(client *Client) *Catalog {
	return &Catalog{client: client}
}

// Load fetches categories and products, replacing what was cached.
func (c *Catalog) Load(ctx context.Context) error {
	categories, err := c.client.Categories(ctx)
	if err != nil {
		return err
	}
	products, err := c.client.Products(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.categories = categories
	c.products = products
	c.mu.Unlock()
	return nil
}

func (c *Catalog) Categories() []models.Category {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.Category(nil), c.categories...)
}

// Query filters and orders the cached products.
func (c *Catalog) Query(filter catalog.Filter, key catalog.SortKey) []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return catalog.Apply(c.products, c.categories, filter, key)
}
