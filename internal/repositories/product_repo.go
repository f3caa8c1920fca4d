package repositories

import (
	"langnghe/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	ListProducts() ([]models.Product, error)
	GetProductByID(id uint) (*models.Product, error)
	GetProductBySlug(slug string) (*models.Product, error)
	ListProductsByCategory(categoryID uint) ([]models.Product, error)
	ListFeaturedProducts() ([]models.Product, error)
	// CreateProduct inserts the product and increments its category's
	// productCount as one unit. It fails with ErrUnknownCategory (or
	// ErrUnknownArtisan) without writing anything when a reference is missing.
	CreateProduct(product *models.Product) error
	// RecountCategoryProducts recomputes every productCount from the products table.
	RecountCategoryProducts() error
}
