package repositories

import (
	"fmt"

	"langnghe/internal/models"

	"gorm.io/gorm"
)

// ListProducts retrieves all products from the database.
func (r *GORMStorage) ListProducts() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Order("id").Find(&products).Error; err != nil {
		return nil, translate(err, "list products")
	}
	return products, nil
}

// GetProductByID retrieves a single product by its ID from the database.
func (r *GORMStorage) GetProductByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, id).Error; err != nil {
		return nil, translate(err, "get product with ID %d", id)
	}
	return &product, nil
}

// GetProductBySlug retrieves a single product by its slug from the database.
func (r *GORMStorage) GetProductBySlug(slug string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "slug = ?", slug).Error; err != nil {
		return nil, translate(err, "get product with slug %s", slug)
	}
	return &product, nil
}

func (r *GORMStorage) ListProductsByCategory(categoryID uint) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Where("category_id = ?", categoryID).Order("id").Find(&products).Error; err != nil {
		return nil, translate(err, "list products of category %d", categoryID)
	}
	return products, nil
}

func (r *GORMStorage) ListFeaturedProducts() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Where("is_featured = ?", true).Order("id").Find(&products).Error; err != nil {
		return nil, translate(err, "list featured products")
	}
	return products, nil
}

// CreateProduct inserts the product and bumps the category's product_count
// in the same transaction.
func (r *GORMStorage) CreateProduct(product *models.Product) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Category{}).
			Where("id = ?", product.CategoryID).
			UpdateColumn("product_count", gorm.Expr("product_count + ?", 1))
		if res.Error != nil {
			return translate(res.Error, "increment product count of category %d", product.CategoryID)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("category %d: %w", product.CategoryID, ErrUnknownCategory)
		}

		if product.ArtisanID != nil {
			var n int64
			if err := tx.Model(&models.Artisan{}).Where("id = ?", *product.ArtisanID).Count(&n).Error; err != nil {
				return translate(err, "look up artisan %d", *product.ArtisanID)
			}
			if n == 0 {
				return fmt.Errorf("artisan %d: %w", *product.ArtisanID, ErrUnknownArtisan)
			}
		}

		if err := tx.Omit("Category", "Artisan").Create(product).Error; err != nil {
			return translate(err, "create product %s", product.Slug)
		}
		return nil
	})
}

// RecountCategoryProducts derives every product_count from the products table.
func (r *GORMStorage) RecountCategoryProducts() error {
	err := r.db.Model(&models.Category{}).
		Where("1 = 1").
		UpdateColumn("product_count", gorm.Expr("(SELECT COUNT(*) FROM products WHERE products.category_id = categories.id)")).
		Error
	if err != nil {
		return translate(err, "recount category products")
	}
	return nil
}
