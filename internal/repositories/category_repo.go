package repositories

import "langnghe/internal/models"

// CategoryRepository defines the interface for category data access.
type CategoryRepository interface {
	ListCategories() ([]models.Category, error)
	GetCategoryBySlug(slug string) (*models.Category, error)
	CreateCategory(category *models.Category) error
}
