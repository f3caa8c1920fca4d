package services

import (
	"fmt"

	"langnghe/internal/catalog"
	"langnghe/internal/models"
	"langnghe/internal/repositories"
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo repositories.CatalogRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.CatalogRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// ListProducts returns the products that pass filter, ordered by sort.
func (s *ProductService) ListProducts(filter catalog.Filter, sort catalog.SortKey) ([]models.Product, error) {
	products, err := s.repo.ListProducts()
	if err != nil {
		return nil, err
	}

	var categories []models.Category
	if filter.CategorySlug != "" {
		if categories, err = s.repo.ListCategories(); err != nil {
			return nil, err
		}
	}
	return catalog.Apply(products, categories, filter, sort), nil
}

// GetProductBySlug retrieves a single product by its slug.
func (s *ProductService) GetProductBySlug(slug string) (*models.Product, error) {
	return s.repo.GetProductBySlug(slug)
}

func (s *ProductService) ListFeaturedProducts() ([]models.Product, error) {
	return s.repo.ListFeaturedProducts()
}

func (s *ProductService) ListProductsByCategory(categoryID uint) ([]models.Product, error) {
	return s.repo.ListProductsByCategory(categoryID)
}

// CreateProduct applies input defaults and stores the product. The
// category's productCount moves with it.
func (s *ProductService) CreateProduct(input models.ProductInput) (*models.Product, error) {
	product := input.Product()
	if err := s.repo.CreateProduct(&product); err != nil {
		return nil, fmt.Errorf("failed to create product %s: %w", input.Slug, err)
	}
	return &product, nil
}
