package services

import (
	"fmt"

	"langnghe/internal/models"
	"langnghe/internal/repositories"
)

// CatalogService serves the informational entities around products:
// categories, artisans and testimonials.
type CatalogService struct {
	repo repositories.CatalogRepository
}

func NewCatalogService(repo repositories.CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) ListCategories() ([]models.Category, error) {
	return s.repo.ListCategories()
}

func (s *CatalogService) GetCategoryBySlug(slug string) (*models.Category, error) {
	return s.repo.GetCategoryBySlug(slug)
}

// CreateCategory stores a new category. productCount always starts at zero.
func (s *CatalogService) CreateCategory(category *models.Category) error {
	category.ID = 0
	category.ProductCount = 0
	if err := s.repo.CreateCategory(category); err != nil {
		return fmt.Errorf("failed to create category %s: %w", category.Slug, err)
	}
	return nil
}

func (s *CatalogService) ListArtisans() ([]models.Artisan, error) {
	return s.repo.ListArtisans()
}

func (s *CatalogService) GetArtisanByID(id uint) (*models.Artisan, error) {
	return s.repo.GetArtisanByID(id)
}

func (s *CatalogService) CreateArtisan(artisan *models.Artisan) error {
	artisan.ID = 0
	if err := s.repo.CreateArtisan(artisan); err != nil {
		return fmt.Errorf("failed to create artisan: %w", err)
	}
	return nil
}

func (s *CatalogService) ListTestimonials() ([]models.Testimonial, error) {
	return s.repo.ListTestimonials()
}

// CreateTestimonial stores a testimonial; a missing rating becomes 5.
func (s *CatalogService) CreateTestimonial(testimonial *models.Testimonial) error {
	testimonial.ID = 0
	if testimonial.Rating == 0 {
		testimonial.Rating = models.DefaultTestimonialRating
	}
	if err := s.repo.CreateTestimonial(testimonial); err != nil {
		return fmt.Errorf("failed to create testimonial: %w", err)
	}
	return nil
}
