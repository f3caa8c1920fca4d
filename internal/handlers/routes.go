package handlers

import (
	"langnghe/internal/services"

	"github.com/gofiber/fiber/v2"
)

// Services bundles what the API handlers dispatch to.
type Services struct {
	Catalog    *services.CatalogService
	Products   *services.ProductService
	Cart       *services.CartService
	Newsletter *services.NewsletterService
}

// Register mounts every storefront route on api.
func Register(api fiber.Router, s Services) {
	validate := NewValidator()

	NewCategoryHandler(s.Catalog, s.Products, validate).RegisterRoutes(api)
	NewProductHandler(s.Products, validate).RegisterRoutes(api)
	NewArtisanHandler(s.Catalog, validate).RegisterRoutes(api)
	NewTestimonialHandler(s.Catalog, validate).RegisterRoutes(api)
	NewCartHandler(s.Cart, validate).RegisterRoutes(api)
	NewNewsletterHandler(s.Newsletter, validate).RegisterRoutes(api)
}
