package handlers

import (
	"langnghe/internal/models"
	"langnghe/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	catalog  *services.CatalogService
	products *services.ProductService
	validate *validator.Validate
}

func NewCategoryHandler(catalog *services.CatalogService, products *services.ProductService, validate *validator.Validate) *CategoryHandler {
	return &CategoryHandler{
		catalog:  catalog,
		products: products,
		validate: validate,
	}
}

// RegisterRoutes registers the category routes.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router) {
	categoryRoutes := router.Group("/categories")
	categoryRoutes.Get("/", h.HandleGetCategories)
	categoryRoutes.Post("/", h.HandleCreateCategory)
	categoryRoutes.Get("/:categoryId/products", h.HandleGetCategoryProducts)
	categoryRoutes.Get("/:slug", h.HandleGetCategory)
}

func (h *CategoryHandler) HandleGetCategories(c *fiber.Ctx) error {
	categories, err := h.catalog.ListCategories()
	if err != nil {
		return respondError(c, err, "", "Could not retrieve categories")
	}
	return c.JSON(categories)
}

func (h *CategoryHandler) HandleGetCategory(c *fiber.Ctx) error {
	category, err := h.catalog.GetCategoryBySlug(c.Params("slug"))
	if err != nil {
		return respondError(c, err, "Category not found", "Could not retrieve category")
	}
	return c.JSON(category)
}

// HandleGetCategoryProducts lists the products of a category id. An unknown
// id yields an empty list.
func (h *CategoryHandler) HandleGetCategoryProducts(c *fiber.Ctx) error {
	categoryID, err := paramID(c, "categoryId")
	if err != nil {
		return respondError(c, err, "", "")
	}
	products, err := h.products.ListProductsByCategory(categoryID)
	if err != nil {
		return respondError(c, err, "", "Could not retrieve products")
	}
	return c.JSON(products)
}

func (h *CategoryHandler) HandleCreateCategory(c *fiber.Ctx) error {
	var category models.Category
	if err := bind(c, h.validate, &category); err != nil {
		return respondError(c, err, "", "Could not create category")
	}
	if err := h.catalog.CreateCategory(&category); err != nil {
		return respondError(c, err, "", "Could not create category")
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}
