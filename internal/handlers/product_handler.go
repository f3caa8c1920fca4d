package handlers

import (
	"strconv"

	"langnghe/internal/catalog"
	"langnghe/internal/models"
	"langnghe/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService, validate *validator.Validate) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validate,
	}
}

// RegisterRoutes registers the product routes. Fixed paths come before
// /:slug so they are not captured as slugs.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/featured", h.HandleGetFeaturedProducts)
	productRoutes.Get("/export", h.HandleExportProducts)
	productRoutes.Get("/:slug", h.HandleGetProduct)
	productRoutes.Post("/", h.HandleCreateProduct)
}

// listQuery reads the optional filter and sort query parameters.
func listQuery(c *fiber.Ctx) (catalog.Filter, catalog.SortKey, error) {
	filter := catalog.Filter{
		CategorySlug: c.Query("category"),
		IsNew:        c.QueryBool("isNew"),
		IsBestseller: c.QueryBool("isBestseller"),
	}

	fields := map[string]string{}
	for name, dst := range map[string]**float64{"minPrice": &filter.MinPrice, "maxPrice": &filter.MaxPrice} {
		raw := c.Query(name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			fields[name] = "Must be a non-negative number"
			continue
		}
		*dst = &v
	}

	sort, err := catalog.ParseSortKey(c.Query("sort"))
	if err != nil {
		fields["sort"] = "Must be one of featured, priceAsc, priceDesc, newest, rating"
	}
	if len(fields) > 0 {
		return catalog.Filter{}, "", &ValidationError{Fields: fields}
	}
	return filter, sort, nil
}

// HandleGetProducts lists products, optionally filtered and sorted.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	filter, sort, err := listQuery(c)
	if err != nil {
		return respondError(c, err, "", "")
	}
	products, err := h.service.ListProducts(filter, sort)
	if err != nil {
		return respondError(c, err, "", "Could not retrieve products")
	}
	return c.JSON(products)
}

func (h *ProductHandler) HandleGetFeaturedProducts(c *fiber.Ctx) error {
	products, err := h.service.ListFeaturedProducts()
	if err != nil {
		return respondError(c, err, "", "Could not retrieve featured products")
	}
	return c.JSON(products)
}

// HandleGetProduct retrieves a single product by its slug.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	product, err := h.service.GetProductBySlug(c.Params("slug"))
	if err != nil {
		return respondError(c, err, "Product not found", "Could not retrieve product")
	}
	return c.JSON(product)
}

// HandleCreateProduct creates a new product and bumps its category's count.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var input models.ProductInput
	if err := bind(c, h.validate, &input); err != nil {
		return respondError(c, err, "", "Could not create product")
	}
	product, err := h.service.CreateProduct(input)
	if err != nil {
		return respondError(c, err, "", "Could not create product")
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}
