package handlers

import (
	"langnghe/internal/models"
	"langnghe/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type ArtisanHandler struct {
	service  *services.CatalogService
	validate *validator.Validate
}

func NewArtisanHandler(service *services.CatalogService, validate *validator.Validate) *ArtisanHandler {
	return &ArtisanHandler{service: service, validate: validate}
}

func (h *ArtisanHandler) RegisterRoutes(router fiber.Router) {
	artisanRoutes := router.Group("/artisans")
	artisanRoutes.Get("/", h.HandleGetArtisans)
	artisanRoutes.Get("/:id", h.HandleGetArtisan)
	artisanRoutes.Post("/", h.HandleCreateArtisan)
}

func (h *ArtisanHandler) HandleGetArtisans(c *fiber.Ctx) error {
	artisans, err := h.service.ListArtisans()
	if err != nil {
		return respondError(c, err, "", "Could not retrieve artisans")
	}
	return c.JSON(artisans)
}

func (h *ArtisanHandler) HandleGetArtisan(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err, "", "")
	}
	artisan, err := h.service.GetArtisanByID(id)
	if err != nil {
		return respondError(c, err, "Artisan not found", "Could not retrieve artisan")
	}
	return c.JSON(artisan)
}

func (h *ArtisanHandler) HandleCreateArtisan(c *fiber.Ctx) error {
	var artisan models.Artisan
	if err := bind(c, h.validate, &artisan); err != nil {
		return respondError(c, err, "", "Could not create artisan")
	}
	if err := h.service.CreateArtisan(&artisan); err != nil {
		return respondError(c, err, "", "Could not create artisan")
	}
	return c.Status(fiber.StatusCreated).JSON(artisan)
}
