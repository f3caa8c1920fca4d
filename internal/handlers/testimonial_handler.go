package handlers

import (
	"langnghe/internal/models"
	"langnghe/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type TestimonialHandler struct {
	service  *services.CatalogService
	validate *validator.Validate
}

func NewTestimonialHandler(service *services.CatalogService, validate *validator.Validate) *TestimonialHandler {
	return &TestimonialHandler{service: service, validate: validate}
}

func (h *TestimonialHandler) RegisterRoutes(router fiber.Router) {
	testimonialRoutes := router.Group("/testimonials")
	testimonialRoutes.Get("/", h.HandleGetTestimonials)
	testimonialRoutes.Post("/", h.HandleCreateTestimonial)
}

func (h *TestimonialHandler) HandleGetTestimonials(c *fiber.Ctx) error {
	testimonials, err := h.service.ListTestimonials()
	if err != nil {
		return respondError(c, err, "", "Could not retrieve testimonials")
	}
	return c.JSON(testimonials)
}

func (h *TestimonialHandler) HandleCreateTestimonial(c *fiber.Ctx) error {
	var testimonial models.Testimonial
	if err := bind(c, h.validate, &testimonial); err != nil {
		return respondError(c, err, "", "Could not create testimonial")
	}
	if err := h.service.CreateTestimonial(&testimonial); err != nil {
		return respondError(c, err, "", "Could not create testimonial")
	}
	return c.Status(fiber.StatusCreated).JSON(testimonial)
}
