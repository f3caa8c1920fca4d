package handlers

import (
	"langnghe/internal/models"
	"langnghe/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type NewsletterHandler struct {
	service  *services.NewsletterService
	validate *validator.Validate
}

func NewNewsletterHandler(service *services.NewsletterService, validate *validator.Validate) *NewsletterHandler {
	return &NewsletterHandler{service: service, validate: validate}
}

func (h *NewsletterHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/subscribe", h.HandleSubscribe)
}

func (h *NewsletterHandler) HandleSubscribe(c *fiber.Ctx) error {
	var subscriber models.Subscriber
	if err := bind(c, h.validate, &subscriber); err != nil {
		return respondError(c, err, "", "Could not subscribe")
	}
	if err := h.service.Subscribe(&subscriber); err != nil {
		return respondError(c, err, "", "Could not subscribe")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Subscribed to the newsletter",
	})
}
