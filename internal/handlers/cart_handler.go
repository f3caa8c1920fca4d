package handlers

import (
	"langnghe/internal/models"
	"langnghe/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for the session cart.
type CartHandler struct {
	service  *services.CartService
	validate *validator.Validate
}

func NewCartHandler(service *services.CartService, validate *validator.Validate) *CartHandler {
	return &CartHandler{service: service, validate: validate}
}

// quantityUpdate is the body of PUT /cart/:id. A value <= 0 removes the row.
type quantityUpdate struct {
	Quantity *int `json:"quantity" validate:"required,max=10000"`
}

// RegisterRoutes registers the cart routes. DELETE /session/:sessionId is
// registered before DELETE /:id.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Post("/", h.HandleAddToCart)
	cartRoutes.Delete("/session/:sessionId", h.HandleClearCart)
	cartRoutes.Get("/:sessionId/summary", h.HandleGetCartSummary)
	cartRoutes.Get("/:sessionId", h.HandleGetCart)
	cartRoutes.Put("/:id", h.HandleUpdateCartItem)
	cartRoutes.Delete("/:id", h.HandleRemoveCartItem)
}

// HandleGetCart lists the session's items with their products embedded.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	sessionID, err := sessionParam(c)
	if err != nil {
		return respondError(c, err, "", "")
	}
	items, err := h.service.Items(sessionID)
	if err != nil {
		return respondError(c, err, "", "Could not retrieve cart")
	}
	return c.JSON(items)
}

func (h *CartHandler) HandleGetCartSummary(c *fiber.Ctx) error {
	sessionID, err := sessionParam(c)
	if err != nil {
		return respondError(c, err, "", "")
	}
	summary, err := h.service.Summary(sessionID)
	if err != nil {
		return respondError(c, err, "", "Could not compute cart summary")
	}
	return c.JSON(summary)
}

// HandleAddToCart upserts by (sessionId, productId) and returns the row.
func (h *CartHandler) HandleAddToCart(c *fiber.Ctx) error {
	var input models.CartItemInput
	if err := bind(c, h.validate, &input); err != nil {
		return respondError(c, err, "", "Could not add to cart")
	}
	item, err := h.service.Add(input)
	if err != nil {
		return respondError(c, err, "", "Could not add to cart")
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

func (h *CartHandler) HandleUpdateCartItem(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err, "", "")
	}
	var body quantityUpdate
	if err := bind(c, h.validate, &body); err != nil {
		return respondError(c, err, "", "Could not update cart item")
	}

	item, err := h.service.UpdateQuantity(id, *body.Quantity)
	if err != nil {
		return respondError(c, err, "Cart item not found", "Could not update cart item")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"item":    item,
	})
}

// HandleRemoveCartItem is idempotent: removing a missing row succeeds.
func (h *CartHandler) HandleRemoveCartItem(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err, "", "")
	}
	if err := h.service.Remove(id); err != nil {
		return respondError(c, err, "", "Could not remove cart item")
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *CartHandler) HandleClearCart(c *fiber.Ctx) error {
	sessionID, err := sessionParam(c)
	if err != nil {
		return respondError(c, err, "", "")
	}
	if err := h.service.Clear(sessionID); err != nil {
		return respondError(c, err, "", "Could not clear cart")
	}
	return c.JSON(fiber.Map{"success": true})
}
