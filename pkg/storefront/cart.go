package storefront

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"langnghe/internal/models"
	"langnghe/internal/pricing"
	"langnghe/pkg/logger"

	"github.com/shopspring/decimal"
)

// ErrItemNotInCart is returned by the quantity steppers for an unknown item id.
var ErrItemNotInCart = errors.New("item is not in the cart")

// Cart mirrors the server-side cart of one anonymous session. Local state
// only changes after the server confirms a mutation.
type Cart struct {
	client    *Client
	sessionID string

	mu    sync.RWMutex
	items []models.CartItem
}

// NewCart binds a cart to the session id kept under CartSessionKey.
func NewCart(client *Client, store LocalStore) (*Cart, error) {
	sessionID, err := SessionID(store, CartSessionKey)
	if err != nil {
		return nil, err
	}
	return &Cart{client: client, sessionID: sessionID}, nil
}

func (c *Cart) SessionID() string { return c.sessionID }

// Items returns a copy of the local cart lines.
func (c *Cart) Items() []models.CartItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.items)
}

// Refresh replaces the local lines with the server's.
func (c *Cart) Refresh(ctx context.Context) error {
	items, err := c.client.CartItems(ctx, c.sessionID)
	if err != nil {
		logger.Warn().Err(err).Str("sessionId", c.sessionID).Msg("Failed to fetch cart")
		return err
	}
	c.mu.Lock()
	c.items = items
	c.mu.Unlock()
	return nil
}

// AddToCart adds quantity units of product; a repeat add merges on the
// server. The full cart is refetched afterwards.
func (c *Cart) AddToCart(ctx context.Context, product models.Product, quantity int) error {
	_, err := c.client.AddCartItem(ctx, models.CartItemInput{
		ProductID: product.ID,
		SessionID: c.sessionID,
		Quantity:  &quantity,
	})
	if err != nil {
		logger.Warn().Err(err).Uint("productId", product.ID).Msg("Failed to add to cart")
		return err
	}
	if err := c.Refresh(ctx); err != nil {
		return fmt.Errorf("added %s to cart but could not reload it: %w", product.Name, err)
	}
	return nil
}

func (c *Cart) RemoveFromCart(ctx context.Context, itemID uint) error {
	if err := c.client.RemoveCartItem(ctx, itemID); err != nil {
		logger.Warn().Err(err).Uint("itemId", itemID).Msg("Failed to remove cart item")
		return err
	}
	c.drop(itemID)
	return nil
}

// UpdateCartItemQuantity sets the quantity of a line; quantity <= 0 removes it.
func (c *Cart) UpdateCartItemQuantity(ctx context.Context, itemID uint, quantity int) error {
	updated, err := c.client.UpdateCartItem(ctx, itemID, quantity)
	if err != nil {
		logger.Warn().Err(err).Uint("itemId", itemID).Int("quantity", quantity).Msg("Failed to update cart item")
		return err
	}
	if quantity <= 0 || updated == nil {
		c.drop(itemID)
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ID == itemID {
			c.items[i].Quantity = updated.Quantity
			c.items[i].UpdatedAt = updated.UpdatedAt
		}
	}
	return nil
}

func (c *Cart) IncrementQuantity(ctx context.Context, itemID uint) error {
	item, ok := c.item(itemID)
	if !ok {
		return ErrItemNotInCart
	}
	return c.UpdateCartItemQuantity(ctx, itemID, item.Quantity+1)
}

// DecrementQuantity lowers the quantity by one; from 1 the line is removed.
func (c *Cart) DecrementQuantity(ctx context.Context, itemID uint) error {
	item, ok := c.item(itemID)
	if !ok {
		return ErrItemNotInCart
	}
	if item.Quantity <= 1 {
		return c.RemoveFromCart(ctx, itemID)
	}
	return c.UpdateCartItemQuantity(ctx, itemID, item.Quantity-1)
}

func (c *Cart) ClearCart(ctx context.Context) error {
	if err := c.client.ClearCart(ctx, c.sessionID); err != nil {
		logger.Warn().Err(err).Str("sessionId", c.sessionID).Msg("Failed to clear cart")
		return err
	}
	c.mu.Lock()
	c.items = nil
	c.mu.Unlock()
	return nil
}

func (c *Cart) summary() pricing.Summary {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return pricing.Summarize(c.items)
}

// Total is the sum of effective price times quantity.
func (c *Cart) Total() decimal.Decimal { return c.summary().Subtotal }

func (c *Cart) ShippingCost() decimal.Decimal { return pricing.ShippingCost }

func (c *Cart) GrandTotal() decimal.Decimal { return c.summary().Total }

func (c *Cart) TotalItems() int { return c.summary().Items }

func (c *Cart) item(id uint) (models.CartItem, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i := slices.IndexFunc(c.items, func(it models.CartItem) bool { return it.ID == id })
	if i < 0 {
		return models.CartItem{}, false
	}
	return c.items[i], true
}

func (c *Cart) drop(id uint) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = slices.DeleteFunc(c.items, func(it models.CartItem) bool { return it.ID == id })
}
