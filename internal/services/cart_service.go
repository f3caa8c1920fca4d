package services

import (
	"fmt"

	"langnghe/internal/models"
	"langnghe/internal/pricing"
	"langnghe/internal/repositories"
)

// CartService handles the session-scoped shopping cart.
type CartService struct {
	repo repositories.CartRepository
}

func NewCartService(repo repositories.CartRepository) *CartService {
	return &CartService{repo: repo}
}

// Items lists the session's cart rows joined with their products.
func (s *CartService) Items(sessionID string) ([]models.CartItem, error) {
	return s.repo.ListCartItems(sessionID)
}

// Add merges the input into the session cart: a repeat add of the same
// product increases the existing quantity.
func (s *CartService) Add(input models.CartItemInput) (*models.CartItem, error) {
	item := input.CartItem()
	if err := s.repo.AddToCart(&item); err != nil {
		return nil, fmt.Errorf("failed to add product %d to cart: %w", input.ProductID, err)
	}
	return &item, nil
}

// UpdateQuantity sets a row's quantity. A quantity <= 0 removes the row and
// returns (nil, nil).
func (s *CartService) UpdateQuantity(id uint, quantity int) (*models.CartItem, error) {
	item, err := s.repo.UpdateCartItem(id, quantity)
	if err != nil {
		return nil, fmt.Errorf("failed to update cart item %d: %w", id, err)
	}
	return item, nil
}

func (s *CartService) Remove(id uint) error {
	return s.repo.RemoveFromCart(id)
}

// Clear empties the session cart, as done on checkout.
func (s *CartService) Clear(sessionID string) error {
	return s.repo.ClearCart(sessionID)
}

func (s *CartService) Summary(sessionID string) (pricing.Summary, error) {
	items, err := s.repo.ListCartItems(sessionID)
	if err != nil {
		return pricing.Summary{}, err
	}
	return pricing.Summarize(items), nil
}
