package repositories

import (
	"time"

	"langnghe/internal/models"
)

// CartRepository defines the interface for session-scoped cart data access.
type CartRepository interface {
	// ListCartItems returns the session's rows ordered by id, each with its
	// product attached. Rows whose product no longer exists are skipped.
	ListCartItems(sessionID string) ([]models.CartItem, error)
	// AddToCart inserts the row or, when the (sessionId, productId) pair
	// already exists, adds item.Quantity to it. item is overwritten with the
	// resulting row.
	AddToCart(item *models.CartItem) error
	// UpdateCartItem sets the quantity of a row. A quantity <= 0 deletes the
	// row and returns (nil, nil). A missing row with quantity > 0 is ErrNotFound.
	UpdateCartItem(id uint, quantity int) (*models.CartItem, error)
	RemoveFromCart(id uint) error
	ClearCart(sessionID string) error
	// DeleteStaleCartItems removes rows not updated since before and reports how many.
	DeleteStaleCartItems(before time.Time) (int64, error)
}
