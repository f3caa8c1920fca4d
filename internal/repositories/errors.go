package repositories

import "errors"

// Sentinel errors returned (wrapped) by every Storage implementation.
var (
	ErrNotFound        = errors.New("record not found")
	ErrDuplicate       = errors.New("duplicate record")
	ErrUnknownCategory = errors.New("unknown category")
	ErrUnknownArtisan  = errors.New("unknown artisan")
	ErrUnknownProduct  = errors.New("unknown product")
	// ErrQuantityLimit rejects a cart line above models.MaxCartQuantity.
	ErrQuantityLimit = errors.New("cart quantity limit exceeded")
)
