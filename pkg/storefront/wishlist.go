package storefront

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"

	"langnghe/internal/models"
	"langnghe/pkg/logger"

	"github.com/google/uuid"
)

// ErrAlreadyInWishlist is returned by Add when the product is already saved.
var ErrAlreadyInWishlist = errors.New("product is already in the wishlist")

// WishlistItem is one saved product.
type WishlistItem struct {
	ID        string         `json:"id"`
	Product   models.Product `json:"product"`
	SessionID string         `json:"sessionId"`
}

// CartAdder is the part of Cart that MoveToCart needs.
type CartAdder interface {
	AddToCart(ctx context.Context, product models.Product, quantity int) error
}

// Wishlist is kept only in local storage, never on the server.
type Wishlist struct {
	store     LocalStore
	sessionID string

	mu    sync.RWMutex
	items []WishlistItem
}

// NewWishlist loads the wishlist of the session kept under
// WishlistSessionKey. Unreadable saved data starts an empty list.
func NewWishlist(store LocalStore) (*Wishlist, error) {
	sessionID, err := SessionID(store, WishlistSessionKey)
	if err != nil {
		return nil, err
	}
	w := &Wishlist{store: store, sessionID: sessionID}

	if raw, ok := store.Get(w.key()); ok && raw != "" {
		if err := json.Unmarshal([]byte(raw), &w.items); err != nil {
			logger.Warn().Err(err).Str("key", w.key()).Msg("Discarding unreadable wishlist")
			w.items = nil
		}
	}
	return w, nil
}

func (w *Wishlist) SessionID() string { return w.sessionID }

func (w *Wishlist) key() string { return "wishlist_" + w.sessionID }

func (w *Wishlist) Items() []WishlistItem {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return slices.Clone(w.items)
}

func (w *Wishlist) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.items)
}

func (w *Wishlist) Contains(productID uint) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.indexOf(productID) >= 0
}

// Add saves product. Saving a product twice returns ErrAlreadyInWishlist.
func (w *Wishlist) Add(product models.Product) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.indexOf(product.ID) >= 0 {
		return ErrAlreadyInWishlist
	}
	next := append(slices.Clone(w.items), WishlistItem{
		ID:        uuid.NewString(),
		Product:   product,
		SessionID: w.sessionID,
	})
	return w.save(next)
}

// Remove drops the product; removing an absent product is a no-op.
func (w *Wishlist) Remove(productID uint) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.indexOf(productID) < 0 {
		return nil
	}
	next := slices.DeleteFunc(slices.Clone(w.items), func(it WishlistItem) bool {
		return it.Product.ID == productID
	})
	return w.save(next)
}

func (w *Wishlist) Clear() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.store.Remove(w.key()); err != nil {
		logger.Warn().Err(err).Msg("Failed to clear wishlist")
		return err
	}
	w.items = nil
	return nil
}

// MoveToCart adds the product to cart and then removes it from the
// wishlist. If the cart rejects it neither list changes. If only the
// wishlist write fails the product ends up in both and the error says so.
func (w *Wishlist) MoveToCart(ctx context.Context, cart CartAdder, product models.Product, quantity int) error {
	if err := cart.AddToCart(ctx, product, quantity); err != nil {
		return err
	}
	if err := w.Remove(product.ID); err != nil {
		return fmt.Errorf("%s was added to the cart but is still in the wishlist: %w", product.Name, err)
	}
	return nil
}

func (w *Wishlist) indexOf(productID uint) int {
	return slices.IndexFunc(w.items, func(it WishlistItem) bool { return it.Product.ID == productID })
}

// save persists next and adopts it only when the write succeeded.
func (w *Wishlist) save(next []WishlistItem) error {
	raw, err := json.Marshal(next)
	if err != nil {
		return err
	}
	if err := w.store.Set(w.key(), string(raw)); err != nil {
		logger.Warn().Err(err).Msg("Failed to save wishlist")
		return err
	}
	w.items = next
	return nil
}
