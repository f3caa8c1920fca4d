package storefront

import (
	"context"
	"errors"
	"testing"

	"langnghe/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStore struct {
	*MemoryStore
	failSet bool
}

func (s *failingStore) Set(key, value string) error {
	if s.failSet && key != WishlistSessionKey {
		return errors.New("disk full")
	}
	return s.MemoryStore.Set(key, value)
}

type failingCart struct{ calls int }

func (c *failingCart) AddToCart(context.Context, models.Product, int) error {
	c.calls++
	return errors.New("out of stock")
}

func TestWishlistAddRemove(t *testing.T) {
	store := NewMemoryStore()
	w, err := NewWishlist(store)
	require.NoError(t, err)

	vase := models.Product{ID: 1, Name: "vase"}
	scarf := models.Product{ID: 3, Name: "scarf"}

	require.NoError(t, w.Add(vase))
	require.NoError(t, w.Add(scarf))
	assert.ErrorIs(t, w.Add(vase), ErrAlreadyInWishlist)
	assert.Equal(t, 2, w.Len())
	assert.True(t, w.Contains(1))

	items := w.Items()
	assert.Equal(t, w.SessionID(), items[0].SessionID)
	assert.NotEmpty(t, items[0].ID)

	require.NoError(t, w.Remove(1))
	require.NoError(t, w.Remove(42))
	assert.False(t, w.Contains(1))
	assert.Equal(t, 1, w.Len())

	_, ok := store.Get("wishlist_" + w.SessionID())
	assert.True(t, ok)
}

func TestWishlistPersists(t *testing.T) {
	store := NewMemoryStore()
	w, err := NewWishlist(store)
	require.NoError(t, err)
	require.NoError(t, w.Add(models.Product{ID: 2, Name: "basket"}))

	reloaded, err := NewWishlist(store)
	require.NoError(t, err)
	assert.Equal(t, w.SessionID(), reloaded.SessionID())
	require.Equal(t, 1, reloaded.Len())
	assert.Equal(t, "basket", reloaded.Items()[0].Product.Name)

	require.NoError(t, reloaded.Clear())
	assert.Zero(t, reloaded.Len())
	_, ok := store.Get("wishlist_" + reloaded.SessionID())
	assert.False(t, ok)
}

func TestWishlistIgnoresUnreadableData(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Set(WishlistSessionKey, "abc"))
	require.NoError(t, store.Set("wishlist_abc", "[{broken"))

	w, err := NewWishlist(store)
	require.NoError(t, err)
	assert.Zero(t, w.Len())
}

func TestWishlistFailedWriteKeepsState(t *testing.T) {
	store := &failingStore{MemoryStore: NewMemoryStore()}
	w, err := NewWishlist(store)
	require.NoError(t, err)
	require.NoError(t, w.Add(models.Product{ID: 1}))

	store.failSet = true
	assert.Error(t, w.Add(models.Product{ID: 2}))
	assert.Error(t, w.Remove(1))
	assert.Equal(t, 1, w.Len())
	assert.True(t, w.Contains(1))
}

func TestWishlistMoveToCart(t *testing.T) {
	_, client := newTestServer(t)
	store := NewMemoryStore()
	ctx := t.Context()

	cart, err := NewCart(client, store)
	require.NoError(t, err)
	w, err := NewWishlist(store)
	require.NoError(t, err)

	scarf := models.Product{ID: 3, Name: "scarf"}
	require.NoError(t, w.Add(scarf))

	require.NoError(t, w.MoveToCart(ctx, cart, scarf, 2))
	assert.False(t, w.Contains(3))
	require.Len(t, cart.Items(), 1)
	assert.Equal(t, 2, cart.Items()[0].Quantity)
}

func TestWishlistMoveToCartFailures(t *testing.T) {
	t.Run("cart rejects", func(t *testing.T) {
		w, err := NewWishlist(NewMemoryStore())
		require.NoError(t, err)
		product := models.Product{ID: 5}
		require.NoError(t, w.Add(product))

		cart := &failingCart{}
		assert.Error(t, w.MoveToCart(t.Context(), cart, product, 1))
		assert.Equal(t, 1, cart.calls)
		assert.True(t, w.Contains(5))
	})

	t.Run("wishlist write fails after add", func(t *testing.T) {
		_, client := newTestServer(t)
		store := &failingStore{MemoryStore: NewMemoryStore()}
		cart, err := NewCart(client, store)
		require.NoError(t, err)
		w, err := NewWishlist(store)
		require.NoError(t, err)

		product := models.Product{ID: 1, Name: "vase"}
		require.NoError(t, w.Add(product))
		store.failSet = true

		err = w.MoveToCart(t.Context(), cart, product, 1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "still in the wishlist")
		assert.True(t, w.Contains(1))
		assert.Len(t, cart.Items(), 1)
	})
}
