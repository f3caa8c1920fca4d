package storefront

import (
	"errors"
	"net/http"
	"testing"

	"langnghe/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCart(t *testing.T) (*Cart, *Client) {
	t.Helper()
	_, client := newTestServer(t)
	cart, err := NewCart(client, NewMemoryStore())
	require.NoError(t, err)
	return cart, client
}

func TestCartAddMergesAndTotals(t *testing.T) {
	cart, _ := newTestCart(t)
	ctx := t.Context()

	vase := models.Product{ID: 1, Name: "vase"}
	basket := models.Product{ID: 2, Name: "basket"}

	require.NoError(t, cart.AddToCart(ctx, vase, 1))
	require.NoError(t, cart.AddToCart(ctx, vase, 1))
	require.NoError(t, cart.AddToCart(ctx, basket, 1))

	items := cart.Items()
	require.Len(t, items, 2)
	assert.Equal(t, uint(1), items[0].ProductID)
	assert.Equal(t, 2, items[0].Quantity)
	require.NotNil(t, items[0].Product, "lines carry the product after a refresh")

	assert.Equal(t, 3, cart.TotalItems())
	// 2 × 680000 + 245000
	assert.Equal(t, "1605000", cart.Total().String())
	assert.Equal(t, "30000", cart.ShippingCost().String())
	assert.Equal(t, "1635000", cart.GrandTotal().String())
}

func TestCartQuantitySteppers(t *testing.T) {
	cart, _ := newTestCart(t)
	ctx := t.Context()

	require.NoError(t, cart.AddToCart(ctx, models.Product{ID: 3}, 1))
	id := cart.Items()[0].ID

	require.NoError(t, cart.IncrementQuantity(ctx, id))
	assert.Equal(t, 2, cart.Items()[0].Quantity)

	require.NoError(t, cart.UpdateCartItemQuantity(ctx, id, 5))
	assert.Equal(t, 5, cart.Items()[0].Quantity)

	require.NoError(t, cart.DecrementQuantity(ctx, id))
	assert.Equal(t, 4, cart.Items()[0].Quantity)

	require.NoError(t, cart.UpdateCartItemQuantity(ctx, id, 1))
	require.NoError(t, cart.DecrementQuantity(ctx, id))
	assert.Empty(t, cart.Items(), "decrementing from 1 removes the line")

	require.NoError(t, cart.Refresh(ctx))
	assert.Empty(t, cart.Items())

	assert.ErrorIs(t, cart.IncrementQuantity(ctx, id), ErrItemNotInCart)
	assert.ErrorIs(t, cart.DecrementQuantity(ctx, id), ErrItemNotInCart)
}

func TestCartUpdateToZeroRemoves(t *testing.T) {
	cart, _ := newTestCart(t)
	ctx := t.Context()

	require.NoError(t, cart.AddToCart(ctx, models.Product{ID: 4}, 2))
	id := cart.Items()[0].ID

	require.NoError(t, cart.UpdateCartItemQuantity(ctx, id, 0))
	assert.Empty(t, cart.Items())
	assert.Equal(t, "0", cart.Total().String())
	assert.Equal(t, "30000", cart.GrandTotal().String())
}

func TestCartRemoveAndClear(t *testing.T) {
	cart, client := newTestCart(t)
	ctx := t.Context()

	require.NoError(t, cart.AddToCart(ctx, models.Product{ID: 1}, 1))
	require.NoError(t, cart.AddToCart(ctx, models.Product{ID: 2}, 1))
	first := cart.Items()[0].ID

	require.NoError(t, cart.RemoveFromCart(ctx, first))
	require.Len(t, cart.Items(), 1)

	require.NoError(t, cart.ClearCart(ctx))
	assert.Empty(t, cart.Items())

	remote, err := client.CartItems(ctx, cart.SessionID())
	require.NoError(t, err)
	assert.Empty(t, remote)
}

func TestCartRejectedAddLeavesStateUnchanged(t *testing.T) {
	cart, _ := newTestCart(t)
	ctx := t.Context()

	require.NoError(t, cart.AddToCart(ctx, models.Product{ID: 1}, 1))
	before := cart.Items()

	err := cart.AddToCart(ctx, models.Product{ID: 999}, 1)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Contains(t, apiErr.Fields, "productId")
	assert.Equal(t, before, cart.Items())
}

func TestCartServerUnavailable(t *testing.T) {
	srv, client := newTestServer(t)
	cart, err := NewCart(client, NewMemoryStore())
	require.NoError(t, err)
	ctx := t.Context()

	require.NoError(t, cart.AddToCart(ctx, models.Product{ID: 2}, 3))
	before := cart.Items()
	srv.Close()

	assert.Error(t, cart.RemoveFromCart(ctx, before[0].ID))
	assert.Error(t, cart.UpdateCartItemQuantity(ctx, before[0].ID, 1))
	assert.Error(t, cart.ClearCart(ctx))
	assert.Equal(t, before, cart.Items())
}

func TestCartSharesSessionAcrossInstances(t *testing.T) {
	_, client := newTestServer(t)
	store := NewMemoryStore()
	ctx := t.Context()

	first, err := NewCart(client, store)
	require.NoError(t, err)
	require.NoError(t, first.AddToCart(ctx, models.Product{ID: 1}, 2))

	second, err := NewCart(client, store)
	require.NoError(t, err)
	assert.Equal(t, first.SessionID(), second.SessionID())
	require.NoError(t, second.Refresh(ctx))
	assert.Equal(t, 2, second.TotalItems())
}

func TestCartSessionIDWithReservedCharacters(t *testing.T) {
	_, client := newTestServer(t)
	ctx := t.Context()

	store := NewMemoryStore()
	require.NoError(t, store.Set(CartSessionKey, "shop/1?x#y"))
	cart, err := NewCart(client, store)
	require.NoError(t, err)
	require.Equal(t, "shop/1?x#y", cart.SessionID())

	require.NoError(t, cart.AddToCart(ctx, models.Product{ID: 2}, 2))
	require.Len(t, cart.Items(), 1)
	assert.Equal(t, "shop/1?x#y", cart.Items()[0].SessionID)

	plain, err := client.CartItems(ctx, "shop")
	require.NoError(t, err)
	assert.Empty(t, plain)

	require.NoError(t, cart.ClearCart(ctx))
	require.NoError(t, cart.Refresh(ctx))
	assert.Empty(t, cart.Items())
}
