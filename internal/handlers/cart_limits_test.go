package handlers_test

import (
	"fmt"
	"math"
	"net/http"
	"net/url"
	"testing"

	"langnghe/internal/models"
	"langnghe/internal/repositories"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartQuantityLimit(t *testing.T) {
	forEachBackend(t, func(t *testing.T, app *fiber.App, _ repositories.Storage) {
		resp := call(t, app, http.MethodPost, "/api/cart", map[string]any{"productId": 1, "sessionId": "bulk", "quantity": models.MaxCartQuantity + 1})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, decode[errorBody](t, resp).Errors, "quantity")

		resp = call(t, app, http.MethodPost, "/api/cart", map[string]any{"productId": 1, "sessionId": "bulk", "quantity": math.MaxInt64})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, decode[errorBody](t, resp).Errors, "quantity")

		resp = call(t, app, http.MethodPost, "/api/cart", map[string]any{"productId": 1, "sessionId": "bulk", "quantity": models.MaxCartQuantity - 1})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		item := decode[models.CartItem](t, resp)

		// merging past the cap is rejected and the row keeps its quantity
		resp = call(t, app, http.MethodPost, "/api/cart", map[string]any{"productId": 1, "sessionId": "bulk", "quantity": 2})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, decode[errorBody](t, resp).Errors, "quantity")

		resp = call(t, app, http.MethodGet, "/api/cart/bulk", nil)
		items := decode[[]models.CartItem](t, resp)
		require.Len(t, items, 1)
		assert.Equal(t, models.MaxCartQuantity-1, items[0].Quantity)

		resp = call(t, app, http.MethodPost, "/api/cart", map[string]any{"productId": 1, "sessionId": "bulk", "quantity": 1})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, models.MaxCartQuantity, decode[models.CartItem](t, resp).Quantity)

		resp = call(t, app, http.MethodPut, fmt.Sprintf("/api/cart/%d", item.ID), map[string]any{"quantity": models.MaxCartQuantity + 1})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, decode[errorBody](t, resp).Errors, "quantity")

		resp = call(t, app, http.MethodGet, "/api/cart/bulk/summary", nil)
		summary := decode[map[string]any](t, resp)
		assert.Equal(t, float64(models.MaxCartQuantity), summary["items"])
		// 10000 × 680000 + 30000
		assert.Equal(t, "6800030000", summary["total"])
	})
}

func TestCartEscapedSessionID(t *testing.T) {
	forEachBackend(t, func(t *testing.T, app *fiber.App, _ repositories.Storage) {
		const sessionID = "shop/1?x#y"
		escaped := url.PathEscape(sessionID)

		resp := call(t, app, http.MethodPost, "/api/cart", map[string]any{"productId": 2, "sessionId": sessionID})
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		resp = call(t, app, http.MethodGet, "/api/cart/"+escaped, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		items := decode[[]models.CartItem](t, resp)
		require.Len(t, items, 1)
		assert.Equal(t, sessionID, items[0].SessionID)

		resp = call(t, app, http.MethodGet, "/api/cart/"+escaped+"/summary", nil)
		assert.Equal(t, float64(1), decode[map[string]any](t, resp)["items"])

		resp = call(t, app, http.MethodDelete, "/api/cart/session/"+escaped, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		resp = call(t, app, http.MethodGet, "/api/cart/"+escaped, nil)
		assert.Empty(t, decode[[]models.CartItem](t, resp))
	})
}

func TestCreateProductReservedSlug(t *testing.T) {
	forEachBackend(t, func(t *testing.T, app *fiber.App, store repositories.Storage) {
		for _, slug := range []string{"featured", "export"} {
			resp := call(t, app, http.MethodPost, "/api/products", map[string]any{
				"name":       "Sản phẩm " + slug,
				"slug":       slug,
				"price":      1000,
				"image":      "https://example.com/x.jpg",
				"categoryId": 1,
			})
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode, slug)
			assert.Contains(t, decode[errorBody](t, resp).Errors, "slug")

			_, err := store.GetProductBySlug(slug)
			assert.ErrorIs(t, err, repositories.ErrNotFound)
		}

		// categories have no fixed sibling routes, so the words stay usable there
		resp := call(t, app, http.MethodPost, "/api/categories", map[string]any{
			"name": "Nổi bật", "slug": "featured", "image": "https://example.com/c.jpg",
		})
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})
}
