package storefront

import (
	"net/http/httptest"
	"testing"

	"langnghe/internal/handlers"
	"langnghe/internal/repositories"
	"langnghe/internal/seed"
	"langnghe/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/stretchr/testify/require"
)

// newTestServer serves the API over a seeded memory store.
func newTestServer(t *testing.T) (*httptest.Server, *Client) {
	t.Helper()

	store := repositories.NewMemoryStorage()
	require.NoError(t, seed.Run(store))

	app := fiber.New()
	handlers.Register(app.Group("/api"), handlers.Services{
		Catalog:    services.NewCatalogService(store),
		Products:   services.NewProductService(store),
		Cart:       services.NewCartService(store),
		Newsletter: services.NewNewsletterService(store, nil, "", nil),
	})

	srv := httptest.NewServer(adaptor.FiberApp(app))
	t.Cleanup(srv.Close)
	return srv, NewClient(srv.URL+"/api/", srv.Client())
}
