package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/aarohi-store/storefront/internal/api/handlers"
	"github.com/aarohi-store/storefront/internal/api/middleware"
)

// NewRouter builds the HTTP router for the storefront service.
func NewRouter(
	products *handlers.ProductHandler,
	carts *handlers.CartHandler,
	checkouts *handlers.CheckoutHandler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.Session)

	r.Route("/products", func(r chi.Router) {
		r.Get("/", products.List)
		r.Get("/{id}", products.Get)
	})

	r.Route("/cart", func(r chi.Router) {
		r.Get("/", carts.Get)
		r.Delete("/", carts.Clear)
		r.Post("/items", carts.AddItem)
		r.Put("/items/{id}", carts.UpdateItem)
		r.Delete("/items/{id}", carts.RemoveItem)
	})

	r.Route("/checkout", func(r chi.Router) {
		r.Get("/summary", checkouts.Summary)
		r.Post("/", checkouts.Submit)
	})

	// health
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	return r
}
