package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/example/boutique-shop/internal/session"
)

// NewRouter wires the storefront routes. Everything that reads or writes
// session state sits behind the session middleware; catalog reads, direct
// orders, and operational endpoints do not need one.
func NewRouter(handlers *Handlers, manager *session.Manager) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(RequestLogger)
	r.Use(Metrics)

	// Catalog
	r.Get("/products", handlers.ListProducts)
	r.Get("/products/{id}", handlers.GetProduct)
	r.Get("/categories", handlers.ListCategories)
	r.Get("/bestsellers", handlers.ListBestSellers)
	r.Get("/new-arrivals", handlers.ListNewArrivals)

	// Session-scoped state
	r.Group(func(r chi.Router) {
		r.Use(SessionMiddleware(manager))

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", handlers.GetCart)
			r.Delete("/", handlers.ClearCart)
			r.Post("/items", handlers.AddToCart)
			r.Patch("/items/{productID}", handlers.UpdateCartItem)
			r.Delete("/items/{productID}", handlers.RemoveFromCart)
		})

		r.Route("/wishlist", func(r chi.Router) {
			r.Get("/", handlers.GetWishlist)
			r.Delete("/", handlers.ClearWishlist)
			r.Post("/items", handlers.AddToWishlist)
			r.Delete("/items/{productID}", handlers.RemoveFromWishlist)
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Post("/", handlers.BeginCheckout)
			r.Delete("/", handlers.CancelCheckout)
			r.Post("/confirm", handlers.ConfirmCheckout)
		})
	})

	// Direct order and chat deep links
	r.Post("/order", handlers.OrderProduct)
	r.Get("/chat", handlers.GeneralChat)

	// Operational
	r.Get("/health", handlers.Health)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	return r
}
