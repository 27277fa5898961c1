package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/villagekitchen/billing/internal/http/catalog"
	"github.com/villagekitchen/billing/internal/http/invoice"
	"github.com/villagekitchen/billing/internal/http/order"
)

func New(
	catalogV1 *catalog.Handler,
	orderV1 *order.Handler,
	invoiceV1 *invoice.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/catalog", catalogV1.Routes)

		r.Route("/order", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			orderV1.Routes(r)
		})

		r.Route("/invoice", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			invoiceV1.Routes(r)
		})
	})

	return router
}
