package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pbarbosa/restock-tracker/internal/http/handlers"
)

// NewRouter builds the service's HTTP surface.
func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(RateLimitMiddleware)

	r.Get("/", handlers.RootHandler)
	r.Get("/healthz", handlers.HealthHandler)

	r.Post("/products", handlers.AddProductHandler)
	r.Get("/inventory", handlers.GetAllInventoryHandler)
	r.Get("/inventory/{id}", handlers.GetInventoryStatusHandler)
	r.Post("/purchase/{id}", handlers.PurchaseHandler)
	r.Post("/restock/{id}", handlers.ManualRestockHandler)

	r.Get("/metrics/dashboard", handlers.GetDashboardMetricsHandler)

	return r
}
