package server

import (
	"encoding/json"
	"net/http"

	"github.com/fekuna/ecommerce-inventory-service/config"
	invHandler "github.com/fekuna/ecommerce-inventory-service/internal/inventory/handler"
	salesHandler "github.com/fekuna/ecommerce-inventory-service/internal/sales/handler"
	mw "github.com/fekuna/ecommerce-inventory-service/internal/server/middleware"
	"github.com/fekuna/ecommerce-inventory-service/pkg/logger"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter wires global middleware and mounts every endpoint under
// /inventory, mirroring the service's single feature prefix.
func NewRouter(
	cfg *config.Config,
	log logger.ZapLogger,
	sales *salesHandler.SalesHandler,
	inventory *invHandler.InventoryHandler,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(mw.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(mw.Logger(log))
	r.Use(mw.Recoverer(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}))

	r.Get("/health_check", healthCheck(cfg))

	r.Route("/inventory", func(r chi.Router) {
		r.Post("/sales", sales.CreateSale)
		r.Get("/sales", sales.ListSales)
		r.Get("/revenue/{period}", sales.AnalyzeRevenue)
		r.Post("/revenue/comparison", sales.CompareRevenue)

		r.Get("/inventory", inventory.List)
		r.Put("/inventory/{product_id}", inventory.UpdateQuantity)
		r.Get("/inventory/history/{product_id}", inventory.History)
	})

	return r
}

func healthCheck(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"status":       "active",
			"service_name": cfg.Server.ServiceName,
			"version":      cfg.Server.Version,
		})
	}
}
