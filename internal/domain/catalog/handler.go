package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
)

func RegisterRoutes(r chi.Router, c *Catalog) {
	r.Get("/services", listServicesHandler(c))
}

// listServicesHandler godoc
// @Summary Listar servicios
// @Description Devuelve el catálogo de servicios ofrecidos (id, nombre, precio).
// @Tags catalog
// @Produce json
// @Success 200 {array} Service
// @Router /services [get]
func listServicesHandler(c *Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(c.List())
	}
}
