package app

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/you-humble/parts-inventory/internal/transport/http/health"
	thttpmw "github.com/you-humble/parts-inventory/internal/transport/http/middleware"
)

func NewRouter(handlers ...PartHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		thttpmw.Logging,
		middleware.Recoverer,
	)

	r.Get("/health", health.HealthCheck)

	for _, h := range handlers {
		h.Register(r)
	}

	return r
}
