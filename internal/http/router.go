package http

import (
	"net/http"

	"podcast-metrics/internal/shared/loggers"
	"podcast-metrics/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter builds the observability router. The pipeline itself never
// serves requests; this only exposes metrics and liveness while a run is
// in flight.
func NewRouter(httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	router.Get("/healthz", errorHandlingAdapter(NewHealthHandler()))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
