// Package web assembles the HTTP serving mode: the MCP handler behind
// the middleware chain, plus health and metrics endpoints.
package web

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/dealey-labs/jfkdex/internal/metrics"
	healthuc "github.com/dealey-labs/jfkdex/internal/usecase/health"
)

// NewRouter builds the HTTP mode router. MCP traffic goes to /mcp;
// /health and /metrics are exempt from authentication.
func NewRouter(
	mcpHandler http.Handler,
	health *healthuc.Service,
	apiKeys []string,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(BearerAuthMiddleware(apiKeys))
	r.Use(metrics.Middleware())

	r.Handle("/mcp", mcpHandler)
	r.Get("/health", healthHandler(health))
	r.Handle("/metrics", promhttp.Handler())

	return r
}

type healthResponse struct {
	Status string                          `json:"status"`
	Checks map[string]healthuc.CheckResult `json:"checks"`
}

// healthHandler reports aggregated health; anything but healthy is 503.
func healthHandler(svc *healthuc.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report := svc.Check(r.Context())

		status := http.StatusOK
		if report.Status != healthuc.Healthy {
			status = http.StatusServiceUnavailable
		}

		writeJSON(w, status, healthResponse{
			Status: string(report.Status),
			Checks: report.Checks,
		})
	}
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}
