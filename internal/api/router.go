package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fieldroutes/internal/logger"
	"fieldroutes/internal/metrics"
)

// Router mounts every endpoint. All routes are read-only.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logger.AccessMiddleware(logger.L()))
	r.Use(middleware.Recoverer)
	r.Use(instrument)
	r.Use(withCORS(s.Config.AllowOrigins))
	r.Use(middleware.GetHead)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeProblem(w, http.StatusNotFound, "Not Found", "", r.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Allow", "GET, HEAD, OPTIONS")
		writeProblem(w, http.StatusMethodNotAllowed, "Method Not Allowed", r.Method+" is not supported", r.URL.Path)
	})

	r.Get("/", s.RootHandler)
	r.Get("/health", s.HealthHandler)
	r.Get("/healthz", s.LivenessHandler)
	r.Get("/readyz", s.ReadyHandler)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))
	r.Get("/debug/info", s.DebugJSON)
	r.Get("/openapi.yaml", s.OpenAPIHandler)
	r.Get("/openapi.json", s.OpenAPIJSONHandler)
	r.Get("/docs", s.DocsHandler)

	r.Route("/api", func(r chi.Router) {
		r.Use(s.rateLimit)

		r.Get("/dashboard/kpis", s.KPIsHandler)
		r.Get("/dashboard/efficiency-comparison", s.EfficiencyComparisonHandler)
		r.Get("/dashboard/store-chain-distribution", s.StoreChainDistributionHandler)

		r.Get("/comparison/metrics", s.ComparisonMetricsHandler)
		r.Get("/comparison/agent-performance", s.AgentPerformanceComparisonHandler)
		r.Get("/comparison/store-performance", s.StorePerformanceComparisonHandler)
		r.Get("/comparison/weekly-distribution", s.WeeklyDistributionHandler)

		r.Get("/coverage/agent-performance", s.AgentCoverageHandler)
		r.Get("/coverage/store-chain-analysis", s.StoreChainAnalysisHandler)
		r.Get("/coverage/top-stores", s.TopStoresHandler)
		r.Get("/coverage/sales-range-analysis", s.SalesRangeAnalysisHandler)
		r.Get("/coverage/visit-time-distribution", s.VisitTimeDistributionHandler)
		r.Get("/coverage/agent-time-distribution", s.AgentTimeDistributionHandler)
		r.Get("/coverage/all-stores", s.AllStoresHandler)
		r.Get("/coverage/chain-stores/{chain}", s.ChainStoresHandler)
		r.Get("/coverage/agent-stores/{agent}", s.AgentStoresHandler)

		r.Get("/maps/stores", s.MapStoresHandler)
		r.Get("/maps/agents", s.MapAgentsHandler)
		r.Get("/maps/routes/{plan}", s.RoutesHandler)
	})
	return r
}
