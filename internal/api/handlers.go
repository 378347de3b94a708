package api

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"fieldroutes/internal/buildinfo"
	"fieldroutes/internal/cache"
	"fieldroutes/internal/dataset"
	"fieldroutes/internal/logger"
	"fieldroutes/internal/metrics"
	"fieldroutes/internal/views"
)

const serviceName = "Field Route Analytics API"

type viewFunc func(d *dataset.Dataset, r *http.Request) (any, error)

// view adapts a parameterless view function.
func view[T any](f func(*dataset.Dataset) T) viewFunc {
	return func(d *dataset.Dataset, _ *http.Request) (any, error) { return f(d), nil }
}

// serveView resolves the dataset, consults the cache and renders one view.
func (s *Server) serveView(w http.ResponseWriter, r *http.Request, build viewFunc) {
	d, err := s.Data.Get()
	if err != nil {
		writeError(w, r, err)
		return
	}
	key := cache.Key(d.Version(), r.URL.EscapedPath())
	if s.Cache != nil {
		b, ok, err := s.Cache.Get(r.Context(), key)
		switch {
		case err != nil:
			metrics.CacheRequests.WithLabelValues(s.Cache.Name(), "error").Inc()
			logger.L().Warn("view_cache_get_failed", "key", key, "error", err)
		case ok:
			metrics.CacheRequests.WithLabelValues(s.Cache.Name(), "hit").Inc()
			writeRaw(w, b, "HIT")
			return
		default:
			metrics.CacheRequests.WithLabelValues(s.Cache.Name(), "miss").Inc()
		}
	}
	v, err := build(d, r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	b, err := json.Marshal(v)
	if err != nil {
		writeError(w, r, err)
		return
	}
	b = append(b, '\n')
	status := ""
	if s.Cache != nil {
		status = "MISS"
		if err := s.Cache.Set(r.Context(), key, b); err != nil {
			logger.L().Warn("view_cache_set_failed", "key", key, "error", err)
		}
	}
	writeRaw(w, b, status)
}

func writeRaw(w http.ResponseWriter, b []byte, cacheStatus string) {
	w.Header().Set("Content-Type", "application/json")
	if cacheStatus != "" {
		w.Header().Set("X-Cache", cacheStatus)
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b)
}

// pathParam returns an unescaped chi URL parameter.
func pathParam(r *http.Request, name string) string {
	v := chi.URLParam(r, name)
	if r.URL.RawPath != "" {
		if u, err := url.PathUnescape(v); err == nil {
			return u
		}
	}
	return v
}

// Dashboard

func (s *Server) KPIsHandler(w http.ResponseWriter, r *http.Request) {
	s.serveView(w, r, func(d *dataset.Dataset, _ *http.Request) (any, error) {
		return views.KPIs(d, s.Config.Analytics), nil
	})
}

func (s *Server) EfficiencyComparisonHandler(w http.ResponseWriter, r *http.Request) {
	s.serveView(w, r, view(views.DailyComparison))
}

func (s *Server) StoreChainDistributionHandler(w http.ResponseWriter, r *http.Request) {
	s.serveView(w, r, view(views.ChainDistribution))
}

// Comparison

func (s *Server) ComparisonMetricsHandler(w http.ResponseWriter, r *http.Request) {
	s.serveView(w, r, view(views.ComparisonMetrics))
}

func (s *Server) AgentPerformanceComparisonHandler(w http.ResponseWriter, r *http.Request) {
	s.serveView(w, r, view(views.AgentPerformance))
}

func (s *Server) StorePerformanceComparisonHandler(w http.ResponseWriter, r *http.Request) {
	s.serveView(w, r, view(views.StorePerformance))
}

func (s *Server) WeeklyDistributionHandler(w http.ResponseWriter, r *http.Request) {
	s.serveView(w, r, view(views.WeeklyDistribution))
}

// Coverage

func (s *Server) AgentCoverageHandler(w http.ResponseWriter, r *http.Request) {
	s.serveView(w, r, view(views.AgentCoverage))
}

func (s *Server) StoreChainAnalysisHandler(w http.ResponseWriter, r *http.Request) {
	s.serveView(w, r, view(views.ChainCoverage))
}

func (s *Server) TopStoresHandler(w http.ResponseWriter, r *http.Request) {
	s.serveView(w, r, view(views.TopStores))
}

func (s *Server) SalesRangeAnalysisHandler(w http.ResponseWriter, r *http.Request) {
	s.serveView(w, r, view(views.SalesRanges))
}

func (s *Server) VisitTimeDistributionHandler(w http.ResponseWriter, r *http.Request) {
	s.serveView(w, r, view(views.VisitTimeDistribution))
}

func (s *Server) AgentTimeDistributionHandler(w http.ResponseWriter, r *http.Request) {
	s.serveView(w, r, func(d *dataset.Dataset, _ *http.Request) (any, error) {
		return views.TimeDistribution(d, s.Config.Analytics.TimeSplit), nil
	})
}

func (s *Server) AllStoresHandler(w http.ResponseWriter, r *http.Request) {
	s.serveView(w, r, view(views.AllStores))
}

func (s *Server) ChainStoresHandler(w http.ResponseWriter, r *http.Request) {
	s.serveView(w, r, func(d *dataset.Dataset, r *http.Request) (any, error) {
		return views.ChainStores(d, pathParam(r, "chain")), nil
	})
}

func (s *Server) AgentStoresHandler(w http.ResponseWriter, r *http.Request) {
	s.serveView(w, r, func(d *dataset.Dataset, r *http.Request) (any, error) {
		return views.AgentStores(d, pathParam(r, "agent")), nil
	})
}

// Maps

func (s *Server) MapStoresHandler(w http.ResponseWriter, r *http.Request) {
	s.serveView(w, r, view(views.MapStores))
}

func (s *Server) MapAgentsHandler(w http.ResponseWriter, r *http.Request) {
	s.serveView(w, r, view(views.MapAgents))
}

func (s *Server) RoutesHandler(w http.ResponseWriter, r *http.Request) {
	s.serveView(w, r, func(d *dataset.Dataset, r *http.Request) (any, error) {
		return views.Routes(d, pathParam(r, "plan"))
	})
}

// Health

func (s *Server) RootHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": serviceName,
		"version": buildinfo.Version,
		"docs":    "/docs",
	})
}

func (s *Server) HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy", "message": serviceName + " is running"})
}

func (s *Server) LivenessHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) ReadyHandler(w http.ResponseWriter, r *http.Request) {
	d, err := s.Data.Get()
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ready",
		"version":   d.Version(),
		"loaded_at": d.LoadedAt(),
		"rows":      d.Counts(),
	})
}
