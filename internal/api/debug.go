package api

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"fieldroutes/internal/buildinfo"
)

// DebugJSON reports build info and the non-secret part of the configuration.
func (s *Server) DebugJSON(w http.ResponseWriter, r *http.Request) {
	c := s.Config
	cacheBackend := "off"
	if s.Cache != nil {
		cacheBackend = s.Cache.Name()
	}
	info := map[string]any{
		"build":   buildinfo.Info(),
		"time":    time.Now().UTC().Format(time.RFC3339),
		"started": s.started.Format(time.RFC3339),
		"ready":   s.Data.Ready(),
		"config": map[string]any{
			"PORT":                     c.Port,
			"DATA_SOURCE":              redactDSN(c.DataSource),
			"ALLOW_ORIGINS":            strings.Join(c.AllowOrigins, ","),
			"RATE_RPS":                 c.RateRPS,
			"RATE_BURST":               c.RateBurst,
			"CACHE_MODE":               cacheBackend,
			"CACHE_TTL":                c.CacheTTL.String(),
			"LOAD_TIMEOUT":             c.LoadTimeout.String(),
			"VISIT_CAPACITY_PER_AGENT": c.Analytics.VisitCapacityPerAgent,
			"TIME_SPLIT":               c.Analytics.TimeSplit,
			"HAS_REDIS_URL":            c.RedisURL != "",
		},
	}
	if d, err := s.Data.Get(); err == nil {
		info["dataset"] = map[string]any{
			"version":   d.Version(),
			"source":    d.Source(),
			"loaded_at": d.LoadedAt().Format(time.RFC3339),
			"rows":      d.Counts(),
		}
	}
	writeJSON(w, http.StatusOK, info)
}

// redactDSN hides passwords in URL-shaped data sources.
func redactDSN(ds string) string {
	if !strings.Contains(ds, "://") {
		return ds
	}
	u, err := url.Parse(ds)
	if err != nil {
		return "(unparsable)"
	}
	return u.Redacted()
}
