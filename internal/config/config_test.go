package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestDefaultValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Port != "8000" || cfg.Analytics.VisitCapacityPerAgent != 20 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	err := cfg.applyEnv(envMap(map[string]string{
		"PORT":                     "9000",
		"DATA_SOURCE":              "s3://routes/week1",
		"ALLOW_ORIGINS":            "https://a.example, ,https://b.example",
		"CACHE_MODE":               "memory",
		"CACHE_TTL":                "30s",
		"RATE_RPS":                 "2.5",
		"RATE_BURST":               "5",
		"S3_PATH_STYLE":            "TRUE",
		"VISIT_CAPACITY_PER_AGENT": "25",
		"TIME_SPLIT_ADMIN_PCT":     "5",
	}))
	if err != nil {
		t.Fatalf("applyEnv: %v", err)
	}
	if cfg.Port != "9000" || cfg.DataSource != "s3://routes/week1" {
		t.Fatalf("strings not applied: %+v", cfg)
	}
	if len(cfg.AllowOrigins) != 2 || cfg.AllowOrigins[1] != "https://b.example" {
		t.Fatalf("origins: %v", cfg.AllowOrigins)
	}
	if cfg.CacheTTL != 30*time.Second || cfg.RateRPS != 2.5 || cfg.RateBurst != 5 {
		t.Fatalf("numbers not applied: %+v", cfg)
	}
	if !cfg.S3.PathStyle || cfg.Analytics.VisitCapacityPerAgent != 25 || cfg.Analytics.TimeSplit.AdminPct != 5 {
		t.Fatalf("nested not applied: %+v", cfg)
	}
}

func TestApplyEnvErrors(t *testing.T) {
	for _, key := range []string{"LOAD_TIMEOUT", "RATE_RPS", "RATE_BURST", "VISIT_CAPACITY_PER_AGENT"} {
		cfg := Default()
		err := cfg.applyEnv(envMap(map[string]string{key: "bogus"}))
		if err == nil || !strings.Contains(err.Error(), key) {
			t.Fatalf("%s: want error naming key, got %v", key, err)
		}
	}
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"capacity":   func(c *Config) { c.Analytics.VisitCapacityPerAgent = 0 },
		"admin":      func(c *Config) { c.Analytics.TimeSplit.AdminPct = 100 },
		"forced":     func(c *Config) { c.Analytics.TimeSplit.StoreForcedPct = 99 },
		"cache mode": func(c *Config) { c.CacheMode = "disk" },
		"redis url":  func(c *Config) { c.CacheMode = "redis" },
		"rate":       func(c *Config) { c.RateRPS = -1 },
	}
	for name, mutate := range cases {
		cfg := Default()
		mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}

func TestMergeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fieldroutes.yaml")
	body := `
port: "8100"
data_source: sqlite:/var/lib/routes.db
tables:
  optimized: plan_result
analytics:
  time_split:
    admin_pct: 6
`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg := Default()
	if err := cfg.mergeFile(path); err != nil {
		t.Fatalf("mergeFile: %v", err)
	}
	if cfg.Port != "8100" || cfg.Tables.Optimized != "plan_result" || cfg.Tables.Stores != "stores" {
		t.Fatalf("merge: %+v", cfg)
	}
	if cfg.Analytics.TimeSplit.AdminPct != 6 || cfg.Analytics.TimeSplit.StoreForcedPct != 87 {
		t.Fatalf("nested merge: %+v", cfg.Analytics.TimeSplit)
	}
	if err := cfg.mergeFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("missing file should fail")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("PORT", "8200")
	t.Setenv("CACHE_MODE", "redis")
	t.Setenv("REDIS_URL", "")
	if _, err := Load(); err == nil {
		t.Fatalf("redis without url should fail")
	}
	t.Setenv("CACHE_MODE", "off")
	cfg, err := Load()
	if err != nil || cfg.Port != "8200" {
		t.Fatalf("Load: %+v %v", cfg, err)
	}
}
