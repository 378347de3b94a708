// Package config reads runtime settings from the environment, optionally
// overlaid by a YAML file named in CONFIG_FILE.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// Inputs names the four record sets, either as files or as SQL tables.
type Inputs struct {
	Stores    string `yaml:"stores"`
	Workers   string `yaml:"workers"`
	Manual    string `yaml:"manual"`
	Optimized string `yaml:"optimized"`
}

// TimeSplit drives the store/travel/admin chart estimate.
type TimeSplit struct {
	AdminPct       float64 `yaml:"admin_pct"`
	StoreFloorPct  float64 `yaml:"store_floor_pct"`
	StoreForcedPct float64 `yaml:"store_forced_pct"`
	FallbackStore  float64 `yaml:"fallback_store_pct"`
	FallbackTravel float64 `yaml:"fallback_travel_pct"`
}

type Analytics struct {
	// Theoretical weekly visits per agent: 5 days x 8 hours / 2 hours per visit.
	VisitCapacityPerAgent int       `yaml:"visit_capacity_per_agent"`
	TimeSplit             TimeSplit `yaml:"time_split"`
}

type S3 struct {
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"`
	PathStyle bool   `yaml:"path_style"`
}

type Config struct {
	Port         string        `yaml:"port"`
	DataSource   string        `yaml:"data_source"`
	Files        Inputs        `yaml:"files"`
	Tables       Inputs        `yaml:"tables"`
	S3           S3            `yaml:"s3"`
	LoadTimeout  time.Duration `yaml:"load_timeout"`
	AllowOrigins []string      `yaml:"allow_origins"`
	RateRPS      float64       `yaml:"rate_rps"`
	RateBurst    int           `yaml:"rate_burst"`
	CacheMode    string        `yaml:"cache_mode"`
	RedisURL     string        `yaml:"redis_url"`
	CacheTTL     time.Duration `yaml:"cache_ttl"`
	Analytics    Analytics     `yaml:"analytics"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Port:       "8000",
		DataSource: "data",
		Files: Inputs{
			Stores:    "stores.csv",
			Workers:   "workers.csv",
			Manual:    "manual_optimization.csv",
			Optimized: "result.csv",
		},
		Tables: Inputs{
			Stores:    "stores",
			Workers:   "workers",
			Manual:    "manual_visits",
			Optimized: "optimized_visits",
		},
		LoadTimeout:  30 * time.Second,
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
		CacheMode:    "off",
		CacheTTL:     10 * time.Minute,
		Analytics: Analytics{
			VisitCapacityPerAgent: 20,
			TimeSplit: TimeSplit{
				AdminPct:       4,
				StoreFloorPct:  85,
				StoreForcedPct: 87,
				FallbackStore:  87,
				FallbackTravel: 9,
			},
		},
	}
}

// Load applies defaults, then CONFIG_FILE, then individual env variables.
func Load() (Config, error) {
	cfg := Default()
	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.applyEnv(os.Getenv); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) mergeFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	str := func(key string, dst *string) {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			*dst = v
		}
	}
	str("PORT", &c.Port)
	str("DATA_SOURCE", &c.DataSource)
	str("STORES_FILE", &c.Files.Stores)
	str("WORKERS_FILE", &c.Files.Workers)
	str("MANUAL_FILE", &c.Files.Manual)
	str("OPTIMIZED_FILE", &c.Files.Optimized)
	str("STORES_TABLE", &c.Tables.Stores)
	str("WORKERS_TABLE", &c.Tables.Workers)
	str("MANUAL_TABLE", &c.Tables.Manual)
	str("OPTIMIZED_TABLE", &c.Tables.Optimized)
	str("S3_REGION", &c.S3.Region)
	str("S3_ENDPOINT", &c.S3.Endpoint)
	str("CACHE_MODE", &c.CacheMode)
	str("REDIS_URL", &c.RedisURL)
	if v := strings.TrimSpace(getenv("S3_PATH_STYLE")); v != "" {
		c.S3.PathStyle = strings.EqualFold(v, "true")
	}
	if v := strings.TrimSpace(getenv("ALLOW_ORIGINS")); v != "" {
		c.AllowOrigins = splitList(v)
	}

	var err error
	if c.LoadTimeout, err = envDuration(getenv, "LOAD_TIMEOUT", c.LoadTimeout); err != nil {
		return err
	}
	if c.CacheTTL, err = envDuration(getenv, "CACHE_TTL", c.CacheTTL); err != nil {
		return err
	}
	if c.RateRPS, err = envFloat(getenv, "RATE_RPS", c.RateRPS); err != nil {
		return err
	}
	if c.RateBurst, err = envInt(getenv, "RATE_BURST", c.RateBurst); err != nil {
		return err
	}
	a := &c.Analytics
	if a.VisitCapacityPerAgent, err = envInt(getenv, "VISIT_CAPACITY_PER_AGENT", a.VisitCapacityPerAgent); err != nil {
		return err
	}
	ts := &a.TimeSplit
	if ts.AdminPct, err = envFloat(getenv, "TIME_SPLIT_ADMIN_PCT", ts.AdminPct); err != nil {
		return err
	}
	if ts.StoreFloorPct, err = envFloat(getenv, "TIME_SPLIT_STORE_FLOOR_PCT", ts.StoreFloorPct); err != nil {
		return err
	}
	if ts.StoreForcedPct, err = envFloat(getenv, "TIME_SPLIT_STORE_FORCED_PCT", ts.StoreForcedPct); err != nil {
		return err
	}
	return nil
}

// Validate rejects settings that would make views meaningless.
func (c Config) Validate() error {
	if c.Analytics.VisitCapacityPerAgent <= 0 {
		return fmt.Errorf("visit_capacity_per_agent must be > 0")
	}
	ts := c.Analytics.TimeSplit
	if ts.AdminPct < 0 || ts.AdminPct >= 100 {
		return fmt.Errorf("time_split.admin_pct must be in [0,100)")
	}
	if ts.StoreForcedPct+ts.AdminPct > 100 {
		return fmt.Errorf("time_split.store_forced_pct + admin_pct must not exceed 100")
	}
	switch c.CacheMode {
	case "off", "memory", "redis":
	default:
		return fmt.Errorf("invalid CACHE_MODE %q (allowed: off, memory, redis)", c.CacheMode)
	}
	if c.CacheMode == "redis" && c.RedisURL == "" {
		return fmt.Errorf("REDIS_URL required when CACHE_MODE=redis")
	}
	if c.RateRPS < 0 || c.RateBurst < 0 {
		return fmt.Errorf("RATE_RPS and RATE_BURST must be >= 0")
	}
	return nil
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func envDuration(getenv func(string) string, key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func envInt(getenv func(string) string, key string, def int) (int, error) {
	v := strings.TrimSpace(getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func envFloat(getenv func(string) string, key string, def float64) (float64, error) {
	v := strings.TrimSpace(getenv(key))
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}
