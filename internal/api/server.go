package api

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"fieldroutes/internal/cache"
	"fieldroutes/internal/config"
	"fieldroutes/internal/dataset"
	"fieldroutes/internal/logger"
	"fieldroutes/internal/metrics"
	"fieldroutes/internal/source"
	"fieldroutes/internal/store"
)

type Server struct {
	Config  config.Config
	Data    *dataset.Holder
	Cache   cache.Cache
	limiter *rate.Limiter
	started time.Time
}

// NewServer wires the cache and rate limiter. The dataset is published later
// by Load; until then view endpoints answer 503.
func NewServer(cfg config.Config) (*Server, error) {
	c, err := cache.New(cfg.CacheMode, cfg.RedisURL, cfg.CacheTTL)
	if err != nil {
		return nil, err
	}
	s := &Server{Config: cfg, Data: &dataset.Holder{}, Cache: c, started: time.Now().UTC()}
	if cfg.RateRPS > 0 {
		burst := cfg.RateBurst
		if burst <= 0 {
			burst = int(cfg.RateRPS) + 1
		}
		s.limiter = rate.NewLimiter(rate.Limit(cfg.RateRPS), burst)
	}
	metrics.RegisterDefault()
	return s, nil
}

// Load reads the configured source once and publishes the dataset.
func (s *Server) Load(ctx context.Context) error {
	start := time.Now()
	src, err := OpenSource(ctx, s.Config)
	if err != nil {
		return fmt.Errorf("%w: open source: %w", dataset.ErrDataLoad, err)
	}
	if c, ok := src.(io.Closer); ok {
		defer func() { _ = c.Close() }()
	}
	d, err := dataset.Load(ctx, src)
	if err != nil {
		return err
	}
	s.Publish(d)
	metrics.DatasetLoadSeconds.Set(time.Since(start).Seconds())
	logger.L().Info("dataset_load_ok",
		"source", d.Source(),
		"version", d.Version(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// Publish makes d visible to handlers. Only the first call has an effect.
func (s *Server) Publish(d *dataset.Dataset) {
	if !s.Data.Set(d) {
		return
	}
	for table, n := range d.Counts() {
		metrics.DatasetRows.WithLabelValues(table).Set(float64(n))
	}
	metrics.DatasetReady.Set(1)
}

// OpenSource picks the record source from DATA_SOURCE:
// postgres://..., sqlite:path, s3://bucket/prefix, dir:path or a bare path.
func OpenSource(ctx context.Context, cfg config.Config) (source.Reader, error) {
	ds := strings.TrimSpace(cfg.DataSource)
	switch {
	case strings.HasPrefix(ds, "postgres://"), strings.HasPrefix(ds, "postgresql://"):
		db, err := store.NewPostgres(ctx, ds, tableNames(cfg.Tables))
		if err != nil {
			return nil, err
		}
		return db, nil
	case strings.HasPrefix(ds, "sqlite:"):
		db, err := store.NewSQLite(ctx, strings.TrimPrefix(ds, "sqlite:"), tableNames(cfg.Tables))
		if err != nil {
			return nil, err
		}
		return db, nil
	case strings.HasPrefix(ds, "s3://"):
		bucket, prefix, ok := source.ParseS3URI(ds)
		if !ok {
			return nil, fmt.Errorf("invalid s3 uri %q", ds)
		}
		s3, err := source.NewS3(ctx, source.S3Config{
			Region:    cfg.S3.Region,
			Bucket:    bucket,
			Prefix:    prefix,
			Endpoint:  cfg.S3.Endpoint,
			PathStyle: cfg.S3.PathStyle,
		}, fileNames(cfg.Files))
		if err != nil {
			return nil, err
		}
		return s3, nil
	}
	return source.NewDir(strings.TrimPrefix(ds, "dir:"), fileNames(cfg.Files)), nil
}

func fileNames(in config.Inputs) source.Files {
	return source.Files{
		source.TableStores:    in.Stores,
		source.TableWorkers:   in.Workers,
		source.TableManual:    in.Manual,
		source.TableOptimized: in.Optimized,
	}
}

func tableNames(in config.Inputs) store.TableNames {
	return store.TableNames(fileNames(in))
}
