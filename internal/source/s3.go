package source

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path"
	"strings"

	aws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3Config holds explicit construction parameters. Credentials fall back to
// the default AWS chain when not set.
type S3Config struct {
	Region    string
	Bucket    string
	Prefix    string
	Endpoint  string // optional; MinIO and other S3-compatible stores
	PathStyle bool

	// HTTPClient overrides the SDK transport (tests).
	HTTPClient aws.HTTPClient
	// Options are appended to the default config loaders.
	Options []func(*config.LoadOptions) error
}

// S3 reads the tables as CSV objects below a bucket prefix.
type S3 struct {
	client *s3.Client
	bucket string
	prefix string
	files  Files
}

func NewS3(ctx context.Context, cfg S3Config, files Files) (*S3, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket required")
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	loadOpts := append([]func(*config.LoadOptions) error{config.WithRegion(region)}, cfg.Options...)
	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.PathStyle {
			o.UsePathStyle = true
		}
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		if cfg.HTTPClient != nil {
			o.HTTPClient = cfg.HTTPClient
		}
	})
	return &S3{client: client, bucket: cfg.Bucket, prefix: strings.Trim(cfg.Prefix, "/"), files: files}, nil
}

// ParseS3URI splits s3://bucket/prefix.
func ParseS3URI(uri string) (bucket, prefix string, ok bool) {
	rest, found := strings.CutPrefix(uri, "s3://")
	if !found || rest == "" {
		return "", "", false
	}
	bucket, prefix, _ = strings.Cut(rest, "/")
	return bucket, strings.Trim(prefix, "/"), bucket != ""
}

func (s *S3) Describe() string { return "s3://" + path.Join(s.bucket, s.prefix) }

func (s *S3) key(t Table) string {
	if s.prefix == "" {
		return s.files.name(t)
	}
	return s.prefix + "/" + s.files.name(t)
}

func (s *S3) ReadTable(ctx context.Context, t Table) (RawTable, error) {
	key := s.key(t)
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{Bucket: &s.bucket, Key: &key})
	if err != nil {
		if notFound(err) {
			return RawTable{}, fmt.Errorf("%s: s3://%s/%s: %w", t, s.bucket, key, ErrTableNotFound)
		}
		return RawTable{}, fmt.Errorf("%s: get s3://%s/%s: %w", t, s.bucket, key, err)
	}
	defer func() { _ = out.Body.Close() }()
	return DecodeCSV(t, out.Body)
}

func notFound(err error) bool {
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}
	var re interface{ HTTPStatusCode() int }
	return errors.As(err, &re) && re.HTTPStatusCode() == http.StatusNotFound
}
