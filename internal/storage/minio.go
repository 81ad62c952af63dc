package storage

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"
)

// MinioConfig holds the S3 compatible endpoint, credentials and bucket
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	// Prefix is prepended to object keys, e.g. "oralvis_scans"
	Prefix string
	// PublicURL is the base used to build returned URLs. Defaults to the endpoint.
	PublicURL string
}

// MinioStore uploads scans to a MinIO (or any S3 compatible) bucket
type MinioStore struct {
	client    *minio.Client
	bucket    string
	prefix    string
	publicURL string
}

// parseEndpoint turns "host:port" or an http(s) URL into the host minio.New
// expects plus whether TLS is on. A bare host:port means plain http.
func parseEndpoint(raw string) (host string, secure bool, err error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false, errors.New("minio endpoint is empty")
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", false, fmt.Errorf("parsing minio endpoint: %w", err)
	}
	if u.Host == "" || strings.Trim(u.Path, "/") != "" {
		return "", false, fmt.Errorf("minio endpoint %q must be host[:port] without a path", raw)
	}
	return u.Host, u.Scheme == "https", nil
}

// NewMinioStore builds the client. It does not touch the network, use CheckBucket for that.
func NewMinioStore(cfg MinioConfig) (*MinioStore, error) {
	if cfg.Endpoint == "" || cfg.AccessKey == "" || cfg.SecretKey == "" || cfg.Bucket == "" {
		return nil, errors.New("minio configuration incomplete")
	}

	endpoint, secure, err := parseEndpoint(cfg.Endpoint)
	if err != nil {
		return nil, err
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, fmt.Errorf("creating minio client: %w", err)
	}

	publicURL := cfg.PublicURL
	if publicURL == "" {
		scheme := "http"
		if secure {
			scheme = "https"
		}
		publicURL = scheme + "://" + endpoint
	}

	return &MinioStore{
		client:    client,
		bucket:    cfg.Bucket,
		prefix:    strings.Trim(cfg.Prefix, "/"),
		publicURL: strings.TrimRight(publicURL, "/"),
	}, nil
}

// CheckBucket reports whether the configured bucket can be reached
func (s *MinioStore) CheckBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if !exists {
		return fmt.Errorf("%w: bucket %s does not exist", ErrUpstream, s.bucket)
	}
	return nil
}

// objectKey places the staged file name under the configured prefix
func (s *MinioStore) objectKey(localPath string) string {
	return path.Join(s.prefix, filepath.Base(localPath))
}

// objectURL is the path-style address of a key in the bucket
func (s *MinioStore) objectURL(key string) string {
	return s.publicURL + "/" + s.bucket + "/" + key
}

func (s *MinioStore) Upload(ctx context.Context, localPath string) (StoredImage, error) {
	key := s.objectKey(localPath)
	contentType := mime.TypeByExtension(filepath.Ext(localPath))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	info, err := s.client.FPutObject(ctx, s.bucket, key, localPath, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return StoredImage{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	log.WithFields(log.Fields{
		"bucket": s.bucket,
		"key":    info.Key,
		"size":   info.Size,
	}).Debug("Uploaded scan image to MinIO")

	return StoredImage{URL: s.objectURL(info.Key), Ref: info.Key}, nil
}

func (s *MinioStore) Delete(ctx context.Context, ref string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, ref, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return nil
}
