package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEndpoint(t *testing.T) {
	tests := []struct {
		in           string
		wantEndpoint string
		wantSecure   bool
		wantErr      bool
	}{
		{"minio:9000", "minio:9000", false, false},
		{"http://minio:9000", "minio:9000", false, false},
		{"https://minio:9000", "minio:9000", true, false},
		{"http://minio:9000/", "minio:9000", false, false},
		{"  minio:9000  ", "minio:9000", false, false},
		{"http://minio:9000/foo", "", false, true},
		{"http://", "", false, true},
		{"", "", false, true},
	}

	for _, tt := range tests {
		ep, secure, err := parseEndpoint(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("expected error for input %q", tt.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", tt.in, err)
		}
		if ep != tt.wantEndpoint || secure != tt.wantSecure {
			t.Fatalf("parseEndpoint(%q) = (%q,%v), want (%q,%v)", tt.in, ep, secure, tt.wantEndpoint, tt.wantSecure)
		}
	}
}

func TestMinioObjectNaming(t *testing.T) {
	s := &MinioStore{bucket: "scans", prefix: "oralvis_scans", publicURL: "https://cdn.example.com"}

	key := s.objectKey("/var/uploads/1700000000-abc.png")
	assert.Equal(t, "oralvis_scans/1700000000-abc.png", key)
	assert.Equal(t, "https://cdn.example.com/scans/oralvis_scans/1700000000-abc.png", s.objectURL(key))

	bare := &MinioStore{bucket: "scans", publicURL: "http://localhost:9000"}
	assert.Equal(t, "1700000000-abc.png", bare.objectKey("uploads/1700000000-abc.png"))
}

func TestNewMinioStoreRequiresConfig(t *testing.T) {
	_, err := NewMinioStore(MinioConfig{Endpoint: "localhost:9000", Bucket: "scans"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "incomplete")

	// no network is needed to build the store, so an unreachable host is not a startup error
	store, err := NewMinioStore(MinioConfig{Endpoint: "127.0.0.1:1", AccessKey: "k", SecretKey: "s", Bucket: "scans"})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	assert.ErrorIs(t, store.CheckBucket(ctx), ErrUpstream)
}

func TestUnavailableStore(t *testing.T) {
	cause := errors.New("cloudinary configuration incomplete")
	store := NewUnavailableStore(cause)
	var _ ImageStore = store

	image, err := store.Upload(context.Background(), "/tmp/staged.png")
	assert.ErrorIs(t, err, ErrUpstream)
	assert.Contains(t, err.Error(), cause.Error())
	assert.Empty(t, image.URL)

	assert.ErrorIs(t, store.Delete(context.Background(), "oralvis_scans/a"), ErrUpstream)
}

func TestNewCloudinaryStore(t *testing.T) {
	_, err := NewCloudinaryStore(CloudinaryConfig{CloudName: "demo"})
	require.Error(t, err)

	store, err := NewCloudinaryStore(CloudinaryConfig{
		CloudName: "demo",
		APIKey:    "123456789",
		APISecret: "shh",
		Folder:    "oralvis_scans",
	})
	require.NoError(t, err)
	assert.Equal(t, "oralvis_scans", store.folder)

	var _ ImageStore = store
	var _ ImageStore = (*MinioStore)(nil)
}
