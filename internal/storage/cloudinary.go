package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	log "github.com/sirupsen/logrus"
)

// CloudinaryConfig holds the account credentials and the target folder
type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
}

// CloudinaryStore uploads scans to a Cloudinary folder
type CloudinaryStore struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// NewCloudinaryStore validates the credentials and builds the client
func NewCloudinaryStore(cfg CloudinaryConfig) (*CloudinaryStore, error) {
	if cfg.CloudName == "" || cfg.APIKey == "" || cfg.APISecret == "" {
		return nil, errors.New("cloudinary configuration incomplete")
	}

	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("creating cloudinary client: %w", err)
	}
	cld.Config.URL.Secure = true

	return &CloudinaryStore{cld: cld, folder: cfg.Folder}, nil
}

func (s *CloudinaryStore) Upload(ctx context.Context, path string) (StoredImage, error) {
	resp, err := s.cld.Upload.Upload(ctx, path, uploader.UploadParams{Folder: s.folder})
	if err != nil {
		return StoredImage{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	// API level failures come back in the response body rather than as err
	if resp.Error.Message != "" {
		return StoredImage{}, fmt.Errorf("%w: %s", ErrUpstream, resp.Error.Message)
	}
	if resp.SecureURL == "" {
		return StoredImage{}, fmt.Errorf("%w: response carried no secure url", ErrUpstream)
	}

	log.WithFields(log.Fields{
		"public_id": resp.PublicID,
		"bytes":     resp.Bytes,
	}).Debug("Uploaded scan image to Cloudinary")

	return StoredImage{URL: resp.SecureURL, Ref: resp.PublicID}, nil
}

func (s *CloudinaryStore) Delete(ctx context.Context, ref string) error {
	resp, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: ref})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if resp.Error.Message != "" {
		return fmt.Errorf("%w: %s", ErrUpstream, resp.Error.Message)
	}
	return nil
}
