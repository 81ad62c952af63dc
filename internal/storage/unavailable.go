package storage

import (
	"context"
	"fmt"
)

// UnavailableStore stands in for an image host that could not be configured.
// Every call fails with ErrUpstream, so uploads answer 502 while the rest of the API keeps serving.
type UnavailableStore struct {
	cause error
}

func NewUnavailableStore(cause error) *UnavailableStore {
	return &UnavailableStore{cause: cause}
}

func (s *UnavailableStore) Upload(ctx context.Context, path string) (StoredImage, error) {
	return StoredImage{}, fmt.Errorf("%w: image storage not configured: %v", ErrUpstream, s.cause)
}

func (s *UnavailableStore) Delete(ctx context.Context, ref string) error {
	return fmt.Errorf("%w: image storage not configured: %v", ErrUpstream, s.cause)
}
