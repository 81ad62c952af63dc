// Package storage hands staged scan images to an external image host and
// returns durable URLs for them.
package storage

import (
	"context"
	"errors"
)

// ErrUpstream wraps every failure reported by, or while talking to, the image host
var ErrUpstream = errors.New("image storage upstream failure")

// StoredImage describes an object accepted by the image host
type StoredImage struct {
	// URL is the durable address saved on the scan record
	URL string
	// Ref identifies the object for later deletion (Cloudinary public id, MinIO object key)
	Ref string
}

// ImageStore is the external image host
type ImageStore interface {
	// Upload sends the local file at path and returns where it now lives
	Upload(ctx context.Context, path string) (StoredImage, error)
	// Delete removes a previously uploaded object
	Delete(ctx context.Context, ref string) error
}
