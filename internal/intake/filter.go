// Package intake validates uploaded scan images and stages them on local disk
// before they are handed to the image store.
package intake

import (
	"errors"
	"mime"
	"path/filepath"
	"strings"
)

// ErrUnsupportedImage is returned when a file is not a JPG or PNG image
var ErrUnsupportedImage = errors.New("unsupported image type")

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

var allowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
}

// ValidateImage accepts a file only when both its extension and its declared
// MIME type name a JPG or PNG image. Both values come from the client, so this
// is a filter, not a content check.
func ValidateImage(filename, contentType string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return ErrUnsupportedImage
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ErrUnsupportedImage
	}
	if !allowedMimeTypes[strings.ToLower(mediaType)] {
		return ErrUnsupportedImage
	}
	return nil
}
