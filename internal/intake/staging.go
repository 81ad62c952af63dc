package intake

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Stager writes uploaded files to a local staging directory
type Stager struct {
	dir string
	now func() time.Time
}

// NewStager creates the staging directory if needed
func NewStager(dir string) (*Stager, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating staging dir %s: %w", dir, err)
	}
	return &Stager{dir: dir, now: time.Now}, nil
}

// Dir returns the staging directory
func (s *Stager) Dir() string {
	return s.dir
}

// StagedName builds a collision free file name that keeps the original extension as uploaded
func (s *Stager) StagedName(original string) string {
	ext := filepath.Ext(filepath.Base(original))
	return strconv.FormatInt(s.now().UnixNano(), 10) + "-" + uuid.NewString() + ext
}

// Stage copies the multipart file into the staging directory and returns its path.
// The caller owns the file and should Remove it once done.
func (s *Stager) Stage(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("opening upload: %w", err)
	}
	defer src.Close()

	path := filepath.Join(s.dir, s.StagedName(fh.Filename))
	dst, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o640)
	if err != nil {
		return "", fmt.Errorf("creating staged file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return "", fmt.Errorf("writing staged file: %w", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("closing staged file: %w", err)
	}
	return path, nil
}

// Remove deletes a staged file. A file that is already gone is not an error.
func (s *Stager) Remove(path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.WithError(err).WithField("path", path).Warn("Failed to remove staged upload")
	}
}
