package services

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/textproto"
	"os"
	"sync"
	"testing"

	"github.com/franciscosanchezn/dental-scan-api/internal/database"
	"github.com/franciscosanchezn/dental-scan-api/internal/models"
	"github.com/franciscosanchezn/dental-scan-api/internal/storage"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.InitDatabase(database.DatabaseConfig{Driver: "sqlite", Path: ":memory:", MaxRetries: 1})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func newFileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="image"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := writer.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(&body, writer.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["image"][0]
}

// fakeStore records uploads and what the staged file contained at upload time
type fakeStore struct {
	mu        sync.Mutex
	uploadErr error
	deleteErr error
	uploaded  []string
	contents  [][]byte
	deleted   []string
}

func (f *fakeStore) Upload(ctx context.Context, path string) (storage.StoredImage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.uploadErr != nil {
		return storage.StoredImage{}, f.uploadErr
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return storage.StoredImage{}, err
	}
	f.uploaded = append(f.uploaded, path)
	f.contents = append(f.contents, content)
	ref := "oralvis_scans/" + string(rune('a'+len(f.uploaded)-1))
	return storage.StoredImage{URL: "https://images.example.com/" + ref, Ref: ref}, nil
}

func (f *fakeStore) Delete(ctx context.Context, ref string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, ref)
	return f.deleteErr
}

// failingScans is a ScanService whose inserts always fail
type failingScans struct{}

func (failingScans) CreateScan(ctx context.Context, scan *models.Scan) error {
	return errors.New("disk I/O error")
}

func (failingScans) ListScans(ctx context.Context) ([]models.Scan, error) {
	return nil, errors.New("disk I/O error")
}
