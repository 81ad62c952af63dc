package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"github.com/franciscosanchezn/dental-scan-api/internal/intake"
	"github.com/franciscosanchezn/dental-scan-api/internal/models"
	"github.com/franciscosanchezn/dental-scan-api/internal/storage"
	log "github.com/sirupsen/logrus"
)

var (
	// ErrPatientNameRequired is returned when the upload has no patient name
	ErrPatientNameRequired = errors.New("patient name is required")
	// ErrImageRequired is returned when the upload has no image file
	ErrImageRequired = errors.New("image file is required")
	// ErrScanNotSaved is returned when the image was stored but the row insert failed
	ErrScanNotSaved = errors.New("failed to save scan record")
)

// ScanUpload is the validated form of a technician upload
type ScanUpload struct {
	PatientName string
	PatientID   string
	ScanType    string
	Region      string
	Image       *multipart.FileHeader
}

// IntakeService turns an upload into a stored image plus a scan row
type IntakeService interface {
	// Upload validates, stages, stores and records one scan.
	// No row is written unless the image host returned a URL.
	Upload(ctx context.Context, upload ScanUpload) (*models.Scan, error)
}

// IntakeConfig wires the collaborators of the intake service
type IntakeConfig struct {
	Stager        *intake.Stager
	Store         storage.ImageStore
	Scans         ScanService
	Location      *time.Location
	UploadTimeout time.Duration
	// Now defaults to time.Now
	Now func() time.Time
}

type intakeService struct {
	stager   *intake.Stager
	store    storage.ImageStore
	scans    ScanService
	location *time.Location
	timeout  time.Duration
	now      func() time.Time
}

func NewIntakeService(cfg IntakeConfig) IntakeService {
	s := &intakeService{
		stager:   cfg.Stager,
		store:    cfg.Store,
		scans:    cfg.Scans,
		location: cfg.Location,
		timeout:  cfg.UploadTimeout,
		now:      cfg.Now,
	}
	if s.location == nil {
		s.location = time.UTC
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

func (s *intakeService) Upload(ctx context.Context, upload ScanUpload) (*models.Scan, error) {
	if strings.TrimSpace(upload.PatientName) == "" {
		return nil, ErrPatientNameRequired
	}
	if upload.Image == nil {
		return nil, ErrImageRequired
	}
	if err := intake.ValidateImage(upload.Image.Filename, upload.Image.Header.Get("Content-Type")); err != nil {
		return nil, err
	}

	stagedPath, err := s.stager.Stage(upload.Image)
	if err != nil {
		return nil, fmt.Errorf("staging upload: %w", err)
	}
	defer s.stager.Remove(stagedPath)

	image, err := s.storeImage(ctx, stagedPath)
	if err != nil {
		return nil, err
	}

	scan := &models.Scan{
		PatientName: upload.PatientName,
		PatientID:   upload.PatientID,
		ScanType:    upload.ScanType,
		Region:      upload.Region,
		ImageURL:    image.URL,
		UploadDate:  s.now().In(s.location).Format(models.UploadDateLayout),
	}

	if err := s.scans.CreateScan(ctx, scan); err != nil {
		s.discardImage(ctx, image)
		return nil, fmt.Errorf("%w: %v", ErrScanNotSaved, err)
	}

	log.WithFields(log.Fields{
		"scan_id":   scan.ID,
		"scan_type": scan.ScanType,
		"region":    scan.Region,
	}).Info("Scan uploaded")

	return scan, nil
}

func (s *intakeService) storeImage(ctx context.Context, path string) (storage.StoredImage, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	image, err := s.store.Upload(ctx, path)
	if err != nil {
		if !errors.Is(err, storage.ErrUpstream) {
			err = fmt.Errorf("%w: %v", storage.ErrUpstream, err)
		}
		return storage.StoredImage{}, err
	}
	return image, nil
}

// discardImage makes one attempt to delete an object whose scan row could not be written.
// A failure here leaves an orphaned object, which is only logged.
func (s *intakeService) discardImage(ctx context.Context, image storage.StoredImage) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()

	entry := log.WithFields(log.Fields{"image_ref": image.Ref, "image_url": image.URL})
	if err := s.store.Delete(ctx, image.Ref); err != nil {
		entry.WithError(err).Error("Orphaned scan image left in storage")
		return
	}
	entry.Warn("Removed scan image after failed insert")
}
