package services

import (
	"context"

	"github.com/franciscosanchezn/dental-scan-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ScanService persists and lists scan records
type ScanService interface {
	// CreateScan inserts a scan and fills in its generated ID
	CreateScan(ctx context.Context, scan *models.Scan) error
	// ListScans returns every scan, most recent upload first
	ListScans(ctx context.Context) ([]models.Scan, error)
}

type scanService struct {
	db *gorm.DB
}

// NewScanService creates a new instance of ScanService
func NewScanService(db *gorm.DB) ScanService {
	return &scanService{db: db}
}

func (s *scanService) CreateScan(ctx context.Context, scan *models.Scan) error {
	return s.db.WithContext(ctx).Create(scan).Error
}

func (s *scanService) ListScans(ctx context.Context) ([]models.Scan, error) {
	scans := make([]models.Scan, 0)
	err := s.db.WithContext(ctx).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "uploadDate"}, Desc: true}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: true}).
		Find(&scans).Error
	if err != nil {
		return nil, err
	}
	return scans, nil
}
