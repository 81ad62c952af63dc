package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/franciscosanchezn/dental-scan-api/internal/intake"
	"github.com/franciscosanchezn/dental-scan-api/internal/models"
	"github.com/franciscosanchezn/dental-scan-api/internal/services"
	"github.com/franciscosanchezn/dental-scan-api/internal/storage"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// UploadResponse is the created scan record returned by POST /upload
type UploadResponse struct {
	Message     string `json:"message" example:"Patient Data Uploaded Successfully"`
	ID          uint   `json:"id" example:"1"`
	PatientName string `json:"patientName" example:"Alice"`
	PatientID   string `json:"patientId" example:"P-001"`
	ScanType    string `json:"scanType" example:"X-ray"`
	Region      string `json:"region" example:"Head"`
	ImageURL    string `json:"imageUrl"`
	UploadDate  string `json:"uploadDate" example:"2026-01-01 10:00:00"`
}

// ScanController handles HTTP requests related to scans
type ScanController interface {
	// UploadScan stores a technician upload
	UploadScan(c *gin.Context)
	// ListScans returns every scan, newest first
	ListScans(c *gin.Context)
}

type scanController struct {
	intake   services.IntakeService
	scans    services.ScanService
	maxBytes int64
}

// NewScanController creates a new instance of ScanController.
// Request bodies larger than maxBytes are rejected; zero disables the limit.
func NewScanController(intake services.IntakeService, scans services.ScanService, maxBytes int64) ScanController {
	return &scanController{intake: intake, scans: scans, maxBytes: maxBytes}
}

// UploadScan godoc
// @Summary Upload a scan
// @Description Upload a JPG or PNG scan image with patient details. Technician only.
// @Tags scans
// @Accept multipart/form-data
// @Produce json
// @Param patientName formData string true "Patient name"
// @Param patientId formData string false "Patient ID"
// @Param scanType formData string false "Scan type"
// @Param region formData string false "Region"
// @Param image formData file true "JPG or PNG image"
// @Success 201 {object} UploadResponse
// @Failure 400 {object} models.APIError
// @Failure 401 {object} models.APIError
// @Failure 403 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Failure 502 {object} models.APIError
// @Security BearerAuth
// @Router /upload [post]
func (sc *scanController) UploadScan(c *gin.Context) {
	if sc.maxBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, sc.maxBytes)
	}

	// A non multipart body just leaves every field empty and fails validation below
	if _, err := c.MultipartForm(); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusBadRequest, models.NewAPIError(models.KindValidation,
				fmt.Sprintf("Upload exceeds the %d byte limit", tooLarge.Limit)))
			return
		}
		log.WithError(err).Debug("Upload is not a readable multipart form")
	}

	upload := services.ScanUpload{
		PatientName: c.PostForm("patientName"),
		PatientID:   c.PostForm("patientId"),
		ScanType:    c.PostForm("scanType"),
		Region:      c.PostForm("region"),
	}
	if fh, err := c.FormFile("image"); err == nil {
		upload.Image = fh
	}

	scan, err := sc.intake.Upload(c.Request.Context(), upload)
	if err != nil {
		sc.uploadError(c, err)
		return
	}

	c.JSON(http.StatusCreated, UploadResponse{
		Message:     "Patient Data Uploaded Successfully",
		ID:          scan.ID,
		PatientName: scan.PatientName,
		PatientID:   scan.PatientID,
		ScanType:    scan.ScanType,
		Region:      scan.Region,
		ImageURL:    scan.ImageURL,
		UploadDate:  scan.UploadDate,
	})
}

func (sc *scanController) uploadError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrPatientNameRequired):
		c.JSON(http.StatusBadRequest, models.NewAPIError(models.KindValidation, "Patient name is required"))
	case errors.Is(err, services.ErrImageRequired):
		c.JSON(http.StatusBadRequest, models.NewAPIError(models.KindValidation, "Image file is required"))
	case errors.Is(err, intake.ErrUnsupportedImage):
		c.JSON(http.StatusBadRequest, models.NewAPIError(models.KindValidation, "Only JPG and PNG images are allowed!"))
	case errors.Is(err, storage.ErrUpstream):
		log.WithError(err).Error("Image storage upload failed")
		c.JSON(http.StatusBadGateway, models.NewAPIError(models.KindUpstreamStorage, "Failed to upload image to storage"))
	case errors.Is(err, services.ErrScanNotSaved):
		log.WithError(err).Error("Failed to insert scan")
		c.JSON(http.StatusInternalServerError, models.NewAPIError(models.KindInternal, "Failed to save scan record in database"))
	default:
		log.WithError(err).Error("Upload failed")
		c.JSON(http.StatusInternalServerError, models.NewAPIError(models.KindInternal, "Internal Server Error"))
	}
}

// ListScans godoc
// @Summary List scans
// @Description Every scan, most recent upload first. Dentist only.
// @Tags scans
// @Produce json
// @Success 200 {array} models.Scan
// @Failure 401 {object} models.APIError
// @Failure 403 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Security BearerAuth
// @Router /scans [get]
func (sc *scanController) ListScans(c *gin.Context) {
	scans, err := sc.scans.ListScans(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list scans")
		c.JSON(http.StatusInternalServerError, models.NewAPIError(models.KindInternal, "Failed to fetch scans from database"))
		return
	}
	c.JSON(http.StatusOK, scans)
}
