package models

// UploadDateLayout is the format of Scan.UploadDate. It sorts lexically in time order.
const UploadDateLayout = "2006-01-02 15:04:05"

// Scan is a patient imaging record pointing at an externally hosted image.
// Column names match the original oralvis schema.
type Scan struct {
	ID          uint   `gorm:"primaryKey;column:id" json:"id"`
	PatientName string `gorm:"column:patientName;not null" json:"patientName"`
	PatientID   string `gorm:"column:patientId" json:"patientId"`
	ScanType    string `gorm:"column:scanType" json:"scanType"`
	Region      string `gorm:"column:region" json:"region"`
	ImageURL    string `gorm:"column:imageUrl;not null" json:"imageUrl"`
	UploadDate  string `gorm:"column:uploadDate;not null;index" json:"uploadDate"`
}

func (Scan) TableName() string {
	return "scans"
}
