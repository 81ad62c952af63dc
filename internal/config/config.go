package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger
// Configure it to log at the desired level
// and format it as JSON for structured logging
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(LevelForEnvironment(GetEnvWithDefault("APP_ENV", "development")))
}

// LevelForEnvironment maps APP_ENV to the log level used across the service
func LevelForEnvironment(environment string) logrus.Level {
	switch environment {
	case "development":
		return logrus.DebugLevel
	case "production":
		return logrus.ErrorLevel
	default:
		// Default to info level for other environments
		return logrus.InfoLevel
	}
}

// Storage drivers understood by the application
const (
	StorageCloudinary = "cloudinary"
	StorageMinio      = "minio"
)

const defaultJWTSecret = "secret"

// Config used for the application configuration, loading the input from environment variables
type Config struct {
	// Server Configuration
	Environment        string   `json:"environment"`
	Port               int      `json:"port"`
	Host               string   `json:"host"`
	CORSAllowedOrigins []string `json:"cors_allowed_origins"`

	// Database configuration
	DBDriver   string `json:"db_driver"`
	DBPath     string `json:"db_path"`
	DBHost     string `json:"db_host"`
	DBPort     string `json:"db_port"`
	DBName     string `json:"db_name"`
	DBUser     string `json:"db_user"`
	DBPassword string `json:"db_password"`
	DBSSLMode  string `json:"db_sslmode"`

	// Security Configuration
	JWTSecret string        `json:"jwt_secret"`
	TokenTTL  time.Duration `json:"token_ttl"`

	// Upload intake
	UploadDir     string        `json:"upload_dir"`
	ScanTimezone  string        `json:"scan_timezone"`
	UploadTimeout time.Duration `json:"upload_timeout"`
	MaxUploadMB   int           `json:"max_upload_mb"`

	// Image storage
	StorageDriver       string `json:"storage_driver"`
	CloudinaryCloudName string `json:"cloudinary_cloud_name"`
	CloudinaryAPIKey    string `json:"cloudinary_api_key"`
	CloudinarySecret    string `json:"cloudinary_secret"`
	CloudinaryFolder    string `json:"cloudinary_folder"`
	MinioEndpoint       string `json:"minio_endpoint"`
	MinioAccessKey      string `json:"minio_access_key"`
	MinioSecretKey      string `json:"minio_secret_key"`
	MinioBucket         string `json:"minio_bucket"`
	MinioPublicURL      string `json:"minio_public_url"`
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{Environment: %s, Port: %d, Host: %s, DBDriver: %s, DBPath: %s, DBHost: %s, DBName: %s, DBUser: %s, DBPassword: [REDACTED], "+
		"JWTSecret: [REDACTED], TokenTTL: %s, UploadDir: %s, ScanTimezone: %s, StorageDriver: %s, CloudinaryCloudName: %s, CloudinaryAPIKey: %s, "+
		"CloudinarySecret: [REDACTED], MinioEndpoint: %s, MinioAccessKey: %s, MinioSecretKey: [REDACTED], MinioBucket: %s}",
		c.Environment, c.Port, c.Host, c.DBDriver, c.DBPath, c.DBHost, c.DBName, c.DBUser,
		c.TokenTTL, c.UploadDir, c.ScanTimezone, c.StorageDriver, c.CloudinaryCloudName, maskKey(c.CloudinaryAPIKey),
		c.MinioEndpoint, maskKey(c.MinioAccessKey), c.MinioBucket)
}

// maskKey keeps the first four characters of an access key
func maskKey(key string) string {
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return key[:4] + strings.Repeat("*", len(key)-4)
}

// LoadConfig read the proper configuration from environment variables and returns a Config struct
// Returns an error if any environment variable is invalid
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration from environment variables")
	port, err := strconv.Atoi(GetEnvWithDefault("PORT", "3000"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}

	environment := GetEnvWithDefault("APP_ENV", "development")
	jwtSecret := GetEnvWithDefault("JWT_SECRET", defaultJWTSecret)
	if environment == "production" && jwtSecret == defaultJWTSecret {
		return nil, errors.New("JWT_SECRET must be set in production")
	}

	timezone := GetEnvWithDefault("SCAN_TIMEZONE", "Asia/Kolkata")
	if _, err := time.LoadLocation(timezone); err != nil {
		return nil, fmt.Errorf("invalid SCAN_TIMEZONE %q: %w", timezone, err)
	}

	storageDriver := strings.ToLower(GetEnvWithDefault("STORAGE_DRIVER", StorageCloudinary))
	if storageDriver != StorageCloudinary && storageDriver != StorageMinio {
		return nil, fmt.Errorf("unsupported STORAGE_DRIVER: %s (supported: cloudinary, minio)", storageDriver)
	}

	config := &Config{
		Environment:        environment,
		Port:               port,
		Host:               GetEnvWithDefault("APP_HOST", ""),
		CORSAllowedOrigins: splitList(GetEnvWithDefault("CORS_ALLOWED_ORIGINS", "*")),

		DBDriver:   strings.ToLower(GetEnvWithDefault("DB_DRIVER", "sqlite")),
		DBPath:     GetEnvWithDefault("DB_PATH", "oralvis.db"),
		DBHost:     GetEnvWithDefault("DB_HOST", "localhost"),
		DBPort:     GetEnvWithDefault("DB_PORT", "5432"),
		DBName:     GetEnvWithDefault("DB_NAME", "oralvis"),
		DBUser:     GetEnvWithDefault("DB_USER", "postgres"),
		DBPassword: GetEnvWithDefault("DB_PASSWORD", ""),
		DBSSLMode:  GetEnvWithDefault("DB_SSLMODE", "disable"),

		JWTSecret: jwtSecret,
		TokenTTL:  time.Duration(GetEnvAsType("TOKEN_TTL_HOURS", 24)) * time.Hour,

		UploadDir:     GetEnvWithDefault("UPLOAD_DIR", "uploads"),
		ScanTimezone:  timezone,
		UploadTimeout: time.Duration(GetEnvAsType("UPLOAD_TIMEOUT_SECONDS", 30)) * time.Second,
		MaxUploadMB:   GetEnvAsType("MAX_UPLOAD_MB", 10),

		StorageDriver:       storageDriver,
		CloudinaryCloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		CloudinarySecret:    os.Getenv("CLOUDINARY_SECRET_KEY"),
		CloudinaryFolder:    GetEnvWithDefault("CLOUDINARY_FOLDER", "oralvis_scans"),
		MinioEndpoint:       os.Getenv("MINIO_ENDPOINT"),
		MinioAccessKey:      os.Getenv("MINIO_ACCESS_KEY"),
		MinioSecretKey:      os.Getenv("MINIO_SECRET_KEY"),
		MinioBucket:         os.Getenv("MINIO_BUCKET"),
		MinioPublicURL:      os.Getenv("MINIO_PUBLIC_URL"),
	}
	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
}

// splitList turns a comma separated value into a trimmed slice, dropping empty entries
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Helper to get environment with default values
func GetEnvWithDefault(key, defaultValue string) string {
	log.Tracef("Getting environment variable: %s", key)
	value := os.Getenv(key)
	if value == "" {
		log.Debugf("Environment variable %s not set, using default value: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsType retrieves an environment variable and converts it to the specified type
// using generic type handling.
func GetEnvAsType[T any](key string, defaultValue T) T {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var result T
	switch any(result).(type) {
	case int:
		intValue, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue
		}
		return any(intValue).(T)
	case string:
		return any(value).(T)
	case bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			return defaultValue
		}
		return any(boolValue).(T)
	default:
		return defaultValue // Fallback for unsupported types
	}
}
