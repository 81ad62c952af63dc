package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata" // SCAN_TIMEZONE must resolve on hosts without a zoneinfo database

	"github.com/franciscosanchezn/dental-scan-api/internal/auth"
	"github.com/franciscosanchezn/dental-scan-api/internal/config"
	"github.com/franciscosanchezn/dental-scan-api/internal/database"
	"github.com/franciscosanchezn/dental-scan-api/internal/intake"
	"github.com/franciscosanchezn/dental-scan-api/internal/server"
	"github.com/franciscosanchezn/dental-scan-api/internal/services"
	"github.com/franciscosanchezn/dental-scan-api/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// @title Dental Scan API
// @version 1.0
// @description Technicians upload dental scans, dentists review them.
// @host localhost:3000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration := loadConfig()

	// Initialize database connection
	db := setupDatabase(configuration)
	defer func() {
		if err := database.Close(db); err != nil {
			log.WithError(err).Error("Failed to close database")
		}
	}()

	// Only the database may stop startup; a broken image host fails uploads with 502
	imageStore, err := setupImageStore(context.Background(), configuration)
	if err != nil {
		log.WithError(err).Error("Image storage is not configured, uploads will fail")
		imageStore = storage.NewUnavailableStore(err)
	}

	stager, err := intake.NewStager(configuration.UploadDir)
	if err != nil {
		log.WithError(err).Fatal("Failed to prepare upload directory")
	}

	location, err := time.LoadLocation(configuration.ScanTimezone)
	checkPanicErr(err)

	// Initialize services
	tokens := auth.NewTokenIssuer(configuration.JWTSecret, configuration.TokenTTL)
	userService := services.NewUserService(db)
	scanService := services.NewScanService(db)
	intakeService := services.NewIntakeService(services.IntakeConfig{
		Stager:        stager,
		Store:         imageStore,
		Scans:         scanService,
		Location:      location,
		UploadTimeout: configuration.UploadTimeout,
	})

	// Initialize Gin router
	router := server.NewRouter(server.Dependencies{
		DB:             db,
		Tokens:         tokens,
		Users:          userService,
		Scans:          scanService,
		Intake:         intakeService,
		MaxUploadBytes: int64(configuration.MaxUploadMB) << 20,
		AllowedOrigins: configuration.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf("%v:%d", configuration.Host, configuration.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Start the server in a goroutine so we can listen for signals while it runs
	errCh := make(chan error, 1)
	go func() {
		log.Infof("Starting server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.WithField("signal", sig.String()).Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Error("Graceful shutdown failed")
		}
	case err := <-errCh:
		log.WithError(err).Error("Server stopped unexpectedly")
	}
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	log.SetLevel(config.LevelForEnvironment(environment))
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupDatabase opens the configured store and migrates the schema.
// The process cannot serve without a store, so any failure here is fatal.
func setupDatabase(conf *config.Config) *gorm.DB {
	db, err := database.InitDatabase(database.DatabaseConfig{
		Driver:   conf.DBDriver,
		Host:     conf.DBHost,
		Port:     conf.DBPort,
		User:     conf.DBUser,
		Password: conf.DBPassword,
		Name:     conf.DBName,
		SSLMode:  conf.DBSSLMode,
		Path:     conf.DBPath,
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}

	if err := database.Migrate(db); err != nil {
		log.WithError(err).Fatal("Failed to migrate database")
	}
	return db
}

// setupImageStore builds the ImageStore selected by STORAGE_DRIVER
func setupImageStore(ctx context.Context, conf *config.Config) (storage.ImageStore, error) {
	switch conf.StorageDriver {
	case config.StorageMinio:
		store, err := storage.NewMinioStore(storage.MinioConfig{
			Endpoint:  conf.MinioEndpoint,
			AccessKey: conf.MinioAccessKey,
			SecretKey: conf.MinioSecretKey,
			Bucket:    conf.MinioBucket,
			// both drivers file scans under the same folder name
			Prefix:    conf.CloudinaryFolder,
			PublicURL: conf.MinioPublicURL,
		})
		if err != nil {
			return nil, err
		}
		checkCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := store.CheckBucket(checkCtx); err != nil {
			log.WithError(err).Warn("MinIO bucket not reachable yet, uploads fail until it is")
		}
		return store, nil
	default:
		store, err := storage.NewCloudinaryStore(storage.CloudinaryConfig{
			CloudName: conf.CloudinaryCloudName,
			APIKey:    conf.CloudinaryAPIKey,
			APISecret: conf.CloudinarySecret,
			Folder:    conf.CloudinaryFolder,
		})
		if err != nil {
			return nil, err
		}
		return store, nil
	}
}
