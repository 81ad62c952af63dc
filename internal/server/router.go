package server

import (
	"context"
	"net/http"
	"slices"
	"time"

	_ "github.com/franciscosanchezn/dental-scan-api/docs" // swagger spec
	"github.com/franciscosanchezn/dental-scan-api/internal/controllers"
	"github.com/franciscosanchezn/dental-scan-api/internal/database"
	"github.com/franciscosanchezn/dental-scan-api/internal/middleware"
	"github.com/franciscosanchezn/dental-scan-api/internal/models"
	"github.com/franciscosanchezn/dental-scan-api/internal/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// ServiceName is reported by the health endpoint
const ServiceName = "dental-scan-api"

// WelcomeMessage is the plain text body of GET /
const WelcomeMessage = "Welcome!, This is a Oralvis Healthcare Assignment Backend domain you can access with endpoints."

// TokenService both signs and verifies bearer tokens. *auth.TokenIssuer satisfies it.
type TokenService interface {
	controllers.TokenSigner
	middleware.TokenVerifier
}

// Dependencies are the collaborators the router hands to its controllers
type Dependencies struct {
	DB     *gorm.DB
	Tokens TokenService
	Users  services.UserService
	Scans  services.ScanService
	Intake services.IntakeService

	// MaxUploadBytes caps the /upload request body, zero disables the cap
	MaxUploadBytes int64
	// AllowedOrigins lists the CORS origins, "*" allows any
	AllowedOrigins []string
}

// NewRouter initializes the Gin router and sets up the routes
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(cors.New(corsConfig(deps.AllowedOrigins)))

	authController := controllers.NewAuthController(deps.Users, deps.Tokens)
	scanController := controllers.NewScanController(deps.Intake, deps.Scans, deps.MaxUploadBytes)

	router.GET("/", welcomeHandler)
	router.GET("/health", healthCheckHandler(deps.DB))

	router.POST("/register", authController.Register)
	router.POST("/login", authController.Login)

	protected := router.Group("/")
	protected.Use(middleware.BearerAuth(deps.Tokens))
	{
		protected.POST("/upload", middleware.RequireRole(models.RoleTechnician, "upload scans"), scanController.UploadScan)
		protected.GET("/scans", middleware.RequireRole(models.RoleDentist, "view scans"), scanController.ListScans)
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader}
	cfg.ExposeHeaders = []string{middleware.RequestIDHeader}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

// welcomeHandler godoc
// @Summary Welcome
// @Tags health
// @Produce plain
// @Success 200 {string} string
// @Router / [get]
func welcomeHandler(c *gin.Context) {
	c.String(http.StatusOK, WelcomeMessage)
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service and its database are reachable
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status, code := "healthy", http.StatusOK
		if err := database.Ping(ctx, db); err != nil {
			log.WithError(err).Error("Health check could not reach the database")
			status, code = "unhealthy", http.StatusServiceUnavailable
		}

		c.JSON(code, gin.H{
			"status":    status,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"service":   ServiceName,
		})
	}
}
