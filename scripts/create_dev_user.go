package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/franciscosanchezn/dental-scan-api/internal/config"
	"github.com/franciscosanchezn/dental-scan-api/internal/database"
	"github.com/franciscosanchezn/dental-scan-api/internal/models"
	"github.com/franciscosanchezn/dental-scan-api/internal/services"
	"github.com/joho/godotenv"
)

func main() {
	// Parse command line flags
	role := flag.String("role", string(models.RoleTechnician), "User role (Technician or Dentist)")
	email := flag.String("email", "", "Account email, defaults to <role>@oralvis.dev")
	password := flag.String("password", "dev-password-123", "Account password")
	flag.Parse()

	_ = godotenv.Load()

	userRole := models.Role(*role)
	if !userRole.Valid() {
		log.Fatalf("Invalid role %q, use Technician or Dentist", *role)
	}
	if *email == "" {
		*email = fmt.Sprintf("%s@oralvis.dev", *role)
	}

	db, err := database.InitDatabase(database.DatabaseConfig{
		Driver:   strings.ToLower(config.GetEnvWithDefault("DB_DRIVER", "sqlite")),
		Path:     config.GetEnvWithDefault("DB_PATH", "oralvis.db"),
		Host:     config.GetEnvWithDefault("DB_HOST", "localhost"),
		Port:     config.GetEnvWithDefault("DB_PORT", "5432"),
		User:     config.GetEnvWithDefault("DB_USER", "postgres"),
		Password: config.GetEnvWithDefault("DB_PASSWORD", ""),
		Name:     config.GetEnvWithDefault("DB_NAME", "oralvis"),
		SSLMode:  config.GetEnvWithDefault("DB_SSLMODE", "disable"),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	user, err := services.NewUserService(db).Register(context.Background(), *email, *password, userRole)
	if errors.Is(err, services.ErrEmailTaken) {
		fmt.Printf("Development user %s already exists\n", *email)
		return
	}
	if err != nil {
		log.Fatal("Failed to create user:", err)
	}

	fmt.Printf("✓ Development %s created!\n", user.Role)
	fmt.Printf("User ID: %d\n", user.ID)
	fmt.Printf("Email: %s\n", user.Email)
	fmt.Printf("Password: %s\n", *password)
	fmt.Println("\nLog in with:")
	fmt.Printf("curl -X POST http://localhost:3000/login \\\n")
	fmt.Printf("  -H 'Content-Type: application/json' \\\n")
	fmt.Printf("  -d '{\"email\":\"%s\",\"password\":\"%s\"}'\n", user.Email, *password)
}
