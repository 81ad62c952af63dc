package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/franciscosanchezn/dental-scan-api/internal/models"
	"gorm.io/gorm"
)

var (
	// ErrEmailTaken is returned when registering an email that already has an account
	ErrEmailTaken = errors.New("email already exists")
	// ErrInvalidRole is returned when registering with a role other than Technician or Dentist
	ErrInvalidRole = errors.New("invalid role")
	// ErrMissingFields is returned when email, password or role is empty
	ErrMissingFields = errors.New("email, password, and role are required")
	// ErrUnknownEmail is returned by Authenticate when no account uses the email
	ErrUnknownEmail = errors.New("invalid email")
	// ErrPasswordMismatch is returned by Authenticate when the password does not match
	ErrPasswordMismatch = errors.New("email and password didn't match")
)

// UserService registers and authenticates accounts
type UserService interface {
	// Register hashes the password and stores a new user
	Register(ctx context.Context, email, password string, role models.Role) (*models.User, error)
	// Authenticate looks the user up by exact email and checks the password
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
}

type userService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) UserService {
	return &userService{db: db}
}

func (s *userService) Register(ctx context.Context, email, password string, role models.Role) (*models.User, error) {
	if strings.TrimSpace(email) == "" || password == "" || role == "" {
		return nil, ErrMissingFields
	}
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	db := s.db.WithContext(ctx)

	var existing models.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("checking email: %w", err)
	}

	user := &models.User{
		Email:    email,
		Password: password,
		Role:     role,
	}
	if err := user.HashPassword(); err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	// The unique index still guards against a concurrent registration of the same email
	if err := db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}
	return user, nil
}

func (s *userService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownEmail
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	if !user.CheckPassword(password) {
		return nil, ErrPasswordMismatch
	}
	return &user, nil
}
