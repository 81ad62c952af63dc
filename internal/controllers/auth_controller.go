package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/franciscosanchezn/dental-scan-api/internal/models"
	"github.com/franciscosanchezn/dental-scan-api/internal/services"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// TokenSigner issues bearer tokens for authenticated users. *auth.TokenIssuer satisfies it.
type TokenSigner interface {
	Issue(userID uint, role models.Role) (string, error)
	TTL() time.Duration
}

// RegisterRequest is the body accepted by POST /register
type RegisterRequest struct {
	Email    string      `json:"email" example:"tech@oralvis.com"`
	Password string      `json:"password" example:"pw123456"`
	Role     models.Role `json:"role" example:"Technician" enums:"Technician,Dentist"`
}

// RegisterResponse is returned when an account was created
type RegisterResponse struct {
	Message string `json:"message" example:"User created successfully"`
	UserID  uint   `json:"userId" example:"1"`
}

// LoginRequest is the body accepted by POST /login
type LoginRequest struct {
	Email    string `json:"email" example:"tech@oralvis.com"`
	Password string `json:"password" example:"pw123456"`
}

// LoginUser is the part of the account echoed back on login
type LoginUser struct {
	ID   uint        `json:"id" example:"1"`
	Role models.Role `json:"role" example:"Technician"`
}

// LoginResponse carries the signed bearer token and its lifetime in seconds
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresIn int64     `json:"expiresIn" example:"86400"`
	User      LoginUser `json:"user"`
}

type AuthController struct {
	userService services.UserService
	tokens      TokenSigner
}

func NewAuthController(userService services.UserService, tokens TokenSigner) *AuthController {
	return &AuthController{
		userService: userService,
		tokens:      tokens,
	}
}

// Register godoc
// @Summary Register a new account
// @Description Create a Technician or Dentist account
// @Tags auth
// @Accept json
// @Produce json
// @Param user body RegisterRequest true "Account details"
// @Success 200 {object} RegisterResponse
// @Failure 400 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewAPIError(models.KindValidation, "Email, password, and role are required"))
		return
	}

	user, err := ac.userService.Register(c.Request.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingFields):
			c.JSON(http.StatusBadRequest, models.NewAPIError(models.KindValidation, "Email, password, and role are required"))
		case errors.Is(err, services.ErrInvalidRole):
			c.JSON(http.StatusBadRequest, models.NewAPIError(models.KindValidation, "Role must be Technician or Dentist"))
		case errors.Is(err, services.ErrEmailTaken):
			c.JSON(http.StatusBadRequest, models.NewAPIError(models.KindConflict, "Email already exists"))
		default:
			log.WithError(err).Error("Failed to register user")
			c.JSON(http.StatusInternalServerError, models.NewAPIError(models.KindInternal, "Error creating user"))
		}
		return
	}

	log.WithFields(log.Fields{"user_id": user.ID, "role": user.Role}).Info("User registered")
	c.JSON(http.StatusOK, RegisterResponse{Message: "User created successfully", UserID: user.ID})
}

// Login godoc
// @Summary Log in
// @Description Exchange email and password for a bearer token valid for 24 hours
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewAPIError(models.KindValidation, "Email and password are required"))
		return
	}

	user, err := ac.userService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnknownEmail):
			c.JSON(http.StatusBadRequest, models.NewAPIError(models.KindUnknownEmail, "Invalid email"))
		case errors.Is(err, services.ErrPasswordMismatch):
			c.JSON(http.StatusBadRequest, models.NewAPIError(models.KindCredentialsMismatch, "Email and password didn't match"))
		default:
			log.WithError(err).Error("Failed to look up user")
			c.JSON(http.StatusInternalServerError, models.NewAPIError(models.KindInternal, "Database Error"))
		}
		return
	}

	token, err := ac.tokens.Issue(user.ID, user.Role)
	if err != nil {
		log.WithError(err).Error("Failed to sign token")
		c.JSON(http.StatusInternalServerError, models.NewAPIError(models.KindInternal, "Internal Server Error"))
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token:     token,
		ExpiresIn: int64(ac.tokens.TTL() / time.Second),
		User:      LoginUser{ID: user.ID, Role: user.Role},
	})
}
