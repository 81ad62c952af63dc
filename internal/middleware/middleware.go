package middleware

import (
	"net/http"
	"strings"

	"github.com/franciscosanchezn/dental-scan-api/internal/auth"
	"github.com/franciscosanchezn/dental-scan-api/internal/models"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Context keys set by BearerAuth for downstream handlers
const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
)

// TokenVerifier validates bearer tokens. *auth.TokenIssuer satisfies it.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// BearerAuth requires an "Authorization: Bearer <token>" header.
// A missing header is answered with 401, an untrusted token with 403.
func BearerAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				models.NewAPIError(models.KindUnauthenticated, "User not logged in"))
			return
		}

		tokenString := bearerToken(authHeader)
		if tokenString == "" {
			abortInvalidToken(c)
			return
		}

		claims, err := verifier.Verify(tokenString)
		if err != nil {
			log.WithError(err).WithField("path", c.FullPath()).Debug("Rejected bearer token")
			abortInvalidToken(c)
			return
		}

		c.Set(ContextUserID, claims.ID)
		c.Set(ContextUserRole, claims.Role)

		c.Next()
	}
}

// bearerToken extracts the token from a "Bearer <token>" header value, scheme is case-insensitive
func bearerToken(header string) string {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func abortInvalidToken(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusForbidden,
		models.NewAPIError(models.KindInvalidToken, "Invalid Access Token"))
}
