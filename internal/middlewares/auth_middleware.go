package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/aureeture/careerhub/internal/models"
	"github.com/aureeture/careerhub/internal/repositories"
	"github.com/aureeture/careerhub/internal/utils"
)

const authContextKey = "auth"

// AuthContext holds the authenticated caller for the duration of a request.
// ExternalID is the identity provider's user ID; User is the local mirror
// row and may be nil when mirroring failed.
type AuthContext struct {
	ExternalID string
	Email      string
	Name       string
	User       *models.User
}

// AuthMiddleware verifies the Bearer token issued by the external identity
// provider and lazily mirrors the caller into the local users table. Mirror
// failures are logged but do not fail the request; handlers that need the
// local row check AuthContext.User themselves.
func AuthMiddleware(secret string, users *repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "authentication required",
			})
			return
		}

		claims, err := utils.ParseIdentityToken(strings.TrimPrefix(header, "Bearer "), secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "invalid or expired token",
			})
			return
		}

		auth := &AuthContext{
			ExternalID: claims.UserID(),
			Email:      claims.Email,
			Name:       claims.Name,
		}
		auth.User = mirrorUser(c, users, claims)

		c.Set(authContextKey, auth)
		c.Next()
	}
}

// mirrorUser keeps a local copy of the identity provider's user so profile
// and project rows have something to reference.
func mirrorUser(c *gin.Context, users *repositories.UserRepository, claims *utils.IdentityClaims) *models.User {
	ctx := c.Request.Context()

	user, err := users.FindByExternalID(ctx, claims.UserID())
	if err == nil {
		return user
	}
	if !errors.Is(err, repositories.ErrUserNotFound) {
		log.Warn().Err(err).Str("externalId", claims.UserID()).Msg("user lookup failed")
		return nil
	}

	user = &models.User{
		ID:         uuid.New(),
		ExternalID: claims.UserID(),
		Email:      claims.Email,
		Name:       claims.Name,
		AvatarURL:  claims.AvatarURL,
	}
	if err := users.Create(ctx, user); err != nil {
		log.Warn().Err(err).Str("externalId", claims.UserID()).Msg("user mirror failed")
		return nil
	}

	// Re-read to cover a concurrent insert that won the conflict.
	if existing, err := users.FindByExternalID(ctx, claims.UserID()); err == nil {
		return existing
	}
	return user
}

// GetAuth retrieves the authenticated caller set by AuthMiddleware.
func GetAuth(c *gin.Context) (*AuthContext, error) {
	val, ok := c.Get(authContextKey)
	if !ok {
		return nil, errors.New("authentication context not found")
	}

	auth, ok := val.(*AuthContext)
	if !ok {
		return nil, errors.New("invalid authentication context type")
	}
	return auth, nil
}
