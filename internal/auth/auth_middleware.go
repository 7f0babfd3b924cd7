package auth

import (
	"context"
	"net/http"
	"strings"

	"jigarafy/backend/internal/apperror"
	"jigarafy/backend/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// CookieName is the session cookie set on signup and login.
	CookieName = "jwt"

	contextUserID = "userID"
	contextUser   = "user"
)

// Authenticator resolves a session token to the user it belongs to.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

// TokenFromRequest returns the session token from the jwt cookie, falling back
// to an Authorization: Bearer header.
func TokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie(CookieName); err == nil && cookie != "" {
		return cookie
	}
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// AuthMiddleware rejects requests without a valid session and stores the
// authenticated user on the context.
func AuthMiddleware(authn Authenticator, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := TokenFromRequest(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized - No Token Provided"})
			return
		}

		user, err := authn.Authenticate(c.Request.Context(), token)
		if err != nil {
			if apperror.KindOf(err) == apperror.Unauthorized {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized - Invalid Token"})
				return
			}
			log.Error("failed to authenticate request", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
			return
		}

		c.Set(contextUserID, user.ID)
		c.Set(contextUser, user)
		c.Next()
	}
}

// CurrentUser returns the user stored by AuthMiddleware.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(contextUser)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}

// CurrentUserID returns the id stored by AuthMiddleware, or 0.
func CurrentUserID(c *gin.Context) uint {
	return c.GetUint(contextUserID)
}

// SetCurrentUser is used by tests that bypass AuthMiddleware.
func SetCurrentUser(c *gin.Context, user *models.User) {
	c.Set(contextUserID, user.ID)
	c.Set(contextUser, user)
}
