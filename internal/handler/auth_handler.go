package handler

import (
	"net/http"
	"time"

	"jigarafy/backend/internal/auth"
	"jigarafy/backend/internal/models"
	"jigarafy/backend/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LoginInput defines the structure for user login.
type LoginInput struct {
	Email    string `json:"email" example:"ada@example.com"`
	Password string `json:"password" example:"secret1"`
}

// UserEnvelope wraps a user the way the client expects it.
type UserEnvelope struct {
	Success bool         `json:"success" example:"true"`
	User    *models.User `json:"user"`
}

type AuthHandler struct {
	auth      service.AuthService
	users     service.UserService
	cookieTTL time.Duration
	secure    bool
	log       *zap.Logger
}

func NewAuthHandler(authService service.AuthService, users service.UserService, cookieTTL time.Duration, secure bool, log *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: authService, users: users, cookieTTL: cookieTTL, secure: secure, log: log}
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(auth.CookieName, token, maxAge, "/", "", h.secure, true)
}

// Signup godoc
// @Summary      Register a new user
// @Description  Creates a user with a random avatar and starts a session cookie.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body service.SignupInput true "Signup info"
// @Success      201  {object}  UserEnvelope
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Failure      429  {object}  ErrorResponse
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var input service.SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	user, token, err := h.auth.Signup(c.Request.Context(), input)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	h.setSessionCookie(c, token, int(h.cookieTTL.Seconds()))
	c.JSON(http.StatusCreated, UserEnvelope{Success: true, User: user})
}

// Login godoc
// @Summary      Log in a user
// @Description  Authenticates with email and password and starts a session cookie.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body LoginInput true "Login info"
// @Success      200  {object}  UserEnvelope
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse "Invalid email or password"
// @Failure      429  {object}  ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	user, token, err := h.auth.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	h.setSessionCookie(c, token, int(h.cookieTTL.Seconds()))
	c.JSON(http.StatusOK, UserEnvelope{Success: true, User: user})
}

// Logout godoc
// @Summary      Log out
// @Description  Clears the session cookie and revokes the token when a denylist is configured.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  MessageResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.auth.Logout(c.Request.Context(), auth.TokenFromRequest(c)); err != nil {
		// the cookie is cleared regardless
		h.log.Warn("failed to revoke token", zap.Error(err))
	}
	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logout successful"})
}

// Me godoc
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  UserEnvelope
// @Failure      401  {object}  ErrorResponse
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, _ := auth.CurrentUser(c)
	c.JSON(http.StatusOK, UserEnvelope{Success: true, User: user})
}

// Onboard godoc
// @Summary      Complete onboarding
// @Description  Sets the profile fields and marks the user as onboarded.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body service.OnboardingInput true "Profile"
// @Success      200  {object}  UserEnvelope
// @Failure      400  {object}  ErrorResponse "All fields are required"
// @Failure      401  {object}  ErrorResponse
// @Router       /auth/onboarding [post]
func (h *AuthHandler) Onboard(c *gin.Context) {
	var input service.OnboardingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	user, err := h.users.Onboard(c.Request.Context(), auth.CurrentUserID(c), input)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, UserEnvelope{Success: true, User: user})
}
