package handler

import (
	"net/http"

	"jigarafy/backend/internal/auth"
	"jigarafy/backend/internal/models"
	"jigarafy/backend/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	users service.UserService
	log   *zap.Logger
}

func NewUserHandler(users service.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{users: users, log: log}
}

// UpdateProfile godoc
// @Summary      Update own profile
// @Description  Partially updates the caller's profile. Role and password cannot be changed here.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body service.ProfileUpdate true "Fields to change"
// @Success      200  {object}  models.User
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /users/me [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var input service.ProfileUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	user, err := h.users.UpdateProfile(c.Request.Context(), auth.CurrentUserID(c), input)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Recommended godoc
// @Summary      Recommended users
// @Description  Onboarded users who are neither the caller nor already friends, newest first.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        page  query     int     false  "Page number" default(1)
// @Param        limit query     int     false  "Items per page" default(10)
// @Success      200   {object}  PaginatedResponse[models.User]
// @Failure      401   {object}  ErrorResponse
// @Router       /users [get]
func (h *UserHandler) Recommended(c *gin.Context) {
	page, limit := pageParams(c)

	users, total, err := h.users.Recommended(c.Request.Context(), auth.CurrentUserID(c), page, limit)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, NewPaginatedResponse[models.User](users, total, page, limit))
}
