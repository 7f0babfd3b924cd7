package handler

import (
	"net/http"
	"strconv"

	"jigarafy/backend/internal/apperror"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Message string `json:"message" example:"User not found"`
}

// MessageResponse is returned by endpoints that only confirm an action.
type MessageResponse struct {
	Message string `json:"message" example:"User deleted successfully"`
}

// respondError renders err as {"message": ...}. Internal errors are logged
// and never shown to the client.
func respondError(c *gin.Context, log *zap.Logger, err error) {
	status := apperror.StatusOf(err)
	if status >= http.StatusInternalServerError {
		log.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("route", c.FullPath()),
			zap.Error(err))
		_ = c.Error(err)
	}
	c.JSON(status, ErrorResponse{Message: apperror.MessageOf(err)})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Message: message})
}

// parseID reads a positive integer path parameter.
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
