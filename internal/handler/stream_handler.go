package handler

import (
	"net/http"

	"jigarafy/backend/internal/auth"
	"jigarafy/backend/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type StreamHandler struct {
	stream service.StreamService
	log    *zap.Logger
}

func NewStreamHandler(stream service.StreamService, log *zap.Logger) *StreamHandler {
	return &StreamHandler{stream: stream, log: log}
}

// Token godoc
// @Summary      Video-call token
// @Description  Issues the caller's token for the video-call SDK.
// @Tags         chat
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string "{"token": "..."}"
// @Failure      500  {object}  ErrorResponse
// @Router       /chat/token [get]
func (h *StreamHandler) Token(c *gin.Context) {
	token, err := h.stream.Token(c.Request.Context(), auth.CurrentUserID(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
