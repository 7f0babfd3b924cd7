package handler

import (
	"time"

	"jigarafy/backend/internal/auth"
	"jigarafy/backend/internal/hub"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	hub       *hub.Hub
	heartbeat time.Duration
}

func NewNotificationHandler(h *hub.Hub, heartbeat time.Duration) *NotificationHandler {
	return &NotificationHandler{hub: h, heartbeat: heartbeat}
}

// Stream godoc
// @Summary      Live notifications
// @Description  Server-sent events for friend requests addressed to the caller. Each "notification" event carries one JSON event.
// @Tags         notifications
// @Produce      text/event-stream
// @Security     BearerAuth
// @Success      200  {string}  string  "event stream"
// @Failure      401  {object}  ErrorResponse
// @Router       /notifications/stream [get]
func (h *NotificationHandler) Stream(c *gin.Context) {
	userID := auth.CurrentUserID(c)
	client := h.hub.Subscribe(userID)
	defer h.hub.Unsubscribe(userID, client)

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")

	c.SSEvent("connected", gin.H{"userId": userID})
	c.Writer.Flush()

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-c.Request.Context().Done():
			return
		case msg, ok := <-client:
			if !ok {
				return
			}
			c.SSEvent("notification", string(msg))
			c.Writer.Flush()
		case <-ticker.C:
			c.SSEvent("ping", "")
			c.Writer.Flush()
		}
	}
}
