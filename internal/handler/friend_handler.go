package handler

import (
	"net/http"

	"jigarafy/backend/internal/auth"
	"jigarafy/backend/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FriendRequestsResponse feeds the notifications page.
type FriendRequestsResponse struct {
	IncomingReqs []service.FriendRequestView `json:"incomingReqs"`
	AcceptedReqs []service.FriendRequestView `json:"acceptedReqs"`
}

type FriendHandler struct {
	friends service.FriendService
	log     *zap.Logger
}

func NewFriendHandler(friends service.FriendService, log *zap.Logger) *FriendHandler {
	return &FriendHandler{friends: friends, log: log}
}

// SendRequest godoc
// @Summary      Send a friend request
// @Tags         friendship
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Recipient user ID"
// @Success      201  {object}  models.FriendRequest
// @Failure      400  {object}  ErrorResponse "Invalid ID or self request"
// @Failure      404  {object}  ErrorResponse "User not found"
// @Failure      409  {object}  ErrorResponse "Already friends or request exists"
// @Router       /users/friend-request/{id} [post]
func (h *FriendHandler) SendRequest(c *gin.Context) {
	recipientID, ok := parseID(c, "id")
	if !ok {
		badRequest(c, "Invalid user ID")
		return
	}

	request, err := h.friends.SendRequest(c.Request.Context(), auth.CurrentUserID(c), recipientID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, request)
}

// AcceptRequest godoc
// @Summary      Accept a friend request
// @Description  Only the recipient may accept. Both users become friends atomically.
// @Tags         friendship
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Friend request ID"
// @Success      200  {object}  MessageResponse
// @Failure      403  {object}  ErrorResponse "Not the recipient"
// @Failure      404  {object}  ErrorResponse "Friend request not found"
// @Failure      409  {object}  ErrorResponse "Already accepted"
// @Router       /users/friend-request/{id}/accept [put]
func (h *FriendHandler) AcceptRequest(c *gin.Context) {
	requestID, ok := parseID(c, "id")
	if !ok {
		badRequest(c, "Invalid friend request ID")
		return
	}

	if _, err := h.friends.AcceptRequest(c.Request.Context(), requestID, auth.CurrentUserID(c)); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Friend request accepted"})
}

// FriendRequests godoc
// @Summary      Notifications
// @Description  Pending requests addressed to the caller and requests the caller sent that were accepted.
// @Tags         friendship
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  FriendRequestsResponse
// @Router       /users/friend-requests [get]
func (h *FriendHandler) FriendRequests(c *gin.Context) {
	userID := auth.CurrentUserID(c)

	incoming, err := h.friends.ListIncoming(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	accepted, err := h.friends.ListAccepted(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, FriendRequestsResponse{IncomingReqs: incoming, AcceptedReqs: accepted})
}

// OutgoingRequests godoc
// @Summary      Outgoing requests
// @Tags         friendship
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  service.FriendRequestView
// @Router       /users/outgoing-friend-requests [get]
func (h *FriendHandler) OutgoingRequests(c *gin.Context) {
	outgoing, err := h.friends.ListOutgoing(c.Request.Context(), auth.CurrentUserID(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, outgoing)
}

// Friends godoc
// @Summary      My friends
// @Tags         friendship
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  models.UserSummary
// @Router       /users/friends [get]
func (h *FriendHandler) Friends(c *gin.Context) {
	friends, err := h.friends.ListFriends(c.Request.Context(), auth.CurrentUserID(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, friends)
}
