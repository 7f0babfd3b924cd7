package service

//go:generate mockgen -source=friend_service.go -destination=mocks/friend_service_mock.go -package=mocks

import (
	"context"
	"errors"
	"time"

	"jigarafy/backend/internal/events"
	"jigarafy/backend/internal/metrics"
	"jigarafy/backend/internal/models"
	"jigarafy/backend/internal/repository"

	"go.uber.org/zap"
)

// FriendRequestView is a request with the counterpart the caller needs to see.
type FriendRequestView struct {
	ID        uint                       `json:"id"`
	Sender    *models.UserSummary        `json:"sender,omitempty"`
	Recipient *models.UserSummary        `json:"recipient,omitempty"`
	Status    models.FriendRequestStatus `json:"status"`
	CreatedAt time.Time                  `json:"createdAt"`
	UpdatedAt time.Time                  `json:"updatedAt"`
}

// RequestNotice is the payload of friend request events.
type RequestNotice struct {
	RequestID uint `json:"requestId"`
	FromID    uint `json:"fromId"`
}

type FriendService interface {
	SendRequest(ctx context.Context, senderID, recipientID uint) (*models.FriendRequest, error)
	AcceptRequest(ctx context.Context, requestID, actingUserID uint) (*models.FriendRequest, error)
	ListIncoming(ctx context.Context, userID uint) ([]FriendRequestView, error)
	ListOutgoing(ctx context.Context, userID uint) ([]FriendRequestView, error)
	ListAccepted(ctx context.Context, userID uint) ([]FriendRequestView, error)
	ListFriends(ctx context.Context, userID uint) ([]models.UserSummary, error)
	CascadeDeleteForUser(ctx context.Context, userID uint) error
}

type friendService struct {
	store     repository.Store
	publisher events.Publisher
	log       *zap.Logger
}

func NewFriendService(store repository.Store, publisher events.Publisher, log *zap.Logger) FriendService {
	return &friendService{store: store, publisher: publisher, log: log}
}

func (s *friendService) SendRequest(ctx context.Context, senderID, recipientID uint) (*models.FriendRequest, error) {
	if senderID == recipientID {
		return nil, ErrInvalidTarget
	}

	if _, err := s.store.Users().FindByID(ctx, recipientID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	friends, err := s.store.Users().AreFriends(ctx, senderID, recipientID)
	if err != nil {
		return nil, err
	}
	if friends {
		return nil, ErrAlreadyFriends
	}

	pending, err := s.store.FriendRequests().PendingBetween(ctx, senderID, recipientID)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, ErrDuplicateRequest
	}

	request := &models.FriendRequest{
		SenderID:    senderID,
		RecipientID: recipientID,
		Status:      models.StatusPending,
	}
	if err := s.store.FriendRequests().Create(ctx, request); err != nil {
		// lost a race against a concurrent send for the same pair
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateRequest
		}
		return nil, err
	}

	metrics.FriendRequestsTotal.WithLabelValues("sent").Inc()
	s.publish(ctx, events.New(events.FriendRequestSent, recipientID, RequestNotice{RequestID: request.ID, FromID: senderID}))
	return request, nil
}

func (s *friendService) AcceptRequest(ctx context.Context, requestID, actingUserID uint) (*models.FriendRequest, error) {
	var accepted *models.FriendRequest

	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		request, err := tx.FriendRequests().FindByIDForUpdate(ctx, requestID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrRequestNotFound
			}
			return err
		}

		if request.RecipientID != actingUserID {
			return ErrNotRecipient
		}
		if request.Status == models.StatusAccepted {
			return ErrAlreadyAccepted
		}

		if err := tx.FriendRequests().MarkAccepted(ctx, request.ID); err != nil {
			return err
		}
		if err := tx.Users().AddFriendship(ctx, request.SenderID, request.RecipientID); err != nil {
			return err
		}

		request.Status = models.StatusAccepted
		accepted = request
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.FriendRequestsTotal.WithLabelValues("accepted").Inc()
	s.publish(ctx, events.New(events.FriendRequestAccepted, accepted.SenderID, RequestNotice{RequestID: accepted.ID, FromID: actingUserID}))
	return accepted, nil
}

func (s *friendService) ListIncoming(ctx context.Context, userID uint) ([]FriendRequestView, error) {
	requests, err := s.store.FriendRequests().ListByRecipient(ctx, userID, models.StatusPending)
	if err != nil {
		return nil, err
	}
	return viewsWithSender(requests), nil
}

func (s *friendService) ListOutgoing(ctx context.Context, userID uint) ([]FriendRequestView, error) {
	requests, err := s.store.FriendRequests().ListBySender(ctx, userID, models.StatusPending)
	if err != nil {
		return nil, err
	}
	return viewsWithRecipient(requests), nil
}

func (s *friendService) ListAccepted(ctx context.Context, userID uint) ([]FriendRequestView, error) {
	requests, err := s.store.FriendRequests().ListBySender(ctx, userID, models.StatusAccepted)
	if err != nil {
		return nil, err
	}
	return viewsWithRecipient(requests), nil
}

func (s *friendService) ListFriends(ctx context.Context, userID uint) ([]models.UserSummary, error) {
	friends, err := s.store.Users().ListFriends(ctx, userID)
	if err != nil {
		return nil, err
	}
	summaries := make([]models.UserSummary, 0, len(friends))
	for i := range friends {
		summaries = append(summaries, friends[i].Summary())
	}
	return summaries, nil
}

func (s *friendService) CascadeDeleteForUser(ctx context.Context, userID uint) error {
	return s.store.Transaction(ctx, func(tx repository.Store) error {
		return cascadeDelete(ctx, tx, userID)
	})
}

// cascadeDelete removes every request and friend link that references userID.
// Callers run it inside a transaction.
func cascadeDelete(ctx context.Context, tx repository.Store, userID uint) error {
	if _, err := tx.FriendRequests().DeleteForUser(ctx, userID); err != nil {
		return err
	}
	if _, err := tx.Users().RemoveFromAllFriends(ctx, userID); err != nil {
		return err
	}
	return nil
}

func (s *friendService) publish(ctx context.Context, event events.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.Warn("failed to publish event", zap.String("type", string(event.Type)), zap.Error(err))
	}
}

func viewsWithSender(requests []models.FriendRequest) []FriendRequestView {
	views := make([]FriendRequestView, 0, len(requests))
	for i := range requests {
		sender := requests[i].Sender.Summary()
		views = append(views, newView(&requests[i], &sender, nil))
	}
	return views
}

func viewsWithRecipient(requests []models.FriendRequest) []FriendRequestView {
	views := make([]FriendRequestView, 0, len(requests))
	for i := range requests {
		recipient := requests[i].Recipient.Summary()
		views = append(views, newView(&requests[i], nil, &recipient))
	}
	return views
}

func newView(r *models.FriendRequest, sender, recipient *models.UserSummary) FriendRequestView {
	return FriendRequestView{
		ID:        r.ID,
		Sender:    sender,
		Recipient: recipient,
		Status:    r.Status,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
