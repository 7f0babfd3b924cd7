// Package events delivers social notifications to live streams and to Kafka.
package events

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

type Type string

const (
	FriendRequestSent     Type = "friend_request.sent"
	FriendRequestAccepted Type = "friend_request.accepted"
	UserDeleted           Type = "user.deleted"
)

// Event is addressed to a single user; RecipientID also keys the Kafka partition.
type Event struct {
	Type        Type      `json:"type"`
	RecipientID uint      `json:"recipientId"`
	Payload     any       `json:"payload,omitempty"`
	OccurredAt  time.Time `json:"occurredAt"`
}

func New(t Type, recipientID uint, payload any) Event {
	return Event{
		Type:        t,
		RecipientID: recipientID,
		Payload:     payload,
		OccurredAt:  time.Now().UTC(),
	}
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Fanout forwards each event to every publisher, even when an earlier one fails.
type Fanout struct {
	publishers []Publisher
	log        *zap.Logger
}

func NewFanout(log *zap.Logger, publishers ...Publisher) *Fanout {
	return &Fanout{publishers: publishers, log: log}
}

func (f *Fanout) Publish(ctx context.Context, event Event) error {
	var errs []error
	for _, p := range f.publishers {
		if err := p.Publish(ctx, event); err != nil {
			f.log.Warn("event delivery failed",
				zap.String("type", string(event.Type)),
				zap.Uint("recipient_id", event.RecipientID),
				zap.Error(err))
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
