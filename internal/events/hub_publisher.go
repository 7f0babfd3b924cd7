package events

import (
	"context"

	"jigarafy/backend/internal/hub"
)

// HubPublisher pushes events to the recipient's open SSE streams. A
// UserDeleted event is delivered and then ends the user's streams.
type HubPublisher struct {
	hub *hub.Hub
}

func NewHubPublisher(h *hub.Hub) *HubPublisher {
	return &HubPublisher{hub: h}
}

func (p *HubPublisher) Publish(_ context.Context, event Event) error {
	if err := p.hub.Send(event.RecipientID, event); err != nil {
		return err
	}
	if event.Type == UserDeleted {
		p.hub.Disconnect(event.RecipientID)
	}
	return nil
}
