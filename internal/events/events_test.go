package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"jigarafy/backend/internal/hub"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingPublisher struct {
	events []Event
	err    error
}

func (r *recordingPublisher) Publish(_ context.Context, e Event) error {
	r.events = append(r.events, e)
	return r.err
}

func TestFanout_DeliversToAllEvenAfterFailure(t *testing.T) {
	failing := &recordingPublisher{err: errors.New("broker down")}
	ok := &recordingPublisher{}
	f := NewFanout(zap.NewNop(), failing, ok)

	err := f.Publish(context.Background(), New(FriendRequestSent, 2, nil))

	require.Error(t, err)
	assert.Len(t, failing.events, 1)
	assert.Len(t, ok.events, 1)
}

func TestHubPublisher_SendsToRecipientStream(t *testing.T) {
	h := hub.NewHub(1)
	client := h.Subscribe(5)

	require.NoError(t, NewHubPublisher(h).Publish(context.Background(), New(FriendRequestAccepted, 5, map[string]uint{"requestId": 9})))

	var got Event
	require.NoError(t, json.Unmarshal(<-client, &got))
	assert.Equal(t, FriendRequestAccepted, got.Type)
	assert.Equal(t, uint(5), got.RecipientID)
}

func TestHubPublisher_UserDeletedEndsStreams(t *testing.T) {
	h := hub.NewHub(1)
	client := h.Subscribe(8)

	require.NoError(t, NewHubPublisher(h).Publish(context.Background(), New(UserDeleted, 8, nil)))

	<-client
	_, open := <-client
	assert.False(t, open)
	assert.Equal(t, 0, h.Connected(8))
}

func TestKafkaPublisher_Publish(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var e Event
		if err := json.Unmarshal(val, &e); err != nil {
			return err
		}
		if e.Type != UserDeleted || e.RecipientID != 3 {
			return errors.New("unexpected event")
		}
		return nil
	})
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := NewKafkaPublisher(producer, "jigarafy.social-events")

	require.NoError(t, p.Publish(context.Background(), New(UserDeleted, 3, nil)))

	err := p.Publish(context.Background(), New(UserDeleted, 3, nil))
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)

	require.NoError(t, p.Close())
}
