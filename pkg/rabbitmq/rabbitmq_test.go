package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/rs/zerolog"
	amqp "github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockChannel struct {
	mock.Mock
}

func (m *mockChannel) Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	args := m.Called(exchange, key, mandatory, immediate, msg)
	return args.Error(0)
}

func (m *mockChannel) Close() error {
	return m.Called().Error(0)
}

func TestClient_Publish(t *testing.T) {
	ch := new(mockChannel)
	client := newClientWithChannel(ch, "marketplace_events", zerolog.New(io.Discard))

	var sent amqp.Publishing
	ch.On("Publish", "", "marketplace_events", false, false, mock.AnythingOfType("amqp.Publishing")).
		Run(func(args mock.Arguments) { sent = args.Get(4).(amqp.Publishing) }).
		Return(nil).Once()

	err := client.Publish(context.Background(), "product.created", map[string]interface{}{"id": 1, "name": "Mug"})
	require.NoError(t, err)
	ch.AssertExpectations(t)

	assert.Equal(t, "application/json", sent.ContentType)
	assert.Equal(t, "product.created", sent.Type)
	assert.Equal(t, amqp.Persistent, sent.DeliveryMode)

	var event Event
	require.NoError(t, json.Unmarshal(sent.Body, &event))
	assert.Equal(t, "product.created", event.Type)
	assert.Equal(t, sent.MessageId, event.ID)
	assert.Equal(t, map[string]interface{}{"id": float64(1), "name": "Mug"}, event.Data)
}

func TestClient_PublishError(t *testing.T) {
	ch := new(mockChannel)
	client := newClientWithChannel(ch, "marketplace_events", zerolog.New(io.Discard))

	ch.On("Publish", "", "marketplace_events", false, false, mock.Anything).Return(errors.New("channel closed")).Once()

	err := client.Publish(context.Background(), "review.created", struct{}{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "channel closed")
}

func TestClient_PublishCanceledContext(t *testing.T) {
	ch := new(mockChannel)
	client := newClientWithChannel(ch, "marketplace_events", zerolog.New(io.Discard))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, client.Publish(ctx, "user.registered", struct{}{}), context.Canceled)
	ch.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestClient_Close(t *testing.T) {
	ch := new(mockChannel)
	client := newClientWithChannel(ch, "marketplace_events", zerolog.New(io.Discard))

	ch.On("Close").Return(errors.New("already closed")).Once()
	assert.Error(t, client.Close())
}
