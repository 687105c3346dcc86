package websocket

import (
	"context"
	"fmt"
	"testing"

	"service-marketplace-be/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureRelay struct {
	ctx    context.Context
	events []*dto.SendMessageEvent
}

func (r *captureRelay) OnSendMessage(ctx context.Context, ev *dto.SendMessageEvent) {
	r.ctx = ctx
	r.events = append(r.events, ev)
}

func newDispatchClient(relay Relay) *Client {
	ctx, cancel := context.WithCancel(context.Background())
	return &Client{
		Hub:    newTestHub(),
		Id:     uuid.New(),
		Send:   make(chan []byte, 8),
		rooms:  make(map[uuid.UUID]bool),
		relay:  relay,
		ctx:    ctx,
		cancel: cancel,
	}
}

func TestDispatchSendMessageCarriesConnectionContext(t *testing.T) {
	relay := &captureRelay{}
	c := newDispatchClient(relay)

	roomId := uuid.New()
	senderId := uuid.New()
	frame := fmt.Sprintf(
		`{"event":"sendMessage","payload":{"roomId":%q,"senderId":%q,"senderType":"user","message":"hi"}}`,
		roomId, senderId,
	)
	c.dispatch([]byte(frame))

	require.Len(t, relay.events, 1)
	assert.Equal(t, roomId, relay.events[0].RoomId)
	assert.Equal(t, "hi", relay.events[0].Message)

	require.NotNil(t, relay.ctx)
	assert.NoError(t, relay.ctx.Err())

	// Disconnect cancels the context handed to the relay.
	c.cancel()
	assert.ErrorIs(t, relay.ctx.Err(), context.Canceled)
}

func TestDispatchDropsMalformedFrames(t *testing.T) {
	relay := &captureRelay{}
	c := newDispatchClient(relay)

	c.dispatch([]byte(`not json`))
	c.dispatch([]byte(`{"event":"sendMessage","payload":"not an object"}`))
	c.dispatch([]byte(`{"event":"joinRoom","payload":"not-a-uuid"}`))

	assert.Empty(t, relay.events)
	assert.Nil(t, relay.ctx)
}
