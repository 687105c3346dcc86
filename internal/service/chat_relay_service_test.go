package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"service-marketplace-be/internal/dto"
	"service-marketplace-be/internal/entity"
	"service-marketplace-be/internal/pkg/serverutils"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

type stubChatService struct {
	IChatService
	appendErr error
	appended  []*dto.SendMessageEvent
}

func (s *stubChatService) AppendMessage(ctx context.Context, req *dto.SendMessageEvent) (*dto.MessageResponse, error) {
	if s.appendErr != nil {
		return nil, s.appendErr
	}
	s.appended = append(s.appended, req)
	return &dto.MessageResponse{
		Id:         uuid.New(),
		RoomId:     req.RoomId,
		SenderId:   req.SenderId,
		SenderType: req.SenderType,
		Message:    req.Message,
		CreatedAt:  time.Now(),
	}, nil
}

func relayFixture(t *testing.T, chat IChatService) (IChatRelayService, <-chan *message.Message) {
	t.Helper()
	bus := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	t.Cleanup(func() { bus.Close() })

	frames, err := bus.Subscribe(context.Background(), BroadcastTopic)
	require.NoError(t, err)

	return NewChatRelayService(chat, bus, nopLogger{}), frames
}

func receiveOrTimeout(t *testing.T, frames <-chan *message.Message) *message.Message {
	t.Helper()
	select {
	case wm := <-frames:
		wm.Ack()
		return wm
	case <-time.After(time.Second):
		t.Fatal("no broadcast frame received")
		return nil
	}
}

func TestRelayPublishesPersistedMessage(t *testing.T) {
	chat := &stubChatService{}
	relay, frames := relayFixture(t, chat)

	roomId := uuid.New()
	relay.OnSendMessage(context.Background(), &dto.SendMessageEvent{
		RoomId:     roomId,
		SenderId:   uuid.New(),
		SenderType: string(entity.SenderTypeUser),
		Message:    "is this still available?",
	})

	wm := receiveOrTimeout(t, frames)
	assert.Equal(t, roomId.String(), wm.Metadata.Get(MetaRoomID))

	var envelope struct {
		Event   string              `json:"event"`
		Payload dto.MessageResponse `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(wm.Payload, &envelope))
	assert.Equal(t, EventReceiveMessage, envelope.Event)
	assert.Equal(t, roomId, envelope.Payload.RoomId)
	assert.Equal(t, "is this still available?", envelope.Payload.Message)

	require.Len(t, chat.appended, 1)
}

func TestRelayDropsInvalidPayload(t *testing.T) {
	chat := &stubChatService{}
	relay, frames := relayFixture(t, chat)

	// Missing message text fails validation before persistence.
	relay.OnSendMessage(context.Background(), &dto.SendMessageEvent{
		RoomId:     uuid.New(),
		SenderId:   uuid.New(),
		SenderType: string(entity.SenderTypeUser),
	})

	assert.Empty(t, chat.appended)
	select {
	case <-frames:
		t.Fatal("invalid payload must not be broadcast")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestRelaySwallowsPersistenceFailure(t *testing.T) {
	chat := &stubChatService{appendErr: serverutils.NotFound("Chat room not found")}
	relay, frames := relayFixture(t, chat)

	assert.NotPanics(t, func() {
		relay.OnSendMessage(context.Background(), &dto.SendMessageEvent{
			RoomId:     uuid.New(),
			SenderId:   uuid.New(),
			SenderType: string(entity.SenderTypeAgent),
			Message:    "hello",
		})
	})

	select {
	case <-frames:
		t.Fatal("failed persistence must not be broadcast")
	case <-time.After(50 * time.Millisecond):
	}
}
