package service

import (
	"context"
	"encoding/json"

	"service-marketplace-be/internal/dto"
	"service-marketplace-be/internal/pkg/logger"
	"service-marketplace-be/internal/pkg/serverutils"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

const (
	// BroadcastTopic carries persisted chat messages from the relay to the
	// hub consumer, preserving persistence-completion order per publisher.
	BroadcastTopic = "chat.room.broadcast"

	// MetaRoomID is the watermill metadata key holding the target room.
	MetaRoomID = "room_id"

	EventReceiveMessage = "receiveMessage"
)

// WireEnvelope is the server→client websocket frame.
type WireEnvelope struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}

// IChatRelayService sits between the websocket layer and the message log.
// Send failures are logged and swallowed: the client gets no nack, matching
// the historical behavior of this endpoint.
type IChatRelayService interface {
	OnSendMessage(ctx context.Context, ev *dto.SendMessageEvent)
}

type chatRelayService struct {
	chatService IChatService
	bus         message.Publisher
	chatLogger  logger.ILogger
}

func NewChatRelayService(
	chatService IChatService,
	bus message.Publisher,
	chatLogger logger.ILogger,
) IChatRelayService {
	return &chatRelayService{
		chatService: chatService,
		bus:         bus,
		chatLogger:  chatLogger,
	}
}

func (s *chatRelayService) OnSendMessage(ctx context.Context, ev *dto.SendMessageEvent) {
	if err := serverutils.ValidateRequest(ev); err != nil {
		s.chatLogger.Warn("ChatRelay", "dropping invalid sendMessage payload", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	msg, err := s.chatService.AppendMessage(ctx, ev)
	if err != nil {
		s.chatLogger.Error("ChatRelay", "failed to persist message", map[string]interface{}{
			"roomId":   ev.RoomId,
			"senderId": ev.SenderId,
			"error":    err.Error(),
		})
		return
	}

	payload, err := json.Marshal(WireEnvelope{Event: EventReceiveMessage, Payload: msg})
	if err != nil {
		s.chatLogger.Error("ChatRelay", "failed to encode broadcast frame", map[string]interface{}{
			"roomId": ev.RoomId,
			"error":  err.Error(),
		})
		return
	}

	wm := message.NewMessage(watermill.NewUUID(), payload)
	wm.Metadata.Set(MetaRoomID, msg.RoomId.String())

	if err := s.bus.Publish(BroadcastTopic, wm); err != nil {
		s.chatLogger.Error("ChatRelay", "failed to enqueue broadcast", map[string]interface{}{
			"roomId": ev.RoomId,
			"error":  err.Error(),
		})
	}
}
