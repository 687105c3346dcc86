package service

import (
	"context"

	"service-marketplace-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

// RoomBroadcaster delivers a raw frame to every connection joined to a room.
// Implemented by the websocket hub.
type RoomBroadcaster interface {
	BroadcastToRoom(roomId uuid.UUID, payload []byte)
}

// IBroadcastConsumerService drains the in-process broadcast bus into the hub.
// A single consumer keeps per-room delivery in persistence-completion order.
type IBroadcastConsumerService interface {
	Start(ctx context.Context) error
}

type broadcastConsumerService struct {
	subscriber message.Subscriber
	hub        RoomBroadcaster
	logger     logger.ILogger
}

func NewBroadcastConsumerService(
	subscriber message.Subscriber,
	hub RoomBroadcaster,
	logger logger.ILogger,
) IBroadcastConsumerService {
	return &broadcastConsumerService{
		subscriber: subscriber,
		hub:        hub,
		logger:     logger,
	}
}

func (s *broadcastConsumerService) Start(ctx context.Context) error {
	messages, err := s.subscriber.Subscribe(ctx, BroadcastTopic)
	if err != nil {
		return err
	}

	go func() {
		for wm := range messages {
			s.deliver(wm)
			wm.Ack()
		}
	}()
	return nil
}

func (s *broadcastConsumerService) deliver(wm *message.Message) {
	roomId, err := uuid.Parse(wm.Metadata.Get(MetaRoomID))
	if err != nil {
		s.logger.Warn("BroadcastConsumer", "dropping frame without room id", map[string]interface{}{
			"messageId": wm.UUID,
		})
		return
	}
	s.hub.BroadcastToRoom(roomId, wm.Payload)
}
