package service

import (
	"context"
	"fmt"
	"time"

	"service-marketplace-be/internal/entity"
	"service-marketplace-be/internal/pkg/logger"
	"service-marketplace-be/internal/repository/unitofwork"
	"service-marketplace-be/pkg/events"
	pkgNats "service-marketplace-be/pkg/nats"

	"github.com/google/uuid"
)

// INotificationService consumes domain events off the bus and persists
// notification rows. Delivery to devices is out of scope here; clients pull
// their list over HTTP.
type INotificationService interface {
	Start() error
}

type notificationService struct {
	uowFactory unitofwork.RepositoryFactory
	subscriber *pkgNats.Subscriber
	logger     logger.ILogger
}

func NewNotificationService(
	uowFactory unitofwork.RepositoryFactory,
	subscriber *pkgNats.Subscriber,
	logger logger.ILogger,
) INotificationService {
	return &notificationService{
		uowFactory: uowFactory,
		subscriber: subscriber,
		logger:     logger,
	}
}

func (s *notificationService) Start() error {
	if s.subscriber == nil {
		s.logger.Warn("NotificationService", "no NATS subscriber configured, notifications disabled", nil)
		return nil
	}

	// One durable per subject: the consumer config is keyed by durable name.
	if err := s.subscriber.Subscribe("events."+events.TypeChatMessageSent, "notif-chat-message", s.onChatMessageSent); err != nil {
		return fmt.Errorf("failed to subscribe to chat events: %w", err)
	}
	if err := s.subscriber.Subscribe("events."+events.TypeAgentRegistered, "notif-agent-registered", s.onAgentRegistered); err != nil {
		return fmt.Errorf("failed to subscribe to agent events: %w", err)
	}
	return nil
}

// onChatMessageSent notifies the participant on the other side of the room.
func (s *notificationService) onChatMessageSent(ctx context.Context, event events.Event) error {
	data := event.Payload()

	senderType, _ := data["sender_type"].(string)
	var recipientKey string
	switch senderType {
	case string(entity.SenderTypeUser):
		recipientKey = "agent_id"
	case string(entity.SenderTypeAgent):
		recipientKey = "user_id"
	default:
		s.logger.Warn("NotificationService", "event with unknown sender type", map[string]interface{}{
			"senderType": senderType,
		})
		return nil
	}

	recipientId, err := parseUUIDField(data, recipientKey)
	if err != nil {
		s.logger.Warn("NotificationService", "event missing recipient", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}

	body, _ := data["message"].(string)
	roomId, _ := data["room_id"].(string)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.NotificationRepository().Create(ctx, &entity.Notification{
		Id:       uuid.New(),
		UserId:   recipientId,
		Title:    "New message",
		Message:  body,
		TypeCode: events.TypeChatMessageSent,
		Metadata: map[string]interface{}{
			"roomId": roomId,
		},
		CreatedAt: time.Now(),
	})
}

func (s *notificationService) onAgentRegistered(ctx context.Context, event events.Event) error {
	data := event.Payload()

	agentId, err := parseUUIDField(data, "agent_id")
	if err != nil {
		s.logger.Warn("NotificationService", "event missing agent id", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}

	fullName, _ := data["full_name"].(string)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.NotificationRepository().Create(ctx, &entity.Notification{
		Id:       uuid.New(),
		UserId:   agentId,
		Title:    "Registration received",
		Message:  fmt.Sprintf("Welcome %s, your registration is pending admin approval.", fullName),
		TypeCode: events.TypeAgentRegistered,
		Metadata: map[string]interface{}{
			"agentId": agentId.String(),
		},
		CreatedAt: time.Now(),
	})
}

func parseUUIDField(data map[string]interface{}, key string) (uuid.UUID, error) {
	raw, ok := data[key].(string)
	if !ok {
		return uuid.Nil, fmt.Errorf("field %q missing or not a string", key)
	}
	return uuid.Parse(raw)
}
