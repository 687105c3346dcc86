package service

import (
	"context"

	"service-marketplace-be/internal/pkg/logger"
	"service-marketplace-be/pkg/events"
	pkgNats "service-marketplace-be/pkg/nats"
)

// IPublisherService fans domain events out to the NATS bus. Emission is
// best-effort: a publish failure is logged and never fails the caller.
type IPublisherService interface {
	Emit(ctx context.Context, event events.Event)
}

type publisherService struct {
	publisher *pkgNats.Publisher
	logger    logger.ILogger
}

func NewPublisherService(publisher *pkgNats.Publisher, logger logger.ILogger) IPublisherService {
	return &publisherService{
		publisher: publisher,
		logger:    logger,
	}
}

func (s *publisherService) Emit(ctx context.Context, event events.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Error("PublisherService", "failed to publish event", map[string]interface{}{
			"type":  event.EventType(),
			"error": err.Error(),
		})
	}
}
