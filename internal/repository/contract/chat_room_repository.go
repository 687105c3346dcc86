package contract

import (
	"context"

	"service-marketplace-be/internal/entity"
	"service-marketplace-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ChatRoomRepository interface {
	Create(ctx context.Context, room *entity.ChatRoom) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatRoom, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatRoom, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	UpdateLastMessage(ctx context.Context, id uuid.UUID, lastMessage string) error
}
