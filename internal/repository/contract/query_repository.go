package contract

import (
	"context"

	"service-marketplace-be/internal/entity"
	"service-marketplace-be/internal/repository/specification"

	"github.com/google/uuid"
)

type QueryRepository interface {
	Create(ctx context.Context, query *entity.Query) error
	Update(ctx context.Context, query *entity.Query) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Query, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Query, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// Business Specific
	AppendComment(ctx context.Context, id uuid.UUID, comment string) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.QueryStatus) error
}
