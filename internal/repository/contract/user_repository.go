package contract

import (
	"context"
	"time"

	"service-marketplace-be/internal/entity"
	"service-marketplace-be/internal/repository/specification"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// Business Specific
	SetOtp(ctx context.Context, id uuid.UUID, otp string, expiresAt time.Time) error
	MarkVerified(ctx context.Context, id uuid.UUID) error
	UpdateProfileImage(ctx context.Context, id uuid.UUID, imageURL string) error
}
