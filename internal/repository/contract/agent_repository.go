package contract

import (
	"context"
	"time"

	"service-marketplace-be/internal/entity"
	"service-marketplace-be/internal/repository/specification"

	"github.com/google/uuid"
)

type AgentRepository interface {
	Create(ctx context.Context, agent *entity.Agent) error
	Update(ctx context.Context, agent *entity.Agent) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Agent, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Agent, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// Business Specific
	SetEmailOtp(ctx context.Context, id uuid.UUID, otp string, expiresAt time.Time) error
	SetPhoneOtp(ctx context.Context, id uuid.UUID, otp string, expiresAt time.Time) error
	MarkEmailVerified(ctx context.Context, id uuid.UUID) error
	MarkPhoneVerified(ctx context.Context, id uuid.UUID) error
	SetAdminVerdict(ctx context.Context, id uuid.UUID, verdict entity.AdminVerification) error
	UpdatePayment(ctx context.Context, id uuid.UUID, paymentId string, status entity.PaymentStatus, paidAt *time.Time) error
}
