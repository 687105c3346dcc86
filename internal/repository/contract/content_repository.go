package contract

import (
	"context"

	"service-marketplace-be/internal/entity"
	"service-marketplace-be/internal/repository/specification"

	"github.com/google/uuid"
)

// ContentRepository covers the static site content: policy documents,
// FAQ entries, the contact info singleton and contact form submissions.
type ContentRepository interface {
	UpsertPolicy(ctx context.Context, policy *entity.Policy) error
	FindPolicy(ctx context.Context, specs ...specification.Specification) (*entity.Policy, error)

	CreateFAQ(ctx context.Context, faq *entity.FAQ) error
	UpdateFAQ(ctx context.Context, faq *entity.FAQ) error
	DeleteFAQ(ctx context.Context, id uuid.UUID) error
	FindFAQs(ctx context.Context, specs ...specification.Specification) ([]*entity.FAQ, error)

	UpsertContactInfo(ctx context.Context, info *entity.ContactInfo) error
	FindContactInfo(ctx context.Context) (*entity.ContactInfo, error)

	CreateContactMessage(ctx context.Context, msg *entity.ContactMessage) error
	FindContactMessages(ctx context.Context, specs ...specification.Specification) ([]*entity.ContactMessage, error)
	CountContactMessages(ctx context.Context, specs ...specification.Specification) (int64, error)
}
