package implementation

import (
	"context"
	"errors"
	"time"

	"service-marketplace-be/internal/entity"
	"service-marketplace-be/internal/mapper"
	"service-marketplace-be/internal/model"
	"service-marketplace-be/internal/repository/contract"
	"service-marketplace-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AgentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AgentMapper
}

func NewAgentRepository(db *gorm.DB) contract.AgentRepository {
	return &AgentRepositoryImpl{
		db:     db,
		mapper: mapper.NewAgentMapper(),
	}
}

func (r *AgentRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AgentRepositoryImpl) Create(ctx context.Context, agent *entity.Agent) error {
	m := r.mapper.ToModel(agent)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*agent = *r.mapper.ToEntity(m)
	return nil
}

func (r *AgentRepositoryImpl) Update(ctx context.Context, agent *entity.Agent) error {
	m := r.mapper.ToModel(agent)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*agent = *r.mapper.ToEntity(m)
	return nil
}

func (r *AgentRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Agent{}, id).Error
}

func (r *AgentRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Agent, error) {
	var m model.Agent
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *AgentRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Agent, error) {
	var models []*model.Agent
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *AgentRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Agent{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *AgentRepositoryImpl) SetEmailOtp(ctx context.Context, id uuid.UUID, otp string, expiresAt time.Time) error {
	return r.db.WithContext(ctx).Model(&model.Agent{}).Where("id = ?", id).
		Updates(map[string]interface{}{"email_otp": otp, "email_otp_expires_at": expiresAt}).Error
}

func (r *AgentRepositoryImpl) SetPhoneOtp(ctx context.Context, id uuid.UUID, otp string, expiresAt time.Time) error {
	return r.db.WithContext(ctx).Model(&model.Agent{}).Where("id = ?", id).
		Updates(map[string]interface{}{"phone_otp": otp, "phone_otp_expires_at": expiresAt}).Error
}

func (r *AgentRepositoryImpl) MarkEmailVerified(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Agent{}).Where("id = ?", id).
		Updates(map[string]interface{}{"email_otp": nil, "email_otp_expires_at": nil, "email_verified": true}).Error
}

func (r *AgentRepositoryImpl) MarkPhoneVerified(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Agent{}).Where("id = ?", id).
		Updates(map[string]interface{}{"phone_otp": nil, "phone_otp_expires_at": nil, "phone_verified": true}).Error
}

func (r *AgentRepositoryImpl) SetAdminVerdict(ctx context.Context, id uuid.UUID, verdict entity.AdminVerification) error {
	return r.db.WithContext(ctx).Model(&model.Agent{}).Where("id = ?", id).
		Update("admin_verified", string(verdict)).Error
}

func (r *AgentRepositoryImpl) UpdatePayment(ctx context.Context, id uuid.UUID, paymentId string, status entity.PaymentStatus, paidAt *time.Time) error {
	return r.db.WithContext(ctx).Model(&model.Agent{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"payment_id":     paymentId,
			"payment_status": string(status),
			"payment_date":   paidAt,
		}).Error
}
