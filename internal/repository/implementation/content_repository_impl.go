package implementation

import (
	"context"
	"errors"

	"service-marketplace-be/internal/entity"
	"service-marketplace-be/internal/mapper"
	"service-marketplace-be/internal/model"
	"service-marketplace-be/internal/repository/contract"
	"service-marketplace-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ContentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ContentMapper
}

func NewContentRepository(db *gorm.DB) contract.ContentRepository {
	return &ContentRepositoryImpl{
		db:     db,
		mapper: mapper.NewContentMapper(),
	}
}

func (r *ContentRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ContentRepositoryImpl) UpsertPolicy(ctx context.Context, policy *entity.Policy) error {
	m := r.mapper.PolicyToModel(policy)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "type"}},
		DoUpdates: clause.AssignmentColumns([]string{"content", "image", "updated_at"}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	*policy = *r.mapper.PolicyToEntity(m)
	return nil
}

func (r *ContentRepositoryImpl) FindPolicy(ctx context.Context, specs ...specification.Specification) (*entity.Policy, error) {
	var m model.Policy
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.PolicyToEntity(&m), nil
}

func (r *ContentRepositoryImpl) CreateFAQ(ctx context.Context, faq *entity.FAQ) error {
	m := r.mapper.FAQToModel(faq)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*faq = *r.mapper.FAQToEntity(m)
	return nil
}

func (r *ContentRepositoryImpl) UpdateFAQ(ctx context.Context, faq *entity.FAQ) error {
	m := r.mapper.FAQToModel(faq)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*faq = *r.mapper.FAQToEntity(m)
	return nil
}

func (r *ContentRepositoryImpl) DeleteFAQ(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.FAQ{}, id).Error
}

func (r *ContentRepositoryImpl) FindFAQs(ctx context.Context, specs ...specification.Specification) ([]*entity.FAQ, error) {
	var models []*model.FAQ
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.FAQsToEntities(models), nil
}

// UpsertContactInfo keeps contact_info a single row: update it when present,
// insert it otherwise.
func (r *ContentRepositoryImpl) UpsertContactInfo(ctx context.Context, info *entity.ContactInfo) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.ContactInfo
		err := tx.First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			m := r.mapper.ContactInfoToModel(info)
			if err := tx.Create(m).Error; err != nil {
				return err
			}
			*info = *r.mapper.ContactInfoToEntity(m)
			return nil
		}
		if err != nil {
			return err
		}
		existing.OfficeLocation = info.OfficeLocation
		existing.Email = info.Email
		existing.Phone = info.Phone
		if err := tx.Save(&existing).Error; err != nil {
			return err
		}
		*info = *r.mapper.ContactInfoToEntity(&existing)
		return nil
	})
}

func (r *ContentRepositoryImpl) FindContactInfo(ctx context.Context) (*entity.ContactInfo, error) {
	var m model.ContactInfo
	if err := r.db.WithContext(ctx).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ContactInfoToEntity(&m), nil
}

func (r *ContentRepositoryImpl) CreateContactMessage(ctx context.Context, msg *entity.ContactMessage) error {
	m := r.mapper.ContactMessageToModel(msg)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*msg = *r.mapper.ContactMessageToEntity(m)
	return nil
}

func (r *ContentRepositoryImpl) FindContactMessages(ctx context.Context, specs ...specification.Specification) ([]*entity.ContactMessage, error) {
	var models []*model.ContactMessage
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ContactMessagesToEntities(models), nil
}

func (r *ContentRepositoryImpl) CountContactMessages(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ContactMessage{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
