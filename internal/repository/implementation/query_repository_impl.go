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
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type QueryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.QueryMapper
}

func NewQueryRepository(db *gorm.DB) contract.QueryRepository {
	return &QueryRepositoryImpl{
		db:     db,
		mapper: mapper.NewQueryMapper(),
	}
}

func (r *QueryRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *QueryRepositoryImpl) Create(ctx context.Context, query *entity.Query) error {
	m := r.mapper.ToModel(query)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*query = *r.mapper.ToEntity(m)
	return nil
}

func (r *QueryRepositoryImpl) Update(ctx context.Context, query *entity.Query) error {
	m := r.mapper.ToModel(query)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*query = *r.mapper.ToEntity(m)
	return nil
}

func (r *QueryRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Query{}, id).Error
}

func (r *QueryRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Query, error) {
	var m model.Query
	q := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := q.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *QueryRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Query, error) {
	var models []*model.Query
	q := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := q.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *QueryRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	q := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Query{}), specs...)
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// AppendComment re-reads the row so concurrent appends don't lose entries.
func (r *QueryRepositoryImpl) AppendComment(ctx context.Context, id uuid.UUID, comment string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m model.Query
		if err := tx.Where("id = ?", id).First(&m).Error; err != nil {
			return err
		}
		comments := append([]string(m.Comments), comment)
		return tx.Model(&model.Query{}).Where("id = ?", id).
			Update("comments", datatypes.NewJSONSlice(comments)).Error
	})
}

func (r *QueryRepositoryImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.QueryStatus) error {
	return r.db.WithContext(ctx).Model(&model.Query{}).Where("id = ?", id).
		Update("status", string(status)).Error
}
