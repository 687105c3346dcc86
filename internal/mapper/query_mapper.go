package mapper

import (
	"service-marketplace-be/internal/entity"
	"service-marketplace-be/internal/model"

	"gorm.io/datatypes"
)

type QueryMapper struct{}

func NewQueryMapper() *QueryMapper {
	return &QueryMapper{}
}

func (m *QueryMapper) ToEntity(q *model.Query) *entity.Query {
	if q == nil {
		return nil
	}
	return &entity.Query{
		Id:          q.Id,
		UserId:      q.UserId,
		Description: q.Description,
		StartTime:   q.StartTime,
		EndTime:     q.EndTime,
		Industry:    q.Industry,
		Status:      entity.QueryStatus(q.Status),
		Comments:    []string(q.Comments),
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}
}

func (m *QueryMapper) ToModel(q *entity.Query) *model.Query {
	if q == nil {
		return nil
	}
	return &model.Query{
		Id:          q.Id,
		UserId:      q.UserId,
		Description: q.Description,
		StartTime:   q.StartTime,
		EndTime:     q.EndTime,
		Industry:    q.Industry,
		Status:      string(q.Status),
		Comments:    datatypes.NewJSONSlice(q.Comments),
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}
}

func (m *QueryMapper) ToEntities(queries []*model.Query) []*entity.Query {
	entities := make([]*entity.Query, len(queries))
	for i, q := range queries {
		entities[i] = m.ToEntity(q)
	}
	return entities
}
