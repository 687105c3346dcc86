package service

import (
	"context"
	"time"

	"service-marketplace-be/internal/dto"
	"service-marketplace-be/internal/entity"
	"service-marketplace-be/internal/pkg/serverutils"
	"service-marketplace-be/internal/repository/specification"
	"service-marketplace-be/internal/repository/unitofwork"
	"service-marketplace-be/pkg/events"

	"github.com/google/uuid"
)

type IQueryService interface {
	CreateQuery(ctx context.Context, userId uuid.UUID, req *dto.CreateQueryRequest) (*dto.QueryResponse, error)
	AddComment(ctx context.Context, req *dto.AddCommentRequest) (*dto.QueryResponse, error)
	GetQueries(ctx context.Context, userId uuid.UUID) ([]*dto.QueryResponse, error)
}

type queryService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
}

func NewQueryService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
) IQueryService {
	return &queryService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
	}
}

func (s *queryService) CreateQuery(ctx context.Context, userId uuid.UUID, req *dto.CreateQueryRequest) (*dto.QueryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	query := entity.Query{
		Id:          uuid.New(),
		UserId:      userId,
		Description: req.Description,
		StartTime:   "12:00 PM",
		EndTime:     "05:00 PM",
		Industry:    req.Industry,
		Status:      entity.QueryStatusActive,
		Comments:    []string{},
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := uow.QueryRepository().Create(ctx, &query); err != nil {
		return nil, err
	}

	s.publisherService.Emit(ctx, events.BaseEvent{
		Type: events.TypeQueryCreated,
		Data: map[string]interface{}{
			"query_id":    query.Id,
			"user_id":     query.UserId,
			"description": query.Description,
			"occurred_at": time.Now(),
		},
		OccurredAt: time.Now(),
	})

	return s.toResponse(&query), nil
}

func (s *queryService) AddComment(ctx context.Context, req *dto.AddCommentRequest) (*dto.QueryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	query, err := uow.QueryRepository().FindOne(ctx, specification.ByID{ID: req.QueryId})
	if err != nil {
		return nil, err
	}
	if query == nil {
		return nil, serverutils.NotFound("Query not found")
	}

	if err := uow.QueryRepository().AppendComment(ctx, req.QueryId, req.Comment); err != nil {
		return nil, err
	}

	query, err = uow.QueryRepository().FindOne(ctx, specification.ByID{ID: req.QueryId})
	if err != nil {
		return nil, err
	}
	return s.toResponse(query), nil
}

func (s *queryService) GetQueries(ctx context.Context, userId uuid.UUID) ([]*dto.QueryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	queries, err := uow.QueryRepository().FindAll(ctx,
		specification.Filter("user_id", userId),
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.QueryResponse, 0, len(queries))
	for _, q := range queries {
		result = append(result, s.toResponse(q))
	}
	return result, nil
}

func (s *queryService) toResponse(q *entity.Query) *dto.QueryResponse {
	comments := q.Comments
	if comments == nil {
		comments = []string{}
	}
	return &dto.QueryResponse{
		Id:          q.Id,
		UserId:      q.UserId,
		Description: q.Description,
		StartTime:   q.StartTime,
		EndTime:     q.EndTime,
		Industry:    q.Industry,
		Status:      string(q.Status),
		Comments:    comments,
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}
}
