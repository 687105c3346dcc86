package service

import (
	"context"
	"time"

	"service-marketplace-be/internal/dto"
	"service-marketplace-be/internal/entity"
	"service-marketplace-be/internal/pkg/serverutils"
	"service-marketplace-be/internal/repository/specification"
	"service-marketplace-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

const (
	contentCacheTTL     = 10 * time.Minute
	faqCacheKey         = "faqs:active"
	policyCacheKeyBase  = "policy:"
	contactInfoCacheKey = "contact:info"
)

type IContentService interface {
	UpsertPolicy(ctx context.Context, req *dto.UpsertPolicyRequest, imageURL string) (*dto.PolicyResponse, error)
	GetPolicy(ctx context.Context, policyType string) (*dto.PolicyResponse, error)

	AddFAQ(ctx context.Context, req *dto.AddFAQRequest) (*dto.FAQResponse, error)
	UpdateFAQ(ctx context.Context, req *dto.UpdateFAQRequest) (*dto.FAQResponse, error)
	ListFAQs(ctx context.Context) ([]*dto.FAQResponse, error)
	GetFAQById(ctx context.Context, id uuid.UUID) (*dto.FAQResponse, error)

	UpsertContactInfo(ctx context.Context, req *dto.UpsertContactInfoRequest) (*dto.ContactInfoResponse, error)
	GetContactInfo(ctx context.Context) (*dto.ContactInfoResponse, error)

	SubmitContactMessage(ctx context.Context, req *dto.CreateContactMessageRequest) error
	ListContactMessages(ctx context.Context) ([]*dto.ListContactMessagesResponse, error)
}

// contentService serves policy and FAQ reads through an in-memory cache;
// writes evict the affected keys.
type contentService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *gocache.Cache
}

func NewContentService(uowFactory unitofwork.RepositoryFactory) IContentService {
	return &contentService{
		uowFactory: uowFactory,
		cache:      gocache.New(contentCacheTTL, 2*contentCacheTTL),
	}
}

func (s *contentService) UpsertPolicy(ctx context.Context, req *dto.UpsertPolicyRequest, imageURL string) (*dto.PolicyResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	policy := entity.Policy{
		Id:        uuid.New(),
		Type:      req.Type,
		Content:   req.Content,
		Image:     imageURL,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := uow.ContentRepository().UpsertPolicy(ctx, &policy); err != nil {
		return nil, err
	}

	s.cache.Delete(policyCacheKeyBase + req.Type)
	return s.policyToResponse(&policy), nil
}

func (s *contentService) GetPolicy(ctx context.Context, policyType string) (*dto.PolicyResponse, error) {
	cacheKey := policyCacheKeyBase + policyType
	if cached, ok := s.cache.Get(cacheKey); ok {
		return cached.(*dto.PolicyResponse), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	policy, err := uow.ContentRepository().FindPolicy(ctx, specification.Filter("type", policyType))
	if err != nil {
		return nil, err
	}
	if policy == nil {
		return nil, serverutils.NotFound("Policy not found")
	}

	res := s.policyToResponse(policy)
	s.cache.Set(cacheKey, res, gocache.DefaultExpiration)
	return res, nil
}

func (s *contentService) AddFAQ(ctx context.Context, req *dto.AddFAQRequest) (*dto.FAQResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	faq := entity.FAQ{
		Id:        uuid.New(),
		Question:  req.Question,
		Answer:    req.Answer,
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := uow.ContentRepository().CreateFAQ(ctx, &faq); err != nil {
		return nil, err
	}

	s.cache.Delete(faqCacheKey)
	return s.faqToResponse(&faq), nil
}

func (s *contentService) UpdateFAQ(ctx context.Context, req *dto.UpdateFAQRequest) (*dto.FAQResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	faqs, err := uow.ContentRepository().FindFAQs(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if len(faqs) == 0 {
		return nil, serverutils.NotFound("FAQ not found")
	}

	faq := faqs[0]
	faq.Question = req.Question
	faq.Answer = req.Answer
	if req.IsActive != nil {
		faq.IsActive = *req.IsActive
	}
	faq.UpdatedAt = time.Now()

	if err := uow.ContentRepository().UpdateFAQ(ctx, faq); err != nil {
		return nil, err
	}

	s.cache.Delete(faqCacheKey)
	return s.faqToResponse(faq), nil
}

func (s *contentService) ListFAQs(ctx context.Context) ([]*dto.FAQResponse, error) {
	if cached, ok := s.cache.Get(faqCacheKey); ok {
		return cached.([]*dto.FAQResponse), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	faqs, err := uow.ContentRepository().FindFAQs(ctx,
		specification.Filter("is_active", true),
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.FAQResponse, 0, len(faqs))
	for _, faq := range faqs {
		result = append(result, s.faqToResponse(faq))
	}

	s.cache.Set(faqCacheKey, result, gocache.DefaultExpiration)
	return result, nil
}

func (s *contentService) GetFAQById(ctx context.Context, id uuid.UUID) (*dto.FAQResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	faqs, err := uow.ContentRepository().FindFAQs(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if len(faqs) == 0 {
		return nil, serverutils.NotFound("FAQ not found")
	}
	return s.faqToResponse(faqs[0]), nil
}

func (s *contentService) UpsertContactInfo(ctx context.Context, req *dto.UpsertContactInfoRequest) (*dto.ContactInfoResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	info := entity.ContactInfo{
		Id:             uuid.New(),
		OfficeLocation: req.OfficeLocation,
		Email:          req.Email,
		Phone:          req.Phone,
		UpdatedAt:      time.Now(),
	}
	if err := uow.ContentRepository().UpsertContactInfo(ctx, &info); err != nil {
		return nil, err
	}

	s.cache.Delete(contactInfoCacheKey)
	return s.contactInfoToResponse(&info), nil
}

func (s *contentService) GetContactInfo(ctx context.Context) (*dto.ContactInfoResponse, error) {
	if cached, ok := s.cache.Get(contactInfoCacheKey); ok {
		return cached.(*dto.ContactInfoResponse), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	info, err := uow.ContentRepository().FindContactInfo(ctx)
	if err != nil {
		return nil, err
	}
	if info == nil {
		return nil, serverutils.NotFound("Contact info not set")
	}

	res := s.contactInfoToResponse(info)
	s.cache.Set(contactInfoCacheKey, res, gocache.DefaultExpiration)
	return res, nil
}

func (s *contentService) SubmitContactMessage(ctx context.Context, req *dto.CreateContactMessageRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	msg := entity.ContactMessage{
		Id:        uuid.New(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Email:     req.Email,
		Message:   req.Message,
		CreatedAt: time.Now(),
	}
	return uow.ContentRepository().CreateContactMessage(ctx, &msg)
}

func (s *contentService) ListContactMessages(ctx context.Context) ([]*dto.ListContactMessagesResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	messages, err := uow.ContentRepository().FindContactMessages(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ListContactMessagesResponse, 0, len(messages))
	for _, msg := range messages {
		result = append(result, &dto.ListContactMessagesResponse{
			Id:        msg.Id,
			FirstName: msg.FirstName,
			LastName:  msg.LastName,
			Phone:     msg.Phone,
			Email:     msg.Email,
			Message:   msg.Message,
			CreatedAt: msg.CreatedAt,
		})
	}
	return result, nil
}

func (s *contentService) policyToResponse(p *entity.Policy) *dto.PolicyResponse {
	return &dto.PolicyResponse{
		Id:        p.Id,
		Type:      p.Type,
		Content:   p.Content,
		Image:     p.Image,
		UpdatedAt: p.UpdatedAt,
	}
}

func (s *contentService) faqToResponse(f *entity.FAQ) *dto.FAQResponse {
	return &dto.FAQResponse{
		Id:        f.Id,
		Question:  f.Question,
		Answer:    f.Answer,
		IsActive:  f.IsActive,
		CreatedAt: f.CreatedAt,
	}
}

func (s *contentService) contactInfoToResponse(c *entity.ContactInfo) *dto.ContactInfoResponse {
	return &dto.ContactInfoResponse{
		Id:             c.Id,
		OfficeLocation: c.OfficeLocation,
		Email:          c.Email,
		Phone:          c.Phone,
	}
}
