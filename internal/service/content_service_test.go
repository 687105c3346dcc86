package service

import (
	"context"
	"testing"
	"time"

	"service-marketplace-be/internal/dto"
	"service-marketplace-be/internal/entity"
	"service-marketplace-be/internal/pkg/serverutils"
	"service-marketplace-be/internal/repository/contract"
	"service-marketplace-be/internal/repository/specification"
	"service-marketplace-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingContentRepo tracks how often reads hit the database so the cache
// behavior is observable.
type countingContentRepo struct {
	contract.ContentRepository

	policies map[string]*entity.Policy
	faqs     []*entity.FAQ

	policyReads int
	faqReads    int
}

func newCountingContentRepo() *countingContentRepo {
	return &countingContentRepo{policies: make(map[string]*entity.Policy)}
}

func (r *countingContentRepo) UpsertPolicy(ctx context.Context, policy *entity.Policy) error {
	r.policies[policy.Type] = policy
	return nil
}

func (r *countingContentRepo) FindPolicy(ctx context.Context, specs ...specification.Specification) (*entity.Policy, error) {
	r.policyReads++
	for _, s := range specs {
		if filter, ok := s.(specification.FilterBy); ok && filter.Field == "type" {
			return r.policies[filter.Value.(string)], nil
		}
	}
	return nil, nil
}

func (r *countingContentRepo) CreateFAQ(ctx context.Context, faq *entity.FAQ) error {
	r.faqs = append(r.faqs, faq)
	return nil
}

func (r *countingContentRepo) UpdateFAQ(ctx context.Context, faq *entity.FAQ) error {
	for i, existing := range r.faqs {
		if existing.Id == faq.Id {
			r.faqs[i] = faq
		}
	}
	return nil
}

func (r *countingContentRepo) FindFAQs(ctx context.Context, specs ...specification.Specification) ([]*entity.FAQ, error) {
	r.faqReads++
	result := make([]*entity.FAQ, 0, len(r.faqs))
	for _, faq := range r.faqs {
		matched := true
		for _, s := range specs {
			switch spec := s.(type) {
			case specification.ByID:
				if faq.Id != spec.ID {
					matched = false
				}
			case specification.FilterBy:
				if spec.Field == "is_active" && faq.IsActive != spec.Value.(bool) {
					matched = false
				}
			}
		}
		if matched {
			result = append(result, faq)
		}
	}
	return result, nil
}

type contentUow struct {
	unitofwork.UnitOfWork
	repo contract.ContentRepository
}

func (u *contentUow) ContentRepository() contract.ContentRepository { return u.repo }

type contentUowFactory struct {
	repo contract.ContentRepository
}

func (f *contentUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &contentUow{repo: f.repo}
}

func TestGetPolicyCachesUntilWrite(t *testing.T) {
	repo := newCountingContentRepo()
	svc := NewContentService(&contentUowFactory{repo: repo})
	ctx := context.Background()

	_, err := svc.UpsertPolicy(ctx, &dto.UpsertPolicyRequest{Type: "privacy", Content: "v1"}, "")
	require.NoError(t, err)

	first, err := svc.GetPolicy(ctx, "privacy")
	require.NoError(t, err)
	assert.Equal(t, "v1", first.Content)

	// Second read is served from cache.
	_, err = svc.GetPolicy(ctx, "privacy")
	require.NoError(t, err)
	assert.Equal(t, 1, repo.policyReads)

	// A write evicts, so the next read goes back to the repository.
	_, err = svc.UpsertPolicy(ctx, &dto.UpsertPolicyRequest{Type: "privacy", Content: "v2"}, "")
	require.NoError(t, err)

	updated, err := svc.GetPolicy(ctx, "privacy")
	require.NoError(t, err)
	assert.Equal(t, "v2", updated.Content)
	assert.Equal(t, 2, repo.policyReads)
}

func TestGetPolicyUnknownType(t *testing.T) {
	svc := NewContentService(&contentUowFactory{repo: newCountingContentRepo()})

	_, err := svc.GetPolicy(context.Background(), "refund")
	require.Error(t, err)

	appErr, ok := err.(*serverutils.AppError)
	require.True(t, ok)
	assert.Equal(t, serverutils.CodeNotFound, appErr.Code)
}

func TestListFAQsFiltersInactiveAndCaches(t *testing.T) {
	repo := newCountingContentRepo()
	svc := NewContentService(&contentUowFactory{repo: repo})
	ctx := context.Background()

	active, err := svc.AddFAQ(ctx, &dto.AddFAQRequest{Question: "How do I register?", Answer: "Use the app."})
	require.NoError(t, err)

	disabled, err := svc.AddFAQ(ctx, &dto.AddFAQRequest{Question: "Old question", Answer: "Old answer"})
	require.NoError(t, err)

	off := false
	_, err = svc.UpdateFAQ(ctx, &dto.UpdateFAQRequest{
		Id:       disabled.Id,
		Question: "Old question",
		Answer:   "Old answer",
		IsActive: &off,
	})
	require.NoError(t, err)
	readsAfterSetup := repo.faqReads

	listed, err := svc.ListFAQs(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, active.Id, listed[0].Id)

	_, err = svc.ListFAQs(ctx)
	require.NoError(t, err)
	assert.Equal(t, readsAfterSetup+1, repo.faqReads)
}

func TestUpdateFAQUnknownId(t *testing.T) {
	svc := NewContentService(&contentUowFactory{repo: newCountingContentRepo()})

	_, err := svc.UpdateFAQ(context.Background(), &dto.UpdateFAQRequest{
		Id:       uuid.New(),
		Question: "q",
		Answer:   "a",
	})
	require.Error(t, err)

	appErr, ok := err.(*serverutils.AppError)
	require.True(t, ok)
	assert.Equal(t, serverutils.CodeNotFound, appErr.Code)
}

func TestGetFAQByIdBypassesListCache(t *testing.T) {
	repo := newCountingContentRepo()
	svc := NewContentService(&contentUowFactory{repo: repo})
	ctx := context.Background()

	created, err := svc.AddFAQ(ctx, &dto.AddFAQRequest{Question: "q", Answer: "a"})
	require.NoError(t, err)

	got, err := svc.GetFAQById(ctx, created.Id)
	require.NoError(t, err)
	assert.Equal(t, created.Question, got.Question)
	assert.WithinDuration(t, time.Now(), got.CreatedAt, time.Minute)
}
