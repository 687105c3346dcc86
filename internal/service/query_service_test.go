package service

import (
	"context"
	"testing"

	"service-marketplace-be/internal/dto"
	"service-marketplace-be/internal/pkg/serverutils"
	"service-marketplace-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQueryServiceForTest(store *chatStore) (IQueryService, *recordingPublisher) {
	pub := &recordingPublisher{}
	return NewQueryService(&fakeUowFactory{store: store}, pub), pub
}

func TestCreateQueryAppliesDefaults(t *testing.T) {
	store := newChatStore()
	svc, pub := newQueryServiceForTest(store)

	userId := uuid.New()
	res, err := svc.CreateQuery(context.Background(), userId, &dto.CreateQueryRequest{
		Description: "Washing machine leaking",
		Industry:    "Appliances",
	})
	require.NoError(t, err)

	assert.Equal(t, userId, res.UserId)
	assert.Equal(t, "12:00 PM", res.StartTime)
	assert.Equal(t, "05:00 PM", res.EndTime)
	assert.Equal(t, "Active", res.Status)
	assert.NotNil(t, res.Comments)
	assert.Empty(t, res.Comments)

	require.Len(t, pub.emitted, 1)
	assert.Equal(t, events.TypeQueryCreated, pub.emitted[0].EventType())
}

func TestAddCommentAppends(t *testing.T) {
	store := newChatStore()
	svc, _ := newQueryServiceForTest(store)
	ctx := context.Background()

	created, err := svc.CreateQuery(ctx, uuid.New(), &dto.CreateQueryRequest{
		Description: "No power in kitchen",
		Industry:    "Electrical",
	})
	require.NoError(t, err)

	first, err := svc.AddComment(ctx, &dto.AddCommentRequest{QueryId: created.Id, Comment: "Technician assigned"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Technician assigned"}, first.Comments)

	second, err := svc.AddComment(ctx, &dto.AddCommentRequest{QueryId: created.Id, Comment: "Visit scheduled"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Technician assigned", "Visit scheduled"}, second.Comments)
}

func TestAddCommentUnknownQuery(t *testing.T) {
	store := newChatStore()
	svc, _ := newQueryServiceForTest(store)

	_, err := svc.AddComment(context.Background(), &dto.AddCommentRequest{
		QueryId: uuid.New(),
		Comment: "lost",
	})
	require.Error(t, err)

	appErr, ok := err.(*serverutils.AppError)
	require.True(t, ok)
	assert.Equal(t, serverutils.CodeNotFound, appErr.Code)
}

func TestGetQueriesScopedToUser(t *testing.T) {
	store := newChatStore()
	svc, _ := newQueryServiceForTest(store)
	ctx := context.Background()

	mine := uuid.New()
	other := uuid.New()

	_, err := svc.CreateQuery(ctx, mine, &dto.CreateQueryRequest{Description: "mine", Industry: "Plumbing"})
	require.NoError(t, err)
	_, err = svc.CreateQuery(ctx, other, &dto.CreateQueryRequest{Description: "theirs", Industry: "Plumbing"})
	require.NoError(t, err)

	queries, err := svc.GetQueries(ctx, mine)
	require.NoError(t, err)
	require.Len(t, queries, 1)
	assert.Equal(t, "mine", queries[0].Description)
}
