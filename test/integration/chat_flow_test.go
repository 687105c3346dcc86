package integration

import (
	"context"
	"testing"
	"time"

	"service-marketplace-be/internal/entity"
	"service-marketplace-be/internal/repository/specification"
	"service-marketplace-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Exercises the chat tables end to end: user raises a query, an agent opens
// a room on it, messages accumulate and the room's last_message follows.
// Runs inside a transaction that is rolled back, so the database is left
// untouched.
func TestChatRoomAndMessageFlow(t *testing.T) {
	gormDB := openTestDB(t)

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	ctx := context.Background()
	err := uow.Begin(ctx)
	require.NoError(t, err)
	defer uow.Rollback()

	user := &entity.User{
		Id:         uuid.New(),
		FullName:   "Integration Test User",
		Phone:      "+91" + uuid.New().String()[:10],
		IsVerified: true,
	}
	require.NoError(t, uow.UserRepository().Create(ctx, user))

	agent := &entity.Agent{
		Id:            uuid.New(),
		FullName:      "Integration Test Agent",
		AgentEmail:    "agent-" + uuid.New().String() + "@example.com",
		Phone:         "+92" + uuid.New().String()[:10],
		Sector:        "Plumbing",
		AdminVerified: entity.AdminVerificationApproved,
		PaymentStatus: entity.PaymentStatusSuccess,
	}
	require.NoError(t, uow.AgentRepository().Create(ctx, agent))

	query := &entity.Query{
		Id:          uuid.New(),
		UserId:      user.Id,
		Description: "Integration test query",
		StartTime:   "12:00 PM",
		EndTime:     "05:00 PM",
		Industry:    "Plumbing",
		Status:      entity.QueryStatusActive,
		Comments:    []string{},
	}
	require.NoError(t, uow.QueryRepository().Create(ctx, query))

	room := &entity.ChatRoom{
		Id:      uuid.New(),
		UserId:  user.Id,
		AgentId: agent.Id,
		QueryId: query.Id,
	}
	require.NoError(t, uow.ChatRoomRepository().Create(ctx, room))

	t.Run("Messages accumulate and last message follows", func(t *testing.T) {
		texts := []string{"hello", "checking in", "done"}
		for _, text := range texts {
			msg := &entity.ChatMessage{
				Id:         uuid.New(),
				RoomId:     room.Id,
				SenderId:   user.Id,
				SenderType: entity.SenderTypeUser,
				Message:    text,
			}
			require.NoError(t, uow.ChatMessageRepository().Create(ctx, msg))
			require.NoError(t, uow.ChatRoomRepository().UpdateLastMessage(ctx, room.Id, text))
			time.Sleep(5 * time.Millisecond)
		}

		count, err := uow.ChatMessageRepository().Count(ctx, specification.ByRoomID{RoomID: room.Id})
		require.NoError(t, err)
		assert.Equal(t, int64(len(texts)), count)

		stored, err := uow.ChatRoomRepository().FindOne(ctx, specification.ByID{ID: room.Id})
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, texts[len(texts)-1], stored.LastMessage)

		history, err := uow.ChatMessageRepository().FindAll(ctx,
			specification.ByRoomID{RoomID: room.Id},
			specification.OrderBy{Field: "created_at", Desc: false},
		)
		require.NoError(t, err)
		require.Len(t, history, len(texts))
		for i, msg := range history {
			assert.Equal(t, texts[i], msg.Message)
		}
	})

	t.Run("Room lookup by participants", func(t *testing.T) {
		byUser, err := uow.ChatRoomRepository().FindAll(ctx, specification.ByRoomUser{UserID: user.Id})
		require.NoError(t, err)
		assert.Len(t, byUser, 1)

		byAgent, err := uow.ChatRoomRepository().FindAll(ctx, specification.ByRoomAgent{AgentID: agent.Id})
		require.NoError(t, err)
		assert.Len(t, byAgent, 1)
	})

	// Last on purpose: the failed insert aborts the postgres transaction,
	// after which only the deferred rollback may run.
	t.Run("Second room on same query violates unique index", func(t *testing.T) {
		dup := &entity.ChatRoom{
			Id:      uuid.New(),
			UserId:  user.Id,
			AgentId: agent.Id,
			QueryId: query.Id,
		}
		err := uow.ChatRoomRepository().Create(ctx, dup)
		assert.Error(t, err)
	})
}
