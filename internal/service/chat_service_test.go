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
	"service-marketplace-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// chatStore is shared in-memory state behind the fake repositories.
type chatStore struct {
	queries  map[uuid.UUID]*entity.Query
	rooms    []*entity.ChatRoom
	messages []*entity.ChatMessage
	users    map[uuid.UUID]*entity.User
	agents   map[uuid.UUID]*entity.Agent

	// When set, ChatRoomRepository.Create inserts this row and fails with
	// gorm.ErrDuplicatedKey, simulating a concurrent winner.
	dupWinner *entity.ChatRoom
}

func newChatStore() *chatStore {
	return &chatStore{
		queries: make(map[uuid.UUID]*entity.Query),
		users:   make(map[uuid.UUID]*entity.User),
		agents:  make(map[uuid.UUID]*entity.Agent),
	}
}

type fakeQueryRepo struct {
	contract.QueryRepository
	store *chatStore
}

func (r *fakeQueryRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Query, error) {
	for _, s := range specs {
		if byId, ok := s.(specification.ByID); ok {
			if q, found := r.store.queries[byId.ID]; found {
				return q, nil
			}
		}
	}
	return nil, nil
}

func (r *fakeQueryRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Query, error) {
	result := make([]*entity.Query, 0)
	for _, s := range specs {
		switch spec := s.(type) {
		case specification.ByIDs:
			for _, id := range spec.IDs {
				if q, found := r.store.queries[id]; found {
					result = append(result, q)
				}
			}
		case specification.FilterBy:
			if spec.Field != "user_id" {
				continue
			}
			for _, q := range r.store.queries {
				if q.UserId == spec.Value.(uuid.UUID) {
					result = append(result, q)
				}
			}
		}
	}
	return result, nil
}

func (r *fakeQueryRepo) Create(ctx context.Context, query *entity.Query) error {
	copied := *query
	r.store.queries[query.Id] = &copied
	return nil
}

func (r *fakeQueryRepo) AppendComment(ctx context.Context, id uuid.UUID, comment string) error {
	if q, found := r.store.queries[id]; found {
		q.Comments = append(q.Comments, comment)
	}
	return nil
}

type fakeChatRoomRepo struct {
	store *chatStore
}

func (r *fakeChatRoomRepo) Create(ctx context.Context, room *entity.ChatRoom) error {
	if r.store.dupWinner != nil {
		r.store.rooms = append(r.store.rooms, r.store.dupWinner)
		return gorm.ErrDuplicatedKey
	}
	copied := *room
	r.store.rooms = append(r.store.rooms, &copied)
	return nil
}

func (r *fakeChatRoomRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatRoom, error) {
	for _, room := range r.store.rooms {
		if matchRoom(room, specs) {
			return room, nil
		}
	}
	return nil, nil
}

func (r *fakeChatRoomRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatRoom, error) {
	result := make([]*entity.ChatRoom, 0)
	for _, room := range r.store.rooms {
		if matchRoom(room, specs) {
			result = append(result, room)
		}
	}
	return result, nil
}

func (r *fakeChatRoomRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	rooms, _ := r.FindAll(ctx, specs...)
	return int64(len(rooms)), nil
}

func (r *fakeChatRoomRepo) UpdateLastMessage(ctx context.Context, id uuid.UUID, lastMessage string) error {
	for _, room := range r.store.rooms {
		if room.Id == id {
			room.LastMessage = lastMessage
			room.UpdatedAt = time.Now()
		}
	}
	return nil
}

func matchRoom(room *entity.ChatRoom, specs []specification.Specification) bool {
	for _, s := range specs {
		switch spec := s.(type) {
		case specification.ByID:
			if room.Id != spec.ID {
				return false
			}
		case specification.ByQueryID:
			if room.QueryId != spec.QueryID {
				return false
			}
		case specification.ByRoomUser:
			if room.UserId != spec.UserID {
				return false
			}
		case specification.ByRoomAgent:
			if room.AgentId != spec.AgentID {
				return false
			}
		}
	}
	return true
}

type fakeChatMessageRepo struct {
	store *chatStore
}

func (r *fakeChatMessageRepo) Create(ctx context.Context, message *entity.ChatMessage) error {
	copied := *message
	r.store.messages = append(r.store.messages, &copied)
	return nil
}

func (r *fakeChatMessageRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatMessage, error) {
	messages, _ := r.FindAll(ctx, specs...)
	if len(messages) == 0 {
		return nil, nil
	}
	return messages[0], nil
}

func (r *fakeChatMessageRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error) {
	result := make([]*entity.ChatMessage, 0)
	for _, msg := range r.store.messages {
		matched := true
		for _, s := range specs {
			if byRoom, ok := s.(specification.ByRoomID); ok && msg.RoomId != byRoom.RoomID {
				matched = false
			}
		}
		if matched {
			result = append(result, msg)
		}
	}
	return result, nil
}

func (r *fakeChatMessageRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	messages, _ := r.FindAll(ctx, specs...)
	return int64(len(messages)), nil
}

type fakeUserRepo struct {
	contract.UserRepository
	store *chatStore
}

func (r *fakeUserRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	result := make([]*entity.User, 0)
	for _, s := range specs {
		if byIds, ok := s.(specification.ByIDs); ok {
			for _, id := range byIds.IDs {
				if u, found := r.store.users[id]; found {
					result = append(result, u)
				}
			}
		}
	}
	return result, nil
}

type fakeAgentRepo struct {
	contract.AgentRepository
	store *chatStore
}

func (r *fakeAgentRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Agent, error) {
	result := make([]*entity.Agent, 0)
	for _, s := range specs {
		if byIds, ok := s.(specification.ByIDs); ok {
			for _, id := range byIds.IDs {
				if a, found := r.store.agents[id]; found {
					result = append(result, a)
				}
			}
		}
	}
	return result, nil
}

type fakeUow struct {
	store *chatStore
}

func (u *fakeUow) Begin(ctx context.Context) error { return nil }
func (u *fakeUow) Commit() error                   { return nil }
func (u *fakeUow) Rollback() error                 { return nil }

func (u *fakeUow) UserRepository() contract.UserRepository {
	return &fakeUserRepo{store: u.store}
}
func (u *fakeUow) AgentRepository() contract.AgentRepository {
	return &fakeAgentRepo{store: u.store}
}
func (u *fakeUow) AdminRepository() contract.AdminRepository { return nil }
func (u *fakeUow) QueryRepository() contract.QueryRepository {
	return &fakeQueryRepo{store: u.store}
}
func (u *fakeUow) ChatRoomRepository() contract.ChatRoomRepository {
	return &fakeChatRoomRepo{store: u.store}
}
func (u *fakeUow) ChatMessageRepository() contract.ChatMessageRepository {
	return &fakeChatMessageRepo{store: u.store}
}
func (u *fakeUow) ContentRepository() contract.ContentRepository           { return nil }
func (u *fakeUow) NotificationRepository() contract.NotificationRepository { return nil }
func (u *fakeUow) TransactionRepository() contract.TransactionRepository   { return nil }

type fakeUowFactory struct {
	store *chatStore
}

func (f *fakeUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUow{store: f.store}
}

type recordingPublisher struct {
	emitted []events.Event
}

func (p *recordingPublisher) Emit(ctx context.Context, event events.Event) {
	p.emitted = append(p.emitted, event)
}

func newChatServiceForTest(store *chatStore) (IChatService, *recordingPublisher) {
	pub := &recordingPublisher{}
	return NewChatService(&fakeUowFactory{store: store}, pub), pub
}

func seedQuery(store *chatStore, userId uuid.UUID) *entity.Query {
	q := &entity.Query{
		Id:          uuid.New(),
		UserId:      userId,
		Description: "AC not cooling",
		Status:      entity.QueryStatusActive,
	}
	store.queries[q.Id] = q
	return q
}

func TestCreateOrGetRoomIsIdempotent(t *testing.T) {
	store := newChatStore()
	svc, pub := newChatServiceForTest(store)

	userId := uuid.New()
	agentId := uuid.New()
	query := seedQuery(store, userId)

	req := &dto.CreateRoomRequest{UserId: userId, QueryId: query.Id}

	first, err := svc.CreateOrGetRoom(context.Background(), agentId, req)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, userId, first.UserId)
	assert.Equal(t, agentId, first.AgentId)
	assert.Equal(t, query.Id, first.QueryId)

	second, err := svc.CreateOrGetRoom(context.Background(), agentId, req)
	require.NoError(t, err)
	assert.Equal(t, first.Id, second.Id)

	assert.Len(t, store.rooms, 1)

	// Only the creating call emits the event.
	require.Len(t, pub.emitted, 1)
	assert.Equal(t, events.TypeChatRoomCreated, pub.emitted[0].EventType())
}

func TestCreateOrGetRoomUnknownQuery(t *testing.T) {
	store := newChatStore()
	svc, _ := newChatServiceForTest(store)

	_, err := svc.CreateOrGetRoom(context.Background(), uuid.New(), &dto.CreateRoomRequest{
		UserId:  uuid.New(),
		QueryId: uuid.New(),
	})
	require.Error(t, err)

	appErr, ok := err.(*serverutils.AppError)
	require.True(t, ok)
	assert.Equal(t, serverutils.CodeNotFound, appErr.Code)
	assert.Empty(t, store.rooms)
}

func TestCreateOrGetRoomLosesInsertRace(t *testing.T) {
	store := newChatStore()
	svc, pub := newChatServiceForTest(store)

	userId := uuid.New()
	agentId := uuid.New()
	query := seedQuery(store, userId)

	winner := &entity.ChatRoom{
		Id:      uuid.New(),
		UserId:  userId,
		AgentId: agentId,
		QueryId: query.Id,
	}
	store.dupWinner = winner

	got, err := svc.CreateOrGetRoom(context.Background(), agentId, &dto.CreateRoomRequest{
		UserId:  userId,
		QueryId: query.Id,
	})
	require.NoError(t, err)
	assert.Equal(t, winner.Id, got.Id)
	assert.Len(t, store.rooms, 1)

	// The loser adopts the winner's row without a second created event.
	assert.Empty(t, pub.emitted)
}

func TestAppendMessageTracksLastMessage(t *testing.T) {
	store := newChatStore()
	svc, pub := newChatServiceForTest(store)

	room := &entity.ChatRoom{
		Id:      uuid.New(),
		UserId:  uuid.New(),
		AgentId: uuid.New(),
		QueryId: uuid.New(),
	}
	store.rooms = append(store.rooms, room)

	texts := []string{"hello", "are you available?", "yes, on my way"}
	for i, text := range texts {
		sender := room.UserId
		senderType := string(entity.SenderTypeUser)
		if i%2 == 1 {
			sender = room.AgentId
			senderType = string(entity.SenderTypeAgent)
		}

		res, err := svc.AppendMessage(context.Background(), &dto.SendMessageEvent{
			RoomId:     room.Id,
			SenderId:   sender,
			SenderType: senderType,
			Message:    text,
		})
		require.NoError(t, err)
		assert.Equal(t, room.Id, res.RoomId)
		assert.Equal(t, text, res.Message)
	}

	assert.Len(t, store.messages, len(texts))
	assert.Equal(t, texts[len(texts)-1], room.LastMessage)
	assert.Len(t, pub.emitted, len(texts))
	for _, ev := range pub.emitted {
		assert.Equal(t, events.TypeChatMessageSent, ev.EventType())
	}
}

func TestAppendMessageUnknownRoom(t *testing.T) {
	store := newChatStore()
	svc, _ := newChatServiceForTest(store)

	_, err := svc.AppendMessage(context.Background(), &dto.SendMessageEvent{
		RoomId:     uuid.New(),
		SenderId:   uuid.New(),
		SenderType: string(entity.SenderTypeUser),
		Message:    "hello?",
	})
	require.Error(t, err)

	appErr, ok := err.(*serverutils.AppError)
	require.True(t, ok)
	assert.Equal(t, serverutils.CodeNotFound, appErr.Code)
	assert.Empty(t, store.messages)
}

func TestListRoomsForAgentAttachesCounterparts(t *testing.T) {
	store := newChatStore()
	svc, _ := newChatServiceForTest(store)

	agentId := uuid.New()
	user := &entity.User{Id: uuid.New(), FullName: "Asha", Phone: "+911234567890"}
	store.users[user.Id] = user
	query := seedQuery(store, user.Id)

	store.rooms = append(store.rooms, &entity.ChatRoom{
		Id:      uuid.New(),
		UserId:  user.Id,
		AgentId: agentId,
		QueryId: query.Id,
	})
	// A room belonging to another agent must not leak in.
	store.rooms = append(store.rooms, &entity.ChatRoom{
		Id:      uuid.New(),
		UserId:  user.Id,
		AgentId: uuid.New(),
		QueryId: uuid.New(),
	})

	rooms, err := svc.ListRoomsForAgent(context.Background(), agentId)
	require.NoError(t, err)
	require.Len(t, rooms, 1)

	require.NotNil(t, rooms[0].User)
	assert.Equal(t, user.FullName, rooms[0].User.FullName)
	assert.Equal(t, query.Description, rooms[0].QueryDescription)
	assert.Nil(t, rooms[0].Agent)
}
