package service

import (
	"context"
	"errors"
	"time"

	"service-marketplace-be/internal/dto"
	"service-marketplace-be/internal/entity"
	"service-marketplace-be/internal/pkg/serverutils"
	"service-marketplace-be/internal/repository/specification"
	"service-marketplace-be/internal/repository/unitofwork"
	"service-marketplace-be/pkg/events"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type IChatService interface {
	CreateOrGetRoom(ctx context.Context, agentId uuid.UUID, req *dto.CreateRoomRequest) (*dto.RoomResponse, error)
	ListRoomsForUser(ctx context.Context, userId uuid.UUID) ([]*dto.RoomResponse, error)
	ListRoomsForAgent(ctx context.Context, agentId uuid.UUID) ([]*dto.RoomResponse, error)
	AppendMessage(ctx context.Context, req *dto.SendMessageEvent) (*dto.MessageResponse, error)
}

type chatService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
) IChatService {
	return &chatService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
	}
}

// CreateOrGetRoom returns the room bound to the query, creating it when none
// exists. Concurrent callers race at the unique index on query_id; the loser
// re-fetches the winner's row, so both see the same room.
func (s *chatService) CreateOrGetRoom(ctx context.Context, agentId uuid.UUID, req *dto.CreateRoomRequest) (*dto.RoomResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	query, err := uow.QueryRepository().FindOne(ctx, specification.ByID{ID: req.QueryId})
	if err != nil {
		return nil, err
	}
	if query == nil {
		return nil, serverutils.NotFound("Query not found")
	}

	existing, err := uow.ChatRoomRepository().FindOne(ctx, specification.ByQueryID{QueryID: req.QueryId})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return s.roomToResponse(existing), nil
	}

	room := entity.ChatRoom{
		Id:        uuid.New(),
		UserId:    req.UserId,
		AgentId:   agentId,
		QueryId:   req.QueryId,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := uow.ChatRoomRepository().Create(ctx, &room); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			winner, ferr := uow.ChatRoomRepository().FindOne(ctx, specification.ByQueryID{QueryID: req.QueryId})
			if ferr != nil {
				return nil, ferr
			}
			if winner != nil {
				return s.roomToResponse(winner), nil
			}
		}
		return nil, err
	}

	s.publisherService.Emit(ctx, events.BaseEvent{
		Type: events.TypeChatRoomCreated,
		Data: map[string]interface{}{
			"room_id":     room.Id,
			"user_id":     room.UserId,
			"agent_id":    room.AgentId,
			"query_id":    room.QueryId,
			"occurred_at": time.Now(),
		},
		OccurredAt: time.Now(),
	})

	return s.roomToResponse(&room), nil
}

func (s *chatService) ListRoomsForUser(ctx context.Context, userId uuid.UUID) ([]*dto.RoomResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	rooms, err := uow.ChatRoomRepository().FindAll(ctx,
		specification.ByRoomUser{UserID: userId},
		specification.OrderBy{Field: "updated_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.RoomResponse, 0, len(rooms))
	if len(rooms) == 0 {
		return result, nil
	}

	agentIds := make([]uuid.UUID, 0, len(rooms))
	for _, room := range rooms {
		agentIds = append(agentIds, room.AgentId)
	}
	agents, err := uow.AgentRepository().FindAll(ctx, specification.ByIDs{IDs: agentIds})
	if err != nil {
		return nil, err
	}
	agentById := make(map[uuid.UUID]*entity.Agent, len(agents))
	for _, agent := range agents {
		agentById[agent.Id] = agent
	}

	for _, room := range rooms {
		res := s.roomToResponse(room)
		if agent, ok := agentById[room.AgentId]; ok {
			res.Agent = &dto.RoomCounterpartInfo{
				Id:           agent.Id,
				FullName:     agent.FullName,
				ProfileImage: agent.ProfileImage,
				Phone:        agent.Phone,
			}
		}
		result = append(result, res)
	}
	return result, nil
}

func (s *chatService) ListRoomsForAgent(ctx context.Context, agentId uuid.UUID) ([]*dto.RoomResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	rooms, err := uow.ChatRoomRepository().FindAll(ctx,
		specification.ByRoomAgent{AgentID: agentId},
		specification.OrderBy{Field: "updated_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.RoomResponse, 0, len(rooms))
	if len(rooms) == 0 {
		return result, nil
	}

	userIds := make([]uuid.UUID, 0, len(rooms))
	queryIds := make([]uuid.UUID, 0, len(rooms))
	for _, room := range rooms {
		userIds = append(userIds, room.UserId)
		queryIds = append(queryIds, room.QueryId)
	}

	users, err := uow.UserRepository().FindAll(ctx, specification.ByIDs{IDs: userIds})
	if err != nil {
		return nil, err
	}
	userById := make(map[uuid.UUID]*entity.User, len(users))
	for _, user := range users {
		userById[user.Id] = user
	}

	queries, err := uow.QueryRepository().FindAll(ctx, specification.ByIDs{IDs: queryIds})
	if err != nil {
		return nil, err
	}
	queryById := make(map[uuid.UUID]*entity.Query, len(queries))
	for _, q := range queries {
		queryById[q.Id] = q
	}

	for _, room := range rooms {
		res := s.roomToResponse(room)
		if user, ok := userById[room.UserId]; ok {
			res.User = &dto.RoomCounterpartInfo{
				Id:           user.Id,
				FullName:     user.FullName,
				ProfileImage: user.ProfileImage,
				Phone:        user.Phone,
			}
		}
		if q, ok := queryById[room.QueryId]; ok {
			res.QueryDescription = q.Description
		}
		result = append(result, res)
	}
	return result, nil
}

// AppendMessage writes the immutable message row, then bumps the room's
// lastMessage. The insert is the durable record; the room update is
// best-effort and sequenced after it.
func (s *chatService) AppendMessage(ctx context.Context, req *dto.SendMessageEvent) (*dto.MessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	room, err := uow.ChatRoomRepository().FindOne(ctx, specification.ByID{ID: req.RoomId})
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, serverutils.NotFound("Chat room not found")
	}

	message := entity.ChatMessage{
		Id:         uuid.New(),
		RoomId:     req.RoomId,
		SenderId:   req.SenderId,
		SenderType: entity.SenderType(req.SenderType),
		Message:    req.Message,
		CreatedAt:  time.Now(),
	}

	if err := uow.ChatMessageRepository().Create(ctx, &message); err != nil {
		return nil, err
	}

	if err := uow.ChatRoomRepository().UpdateLastMessage(ctx, room.Id, message.Message); err != nil {
		return nil, err
	}

	s.publisherService.Emit(ctx, events.BaseEvent{
		Type: events.TypeChatMessageSent,
		Data: map[string]interface{}{
			"room_id":     room.Id,
			"user_id":     room.UserId,
			"agent_id":    room.AgentId,
			"sender_id":   message.SenderId,
			"sender_type": string(message.SenderType),
			"message":     message.Message,
			"occurred_at": message.CreatedAt,
		},
		OccurredAt: message.CreatedAt,
	})

	return &dto.MessageResponse{
		Id:         message.Id,
		RoomId:     message.RoomId,
		SenderId:   message.SenderId,
		SenderType: string(message.SenderType),
		Message:    message.Message,
		CreatedAt:  message.CreatedAt,
	}, nil
}

func (s *chatService) roomToResponse(room *entity.ChatRoom) *dto.RoomResponse {
	return &dto.RoomResponse{
		Id:          room.Id,
		UserId:      room.UserId,
		AgentId:     room.AgentId,
		QueryId:     room.QueryId,
		LastMessage: room.LastMessage,
		CreatedAt:   room.CreatedAt,
		UpdatedAt:   room.UpdatedAt,
	}
}
