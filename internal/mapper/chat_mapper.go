package mapper

import (
	"service-marketplace-be/internal/entity"
	"service-marketplace-be/internal/model"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

func (m *ChatMapper) RoomToEntity(r *model.ChatRoom) *entity.ChatRoom {
	if r == nil {
		return nil
	}
	return &entity.ChatRoom{
		Id:          r.Id,
		UserId:      r.UserId,
		AgentId:     r.AgentId,
		QueryId:     r.QueryId,
		LastMessage: r.LastMessage,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func (m *ChatMapper) RoomToModel(r *entity.ChatRoom) *model.ChatRoom {
	if r == nil {
		return nil
	}
	return &model.ChatRoom{
		Id:          r.Id,
		UserId:      r.UserId,
		AgentId:     r.AgentId,
		QueryId:     r.QueryId,
		LastMessage: r.LastMessage,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func (m *ChatMapper) RoomsToEntities(rooms []*model.ChatRoom) []*entity.ChatRoom {
	entities := make([]*entity.ChatRoom, len(rooms))
	for i, r := range rooms {
		entities[i] = m.RoomToEntity(r)
	}
	return entities
}

func (m *ChatMapper) MessageToEntity(msg *model.ChatMessage) *entity.ChatMessage {
	if msg == nil {
		return nil
	}
	return &entity.ChatMessage{
		Id:         msg.Id,
		RoomId:     msg.RoomId,
		SenderId:   msg.SenderId,
		SenderType: entity.SenderType(msg.SenderType),
		Message:    msg.Message,
		CreatedAt:  msg.CreatedAt,
	}
}

func (m *ChatMapper) MessageToModel(msg *entity.ChatMessage) *model.ChatMessage {
	if msg == nil {
		return nil
	}
	return &model.ChatMessage{
		Id:         msg.Id,
		RoomId:     msg.RoomId,
		SenderId:   msg.SenderId,
		SenderType: string(msg.SenderType),
		Message:    msg.Message,
		CreatedAt:  msg.CreatedAt,
	}
}

func (m *ChatMapper) MessagesToEntities(msgs []*model.ChatMessage) []*entity.ChatMessage {
	entities := make([]*entity.ChatMessage, len(msgs))
	for i, msg := range msgs {
		entities[i] = m.MessageToEntity(msg)
	}
	return entities
}
