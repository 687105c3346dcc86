package entity

import (
	"time"

	"github.com/google/uuid"
)

type SenderType string

const (
	SenderTypeUser  SenderType = "user"
	SenderTypeAgent SenderType = "agent"
)

// ChatRoom binds one user, one agent and one query. LastMessage is
// denormalized so room listings don't join the message log.
type ChatRoom struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	AgentId     uuid.UUID
	QueryId     uuid.UUID
	LastMessage string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ChatMessage is immutable once created and belongs to exactly one room.
type ChatMessage struct {
	Id         uuid.UUID
	RoomId     uuid.UUID
	SenderId   uuid.UUID
	SenderType SenderType
	Message    string
	CreatedAt  time.Time
}
