package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	UserId  uuid.UUID `json:"userId" validate:"required"`
	QueryId uuid.UUID `json:"queryId" validate:"required"`
}

// RoomCounterpartInfo is the display block for the participant on the other
// side of the room (agent fields when listing for a user, user fields when
// listing for an agent).
type RoomCounterpartInfo struct {
	Id           uuid.UUID `json:"id"`
	FullName     string    `json:"fullName"`
	ProfileImage string    `json:"profileImage"`
	Phone        string    `json:"phone"`
}

type RoomResponse struct {
	Id               uuid.UUID            `json:"id"`
	UserId           uuid.UUID            `json:"userId"`
	AgentId          uuid.UUID            `json:"agentId"`
	QueryId          uuid.UUID            `json:"queryId"`
	LastMessage      string               `json:"lastMessage"`
	Agent            *RoomCounterpartInfo `json:"agent,omitempty"`
	User             *RoomCounterpartInfo `json:"user,omitempty"`
	QueryDescription string               `json:"queryDescription,omitempty"`
	CreatedAt        time.Time            `json:"createdAt"`
	UpdatedAt        time.Time            `json:"updatedAt"`
}

// AgentRoomsEnvelope mirrors the historical wire shape for the agent listing,
// which keys the payload as "rooms" rather than "data".
type AgentRoomsEnvelope struct {
	Message string          `json:"message"`
	Status  bool            `json:"status"`
	Rooms   []*RoomResponse `json:"rooms"`
}

type MessageResponse struct {
	Id         uuid.UUID `json:"id"`
	RoomId     uuid.UUID `json:"roomId"`
	SenderId   uuid.UUID `json:"senderId"`
	SenderType string    `json:"senderType"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"createdAt"`
}

// SendMessageEvent is the client→server realtime payload.
type SendMessageEvent struct {
	RoomId     uuid.UUID `json:"roomId" validate:"required"`
	SenderId   uuid.UUID `json:"senderId" validate:"required"`
	SenderType string    `json:"senderType" validate:"required,oneof=user agent"`
	Message    string    `json:"message" validate:"required"`
}
