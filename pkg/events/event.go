package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g. "CHAT_MESSAGE_SENT").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the generic implementation most emitters use.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Event type codes emitted by this service.
const (
	TypeChatRoomCreated = "CHAT_ROOM_CREATED"
	TypeChatMessageSent = "CHAT_MESSAGE_SENT"
	TypeQueryCreated    = "QUERY_CREATED"
	TypeAgentRegistered = "AGENT_REGISTERED"
	TypeUserVerified    = "USER_VERIFIED"
)
