package model

import (
	"time"

	"github.com/google/uuid"
)

// ChatRoom carries a unique index on QueryId: concurrent create-or-get calls
// for one query race at the insert, and the loser re-fetches the winner's row.
type ChatRoom struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId      uuid.UUID `gorm:"type:uuid;not null;index"`
	AgentId     uuid.UUID `gorm:"type:uuid;not null;index"`
	QueryId     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	LastMessage string    `gorm:"type:text;not null;default:''"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (ChatRoom) TableName() string {
	return "chat_rooms"
}

type ChatMessage struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RoomId     uuid.UUID `gorm:"type:uuid;not null;index:idx_chat_messages_room_created,priority:1"`
	SenderId   uuid.UUID `gorm:"type:uuid;not null"`
	SenderType string    `gorm:"type:varchar(10);not null"`
	Message    string    `gorm:"type:text;not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime;index:idx_chat_messages_room_created,priority:2"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
