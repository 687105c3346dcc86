package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByRoomID struct {
	RoomID uuid.UUID
}

func (s ByRoomID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("room_id = ?", s.RoomID)
}

type ByQueryID struct {
	QueryID uuid.UUID
}

func (s ByQueryID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("query_id = ?", s.QueryID)
}

type ByRoomUser struct {
	UserID uuid.UUID
}

func (s ByRoomUser) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

type ByRoomAgent struct {
	AgentID uuid.UUID
}

func (s ByRoomAgent) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("agent_id = ?", s.AgentID)
}
