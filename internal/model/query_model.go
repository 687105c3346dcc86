package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Query struct {
	Id          uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId      uuid.UUID                   `gorm:"type:uuid;not null;index"`
	Description string                      `gorm:"type:text;not null"`
	StartTime   string                      `gorm:"type:varchar(20);not null;default:'12:00 PM'"`
	EndTime     string                      `gorm:"type:varchar(20);not null;default:'05:00 PM'"`
	Industry    string                      `gorm:"type:varchar(100)"`
	Status      string                      `gorm:"type:varchar(20);not null;default:'Active'"`
	Comments    datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	CreatedAt   time.Time                   `gorm:"autoCreateTime"`
	UpdatedAt   time.Time                   `gorm:"autoUpdateTime"`
}

func (Query) TableName() string {
	return "queries"
}
