package entity

import (
	"time"

	"github.com/google/uuid"
)

type Admin struct {
	Id           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
