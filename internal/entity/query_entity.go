package entity

import (
	"time"

	"github.com/google/uuid"
)

type QueryStatus string

const (
	QueryStatusActive   QueryStatus = "Active"
	QueryStatusInactive QueryStatus = "Inactive"
)

// Query is a support ticket a user raises. Chat rooms are anchored to a query,
// at most one room per query.
type Query struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	Description string
	StartTime   string
	EndTime     string
	Industry    string
	Status      QueryStatus
	Comments    []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
