package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateQueryRequest struct {
	Description string `json:"description" validate:"required"`
	Industry    string `json:"industry,omitempty"`
}

type AddCommentRequest struct {
	QueryId uuid.UUID `json:"queryId" validate:"required"`
	Comment string    `json:"comment" validate:"required"`
}

type QueryResponse struct {
	Id          uuid.UUID `json:"id"`
	UserId      uuid.UUID `json:"userId"`
	Description string    `json:"description"`
	StartTime   string    `json:"startTime"`
	EndTime     string    `json:"endTime"`
	Industry    string    `json:"industry"`
	Status      string    `json:"status"`
	Comments    []string  `json:"comments"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
