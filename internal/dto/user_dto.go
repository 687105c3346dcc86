package dto

import (
	"time"

	"github.com/google/uuid"
)

type UpdateProfileRequest struct {
	FullName      string `json:"fullName,omitempty"`
	UserEmail     string `json:"userEmail,omitempty" validate:"omitempty,email"`
	Dob           string `json:"dob,omitempty"`
	Gender        string `json:"gender,omitempty" validate:"omitempty,oneof=Male Female"`
	Phone         string `json:"phone,omitempty"`
	FirebaseToken string `json:"firebaseToken,omitempty"`
}

type TransactionResponse struct {
	Id            uuid.UUID `json:"id"`
	TransactionId string    `json:"transactionId"`
	Kind          string    `json:"kind"`
	Amount        int64     `json:"amount"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

type NotificationResponse struct {
	Id        uuid.UUID              `json:"id"`
	Title     string                 `json:"title"`
	Message   string                 `json:"message"`
	TypeCode  string                 `json:"typeCode"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	IsRead    bool                   `json:"isRead"`
	CreatedAt time.Time              `json:"createdAt"`
}
