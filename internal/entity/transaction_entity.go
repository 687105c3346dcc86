package entity

import (
	"time"

	"github.com/google/uuid"
)

type TransactionKind string

const (
	TransactionKindRegistrationFee TransactionKind = "registration_fee"
)

type Transaction struct {
	Id            uuid.UUID
	TransactionId string
	UserId        uuid.UUID
	Kind          TransactionKind
	Amount        int64
	Status        PaymentStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
