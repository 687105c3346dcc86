package unitofwork

import (
	"context"

	"service-marketplace-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	AgentRepository() contract.AgentRepository
	AdminRepository() contract.AdminRepository
	QueryRepository() contract.QueryRepository

	ChatRoomRepository() contract.ChatRoomRepository
	ChatMessageRepository() contract.ChatMessageRepository

	ContentRepository() contract.ContentRepository
	NotificationRepository() contract.NotificationRepository
	TransactionRepository() contract.TransactionRepository
}
